package query

import "fmt"

// ParamError reports a query parameter that cannot be turned into a safe query.
type ParamError struct {
	Param  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func invalidParam(param, reason string) error {
	return &ParamError{Param: param, Reason: reason}
}
