package query

import "math"

// Window is an offset/limit pair. A zero Limit means no limit.
type Window struct {
	Offset int
	Limit  int
}

// Paginate converts a 1-based page and a page size into a Window.
// Non-positive pages or sizes are rejected rather than handed to the store.
func Paginate(page, size int) (Window, error) {
	if page < 1 {
		return Window{}, invalidParam("page", "must be 1 or greater")
	}
	if size < 1 {
		return Window{}, invalidParam("size", "must be 1 or greater")
	}
	if page-1 > math.MaxInt/size {
		return Window{}, invalidParam("page", "is too large")
	}
	return Window{Offset: size * (page - 1), Limit: size}, nil
}
