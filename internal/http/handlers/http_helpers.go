package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/bowling-catalog/internal/catalog"
	"github.com/rogerio-castellano/bowling-catalog/internal/logger"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// respond writes data and logs when the client could not be written to.
func respond(w http.ResponseWriter, r *http.Request, status int, data any, headers ...http.Header) {
	if err := writeJSON(w, status, data, headers...); err != nil {
		logger.WithCtx(r.Context()).Warn("failed to write response", "error", err)
	}
}

func statusFor(kind catalog.Kind) int {
	switch kind {
	case catalog.KindBadRequest:
		return http.StatusBadRequest
	case catalog.KindNotFound, catalog.KindNoMatch:
		return http.StatusNotFound
	case catalog.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and a client-safe message. Unexpected
// failures are logged with their cause, which never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := catalog.KindOf(err)
	log := logger.WithCtx(r.Context())
	if kind == catalog.KindUnexpected {
		log.Error("catalog operation failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		log.Debug("catalog request rejected", "kind", kind, "error", err)
	}
	respond(w, r, statusFor(kind), ErrorResponse{Message: catalog.PublicMessage(err)})
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respond(w, r, status, ErrorResponse{Message: msg})
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
