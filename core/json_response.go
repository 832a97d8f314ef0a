package core

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the status mapped from err with a minimal JSON
// body. The body never echoes internal error detail to the client.
func JSONError(w http.ResponseWriter, err error) {
	JSON(w, Status(err), map[string]any{"success": false})
}

// DecodeJSON decodes the request body into v. Unknown fields are
// rejected; any decode failure is reported as ErrInvalidInput.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrInvalidInput
	}
	return nil
}
