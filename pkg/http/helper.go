package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "hotels/pkg/errors"
)

// DecodeJSON reads the request body into dst. Unknown fields are ignored; an
// empty body, malformed JSON or mistyped fields yield an InvalidInput error.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Request body is required")
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxBytesErr *http.MaxBytesError

		switch {
		case errors.Is(err, io.EOF):
			return apperrors.InvalidInput("Request body is required")
		case errors.As(err, &syntaxErr):
			return apperrors.InvalidInput(fmt.Sprintf("Malformed JSON at position %d", syntaxErr.Offset))
		case errors.As(err, &typeErr):
			return apperrors.InvalidInput(fmt.Sprintf("Field %q must be of type %s", typeErr.Field, typeErr.Type))
		case errors.As(err, &maxBytesErr):
			return apperrors.InvalidInput(fmt.Sprintf("Request body exceeds %d bytes", maxBytesErr.Limit))
		default:
			return apperrors.InvalidInput("Invalid request body")
		}
	}

	return nil
}
