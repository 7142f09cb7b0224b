package helpers

import (
	"net/http"
	"net/url"
	"strings"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// QueryBinder is implemented by request DTOs read from the query string.
type QueryBinder interface {
	Bind(q url.Values)
}

// BindAndValidate fills dest from the request query string and, if dest implements
// Validator, runs Validate(). On validation failure it writes a 400 JSON error and
// returns false. Callers should return immediately when it returns false.
func BindAndValidate(w http.ResponseWriter, r *http.Request, dest QueryBinder) bool {
	dest.Bind(r.URL.Query())
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}
