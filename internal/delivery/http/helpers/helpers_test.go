package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairQuery struct {
	A, B string
}

func (p *pairQuery) Bind(q url.Values) {
	p.A = q.Get("a")
	p.B = q.Get("b")
}

func (p pairQuery) Validate() []string {
	var errs []string
	if p.A == "" {
		errs = append(errs, "a is required")
	}
	if p.B == "" {
		errs = append(errs, "b is required")
	}
	return errs
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var q pairQuery
		rr := httptest.NewRecorder()
		ok := BindAndValidate(rr, httptest.NewRequest(http.MethodGet, "/x?a=1&b=2", nil), &q)
		require.True(t, ok)
		assert.Equal(t, pairQuery{A: "1", B: "2"}, q)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid joins messages", func(t *testing.T) {
		var q pairQuery
		rr := httptest.NewRecorder()
		ok := BindAndValidate(rr, httptest.NewRequest(http.MethodGet, "/x", nil), &q)
		require.False(t, ok)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var envelope APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, ErrCodeBadRequest, envelope.Error.Code)
		assert.Equal(t, "a is required; b is required", envelope.Error.Message)
	})
}

func TestWriteAPIError_Suggestions(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteAPIError(rr, http.StatusBadRequest, &APIError{Code: ErrCodeInvalidTag, Message: "nope", Suggestions: []string{"cute", "cute", "funny"}})

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":null,"error":{"code":"invalid_tag","message":"nope","suggestions":["cute","cute","funny"]}}`, rr.Body.String())
}

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, []string{"cute"})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"data":["cute"],"error":null}`, rr.Body.String())
}

func TestWriteNoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteNoContent(rr)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
