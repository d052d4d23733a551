// AngelaMos | 2026
// response_test.go

package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK_RendersPayloadAtTopLevel(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]int64{"count": 1})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())
}

func TestCreated_RendersPayloadAtTopLevel(t *testing.T) {
	w := httptest.NewRecorder()
	Created(w, map[string]string{"path": "/uploads/a.png"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"path":"/uploads/a.png"}`, w.Body.String())
}

func TestJSONError_AppErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, NotFoundError("product"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(
		t,
		`{"success":false,"error":{"code":"NOT_FOUND","message":"product not found"}}`,
		w.Body.String(),
	)
}

func TestJSONError_UnknownErrorIsGeneric500(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, assert.AnError)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
