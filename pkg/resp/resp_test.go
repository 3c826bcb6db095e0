package resp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSONResponse(rec, http.StatusCreated, map[string]string{"status": "ok"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSONResponse_EncodeError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := WriteJSONResponse(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
