package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidFormat, "Ano inválido", map[string]string{"year": "abc"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidFormat, body.Code)
	assert.Equal(t, "Ano inválido", body.Message)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, StatusFor(ErrDatasetNotLoaded))
	assert.Equal(t, http.StatusNotFound, StatusFor(ErrChartNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}
