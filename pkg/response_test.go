package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHidesUnmappedErrors(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	rec := httptest.NewRecorder()
	Error(rec, errors.New("dial tcp 10.0.0.5:443: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, []string{ErrInternal.Error()}, resp.Errors)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "dial tcp 10.0.0.5:443: connection refused")
}

func TestErrorKeepsWrappedInternalMessage(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	rec := httptest.NewRecorder()
	Error(rec, fmt.Errorf("%w: template render failed", ErrInternal))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"internal error: template render failed"}, resp.Errors)
	assert.Empty(t, hook.AllEntries())
}

func TestErrorMapsDomainErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, fmt.Errorf("%w: name: English translation is required", ErrStructuralInput))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
