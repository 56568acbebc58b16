//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const requestIDHeader = "X-Request-ID"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertRequestID checks the echoed request ID, or that a UUID was generated
// when want is empty.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	got := w.Header().Get(requestIDHeader)
	if want != "" {
		assert.Equal(t, want, got)
		return
	}
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated request ID %q is not a UUID", got)
}
