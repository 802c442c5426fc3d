package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type trackedBody struct {
	io.Reader
	read   int
	closed bool
}

func (b *trackedBody) Read(p []byte) (int, error) {
	n, err := b.Reader.Read(p)
	b.read += n
	return n, err
}

func (b *trackedBody) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndCloseRequest(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader(strings.Repeat("x", 1024))}
	req := httptest.NewRequest(http.MethodPost, "/activity/log", nil)
	req.Body = body

	h := DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 10)
		_, _ = r.Body.Read(buf)
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, body.closed)
	assert.Equal(t, 1024, body.read)
}

func TestDrainAndCloseRequest_StopsAtLimit(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader(strings.Repeat("x", 2*maxDrainBytes))}
	req := httptest.NewRequest(http.MethodPost, "/activity/log", nil)
	req.Body = body

	DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, body.closed)
	assert.Equal(t, maxDrainBytes, body.read)
}
