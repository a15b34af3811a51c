package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/pareto"
)

func testServer() *Server {
	return NewServer(Config{
		Addr:   ":0",
		Width:  400,
		Height: 300,
		Chart:  pareto.DefaultChart(),
	})
}

func TestHealth(t *testing.T) {
	var (
		srv = testServer()
		req = httptest.NewRequest(http.MethodGet, "/health", nil)
		rec = httptest.NewRecorder()
	)
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	_, err := uuid.Parse(rec.Header().Get(requestHeader))
	assert.NoError(t, err)
}

func TestPareto(t *testing.T) {
	var (
		srv  = testServer()
		body = `[{"name":"a","value":10},{"name":"b","value":30},{"name":"c","value":20}]`
		req  = httptest.NewRequest(http.MethodPost, "/pareto?width=500", strings.NewReader(body))
		rec  = httptest.NewRecorder()
	)
	req.Header.Set(requestHeader, "fixed")
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "fixed", rec.Header().Get(requestHeader))

	out := rec.Body.String()
	assert.Contains(t, out, `width="500.00"`)
	assert.Contains(t, out, `height="300.00"`)
	assert.Equal(t, 3, strings.Count(out, `class="bar"`))
}

func TestParetoEmpty(t *testing.T) {
	var (
		srv = testServer()
		req = httptest.NewRequest(http.MethodPost, "/pareto", strings.NewReader(`[]`))
		rec = httptest.NewRecorder()
	)
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<rect")
}

func TestParetoBadRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		body string
	}{
		{name: "invalid json", url: "/pareto", body: `{`},
		{name: "invalid width", url: "/pareto?width=abc", body: `[]`},
		{name: "negative height", url: "/pareto?height=-5", body: `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				srv = testServer()
				req = httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body))
				rec = httptest.NewRecorder()
			)
			srv.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestParetoMethod(t *testing.T) {
	var (
		srv = testServer()
		req = httptest.NewRequest(http.MethodGet, "/pareto", nil)
		rec = httptest.NewRecorder()
	)
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
