package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noContent = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRouteGuard(t *testing.T) {
	guard := RouteGuard([]string{"/login", "/register", "/healthz"}, "/login")(noContent)

	cases := []struct {
		name   string
		path   string
		setup  func(*http.Request)
		status int
	}{
		{"public path", "/login", nil, http.StatusNoContent},
		{"public subpath", "/register/confirm", nil, http.StatusNoContent},
		{"no token", "/subjects", nil, http.StatusSeeOther},
		{"cookie", "/subjects", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "authToken", Value: "anything"})
		}, http.StatusNoContent},
		{"bearer header", "/questions", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer expired.or.garbage")
		}, http.StatusNoContent},
		{"empty cookie", "/", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "authToken", Value: ""})
		}, http.StatusSeeOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.setup != nil {
				tc.setup(r)
			}
			w := httptest.NewRecorder()
			guard.ServeHTTP(w, r)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusSeeOther {
				assert.Equal(t, "/login", w.Header().Get("Location"))
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)

	h := RequestLogger(logrus.NewEntry(log))(noContent)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tree", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/tree", line["path"])
	assert.Equal(t, float64(http.StatusNoContent), line["status"])
	assert.Equal(t, "request served", line["msg"])
}
