package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/project/ticket-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeLoggedRequest creates a request whose context logger writes to buf,
// the way withTraceID attaches it.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/events?page=2",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/events?page=2"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "DELETE 404",
			method:        http.MethodDelete,
			path:          "/api/tickets/x",
			handlerStatus: http.StatusNotFound,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":404`,
				`"size":0`,
			},
		},
		{
			name:            "implicit 200 on write",
			method:          http.MethodGet,
			path:            "/x",
			handlerResponse: "body",
			checkLogContains: []string{
				`"status":200`,
				`"size":4`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(tt.method, tt.path, &buf))

			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
