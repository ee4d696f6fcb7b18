package source_test

import (
	"io"
	"net/http"
	"strings"
	"time"

	"metalprices-service/internal/infrastructure/httpx"
)

type rtFunc func(*http.Request) *http.Response

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r), nil }

func stubClient(body string, code int) *httpx.Client {
	return stubClientFunc(func(*http.Request) (string, int) { return body, code })
}

// stubClientFunc lets a test inspect the outgoing request.
func stubClientFunc(respond func(*http.Request) (string, int)) *httpx.Client {
	return &httpx.Client{
		HTTP: &http.Client{
			Timeout: 2 * time.Second,
			Transport: rtFunc(func(r *http.Request) *http.Response {
				body, code := respond(r)
				return &http.Response{
					StatusCode: code,
					Body:       io.NopCloser(strings.NewReader(body)),
					Header:     make(http.Header),
					Request:    r,
				}
			}),
		},
	}
}
