package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

type fakeService struct {
	*httptest.Server
	hits atomic.Int32
}

func newFakeService(t *testing.T, status int, body string) *fakeService {
	t.Helper()

	fs := &fakeService{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)

		_, _ = io.Copy(io.Discard, r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(fs.Close)

	return fs
}

func (fs *fakeService) endpoint() string {
	return fs.URL + "/run"
}

// executeRoot runs the root command and returns what it printed.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func overrideExit(t *testing.T) *int {
	t.Helper()

	code := -1
	orig := exitFn
	exitFn = func(c int) { code = c }
	t.Cleanup(func() { exitFn = orig })

	return &code
}
