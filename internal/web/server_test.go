package web

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticFS_ContainsAssets(t *testing.T) {
	for _, name := range []string{"garden.css", "garden.js"} {
		_, err := fs.Stat(StaticFS(), name)
		assert.NoError(t, err, name)
	}
}

func TestStaticHandler_ServesCSS(t *testing.T) {
	srv := httptest.NewServer(http.StripPrefix("/static/", StaticHandler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/static/garden.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), ".cell--featured")
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewServer("127.0.0.1:0", http.NotFoundHandler(), time.Second, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
