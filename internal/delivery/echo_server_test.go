package delivery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoServer_ServeAndShutdown(t *testing.T) {
	e := NewEcho()
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	srv := &EchoServer{
		Name:   "test",
		Port:   0,
		Echo:   e,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + e.ListenerAddr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-served:
		assert.NoError(t, err, "closing the server is not a failure")
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}
