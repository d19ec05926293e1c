package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"servicehub/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance until the fx application stops it.
type EchoServer struct {
	Name   string
	Port   int
	Echo   *echo.Echo
	Logger *slog.Logger
	// H2C enables cleartext HTTP/2 when set.
	H2C *http2.Server
}

// Serve blocks until the listener fails or Shutdown is called.
func (s *EchoServer) Serve(context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.Port))
	s.Logger.Info("server listening", slog.String("server", s.Name), slog.String("addr", addr))

	var err error
	if s.H2C != nil {
		err = s.Echo.StartH2CServer(addr, s.H2C)
	} else {
		err = s.Echo.Start(addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.Name)
	}

	return nil
}

// Shutdown drains in-flight requests within lifecycle.DefaultTimeout.
func (s *EchoServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.Logger.Info("server stopping", slog.String("server", s.Name))

	return errors.WithStack(s.Echo.Shutdown(ctx))
}

// NewEcho returns an echo instance without the startup banner.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return e
}
