package http

import (
	"context"
	"io"
	nethttp "net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestServer_RunAndShutdown(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(nethttp.StatusOK, "pong") })

	srv := NewServer(e, "127.0.0.1:0", 2*time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for e.ListenerAddr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server did not start")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := nethttp.Get("http://" + e.ListenerAddr().String() + "/ping")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("unexpected body %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ReturnsListenError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := NewServer(e, "invalid-address", time.Second, zerolog.Nop())
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
