package main

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestShutdownStopsServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) { ctx.SetStatusCode(fasthttp.StatusOK) },
	}
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Serve(ln) }()

	url := "http://" + ln.Addr().String() + "/"
	status, _, err := fasthttp.GetTimeout(nil, url, 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, fasthttp.StatusOK, status)

	require.NoError(t, shutdown(server, 5*time.Second))

	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
