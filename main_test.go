package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
)

func TestServeBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	saved := *settings.Current
	t.Cleanup(func() { *settings.Current = saved })
	settings.Current.HTTPListen = ln.Addr().String()

	done := make(chan error, 1)
	go func() { done <- serve(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve should fail fast when the listen address is taken")
	}
}
