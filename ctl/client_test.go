package ctl

import (
	"context"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprwire/hyprwire"
)

// fakeCompositor serves the command socket protocol from a temp directory:
// one request per connection, one response, then close.
type fakeCompositor struct {
	mu       sync.Mutex
	requests []string
	respond  func(cmd string) string
}

func newFakeCompositor(t *testing.T, respond func(cmd string) string) (*fakeCompositor, *hyprwire.Instance) {
	t.Helper()
	dir := t.TempDir()
	ln, err := net.Listen("unix", filepath.Join(dir, ".socket.sock"))
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	f := &fakeCompositor{respond: respond}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				buf := make([]byte, 4096)
				n, err := c.Read(buf)
				if err != nil {
					return
				}
				cmd := string(buf[:n])
				f.mu.Lock()
				f.requests = append(f.requests, cmd)
				f.mu.Unlock()
				_, _ = c.Write([]byte(f.respond(cmd)))
			}(conn)
		}
	}()
	return f, hyprwire.FromDir(dir)
}

func (f *fakeCompositor) lastRequest() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return ""
	}
	return f.requests[len(f.requests)-1]
}

func TestMonitorsQuery(t *testing.T) {
	_, inst := newFakeCompositor(t, func(cmd string) string {
		if cmd != "j/monitors" {
			return "unknown request"
		}
		return `[{"id":0,"name":"DP-1","width":2560,"height":1440,"refreshRate":144.0,
			"focused":true,"activeWorkspace":{"id":3,"name":"3"}}]`
	})

	monitors, err := New(inst).Monitors(context.Background())
	require.NoError(t, err)
	require.Len(t, monitors, 1)
	assert.Equal(t, "DP-1", monitors[0].Name)
	assert.Equal(t, 2560, monitors[0].Width)
	assert.True(t, monitors[0].Focused)
	assert.Equal(t, "3", monitors[0].ActiveWorkspace.Name)
}

func TestActiveWindowQueryNoFocus(t *testing.T) {
	_, inst := newFakeCompositor(t, func(string) string { return `{}` })

	w, err := New(inst).ActiveWindow(context.Background())
	require.NoError(t, err)
	assert.Nil(t, w, "empty object means no focused window")
}

func TestDispatch(t *testing.T) {
	f, inst := newFakeCompositor(t, func(string) string { return "ok" })

	client := New(inst)
	require.NoError(t, client.Dispatch(context.Background(), "workspace", "3"))
	assert.Equal(t, "dispatch workspace 3", f.lastRequest())

	assert.Error(t, client.Dispatch(context.Background()), "dispatcher name is required")
}

func TestDispatchRejectedByCompositor(t *testing.T) {
	_, inst := newFakeCompositor(t, func(string) string { return "Invalid dispatcher" })

	err := New(inst).Dispatch(context.Background(), "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid dispatcher")
}

func TestKeywordAndGetOption(t *testing.T) {
	f, inst := newFakeCompositor(t, func(cmd string) string {
		if cmd == "keyword general:gaps_in 5" {
			return "ok"
		}
		return `{"option":"general:gaps_in","int":5,"float":0,"str":"","set":true}`
	})

	client := New(inst)
	require.NoError(t, client.Keyword(context.Background(), "general:gaps_in", "5"))
	assert.Equal(t, "keyword general:gaps_in 5", f.lastRequest())

	opt, err := client.GetOption(context.Background(), "general:gaps_in")
	require.NoError(t, err)
	assert.Equal(t, "j/getoption general:gaps_in", f.lastRequest())
	assert.Equal(t, int64(5), opt.Int)
	assert.True(t, opt.Set)
}

func TestRequestTimeout(t *testing.T) {
	dir := t.TempDir()
	ln, err := net.Listen("unix", filepath.Join(dir, ".socket.sock"))
	require.NoError(t, err)
	defer ln.Close()
	// Accept but never respond.
	go func() {
		for {
			if _, err := ln.Accept(); err != nil {
				return
			}
		}
	}()

	client := NewWithTimeout(hyprwire.FromDir(dir), 50*time.Millisecond)
	_, err = client.Version(context.Background())
	require.Error(t, err)
}
