// Package ctl is the request/response client for the compositor's command
// socket: JSON data queries, dispatchers, and keyword get/set. It is the
// collaborator the event layer sits next to but never depends on.
package ctl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/hyprwire/hyprwire"
	"github.com/hyprwire/hyprwire/internal/logger"
)

// DefaultTimeout bounds a single request round-trip unless overridden.
const DefaultTimeout = 5 * time.Second

// Client issues commands against one session's command socket. Each request
// dials a fresh connection; the socket is strictly one request, one
// response.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// New creates a command client for the given session.
func New(inst *hyprwire.Instance) *Client {
	return NewWithTimeout(inst, DefaultTimeout)
}

// NewWithTimeout creates a command client with a custom per-request timeout.
func NewWithTimeout(inst *hyprwire.Instance, timeout time.Duration) *Client {
	return &Client{
		socketPath: inst.CommandSocketPath(),
		timeout:    timeout,
	}
}

// request writes one command and reads the full response.
func (c *Client) request(ctx context.Context, cmd string) ([]byte, error) {
	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect command socket %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set command deadline: %w", err)
	}

	logger.Debugf("command socket request: %s", cmd)
	if _, err := conn.Write([]byte(cmd)); err != nil {
		return nil, fmt.Errorf("write command %q: %w", cmd, err)
	}
	resp, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("read response for %q: %w", cmd, err)
	}
	return resp, nil
}

// queryInto runs a JSON data query ("j/<cmd>") and unmarshals the response.
func (c *Client) queryInto(ctx context.Context, cmd string, v any) error {
	resp, err := c.request(ctx, "j/"+cmd)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp, v); err != nil {
		return fmt.Errorf("decode %s response: %w", cmd, err)
	}
	return nil
}

// expectOK runs a command whose only valid response is "ok".
func (c *Client) expectOK(ctx context.Context, cmd string) error {
	resp, err := c.request(ctx, cmd)
	if err != nil {
		return err
	}
	if reply := strings.TrimSpace(string(resp)); reply != "ok" {
		return fmt.Errorf("%q failed: compositor replied %q", cmd, reply)
	}
	return nil
}

// Monitors returns the connected monitors.
func (c *Client) Monitors(ctx context.Context) ([]Monitor, error) {
	var out []Monitor
	err := c.queryInto(ctx, "monitors", &out)
	return out, err
}

// Workspaces returns every existing workspace.
func (c *Client) Workspaces(ctx context.Context) ([]Workspace, error) {
	var out []Workspace
	err := c.queryInto(ctx, "workspaces", &out)
	return out, err
}

// ActiveWorkspace returns the workspace holding focus.
func (c *Client) ActiveWorkspace(ctx context.Context) (*Workspace, error) {
	var out Workspace
	if err := c.queryInto(ctx, "activeworkspace", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Clients returns every mapped window.
func (c *Client) Clients(ctx context.Context) ([]Window, error) {
	var out []Window
	err := c.queryInto(ctx, "clients", &out)
	return out, err
}

// ActiveWindow returns the focused window, or nil when nothing holds focus
// (the compositor answers an empty object).
func (c *Client) ActiveWindow(ctx context.Context) (*Window, error) {
	var out Window
	if err := c.queryInto(ctx, "activewindow", &out); err != nil {
		return nil, err
	}
	if out.Address == "" {
		return nil, nil
	}
	return &out, nil
}

// Binds returns the configured key binds.
func (c *Client) Binds(ctx context.Context) ([]Bind, error) {
	var out []Bind
	err := c.queryInto(ctx, "binds", &out)
	return out, err
}

// Version returns compositor build information.
func (c *Client) Version(ctx context.Context) (*Version, error) {
	var out Version
	if err := c.queryInto(ctx, "version", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CursorPos returns the global cursor position.
func (c *Client) CursorPos(ctx context.Context) (*CursorPos, error) {
	var out CursorPos
	if err := c.queryInto(ctx, "cursorpos", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dispatch forwards a dispatcher invocation, e.g.
// Dispatch(ctx, "workspace", "3").
func (c *Client) Dispatch(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("dispatch requires at least a dispatcher name")
	}
	return c.expectOK(ctx, "dispatch "+strings.Join(args, " "))
}

// Keyword sets a config option at runtime.
func (c *Client) Keyword(ctx context.Context, name, value string) error {
	return c.expectOK(ctx, fmt.Sprintf("keyword %s %s", name, value))
}

// GetOption reads a config option's current value.
func (c *Client) GetOption(ctx context.Context, name string) (*Option, error) {
	var out Option
	if err := c.queryInto(ctx, "getoption "+name, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reload re-reads the compositor configuration.
func (c *Client) Reload(ctx context.Context) error {
	return c.expectOK(ctx, "reload")
}

// SetCursor switches the cursor theme and size.
func (c *Client) SetCursor(ctx context.Context, theme string, size int) error {
	return c.expectOK(ctx, fmt.Sprintf("setcursor %s %d", theme, size))
}

// Kill puts the compositor in kill mode; the next clicked window is closed.
func (c *Client) Kill(ctx context.Context) error {
	return c.expectOK(ctx, "kill")
}
