// Package hyprwire locates a running Hyprland session and hands out
// connections to its two IPC sockets: the request/response command socket
// and the continuous event socket. Protocol handling lives in the event and
// ctl subpackages.
package hyprwire

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/hyprwire/hyprwire/event"
)

const (
	// EnvInstanceSignature carries the session signature of the compositor
	// that spawned the current environment.
	EnvInstanceSignature = "HYPRLAND_INSTANCE_SIGNATURE"

	commandSocketName = ".socket.sock"
	eventSocketName   = ".socket2.sock"
)

// ErrNoSignature is returned when the environment names no compositor
// session.
var ErrNoSignature = errors.New(EnvInstanceSignature + " is not set; is the compositor running?")

// Instance identifies one running compositor session. It is immutable after
// construction: the socket paths are derived once and never re-resolved.
type Instance struct {
	signature string
	dir       string
}

// Current resolves the session the current environment belongs to.
func Current() (*Instance, error) {
	sig := os.Getenv(EnvInstanceSignature)
	if sig == "" {
		return nil, ErrNoSignature
	}
	return FromSignature(sig)
}

// FromSignature resolves a session by signature, checking the runtime
// directory locations the compositor has used over time:
// $XDG_RUNTIME_DIR/hypr/<sig> and, for older versions, /tmp/hypr/<sig>.
func FromSignature(sig string) (*Instance, error) {
	var candidates []string
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		candidates = append(candidates, filepath.Join(runtimeDir, "hypr", sig))
	}
	candidates = append(candidates, filepath.Join("/tmp", "hypr", sig))

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return &Instance{signature: sig, dir: dir}, nil
		}
	}
	return nil, fmt.Errorf("no socket directory for instance %q (checked %v)", sig, candidates)
}

// FromDir builds an Instance around an explicit socket directory, bypassing
// environment discovery.
func FromDir(dir string) *Instance {
	return &Instance{signature: filepath.Base(dir), dir: dir}
}

// Signature returns the session signature.
func (i *Instance) Signature() string { return i.signature }

// CommandSocketPath returns the path of the request/response socket.
func (i *Instance) CommandSocketPath() string {
	return filepath.Join(i.dir, commandSocketName)
}

// EventSocketPath returns the path of the event-stream socket.
func (i *Instance) EventSocketPath() string {
	return filepath.Join(i.dir, eventSocketName)
}

// DialEvents connects to the event socket.
func (i *Instance) DialEvents(ctx context.Context) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", i.EventSocketPath())
	if err != nil {
		return nil, fmt.Errorf("connect event socket %s: %w", i.EventSocketPath(), err)
	}
	return conn, nil
}

// Events connects to the event socket and wraps it in a stream driver.
// Closing the returned conn (or canceling the driver's context) ends the
// stream.
func (i *Instance) Events(ctx context.Context, opts ...event.Option) (*event.Client, net.Conn, error) {
	conn, err := i.DialEvents(ctx)
	if err != nil {
		return nil, nil, err
	}
	return event.NewClient(conn, opts...), conn, nil
}
