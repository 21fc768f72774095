// Package event implements the Hyprland event-socket protocol: the wire
// grammar, line classification, typed decoding, merging of the split
// active-window notifications, and a stream driver with push and pull
// consumption styles.
package event

import "strings"

// EventKind tags one decoded event variant. For events decoded straight off
// the wire the tag equals the wire event name.
type EventKind string

const (
	KindWorkspaceChanged     EventKind = "workspace"
	KindWorkspaceAdded       EventKind = "createworkspace"
	KindWorkspaceDeleted     EventKind = "destroyworkspace"
	KindWorkspaceMoved       EventKind = "moveworkspace"
	KindWorkspaceRenamed     EventKind = "renameworkspace"
	KindActiveMonitorChanged EventKind = "focusedmon"
	KindActiveWindowV1       EventKind = "activewindow"
	KindActiveWindowV2       EventKind = "activewindowv2"
	KindFullscreenChanged    EventKind = "fullscreen"
	KindMonitorRemoved       EventKind = "monitorremoved"
	KindMonitorAdded         EventKind = "monitoradded"
	KindWindowOpened         EventKind = "openwindow"
	KindWindowClosed         EventKind = "closewindow"
	KindWindowMoved          EventKind = "movewindow"
	KindWindowTitleChanged   EventKind = "windowtitle"
	KindLayoutChanged        EventKind = "activelayout"
	KindSubmapChanged        EventKind = "submap"
	KindLayerOpened          EventKind = "openlayer"
	KindLayerClosed          EventKind = "closelayer"
	KindFloatChanged         EventKind = "changefloatingmode"
	KindUrgentWindow         EventKind = "urgent"
	KindWindowMinimized      EventKind = "minimize"
	KindScreencastChanged    EventKind = "screencast"

	// KindActiveWindowChanged tags the merged focus event synthesized from
	// the activewindow and activewindowv2 sub-events. It never appears on
	// the wire.
	KindActiveWindowChanged EventKind = "activewindow/merged"

	// KindUnknown tags the catch-all grammar entry. No Event carries it;
	// unrecognized-but-well-formed lines are skipped after a one-time
	// diagnostic.
	KindUnknown EventKind = "unknown"
)

// Event is one decoded compositor notification.
type Event interface {
	Kind() EventKind
}

// Address is the compositor's opaque handle for a window surface,
// conventionally a hex pointer-like token. It is compared byte-for-byte and
// never interpreted.
type Address string

func (a Address) String() string { return string(a) }

// Workspace identifies a workspace as it appears in a wire payload: either a
// regular named/numbered workspace, or a special workspace that may carry a
// name of its own.
type Workspace struct {
	Special bool
	Name    string // empty for the anonymous special workspace
}

// ParseWorkspace applies the single decoding rule for workspace tokens:
// the literal "special" is the anonymous special workspace,
// "special:<name>" a named one, and anything else a regular workspace
// carrying the token verbatim.
func ParseWorkspace(token string) Workspace {
	if token == "special" {
		return Workspace{Special: true}
	}
	if name, ok := strings.CutPrefix(token, "special:"); ok {
		return Workspace{Special: true, Name: name}
	}
	return Workspace{Name: token}
}

func (w Workspace) String() string {
	if !w.Special {
		return w.Name
	}
	if w.Name == "" {
		return "special"
	}
	return "special:" + w.Name
}

// WindowTitle is the class/title pair carried by the legacy focus event.
type WindowTitle struct {
	Class string
	Title string
}

// ActiveWindow describes the focused window once both focus sub-events have
// been merged.
type ActiveWindow struct {
	Class   string
	Title   string
	Address Address
}

// WorkspaceChanged reports focus moving to another workspace.
type WorkspaceChanged struct {
	Workspace Workspace
}

// WorkspaceAdded reports a newly created workspace.
type WorkspaceAdded struct {
	Workspace Workspace
}

// WorkspaceDeleted reports a destroyed workspace.
type WorkspaceDeleted struct {
	Workspace Workspace
}

// WorkspaceMoved reports a workspace being moved to another monitor.
type WorkspaceMoved struct {
	Workspace Workspace
	Monitor   string
}

// WorkspaceRenamed reports a workspace rename by numeric id.
type WorkspaceRenamed struct {
	ID   int32
	Name string
}

// ActiveMonitorChanged reports monitor focus along with the workspace that
// became visible on it.
type ActiveMonitorChanged struct {
	Monitor   string
	Workspace Workspace
}

// ActiveWindowV1 is the legacy focus sub-event carrying class and title.
// Window is nil when focus moved off every window.
type ActiveWindowV1 struct {
	Window *WindowTitle
}

// ActiveWindowV2 is the newer focus sub-event carrying only the address.
// Address is nil when focus moved off every window.
type ActiveWindowV2 struct {
	Address *Address
}

// ActiveWindowChanged is the merged focus event consumers receive from the
// stream driver. Window is nil when both sub-events reported no focus.
type ActiveWindowChanged struct {
	Window *ActiveWindow
}

// FullscreenChanged reports the focused window entering or leaving
// fullscreen.
type FullscreenChanged struct {
	Fullscreen bool
}

// MonitorAdded reports a connected monitor.
type MonitorAdded struct {
	Monitor string
}

// MonitorRemoved reports a disconnected monitor.
type MonitorRemoved struct {
	Monitor string
}

// WindowOpened reports a newly mapped window.
type WindowOpened struct {
	Address   Address
	Workspace Workspace
	Class     string
	Title     string
}

// WindowClosed reports an unmapped window.
type WindowClosed struct {
	Address Address
}

// WindowMoved reports a window moving to another workspace.
type WindowMoved struct {
	Address   Address
	Workspace Workspace
}

// WindowTitleChanged reports a title change on the window at Address.
type WindowTitleChanged struct {
	Address Address
}

// LayoutChanged reports a keyboard layout switch.
type LayoutChanged struct {
	Keyboard string
	Layout   string
}

// SubmapChanged reports entering a keybind submap; Submap is empty when the
// compositor returns to the default map.
type SubmapChanged struct {
	Submap string
}

// LayerOpened reports a mapped layer-shell surface.
type LayerOpened struct {
	Namespace string
}

// LayerClosed reports an unmapped layer-shell surface.
type LayerClosed struct {
	Namespace string
}

// FloatChanged reports a window toggling between tiled and floating.
type FloatChanged struct {
	Address  Address
	Floating bool
}

// UrgentWindow reports a window requesting attention.
type UrgentWindow struct {
	Address Address
}

// WindowMinimized reports a minimize state change.
type WindowMinimized struct {
	Address   Address
	Minimized bool
}

// ScreencastOwner says what kind of surface a screencast captures.
type ScreencastOwner uint8

const (
	ScreencastOwnerMonitor ScreencastOwner = 0
	ScreencastOwnerWindow  ScreencastOwner = 1
)

// ScreencastChanged reports a screen-sharing session starting or stopping.
type ScreencastChanged struct {
	Active bool
	Owner  ScreencastOwner
}

func (WorkspaceChanged) Kind() EventKind     { return KindWorkspaceChanged }
func (WorkspaceAdded) Kind() EventKind       { return KindWorkspaceAdded }
func (WorkspaceDeleted) Kind() EventKind     { return KindWorkspaceDeleted }
func (WorkspaceMoved) Kind() EventKind       { return KindWorkspaceMoved }
func (WorkspaceRenamed) Kind() EventKind     { return KindWorkspaceRenamed }
func (ActiveMonitorChanged) Kind() EventKind { return KindActiveMonitorChanged }
func (ActiveWindowV1) Kind() EventKind       { return KindActiveWindowV1 }
func (ActiveWindowV2) Kind() EventKind       { return KindActiveWindowV2 }
func (ActiveWindowChanged) Kind() EventKind  { return KindActiveWindowChanged }
func (FullscreenChanged) Kind() EventKind    { return KindFullscreenChanged }
func (MonitorAdded) Kind() EventKind         { return KindMonitorAdded }
func (MonitorRemoved) Kind() EventKind       { return KindMonitorRemoved }
func (WindowOpened) Kind() EventKind         { return KindWindowOpened }
func (WindowClosed) Kind() EventKind         { return KindWindowClosed }
func (WindowMoved) Kind() EventKind          { return KindWindowMoved }
func (WindowTitleChanged) Kind() EventKind   { return KindWindowTitleChanged }
func (LayoutChanged) Kind() EventKind        { return KindLayoutChanged }
func (SubmapChanged) Kind() EventKind        { return KindSubmapChanged }
func (LayerOpened) Kind() EventKind          { return KindLayerOpened }
func (LayerClosed) Kind() EventKind          { return KindLayerClosed }
func (FloatChanged) Kind() EventKind         { return KindFloatChanged }
func (UrgentWindow) Kind() EventKind         { return KindUrgentWindow }
func (WindowMinimized) Kind() EventKind      { return KindWindowMinimized }
func (ScreencastChanged) Kind() EventKind    { return KindScreencastChanged }
