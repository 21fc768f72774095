package ui

import (
	"fmt"

	"github.com/hyprwire/hyprwire/event"
)

// FormatEvent renders one decoded event as a styled single line for the
// listen command and the watch viewer.
func FormatEvent(ev event.Event) string {
	return fmt.Sprintf("%s %s",
		KindStyle.Render(fmt.Sprintf("%-20s", string(ev.Kind()))),
		TextStyle.Render(DescribeEvent(ev)))
}

// DescribeEvent produces the unstyled human-readable payload summary.
func DescribeEvent(ev event.Event) string {
	switch ev := ev.(type) {
	case event.WorkspaceChanged:
		return ev.Workspace.String()
	case event.WorkspaceAdded:
		return ev.Workspace.String()
	case event.WorkspaceDeleted:
		return ev.Workspace.String()
	case event.WorkspaceMoved:
		return fmt.Sprintf("%s -> %s", ev.Workspace, ev.Monitor)
	case event.WorkspaceRenamed:
		return fmt.Sprintf("#%d -> %q", ev.ID, ev.Name)
	case event.ActiveMonitorChanged:
		return fmt.Sprintf("%s (workspace %s)", ev.Monitor, ev.Workspace)
	case event.ActiveWindowChanged:
		if ev.Window == nil {
			return "none"
		}
		return fmt.Sprintf("%s %q [%s]", ev.Window.Class, ev.Window.Title, ev.Window.Address)
	case event.FullscreenChanged:
		if ev.Fullscreen {
			return "entered fullscreen"
		}
		return "left fullscreen"
	case event.MonitorAdded:
		return ev.Monitor
	case event.MonitorRemoved:
		return ev.Monitor
	case event.WindowOpened:
		return fmt.Sprintf("%s %q on %s [%s]", ev.Class, ev.Title, ev.Workspace, ev.Address)
	case event.WindowClosed:
		return ev.Address.String()
	case event.WindowMoved:
		return fmt.Sprintf("%s -> %s", ev.Address, ev.Workspace)
	case event.WindowTitleChanged:
		return ev.Address.String()
	case event.LayoutChanged:
		return fmt.Sprintf("%s: %s", ev.Keyboard, ev.Layout)
	case event.SubmapChanged:
		if ev.Submap == "" {
			return "default"
		}
		return ev.Submap
	case event.LayerOpened:
		return ev.Namespace
	case event.LayerClosed:
		return ev.Namespace
	case event.FloatChanged:
		if ev.Floating {
			return ev.Address.String() + " floating"
		}
		return ev.Address.String() + " tiled"
	case event.UrgentWindow:
		return ev.Address.String()
	case event.WindowMinimized:
		if ev.Minimized {
			return ev.Address.String() + " minimized"
		}
		return ev.Address.String() + " restored"
	case event.ScreencastChanged:
		state := "stopped"
		if ev.Active {
			state = "started"
		}
		if ev.Owner == event.ScreencastOwnerWindow {
			return state + " (window)"
		}
		return state + " (monitor)"
	default:
		return fmt.Sprintf("%+v", ev)
	}
}
