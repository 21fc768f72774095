package ctl

// Structs for the compositor's JSON data queries. Field sets track the
// documented hyprctl output; unknown fields are ignored by encoding/json.

// Monitor is one entry of the monitors query.
type Monitor struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RefreshRate float64 `json:"refreshRate"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Scale       float64 `json:"scale"`
	Transform   int     `json:"transform"`
	Focused     bool    `json:"focused"`
	DpmsStatus  bool    `json:"dpmsStatus"`
	Disabled    bool    `json:"disabled"`

	ActiveWorkspace  WorkspaceRef `json:"activeWorkspace"`
	SpecialWorkspace WorkspaceRef `json:"specialWorkspace"`
}

// WorkspaceRef is the short id/name pair nested in other query results.
type WorkspaceRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Workspace is one entry of the workspaces query.
type Workspace struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Monitor         string `json:"monitor"`
	MonitorID       int    `json:"monitorID"`
	Windows         int    `json:"windows"`
	HasFullscreen   bool   `json:"hasfullscreen"`
	LastWindow      string `json:"lastwindow"`
	LastWindowTitle string `json:"lastwindowtitle"`
}

// Window is one entry of the clients query.
type Window struct {
	Address        string       `json:"address"`
	Mapped         bool         `json:"mapped"`
	Hidden         bool         `json:"hidden"`
	At             [2]int       `json:"at"`
	Size           [2]int       `json:"size"`
	Workspace      WorkspaceRef `json:"workspace"`
	Floating       bool         `json:"floating"`
	Monitor        int          `json:"monitor"`
	Class          string       `json:"class"`
	Title          string       `json:"title"`
	InitialClass   string       `json:"initialClass"`
	InitialTitle   string       `json:"initialTitle"`
	PID            int          `json:"pid"`
	Xwayland       bool         `json:"xwayland"`
	Pinned         bool         `json:"pinned"`
	Fullscreen     bool         `json:"fullscreen"`
	FullscreenMode int          `json:"fullscreenMode"`
	FocusHistoryID int          `json:"focusHistoryID"`
}

// Version is the version query result.
type Version struct {
	Branch        string   `json:"branch"`
	Commit        string   `json:"commit"`
	Dirty         bool     `json:"dirty"`
	CommitMessage string   `json:"commit_message"`
	CommitDate    string   `json:"commit_date"`
	Tag           string   `json:"tag"`
	Flags         []string `json:"flags"`
}

// Bind is one entry of the binds query.
type Bind struct {
	Locked       bool   `json:"locked"`
	Mouse        bool   `json:"mouse"`
	Release      bool   `json:"release"`
	Repeat       bool   `json:"repeat"`
	NonConsuming bool   `json:"non_consuming"`
	ModMask      int    `json:"modmask"`
	Submap       string `json:"submap"`
	Key          string `json:"key"`
	KeyCode      int    `json:"keycode"`
	Dispatcher   string `json:"dispatcher"`
	Arg          string `json:"arg"`
}

// CursorPos is the cursorpos query result.
type CursorPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Option is the getoption query result. Exactly one of Int, Float and Str
// is meaningful depending on the option's type; Set reports whether the
// value differs from the default.
type Option struct {
	Option string  `json:"option"`
	Int    int64   `json:"int"`
	Float  float64 `json:"float"`
	Str    string  `json:"str"`
	Set    bool    `json:"set"`
}
