package event

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(s string) *Address {
	a := Address(s)
	return &a
}

func TestParseSingleEvents(t *testing.T) {
	ResetUnknownDiagnostics()

	tests := []struct {
		name string
		line string
		want Event
	}{
		{
			name: "workspace changed",
			line: "workspace>>3",
			want: WorkspaceChanged{Workspace: Workspace{Name: "3"}},
		},
		{
			name: "workspace changed special anonymous",
			line: "workspace>>special",
			want: WorkspaceChanged{Workspace: Workspace{Special: true}},
		},
		{
			name: "workspace changed special named",
			line: "workspace>>special:scratch",
			want: WorkspaceChanged{Workspace: Workspace{Special: true, Name: "scratch"}},
		},
		{
			name: "workspace added",
			line: "createworkspace>>2",
			want: WorkspaceAdded{Workspace: Workspace{Name: "2"}},
		},
		{
			name: "workspace deleted",
			line: "destroyworkspace>>special:term",
			want: WorkspaceDeleted{Workspace: Workspace{Special: true, Name: "term"}},
		},
		{
			name: "workspace moved",
			line: "moveworkspace>>2,monitor-1",
			want: WorkspaceMoved{Workspace: Workspace{Name: "2"}, Monitor: "monitor-1"},
		},
		{
			name: "workspace renamed",
			line: "renameworkspace>>4,mail",
			want: WorkspaceRenamed{ID: 4, Name: "mail"},
		},
		{
			name: "workspace renamed to name with comma",
			line: "renameworkspace>>4,mail, chat",
			want: WorkspaceRenamed{ID: 4, Name: "mail, chat"},
		},
		{
			name: "active monitor changed",
			line: "focusedmon>>DP-1,special:scratch",
			want: ActiveMonitorChanged{Monitor: "DP-1", Workspace: Workspace{Special: true, Name: "scratch"}},
		},
		{
			name: "monitor added",
			line: "monitoradded>>HDMI-A-1",
			want: MonitorAdded{Monitor: "HDMI-A-1"},
		},
		{
			name: "monitor removed",
			line: "monitorremoved>>HDMI-A-1",
			want: MonitorRemoved{Monitor: "HDMI-A-1"},
		},
		{
			name: "window opened with comma in title",
			line: "openwindow>>55e72f9a10d0,1,firefox,Issues, bugs and more",
			want: WindowOpened{
				Address:   "55e72f9a10d0",
				Workspace: Workspace{Name: "1"},
				Class:     "firefox",
				Title:     "Issues, bugs and more",
			},
		},
		{
			name: "window closed",
			line: "closewindow>>55e72f9a10d0",
			want: WindowClosed{Address: "55e72f9a10d0"},
		},
		{
			name: "window moved",
			line: "movewindow>>55e72f9a10d0,special",
			want: WindowMoved{Address: "55e72f9a10d0", Workspace: Workspace{Special: true}},
		},
		{
			name: "window title changed",
			line: "windowtitle>>55e72f9a10d0",
			want: WindowTitleChanged{Address: "55e72f9a10d0"},
		},
		{
			name: "layout changed splits on last comma",
			line: "activelayout>>Telink Wireless Receiver Mouse, Keyboard,English (US)",
			want: LayoutChanged{Keyboard: "Telink Wireless Receiver Mouse, Keyboard", Layout: "English (US)"},
		},
		{
			name: "submap entered",
			line: "submap>>resize",
			want: SubmapChanged{Submap: "resize"},
		},
		{
			name: "submap reset",
			line: "submap>>",
			want: SubmapChanged{},
		},
		{
			name: "layer opened",
			line: "openlayer>>waybar",
			want: LayerOpened{Namespace: "waybar"},
		},
		{
			name: "layer closed",
			line: "closelayer>>waybar",
			want: LayerClosed{Namespace: "waybar"},
		},
		{
			name: "urgent window",
			line: "urgent>>55e72f9a10d0",
			want: UrgentWindow{Address: "55e72f9a10d0"},
		},
		{
			name: "screencast started for a window",
			line: "screencast>>1,1",
			want: ScreencastChanged{Active: true, Owner: ScreencastOwnerWindow},
		},
		{
			name: "screencast stopped for a monitor",
			line: "screencast>>0,0",
			want: ScreencastChanged{Active: false, Owner: ScreencastOwnerMonitor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Parse(tt.line)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0])
		})
	}
}

// The two wire boolean encodings are event-specific: fullscreen and the
// float toggle treat "0" as the active sense, minimize treats "1" as
// minimized. Each polarity is pinned independently; the float one is a
// documented-but-unverified wire contract kept exactly as observed.
func TestBooleanPolarities(t *testing.T) {
	tests := []struct {
		line string
		want Event
	}{
		{"fullscreen>>0", FullscreenChanged{Fullscreen: true}},
		{"fullscreen>>1", FullscreenChanged{Fullscreen: false}},
		{"changefloatingmode>>55e72f9a10d0,0", FloatChanged{Address: "55e72f9a10d0", Floating: true}},
		{"changefloatingmode>>55e72f9a10d0,1", FloatChanged{Address: "55e72f9a10d0", Floating: false}},
		{"minimize>>55e72f9a10d0,1", WindowMinimized{Address: "55e72f9a10d0", Minimized: true}},
		{"minimize>>55e72f9a10d0,0", WindowMinimized{Address: "55e72f9a10d0", Minimized: false}},
	}
	for _, tt := range tests {
		events, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		require.Len(t, events, 1, tt.line)
		assert.Equal(t, tt.want, events[0], tt.line)
	}
}

func TestParseActiveWindowSubEvents(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Event
	}{
		{
			name: "legacy form with value",
			line: "activewindow>>kitty,~/src, vim",
			want: ActiveWindowV1{Window: &WindowTitle{Class: "kitty", Title: "~/src, vim"}},
		},
		{
			name: "legacy form empty pair means no focus",
			line: "activewindow>>,",
			want: ActiveWindowV1{},
		},
		{
			name: "v2 form with address",
			line: "activewindowv2>>55e72f9a10d0",
			want: ActiveWindowV2{Address: addr("55e72f9a10d0")},
		},
		{
			name: "v2 form lone comma means no focus",
			line: "activewindowv2>>,",
			want: ActiveWindowV2{},
		},
		{
			name: "v2 form empty payload means no focus",
			line: "activewindowv2>>",
			want: ActiveWindowV2{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Parse(tt.line)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0])
		})
	}
}

func TestParseBatchOrderAndIdempotence(t *testing.T) {
	ResetUnknownDiagnostics()

	batch := "workspace>>1\ncreateworkspace>>2\nmoveworkspace>>2,monitor-1\n"

	first, err := Parse(batch)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, WorkspaceChanged{Workspace: Workspace{Name: "1"}}, first[0])
	assert.Equal(t, WorkspaceAdded{Workspace: Workspace{Name: "2"}}, first[1])
	assert.Equal(t, WorkspaceMoved{Workspace: Workspace{Name: "2"}, Monitor: "monitor-1"}, first[2])

	second, err := Parse(batch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseSkipsUnknownEvents(t *testing.T) {
	ResetUnknownDiagnostics()

	// workspacev2 is a recognized wire shape but not a modeled event; the
	// batch keeps going and the surrounding events still decode.
	events, err := Parse("workspace>>1\nworkspacev2>>1,one\nsubmap>>resize")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, KindWorkspaceChanged, events[0].Kind())
	assert.Equal(t, KindSubmapChanged, events[1].Kind())
}

func TestParseMalformedLineFailsBatch(t *testing.T) {
	ResetUnknownDiagnostics()

	events, err := Parse("workspace>>1\nnot a protocol line\nworkspace>>2")
	require.Error(t, err)
	assert.Nil(t, events)

	var malformed *MalformedLineError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "not a protocol line", malformed.Line)
}

func TestParseFieldDecodeFailure(t *testing.T) {
	tests := []struct {
		line  string
		field string
		value string
	}{
		{"renameworkspace>>twelve,mail", "id", "twelve"},
		{"fullscreen>>2", "state", "2"},
		{"changefloatingmode>>55e72f9a10d0,yes", "floating", "yes"},
		{"minimize>>55e72f9a10d0,maybe", "state", "maybe"},
		{"screencast>>2,0", "state", "2"},
		{"screencast>>1,5", "owner", "5"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.line)
		require.Error(t, err, tt.line)

		var fieldErr *FieldDecodeError
		require.ErrorAs(t, err, &fieldErr, tt.line)
		assert.Equal(t, tt.field, fieldErr.Field, tt.line)
		assert.Equal(t, tt.value, fieldErr.Value, tt.line)
	}
}

func TestClassifierRejectsAmbiguousGrammar(t *testing.T) {
	// The shipped grammar is mutually exclusive by construction, so an
	// ambiguous match can only come from a grammar bug. Exercise the policy
	// with a deliberately overlapping table.
	broken := []pattern{
		{KindWorkspaceChanged, regexp.MustCompile(`^workspace>>(?P<workspace>.*)$`)},
		{KindSubmapChanged, regexp.MustCompile(`^works(?P<submap>.*)$`)},
		{KindUnknown, regexp.MustCompile(`^(?P<name>[^>]*)>>`)},
	}

	_, err := classifyWith(broken, "workspace>>1")
	require.Error(t, err)

	var ambiguous *AmbiguousMatchError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Kinds, 2)
}

func TestUnknownDiagnosticDeduplicates(t *testing.T) {
	ResetUnknownDiagnostics()

	_, err := Parse("bogusevent>>1\nbogusevent>>2")
	require.NoError(t, err)

	unknownEvents.mu.Lock()
	_, seen := unknownEvents.seen["bogusevent"]
	count := len(unknownEvents.seen)
	unknownEvents.mu.Unlock()

	assert.True(t, seen)
	assert.Equal(t, 1, count)
}

func TestParseWorkspaceTokenRule(t *testing.T) {
	assert.Equal(t, Workspace{Name: "5"}, ParseWorkspace("5"))
	assert.Equal(t, Workspace{Special: true}, ParseWorkspace("special"))
	assert.Equal(t, Workspace{Special: true, Name: "mail"}, ParseWorkspace("special:mail"))
	// "special" is only special as a whole token or prefix with colon.
	assert.Equal(t, Workspace{Name: "specialist"}, ParseWorkspace("specialist"))
}

func TestParseEmptyBatch(t *testing.T) {
	events, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, events)

	events, err = Parse("\n\n")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUnknownSentinelIsNotExposed(t *testing.T) {
	// parseLine reports unknown events via the internal sentinel; Parse must
	// translate that into a skip, never an error.
	ResetUnknownDiagnostics()
	_, err := parseLine("someneweventkind>>data")
	require.True(t, errors.Is(err, errUnknownEvent))
}
