package event

import "regexp"

// pattern binds one event kind to the regexp that recognizes its wire line.
// Payload captures are deliberately loose ("rest of line" style): the
// decoder, not the grammar, rejects malformed field values.
type pattern struct {
	kind EventKind
	re   *regexp.Regexp
}

// grammar lists every recognized wire line, most fields captured by name.
// Fields that may themselves contain commas (titles, workspace names,
// keyboard names) sit last in their line or are split on the last comma.
// The final entry is the catch-all: it matches any line that carries the
// ">>" separator and exists only so the classifier can tell "unknown event"
// apart from "not a protocol line at all".
var grammar = []pattern{
	{KindWorkspaceChanged, regexp.MustCompile(`^workspace>>(?P<workspace>.*)$`)},
	{KindWorkspaceAdded, regexp.MustCompile(`^createworkspace>>(?P<workspace>.*)$`)},
	{KindWorkspaceDeleted, regexp.MustCompile(`^destroyworkspace>>(?P<workspace>.*)$`)},
	{KindWorkspaceMoved, regexp.MustCompile(`^moveworkspace>>(?P<workspace>.*),(?P<monitor>.*)$`)},
	{KindWorkspaceRenamed, regexp.MustCompile(`^renameworkspace>>(?P<id>.*?),(?P<name>.*)$`)},
	{KindActiveMonitorChanged, regexp.MustCompile(`^focusedmon>>(?P<monitor>.*?),(?P<workspace>.*)$`)},
	{KindActiveWindowV1, regexp.MustCompile(`^activewindow>>(?P<class>.*?),(?P<title>.*)$`)},
	{KindActiveWindowV2, regexp.MustCompile(`^activewindowv2>>(?P<address>.*)$`)},
	{KindFullscreenChanged, regexp.MustCompile(`^fullscreen>>(?P<state>.*)$`)},
	{KindMonitorRemoved, regexp.MustCompile(`^monitorremoved>>(?P<monitor>.*)$`)},
	{KindMonitorAdded, regexp.MustCompile(`^monitoradded>>(?P<monitor>.*)$`)},
	{KindWindowOpened, regexp.MustCompile(`^openwindow>>(?P<address>.*?),(?P<workspace>.*?),(?P<class>.*?),(?P<title>.*)$`)},
	{KindWindowClosed, regexp.MustCompile(`^closewindow>>(?P<address>.*)$`)},
	{KindWindowMoved, regexp.MustCompile(`^movewindow>>(?P<address>.*?),(?P<workspace>.*)$`)},
	{KindWindowTitleChanged, regexp.MustCompile(`^windowtitle>>(?P<address>.*)$`)},
	{KindLayoutChanged, regexp.MustCompile(`^activelayout>>(?P<keyboard>.*),(?P<layout>.*)$`)},
	{KindSubmapChanged, regexp.MustCompile(`^submap>>(?P<submap>.*)$`)},
	{KindLayerOpened, regexp.MustCompile(`^openlayer>>(?P<namespace>.*)$`)},
	{KindLayerClosed, regexp.MustCompile(`^closelayer>>(?P<namespace>.*)$`)},
	{KindFloatChanged, regexp.MustCompile(`^changefloatingmode>>(?P<address>.*?),(?P<floating>.*)$`)},
	{KindUrgentWindow, regexp.MustCompile(`^urgent>>(?P<address>.*)$`)},
	{KindWindowMinimized, regexp.MustCompile(`^minimize>>(?P<address>.*?),(?P<state>.*)$`)},
	{KindScreencastChanged, regexp.MustCompile(`^screencast>>(?P<state>.*?),(?P<owner>.*)$`)},

	{KindUnknown, regexp.MustCompile(`^(?P<name>[^>]*)>>`)},
}

// captures runs the pattern against line and returns the named groups.
func (p pattern) captures(line string) (map[string]string, bool) {
	sub := p.re.FindStringSubmatch(line)
	if sub == nil {
		return nil, false
	}
	caps := make(map[string]string)
	for i, name := range p.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		caps[name] = sub[i]
	}
	return caps, true
}
