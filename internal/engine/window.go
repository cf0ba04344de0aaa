package engine

// WindowKind enumerates the time windows the availability evaluator
// understands. Unrecognized time requests map to WindowUnsupported, a
// defined outcome rather than an error, so new phrasings degrade gracefully.
type WindowKind int

const (
	WindowNow WindowKind = iota
	WindowTomorrowAfternoon
	WindowUnsupported
)

// Window is the parsed form of a free-text time request. Raw keeps the
// original expression for reporting.
type Window struct {
	Kind WindowKind
	Raw  string
}

// ParseWindow maps a time-request string onto the closed set of supported
// windows.
func ParseWindow(timeRequest string) Window {
	switch timeRequest {
	case "now":
		return Window{Kind: WindowNow, Raw: timeRequest}
	case "tomorrow afternoon":
		return Window{Kind: WindowTomorrowAfternoon, Raw: timeRequest}
	default:
		return Window{Kind: WindowUnsupported, Raw: timeRequest}
	}
}
