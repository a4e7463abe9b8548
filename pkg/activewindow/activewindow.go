// Package activewindow inspects which application window is frontmost.
// Inspection is best effort: any failure degrades to ("Unknown", "Unknown"),
// which callers treat as a valid sample.
package activewindow

// Unknown is reported when window inspection is unavailable
const Unknown = "Unknown"

// Prober reports the frontmost window
type Prober struct {
	probe func() (string, string, error)
}

// New returns a prober for the current platform
func New() *Prober {
	return &Prober{probe: probe}
}

// ActiveWindow returns the frontmost application name and window title
func (p *Prober) ActiveWindow() (string, string) {
	app, title, err := p.probe()
	if err != nil || app == "" {
		return Unknown, Unknown
	}
	if title == "" {
		title = Unknown
	}
	return app, title
}
