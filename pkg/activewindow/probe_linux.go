// +build linux

package activewindow

import (
	"os/exec"
	"strings"
)

// probe shells out to xdotool, which works under X11 and XWayland. Anything
// else (pure Wayland without the tool) degrades to Unknown upstream.
func probe() (string, string, error) {
	title, err := exec.Command("xdotool", "getactivewindow", "getwindowname").Output()
	if err != nil {
		return "", "", err
	}

	app, err := exec.Command("xdotool", "getactivewindow", "getwindowclassname").Output()
	if err != nil {
		// Older xdotool builds lack getwindowclassname; the title alone is
		// still a usable sample.
		return strings.TrimSpace(string(title)), strings.TrimSpace(string(title)), nil
	}

	return strings.TrimSpace(string(app)), strings.TrimSpace(string(title)), nil
}
