// +build darwin

package activewindow

import (
	"os/exec"
	"strings"
)

const frontmostScript = `tell application "System Events"
	set frontApp to first application process whose frontmost is true
	set appName to name of frontApp
	set windowTitle to ""
	try
		set windowTitle to name of front window of frontApp
	end try
	return appName & "\n" & windowTitle
end tell`

func probe() (string, string, error) {
	out, err := exec.Command("osascript", "-e", frontmostScript).Output()
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(strings.TrimRight(string(out), "\n"), "\n", 2)
	app := strings.TrimSpace(parts[0])
	title := ""
	if len(parts) > 1 {
		title = strings.TrimSpace(parts[1])
	}
	return app, title, nil
}
