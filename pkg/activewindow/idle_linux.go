// +build linux

package activewindow

import (
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// systemIdle shells out to xprintidle, which reports milliseconds since the
// last X11 input event
func systemIdle() (time.Duration, error) {
	out, err := exec.Command("xprintidle").Output()
	if err != nil {
		return 0, err
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
