// +build darwin

package activewindow

import (
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// systemIdle reads HIDIdleTime (nanoseconds since last input) from the IOKit
// registry
func systemIdle() (time.Duration, error) {
	out, err := exec.Command("ioreg", "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, err
	}

	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		idx := strings.LastIndex(line, "=")
		if idx < 0 {
			continue
		}
		ns, err := strconv.ParseInt(strings.TrimSpace(line[idx+1:]), 10, 64)
		if err != nil {
			continue
		}
		return time.Duration(ns), nil
	}

	return 0, errors.New("HIDIdleTime not found in ioreg output")
}
