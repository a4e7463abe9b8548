// +build !darwin,!linux

package activewindow

import (
	"errors"
	"time"
)

func systemIdle() (time.Duration, error) {
	return 0, errors.New("input idle time not available on this platform")
}
