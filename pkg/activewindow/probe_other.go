// +build !darwin,!linux

package activewindow

import "errors"

func probe() (string, string, error) {
	return "", "", errors.New("window inspection not supported on this platform")
}
