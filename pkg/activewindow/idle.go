package activewindow

import "time"

// activityWindow is how recent the last input event must be for the user to
// count as active. Two sampling ticks of slack.
const activityWindow = 2 * time.Second

// UserActivity reports whether the user is producing input events, via the
// platform's input-idle counter. Where no counter is available it falls back
// to treating any observable window as activity, which disables idle
// detection rather than producing false idles.
type UserActivity struct {
	prober *Prober
	idle   func() (time.Duration, error)
}

// NewUserActivity returns an activity probe for the current platform
func NewUserActivity(p *Prober) *UserActivity {
	return &UserActivity{prober: p, idle: systemIdle}
}

// Active returns true when the last input event is recent enough
func (u *UserActivity) Active() bool {
	idle, err := u.idle()
	if err == nil {
		return idle < activityWindow
	}

	app, _ := u.prober.ActiveWindow()
	return app != Unknown
}
