package focus

import (
	"log"

	"github.com/gen2brain/beeep"
)

// notifyDesktop raises a desktop notification. Failures are logged only;
// notifications are best effort.
func notifyDesktop(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		log.Printf("Notification failed: %v", err)
	}
}
