// Package notify is the desktop notification gateway. Delivery is
// best-effort: when the platform refuses or has no notification daemon the
// alert degrades to a developer-visible stderr line.
package notify

import (
	"fmt"
	"os"

	"github.com/gen2brain/beeep"
)

// Desktop sends alerts through the system notification service.
type Desktop struct{}

func (Desktop) Notify(title, body string) {
	if err := beeep.Notify(title, body, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Notification: %s - %s (delivery failed: %v)\n", title, body, err)
	}
}
