// Package notify is the seam for out-of-band login-code delivery. Production
// deployments plug a mail sender in here; the log notifier covers development,
// where the code is also echoed in the send-code response.
package notify

import (
	"context" // Context for delivery calls

	"github.com/sirupsen/logrus" // Logging library
)

// Notifier delivers a login code to a user out-of-band
type Notifier interface {
	SendLoginCode(ctx context.Context, email, code string) error
}

// LogNotifier writes the code to the application log instead of sending it
type LogNotifier struct{}

// SendLoginCode logs the code with the target email
func (LogNotifier) SendLoginCode(ctx context.Context, email, code string) error {
	logrus.WithFields(logrus.Fields{
		"email": email, // Recipient
		"code":  code,  // One-time login code
	}).Info("Login code issued")
	return nil
}
