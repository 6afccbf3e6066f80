package service

import "context"

// Mailer delivers transactional email to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
