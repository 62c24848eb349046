package interfaces

import "context"

type Email struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// IMailer delivers transactional emails.
type IMailer interface {
	Send(ctx context.Context, e Email) error
}
