package domain

// ContactSubmission is a message sent through the contact form.
// It is never persisted.
type ContactSubmission struct {
	Name    string
	Email   string
	Title   string
	Message string
}

// MailMessage is the data handed to an outbound mail transport.
type MailMessage struct {
	Subject string
	Body    string
	From    string
	To      []string
}
