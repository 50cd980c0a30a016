package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending
// plain-text email asynchronously (welcome mail and the like). Password
// reset mail is sent synchronously instead, because the caller needs
// the send result.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
