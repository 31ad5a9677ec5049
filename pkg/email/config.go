package email

// Config holds email service configuration.
// The Postmark tokens are optional so local development can fall back to the
// DevSender; SenderEmail establishes the default sender identity for every
// outbound message that does not override it.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"hello@beautyflow.pro"`
}
