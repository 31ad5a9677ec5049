package sheets

// Config holds the Google Sheets credentials. All three values are optional
// as a set: when any is missing the spreadsheet record is skipped and the
// submission proceeds without it.
type Config struct {
	SheetID             string `env:"GOOGLE_SHEETS_ID"`
	ServiceAccountEmail string `env:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	PrivateKey          string `env:"GOOGLE_PRIVATE_KEY"`
}

// Configured reports whether every credential needed for the append is present.
func (c Config) Configured() bool {
	return c.SheetID != "" && c.ServiceAccountEmail != "" && c.PrivateKey != ""
}
