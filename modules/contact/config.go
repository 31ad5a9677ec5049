package contact

// Config holds the contact module configuration. The funnel serves a single
// salon, so the notification inbox is fixed with an env override for
// staging.
type Config struct {
	AdminEmail string `env:"CONTACT_ADMIN_EMAIL" envDefault:"erdeklodes@beautyflow.pro"`
}
