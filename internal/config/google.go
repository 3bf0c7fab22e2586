package config

type Google struct {
	// CredentialsFile is the OAuth client-secret file downloaded from the
	// Google Cloud console. Its absence is a fatal configuration error.
	CredentialsFile string `env:"CREDENTIALS_FILE,expand" envDefault:"credentials.json"`

	// TokenFile caches the authorized credential between runs. It is
	// overwritten whole on every refresh or re-authorization.
	TokenFile string `env:"TOKEN_FILE,expand" envDefault:"token.json"`
}
