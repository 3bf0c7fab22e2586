package config

type Logger struct {
	// File is appended to alongside stderr and rotated when it exceeds
	// MaxSizeMB megabytes.
	File      string `env:"FILE,expand" envDefault:"retrospect.log"`
	MaxSizeMB int    `env:"MAX_SIZE_MB,expand" envDefault:"1"`
}
