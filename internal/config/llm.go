package config

import "time"

type LLM struct {
	Provider LLMProvider `envPrefix:"PROVIDER_"`
}

type LLMProvider struct {
	BaseURL             string  `env:"BASE_URL,expand" envDefault:"https://api.openai.com/v1"`
	Key                 string  `env:"KEY,expand" envDefault:"${OPENAI_API_KEY}"`
	ChatCompletionModel string  `env:"CHAT_COMPLETION_MODEL,expand" envDefault:"gpt-4"`
	MaxTokens           int     `env:"MAX_TOKENS,expand" envDefault:"2500"`
	Temperature         float64 `env:"TEMPERATURE,expand" envDefault:"0.7"`

	// RateLimit is the minimum delay between completion requests.
	// Zero disables rate limiting.
	RateLimit time.Duration `env:"RATE_LIMIT,expand" envDefault:"0"`
}
