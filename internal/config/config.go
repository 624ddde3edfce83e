package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del cliente. Los valores por defecto
// reproducen la petición fija contra la API de OpenAI.
type Config struct {
	KeyFile          string `env:"OPENAI_KEY_FILE" envDefault:"api_key.txt"`
	ChatURL          string `env:"OPENAI_CHAT_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	MaxResponseBytes int    `env:"OPENAI_MAX_RESPONSE_BYTES" envDefault:"0"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"warn"`
}

// KeyEnvVar es la variable de entorno de respaldo para la API key.
const KeyEnvVar = "OPENAI_API_KEY"

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
