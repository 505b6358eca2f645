package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything read at startup: the three provider endpoints plus
// the campaign's payment settings.
type Config struct {
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	FlutterwaveAPIURL string `mapstructure:"FLUTTERWAVE_API_URL"`
	MTNAPIURL         string `mapstructure:"MTN_API_URL"`
	AirtelAPIURL      string `mapstructure:"AIRTEL_API_URL"`

	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	CurrencyCode       string `mapstructure:"CURRENCY_CODE"`
	MinimumDonation    int    `mapstructure:"MINIMUM_DONATION"`
}

// Load reads config.env from the working directory, with real environment
// variables taking precedence.
func Load() (Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Defaults also register the keys so AutomaticEnv can bind them during
	// Unmarshal even without a config file.
	viper.SetDefault("FLUTTERWAVE_API_URL", "")
	viper.SetDefault("MTN_API_URL", "")
	viper.SetDefault("AIRTEL_API_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CURRENCY_CODE", "UGX")
	viper.SetDefault("MINIMUM_DONATION", 1000)

	if err := viper.ReadInConfig(); err != nil {
		// No config.env is fine, everything can come from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var config Config
	err := viper.Unmarshal(&config)
	return config, err
}

// Timeout is the per-request deadline for provider calls.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Origins splits ALLOWED_ORIGINS into the list CORS expects.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
