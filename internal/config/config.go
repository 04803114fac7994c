// Package config loads runtime configuration from the environment with
// sensible development defaults.
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// insecureDefaultSecret is the built-in development fallback for the token
// signing secret. It is intentionally well-known and must never reach
// production; Load warns loudly when it is in use.
const insecureDefaultSecret = "your-secret-key-change-in-production"

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database file path.
	DBPath string

	// TokenSecret signs and verifies auth tokens.
	TokenSecret string

	// CORSOrigins is the comma-separated list of allowed origins.
	CORSOrigins []string

	// CookieSecure marks the auth cookie as HTTPS-only.
	CookieSecure bool
}

// Load reads configuration from TASKWISE_* environment variables.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("taskwise")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db.path", "taskwise.db")
	v.SetDefault("token.secret", "")
	v.SetDefault("cors.origins", "http://localhost:3000")
	v.SetDefault("cookie.secure", false)

	cfg := &Config{
		Addr:         v.GetString("addr"),
		DBPath:       v.GetString("db.path"),
		TokenSecret:  v.GetString("token.secret"),
		CookieSecure: v.GetBool("cookie.secure"),
	}

	for _, o := range strings.Split(v.GetString("cors.origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimRight(o, "/"))
		}
	}

	if cfg.TokenSecret == "" {
		cfg.TokenSecret = insecureDefaultSecret
		log.Println("WARNING: TASKWISE_TOKEN_SECRET is not set; using the built-in development secret, which is unsafe for production")
	}

	return cfg
}
