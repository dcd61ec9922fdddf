package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig bundles everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string

	AdminEmail    string
	AdminPassword string
	AdminName     string

	SMTPHost     string
	SMTPPort     string
	MailAddress  string
	MailPassword string
}

// Load reads configuration from environment variables and fills in safe
// defaults for missing values. Admin and mail credentials have no defaults
// on purpose; the related features stay disabled until they are set.
func Load() AppConfig {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_PATH", "inkstream.db")
	v.SetDefault("SESSION_SECRET", "inkstream-dev-secret")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("ADMIN_NAME", "Admin")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", "587")

	port := strings.TrimSpace(v.GetString("PORT"))

	listenAddr := strings.TrimSpace(v.GetString("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  strings.TrimSpace(v.GetString("DATABASE_PATH")),
		SessionSecret: strings.TrimSpace(v.GetString("SESSION_SECRET")),
		GinMode:       strings.TrimSpace(v.GetString("GIN_MODE")),
		AdminEmail:    strings.TrimSpace(v.GetString("ADMIN_EMAIL")),
		AdminPassword: strings.TrimSpace(v.GetString("ADMIN_PASSWORD")),
		AdminName:     strings.TrimSpace(v.GetString("ADMIN_NAME")),
		SMTPHost:      strings.TrimSpace(v.GetString("SMTP_HOST")),
		SMTPPort:      strings.TrimSpace(v.GetString("SMTP_PORT")),
		MailAddress:   strings.TrimSpace(v.GetString("MAIL_ADDRESS")),
		MailPassword:  strings.TrimSpace(v.GetString("MAIL_PASSWORD")),
	}
}
