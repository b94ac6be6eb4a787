package config

import (
	"os"
	"strings"
)

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnv is getEnv for other packages.
func GetEnv(key, defaultValue string) string {
	return getEnv(key, defaultValue)
}

func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// AllowedOrigins reads the comma separated ALLOWED_ORIGINS list.
func AllowedOrigins() []string {
	raw := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")
	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SalesInbox is where new RFQs are e-mailed.
func SalesInbox() string {
	return getEnv("SALES_INBOX_EMAIL", "sales@emdad-export.com")
}

// SiteURL is the public front end, used for links in e-mails.
func SiteURL() string {
	return strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/")
}
