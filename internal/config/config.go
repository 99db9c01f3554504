package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	CORS     CORSConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AuthConfig struct {
	JWTSecret string
	// Secure cookies require TLS, so this tracks ENV rather than its own flag.
	CookieSecure bool
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type CORSConfig struct {
	ClientURL string
}

type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

func Load() Config {
	env := getenv("ENV", "development")

	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "8000"),
			Env:  env,
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			CookieSecure: env == "production",
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			ClientURL: getenv("CLIENT_URL", "http://localhost:3000"),
		},
		Admin: AdminConfig{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     getenv("ADMIN_NAME", "Algorithm"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
