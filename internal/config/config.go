package config

import (
	"fmt"
	"os"
	"strings"
)

const insecureJWTFallback = "019283"

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string
	Timezone   string
	RedisURL   string
	StaticDir  string

	// CORSOrigins vazio libera qualquer origem (frontend e API
	// servidos pelo mesmo processo em produção).
	CORSOrigins []string

	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		DBUrl:       getEnv("DATABASE_URL", "barbearia.db"),
		JWTSecret:   getEnv("JWT_SECRET", insecureJWTFallback),
		ServerPort:  getEnv("PORT", "3000"),
		Timezone:    getEnv("TIMEZONE", "America/Sao_Paulo"),
		RedisURL:    getEnv("REDIS_URL", ""),
		StaticDir:   getEnv("STATIC_DIR", "./public"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// UsingFallbackSecret indica que o JWT_SECRET não foi externalizado.
func (c *Config) UsingFallbackSecret() bool {
	return c.JWTSecret == insecureJWTFallback
}
