package config

import (
	"time"
)

// JWTSecret signs and verifies bearer tokens. JWTExpiration is how long
// an issued token stays valid.
var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	JWTSecret = []byte(getEnv("JWT_SECRET", "change-this-secret-in-production"))

	JWTExpiration = 24 * time.Hour
	if ttl := getEnv("JWT_TTL", ""); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			JWTExpiration = parsed
		}
	}
}
