package devstub

import (
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds the stub backend's settings, read from the environment
// (a .env file is picked up automatically).
type Config struct {
	Addr      string
	JWTSecret []byte
	TokenTTL  time.Duration

	S3Region       string
	S3Bucket       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	PresignExpiry  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Addr:      envOr("DEVSTUB_ADDR", ":8000"),
		JWTSecret: []byte(envOr("DEVSTUB_JWT_SECRET", "dev-secret")),
		TokenTTL:  24 * time.Hour,

		S3Region:       envOr("S3_REGION", "us-east-1"),
		S3Bucket:       envOr("S3_BUCKET", "freshintro"),
		S3BaseEndpoint: envOr("S3_BASE_ENDPOINT", "http://localhost:9000"),
		S3AccessKey:    envOr("MINIO_ROOT_USER", "minioadmin"),
		S3SecretKey:    envOr("MINIO_ROOT_PASSWORD", "minioadmin"),
		PresignExpiry:  15 * time.Minute,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
