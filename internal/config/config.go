package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Uploads UploadConfig
	Auth    AuthConfig
	Metrics MetricsConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	// DataDir holds the whole-collection snapshot files.
	DataDir string
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type AuthConfig struct {
	TokenSecret string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

type CORSConfig struct {
	Origins []string
}

const defaultMaxUploadBytes = 5 << 20

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_MAX_BYTES", defaultMaxUploadBytes)
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("METRICS_ENABLED", false)
	viper.SetDefault("CORS_ORIGINS", "*")

	// Missing .env is fine, env vars and defaults still apply.
	_ = viper.ReadInConfig()

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Storage: StorageConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
		Uploads: UploadConfig{
			Dir:      viper.GetString("UPLOAD_DIR"),
			MaxBytes: viper.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Auth: AuthConfig{
			TokenSecret: viper.GetString("JWT_SECRET"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Token:   viper.GetString("METRICS_TOKEN"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
