package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config reúne todas as configurações da aplicação
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	OpenAI   OpenAIConfig
	Upload   UploadConfig
}

// ServerConfig contém as configurações do servidor HTTP
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig contém as configurações de conexão com o PostgreSQL
type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConnections int32
	MinConnections int32
	URL            string
}

// JWTConfig contém as configurações de autenticação
type JWTConfig struct {
	SecretKey       string
	ExpirationHours int
}

// OpenAIConfig contém as configurações da extração via modelo generativo
type OpenAIConfig struct {
	APIKey string
	// Models é a lista ordenada de identificadores de modelo; o primeiro
	// que responder com sucesso é usado
	Models []string
}

// UploadConfig contém os limites de upload de arquivos
type UploadConfig struct {
	MaxSizeBytes int64
}

// Load carrega as configurações a partir das variáveis de ambiente
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "gestao_vendas")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNECTIONS", 10)
	v.SetDefault("DB_MIN_CONNECTIONS", 2)
	v.SetDefault("JWT_EXPIRATION_HOURS", 24)
	v.SetDefault("OPENAI_MODELS", "gpt-4o,gpt-4o-mini")
	v.SetDefault("MAX_UPLOAD_SIZE_MB", 10)

	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetString("SERVER_PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Database: DatabaseConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetInt("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			SSLMode:        v.GetString("DB_SSL_MODE"),
			MaxConnections: int32(v.GetInt("DB_MAX_CONNECTIONS")),
			MinConnections: int32(v.GetInt("DB_MIN_CONNECTIONS")),
			URL:            v.GetString("DATABASE_URL"),
		},
		JWT: JWTConfig{
			SecretKey:       v.GetString("JWT_SECRET_KEY"),
			ExpirationHours: v.GetInt("JWT_EXPIRATION_HOURS"),
		},
		OpenAI: OpenAIConfig{
			APIKey: v.GetString("OPENAI_API_KEY"),
			Models: splitModels(v.GetString("OPENAI_MODELS")),
		},
		Upload: UploadConfig{
			MaxSizeBytes: v.GetInt64("MAX_UPLOAD_SIZE_MB") * 1024 * 1024,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("variável JWT_SECRET_KEY não configurada")
	}

	return cfg, nil
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// MigrateURL retorna a URL de conexão no formato esperado pelo golang-migrate
func (c *DatabaseConfig) MigrateURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func splitModels(raw string) []string {
	parts := strings.Split(raw, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			models = append(models, trimmed)
		}
	}
	return models
}
