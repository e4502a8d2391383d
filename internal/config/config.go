package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env         string
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	Groq        GroqConfig
	Wikipedia   WikipediaConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	Logger      LoggerConfig
	CacheTTLs   CacheTTLConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GroqConfig configures the completion client. An empty APIKey is allowed at
// startup; generation calls fail with an upstream error until one is set.
type GroqConfig struct {
	APIKey             string
	BaseURL            string
	DefaultModel       string
	DefaultTemperature float64
	MaxTokens          int
	Timeout            time.Duration
}

type WikipediaConfig struct {
	APIBaseURL  string
	RESTBaseURL string
	Timeout     time.Duration
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type CacheTTLConfig struct {
	QuizSnapshot time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("env", "development")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.default_model", "llama-3.1-8b-instant")
	viper.SetDefault("groq.default_temperature", 0.2)
	viper.SetDefault("groq.max_tokens", 1500)
	viper.SetDefault("groq.timeout", 60)
	viper.SetDefault("wikipedia.api_base_url", "https://en.wikipedia.org/w/api.php")
	viper.SetDefault("wikipedia.rest_base_url", "https://en.wikipedia.org/api/rest_v1")
	viper.SetDefault("wikipedia.timeout", 10)
	viper.SetDefault("jwt.access_token_ttl", 15)
	viper.SetDefault("jwt.refresh_token_ttl", 10080)
	viper.SetDefault("cache_ttls.quiz_snapshot", 60)
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; env vars and defaults can carry a deployment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Env: viper.GetString("env"),
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Groq: GroqConfig{
			APIKey:             viper.GetString("groq.api_key"),
			BaseURL:            viper.GetString("groq.base_url"),
			DefaultModel:       viper.GetString("groq.default_model"),
			DefaultTemperature: viper.GetFloat64("groq.default_temperature"),
			MaxTokens:          viper.GetInt("groq.max_tokens"),
			Timeout:            viper.GetDuration("groq.timeout") * time.Second,
		},
		Wikipedia: WikipediaConfig{
			APIBaseURL:  viper.GetString("wikipedia.api_base_url"),
			RESTBaseURL: viper.GetString("wikipedia.rest_base_url"),
			Timeout:     viper.GetDuration("wikipedia.timeout") * time.Second,
		},
		JWT: JWTConfig{
			SecretKey:       viper.GetString("jwt.secret_key"),
			AccessTokenTTL:  viper.GetDuration("jwt.access_token_ttl") * time.Minute,
			RefreshTokenTTL: viper.GetDuration("jwt.refresh_token_ttl") * time.Minute,
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     viper.GetString("google_oauth.client_id"),
			ClientSecret: viper.GetString("google_oauth.client_secret"),
			RedirectURL:  viper.GetString("google_oauth.redirect_url"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("env"),
		},
		CacheTTLs: CacheTTLConfig{
			QuizSnapshot: viper.GetDuration("cache_ttls.quiz_snapshot") * time.Minute,
		},
	}

	// Environment variables override the file for deployment-critical values.
	if env := os.Getenv("ENV"); env != "" {
		config.Env = env
		config.Logger.Env = env
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if groqKey := os.Getenv("GROQ_API_KEY"); groqKey != "" {
		config.Groq.APIKey = groqKey
	}
	if jwtSecret := os.Getenv("JWT_SECRET_KEY"); jwtSecret != "" {
		config.JWT.SecretKey = jwtSecret
	}

	return config, nil
}

// GetDSN returns the Postgres connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}

// GetMigrateURL returns the connection URL used by golang-migrate.
func (c *Config) GetMigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}
