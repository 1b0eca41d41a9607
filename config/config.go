package config

import (
	"campusbuild/internal/models"
	"campusbuild/pkg/logger"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AI       AIConfig
	Authz    AuthzConfig
	Roster   []RosterEntry
	Site     models.SiteInfo
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AIConfig struct {
	GeminiAPIKey string
	Model        string
}

// AuthzConfig is the role table loaded from config/config.toml. Role names map
// to capability lists; the admin roster below binds emails to roles.
type AuthzConfig struct {
	Superadmin string              `mapstructure:"superadmin"`
	Roles      map[string][]string `mapstructure:"roles"`
}

// RosterEntry is one pre-provisioned admin account. Passwords here are
// one-time credentials: the seeder only uses them when the user row is missing.
type RosterEntry struct {
	Email    string `mapstructure:"email"`
	Name     string `mapstructure:"name"`
	Password string `mapstructure:"password"`
	Role     string `mapstructure:"role"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		logger.Log.Warn(".env file not found, falling back to environment variables", zap.Error(err))
	}

	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATABASE_URL")
	viper.BindEnv("GEMINI_API_KEY")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		AI: AIConfig{
			GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
			Model:        viper.GetString("GEMINI_MODEL"),
		},
	}

	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}

	// Site info, role table and admin roster live in the TOML config.
	siteViper := viper.New()
	siteViper.SetConfigFile("config/config.toml")
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		logger.Log.Warn("config/config.toml not found, using built-in defaults", zap.Error(err))
	} else {
		if err := siteViper.UnmarshalKey("site", &AppConfig.Site); err != nil {
			logger.Log.Error("failed to unmarshal site info", zap.Error(err))
		}
		if err := siteViper.UnmarshalKey("authz", &AppConfig.Authz); err != nil {
			logger.Log.Error("failed to unmarshal authz table", zap.Error(err))
		}
		if err := siteViper.UnmarshalKey("roster", &AppConfig.Roster); err != nil {
			logger.Log.Error("failed to unmarshal admin roster", zap.Error(err))
		}
	}

	logger.Log.Info("configuration loaded",
		zap.String("port", AppConfig.Server.Port),
		zap.String("env", AppConfig.Server.Env),
		zap.Bool("jwt_secret_set", AppConfig.Server.JWTSecret != ""),
		zap.Bool("database_url_set", AppConfig.Database.URL != ""),
		zap.Bool("redis_configured", AppConfig.Redis.Addr != ""),
		zap.Bool("gemini_configured", AppConfig.AI.GeminiAPIKey != ""),
		zap.Int("roster_size", len(AppConfig.Roster)),
	)
}
