package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	HMS   HMSConfig
	Redis RedisConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// HMSConfig points the console at the upstream hotel management API.
type HMSConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type RedisConfig struct {
	Enabled        bool
	Addr           string
	Password       string
	DB             int
	ListTTLSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("HMS_TIMEOUT_SECONDS", 30)
	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_LIST_TTL_SECONDS", 30)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		HMS: HMSConfig{
			BaseURL:        viper.GetString("HMS_BASE_URL"),
			TimeoutSeconds: viper.GetInt("HMS_TIMEOUT_SECONDS"),
		},
		Redis: RedisConfig{
			Enabled:        viper.GetBool("REDIS_ENABLED"),
			Addr:           viper.GetString("REDIS_ADDR"),
			Password:       viper.GetString("REDIS_PASS"),
			DB:             viper.GetInt("REDIS_DB"),
			ListTTLSeconds: viper.GetInt("REDIS_LIST_TTL_SECONDS"),
		},
	}

	return config, nil
}
