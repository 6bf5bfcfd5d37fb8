package configs

import (
	// Loads a .env file from the working directory before any configuration is read
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	LogLevel        string
}

var Env *EnvConfig

func init() {
	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "winecast-dashboard"),
		ContextPath:     env.GetString("CONTEXT_PATH"),
		LogLevel:        getStringOrDefault(env, "LOG_LEVEL", "info"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
