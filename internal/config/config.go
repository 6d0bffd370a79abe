package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	DataDir     string
	DatabaseURL string
	CORSOrigins []string

	Animals Upstream
	Trefle  Upstream
}

// Upstream credentials are optional: an empty key degrades the proxy route
// to its unavailable/fallback path.
type Upstream struct {
	BaseURL string
	APIKey  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("data_dir", "")
	v.SetDefault("database_url", "")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("animals_api_url", "https://api.api-ninjas.com")
	v.SetDefault("animals_api_key", "")
	v.SetDefault("trefle_api_url", "https://trefle.io")
	v.SetDefault("trefle_api_key", "")
}

// Load reads the environment, with an optional .env file in the working
// directory underneath it.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:        v.GetString("port"),
		DataDir:     v.GetString("data_dir"),
		DatabaseURL: v.GetString("database_url"),
		CORSOrigins: splitList(v.GetString("cors_origins")),
		Animals: Upstream{
			BaseURL: v.GetString("animals_api_url"),
			APIKey:  v.GetString("animals_api_key"),
		},
		Trefle: Upstream{
			BaseURL: v.GetString("trefle_api_url"),
			APIKey:  v.GetString("trefle_api_key"),
		},
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
