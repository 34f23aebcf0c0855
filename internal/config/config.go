package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Session SessionConfig
	TMDB    TMDBConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type SessionConfig struct {
	// Secret signs the session cookie token.
	Secret string
}

type TMDBConfig struct {
	APIKey   string
	Language string
	CacheTTL int // seconds
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.address", ":4000")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("session.secret", "dev_session_secret")
	viper.SetDefault("tmdb.language", "ru-RU")
	viper.SetDefault("tmdb.cachettl", 60)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
