package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env-default:"9091"`

	Redis Redis `yaml:"redis"`

	// NATSURL is optional; without it events stay on the in-process bus.
	NATSURL string `yaml:"nats-url" env-default:""`

	SQLiteStoragePath string `yaml:"sqlite-storage-path" env-default:"archive.db"`
	JWTSecretKey      string `yaml:"jwt-secret-key"`

	// BotSeed is the base58 32-byte seed the resident bot's keypair is
	// derived from, so its wallet survives restarts.
	BotSeed string `yaml:"bot-seed"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
