package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env-default:"9090"`
	SocketPort string     `yaml:"socket-port" env-default:"8080"`
	Redis      Redis      `yaml:"redis"`
	Dictionary Dictionary `yaml:"dictionary"`
	Game       Game       `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Dictionary struct {
	BaseURL        string `yaml:"base-url" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	TimeoutSeconds int    `yaml:"timeout-seconds" env-default:"5"`
}

type Game struct {
	TurnSeconds       int    `yaml:"turn-seconds" env-default:"30"`
	RoundDelaySeconds int    `yaml:"round-delay-seconds" env-default:"3"`
	MaxRounds         int    `yaml:"max-rounds" env-default:"5"`
	Difficulty        string `yaml:"difficulty" env-default:"medium"`
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

func (that *Dictionary) GetTimeout() time.Duration {
	return time.Duration(that.TimeoutSeconds) * time.Second
}

func (that *Game) GetTurnDuration() time.Duration {
	return time.Duration(that.TurnSeconds) * time.Second
}

func (that *Game) GetRoundDelay() time.Duration {
	return time.Duration(that.RoundDelaySeconds) * time.Second
}
