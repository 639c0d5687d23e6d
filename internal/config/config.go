// Package config loads the daemon configuration from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/WelcomerTeam/Swyft/discord"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// TokenEnvironmentKey overrides the configured token when set.
const TokenEnvironmentKey = "SWYFT_TOKEN"

const (
	CooldownTypeMemory = "memory"
	CooldownTypeRedis  = "redis"
)

var (
	ErrReadConfigurationFailure = errors.New("failed to read configuration")
	ErrLoadConfigurationFailure = errors.New("failed to load configuration")
)

// Configuration is the daemon configuration file.
type Configuration struct {
	Token    string   `json:"token" yaml:"token"`
	Prefix   string   `json:"prefix" yaml:"prefix"`
	Intents  []string `json:"intents" yaml:"intents"`
	Partials []string `json:"partials" yaml:"partials"`

	Presence PresenceConfiguration `json:"presence" yaml:"presence"`
	Logging  LoggingConfiguration  `json:"logging" yaml:"logging"`
	HTTP     HTTPConfiguration     `json:"http" yaml:"http"`
	Producer ProducerConfiguration `json:"producer" yaml:"producer"`
	Cooldown CooldownConfiguration `json:"cooldown" yaml:"cooldown"`
}

type PresenceConfiguration struct {
	Status       discord.PresenceStatus `json:"status" yaml:"status"`
	ActivityType string                 `json:"activity_type" yaml:"activity_type"`
	ActivityName string                 `json:"activity_name" yaml:"activity_name"`
}

type LoggingConfiguration struct {
	Level string `json:"level" yaml:"level"`
	JSON  bool   `json:"json" yaml:"json"`

	// File is only written to when Path is set.
	File struct {
		Path       string `json:"path" yaml:"path"`
		MaxSize    int    `json:"max_size" yaml:"max_size"`
		MaxBackups int    `json:"max_backups" yaml:"max_backups"`
		MaxAge     int    `json:"max_age" yaml:"max_age"`
		Compress   bool   `json:"compress" yaml:"compress"`
	} `json:"file" yaml:"file"`
}

type HTTPConfiguration struct {
	Host    string `json:"host" yaml:"host"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// ProducerConfiguration selects the message broker dispatch events are forwarded to.
// An empty Type disables forwarding.
type ProducerConfiguration struct {
	Type          string                 `json:"type" yaml:"type"`
	Configuration map[string]interface{} `json:"configuration" yaml:"configuration"`
	Channel       string                 `json:"channel" yaml:"channel"`
	EventTypes    []string               `json:"event_types" yaml:"event_types"`
	Blacklist     []string               `json:"blacklist" yaml:"blacklist"`
	QueueSize     int                    `json:"queue_size" yaml:"queue_size"`
}

type CooldownConfiguration struct {
	Type     string        `json:"type" yaml:"type"`
	Address  string        `json:"address" yaml:"address"`
	Password string        `json:"password" yaml:"password"`
	Prefix   string        `json:"prefix" yaml:"prefix"`
	DB       int           `json:"db" yaml:"db"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Default returns the configuration used for any value the file leaves out.
func Default() Configuration {
	configuration := Configuration{
		Prefix:  "!",
		Intents: []string{"guilds", "guild_messages", "message_content"},
		Presence: PresenceConfiguration{
			Status: discord.PresenceStatusOnline,
		},
		Logging: LoggingConfiguration{
			Level: "info",
		},
		HTTP: HTTPConfiguration{
			Host: "127.0.0.1:5469",
		},
		Producer: ProducerConfiguration{
			Channel:   "swyft",
			QueueSize: 256,
		},
		Cooldown: CooldownConfiguration{
			Type:     CooldownTypeMemory,
			Duration: 3 * time.Second,
		},
	}

	configuration.Logging.File.MaxSize = 100
	configuration.Logging.File.MaxBackups = 3
	configuration.Logging.File.MaxAge = 28

	return configuration
}

// Load reads the configuration at path. A .env file next to the working directory is
// loaded first when present, and TokenEnvironmentKey overrides the configured token.
func Load(path string) (configuration Configuration, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return configuration, fmt.Errorf("failed to load .env: %w", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return configuration, fmt.Errorf("%w: %w", ErrReadConfigurationFailure, err)
	}

	return Parse(file)
}

// Parse decodes and validates a configuration file.
func Parse(data []byte) (configuration Configuration, err error) {
	configuration = Default()

	if err = yaml.Unmarshal(data, &configuration); err != nil {
		return configuration, fmt.Errorf("%w: %w", ErrLoadConfigurationFailure, err)
	}

	if token := os.Getenv(TokenEnvironmentKey); token != "" {
		configuration.Token = token
	}

	if err = configuration.Validate(); err != nil {
		return configuration, err
	}

	return configuration, nil
}

// Validate reports the first invalid value.
func (c *Configuration) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("token is missing, set it in the configuration or %s: %w", TokenEnvironmentKey, ErrLoadConfigurationFailure)
	}

	if _, err := c.GatewayIntents(); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfigurationFailure, err)
	}

	switch c.Cooldown.Type {
	case CooldownTypeMemory:
	case CooldownTypeRedis:
		if c.Cooldown.Address == "" {
			return fmt.Errorf("redis cooldown store has no address: %w", ErrLoadConfigurationFailure)
		}
	default:
		return fmt.Errorf("unknown cooldown type %q: %w", c.Cooldown.Type, ErrLoadConfigurationFailure)
	}

	if c.Cooldown.Duration <= 0 {
		return fmt.Errorf("cooldown duration must be positive: %w", ErrLoadConfigurationFailure)
	}

	if c.Producer.Type != "" && c.Producer.Channel == "" {
		return fmt.Errorf("producer %s has no channel: %w", c.Producer.Type, ErrLoadConfigurationFailure)
	}

	return nil
}

func (c *Configuration) GatewayIntents() (discord.GatewayIntent, error) {
	return discord.ParseIntents(c.Intents)
}
