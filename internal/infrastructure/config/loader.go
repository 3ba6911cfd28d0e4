package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	TwitchUsername       string   `env:"TWITCH_BOT_USERNAME"`
	TwitchToken          string   `env:"TWITCH_BOT_ACCESS_TOKEN"`
	TwitchChannels       []string `env:"TWITCH_BOT_CHANNELS" envSeparator:","`
	TwitchClientId       string   `env:"TWITCH_CLIENT_ID"`
	TwitchApiToken       string   `env:"TWITCH_API_ACCESS_TOKEN"`
	TwitchMessagesPer30s int      `env:"TWITCH_MESSAGES_PER_30S" envDefault:"20"`

	DiscordToken           string `env:"DISCORD_TOKEN"`
	DiscordGuildID         string `env:"DISCORD_GUILD_ID"`
	DiscordModeratorRoleID string `env:"DISCORD_MODERATOR_ROLE_ID"`

	DatabasePath   string `env:"DATABASE_PATH" envDefault:"data/bot.db"`
	CooldownStrict bool   `env:"COOLDOWN_STRICT" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads the optional env files, then the process environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

func (c *Config) normalize() {
	c.CommandPrefix = strings.TrimSpace(c.CommandPrefix)
	if c.CommandPrefix == "" {
		c.CommandPrefix = "!"
	}

	channels := c.TwitchChannels[:0]
	for _, ch := range c.TwitchChannels {
		ch = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ch), "#"))
		if ch != "" {
			channels = append(channels, ch)
		}
	}
	c.TwitchChannels = channels
}

func (c *Config) TwitchEnabled() bool {
	return c.TwitchUsername != "" && c.TwitchToken != "" && len(c.TwitchChannels) > 0
}

func (c *Config) HelixEnabled() bool {
	return c.TwitchClientId != "" && c.TwitchApiToken != ""
}

func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}
