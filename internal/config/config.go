package config

import (
	"fmt"
	"strings"
	"time"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/errors"
	"github.com/Jumpaku/go-survey/export"
	"github.com/Jumpaku/go-survey/form"
	"github.com/Jumpaku/go-survey/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding config keys, e.g.
// SURVEY_LOG_LEVEL for log.level.
const EnvPrefix = "SURVEY"

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
	Survey SurveyConfig `mapstructure:"survey"`
	Google GoogleConfig `mapstructure:"google"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ExportConfig struct {
	Format  string        `mapstructure:"format"`
	CopyAck time.Duration `mapstructure:"copy_ack"`
}

// SurveyConfig holds the title and description a new session starts with.
type SurveyConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

type GoogleConfig struct {
	// Credentials is a service account or authorized user JSON file. Empty
	// means application default credentials.
	Credentials  string   `mapstructure:"credentials"`
	Folder       string   `mapstructure:"folder"`
	Share        []string `mapstructure:"share"`
	PublishState string   `mapstructure:"publish_state"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Export: ExportConfig{Format: string(export.FormatJSON), CopyAck: export.DefaultCopyAck},
		Survey: SurveyConfig{Title: survey.DefaultTitle, Description: survey.DefaultDescription},
		Google: GoogleConfig{PublishState: string(form.PublishStateAccepting)},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("export.copy_ack", d.Export.CopyAck)
	v.SetDefault("survey.title", d.Survey.Title)
	v.SetDefault("survey.description", d.Survey.Description)
	v.SetDefault("google.credentials", "")
	v.SetDefault("google.folder", "")
	v.SetDefault("google.share", []string{})
	v.SetDefault("google.publish_state", d.Google.PublishState)
}

// Load reads the config file at path, or survey.{yaml,json,toml} from the
// working directory when path is empty. A missing file yields the defaults;
// SURVEY_* environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("survey")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, errors.NewConfigError("failed to read config", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that are parsed later on.
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w: %w", errors.ErrInvalidConfig, err)
	}
	if c.Export.CopyAck < 0 {
		return fmt.Errorf("export.copy_ack must not be negative: %w", errors.ErrInvalidConfig)
	}
	if _, err := form.ParsePublishState(c.Google.PublishState); err != nil {
		return fmt.Errorf("google.publish_state: %w", err)
	}
	for _, s := range c.Google.Share {
		if _, err := form.ParseGrantee(s); err != nil {
			return fmt.Errorf("google.share: %w", err)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, errors.ErrInvalidConfig)
	}
	return nil
}
