package adapters

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"frenetic/internal/ports"
	"frenetic/internal/types"
)

const configEnvPrefix = "FRENETIC"
const defaultEnvironment = "development"

// ConfigFileAdapter merges client configuration from, lowest to highest
// precedence: the environment's section of a YAML file, FRENETIC_*
// environment variables, and explicit overrides.  Only RecognizedOptions
// survive the merge.
type ConfigFileAdapter struct {
	// Path is the config file.  When empty, config/frenetic.yml relative
	// to the working directory is used if it exists.
	Path string

	// Environment selects the file section.  Defaults to $FRENETIC_ENV,
	// then "development".
	Environment string
}

func NewConfigFileAdapter(path string, environment string) ConfigFileAdapter {
	return ConfigFileAdapter{Path: path, Environment: environment}
}

func (a ConfigFileAdapter) Load(overrides map[string]any) (types.Config, error) {
	v := viper.New()
	v.SetDefault("accepts", types.DefaultAccepts)

	if err := a.mergeFile(v); err != nil {
		return types.Config{}, err
	}

	v.SetEnvPrefix(configEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, option := range types.RecognizedOptions {
		_ = v.BindEnv(option)
	}

	for key, value := range overrides {
		normalized := strings.ToLower(strings.TrimSpace(key))
		if !types.IsRecognizedOption(normalized) {
			log.Debug().Str("option", key).Msg("ignoring unknown configuration option")
			continue
		}
		v.Set(normalized, value)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, types.ConfigurationError("failed to decode configuration", err)
	}
	cfg.URL = strings.TrimSpace(cfg.URL)
	if cfg.URL == "" {
		return types.Config{}, types.ConfigurationError("url is required", nil)
	}
	return cfg, nil
}

func (a ConfigFileAdapter) mergeFile(v *viper.Viper) error {
	path := strings.TrimSpace(a.Path)
	explicit := path != ""
	if !explicit {
		path = filepath.Join("config", "frenetic.yml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return types.ConfigurationError("failed to read config file: "+path, err)
	}

	file := viper.New()
	file.SetConfigType("yaml")
	if err := file.ReadConfig(bytes.NewReader(data)); err != nil {
		return types.ConfigurationError("failed to parse config file: "+path, err)
	}
	env := a.environment()
	section := file.GetStringMap(env)
	if len(section) == 0 {
		log.Debug().
			Str("path", path).
			Str("environment", env).
			Msg("config file has no section for environment")
		return nil
	}
	for key, value := range section {
		if !types.IsRecognizedOption(key) {
			log.Debug().Str("option", key).Str("path", path).Msg("ignoring unknown configuration option")
			continue
		}
		v.SetDefault(key, value)
	}
	log.Debug().
		Str("path", path).
		Str("environment", env).
		Int("keys", len(section)).
		Msg("config file loaded")
	return nil
}

func (a ConfigFileAdapter) environment() string {
	if env := strings.TrimSpace(a.Environment); env != "" {
		return env
	}
	if env := strings.TrimSpace(os.Getenv(configEnvPrefix + "_ENV")); env != "" {
		return env
	}
	return defaultEnvironment
}

var _ ports.ConfigSourcePort = ConfigFileAdapter{}
