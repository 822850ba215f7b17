package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/corpusdata/corpus-cli/internal/corpus/util"
)

type Config struct {
	DataDir   string `mapstructure:"data_dir" yaml:"data_dir"`
	Output    string `mapstructure:"output" yaml:"output"`
	Debug     bool   `mapstructure:"debug" yaml:"debug"`
	ConfigDir string `mapstructure:"config_dir" yaml:"-"`
}

const (
	DefaultOutput  = "table"
	DefaultDebug   = false
	ConfigFileName = "config.yaml"
)

var defaultValues = map[string]any{
	"data_dir": "",
	"output":   DefaultOutput,
	"debug":    DefaultDebug,
}

func ApplyDefaults(v *viper.Viper) {
	for key, value := range defaultValues {
		v.SetDefault(key, value)
	}
}

func ApplyEnvOverrides(v *viper.Viper) {
	v.SetEnvPrefix("CORPUS")
	v.AutomaticEnv()
}

func ReadInConfig(v *viper.Viper) error {
	// Try to read config file if it exists
	// If file doesn't exist, that's okay - we'll use defaults and env vars
	if err := v.ReadInConfig(); err != nil &&
		!errors.As(err, &viper.ConfigFileNotFoundError{}) &&
		!errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// SetupViper configures the global Viper instance with defaults, env vars, and config file
func SetupViper(configDir string) error {
	v := viper.GetViper()

	// Configure viper to read from config file
	configFile := GetConfigFile(configDir)
	v.SetConfigFile(configFile)

	// Configure viper to read from env vars
	ApplyEnvOverrides(v)

	// Set defaults for all config values
	ApplyDefaults(v)

	return ReadInConfig(v)
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ConfigDir: filepath.Dir(v.ConfigFileUsed()),
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Load creates a new Config instance from the current viper state
// This function should be called after SetupViper has been called to initialize viper
func Load() (*Config, error) {
	v := viper.GetViper()

	// Try to read config file into viper to ensure we're unmarshaling the most
	// up-to-date values into the config struct.
	if err := ReadInConfig(v); err != nil {
		return nil, err
	}

	return FromViper(v)
}

func ensureConfigDir(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}
	return GetConfigFile(configDir), nil
}

func (c *Config) EnsureConfigDir() (string, error) {
	return ensureConfigDir(c.ConfigDir)
}

func (c *Config) Set(key, value string) error {
	// Validate and update the field
	validated, err := c.updateField(key, value)
	if err != nil {
		return err
	}

	// Write to config file
	configFile, err := c.EnsureConfigDir()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.ReadInConfig()

	v.Set(key, validated)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

func setBool(key, val string) (bool, error) {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %s (must be true or false)", key, val)
	}
	return b, nil
}

// updateField updates the field in the Config struct corresponding to the given key.
// It accepts either a string (from user input) or a typed value (string/bool from defaults).
// The function validates the value and updates both the struct field and viper state.
func (c *Config) updateField(key string, value any) (any, error) {
	var validated any

	switch key {
	case "data_dir":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("data_dir must be string, got %T", value)
		}
		c.DataDir = s
		validated = s

	case "output":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("output must be string, got %T", value)
		}
		if err := ValidateOutputFormat(s); err != nil {
			return nil, err
		}
		c.Output = s
		validated = s

	case "debug":
		switch v := value.(type) {
		case bool:
			c.Debug = v
			validated = v
		case string:
			b, err := setBool("debug", v)
			if err != nil {
				return nil, err
			}
			c.Debug = b
			validated = b
		default:
			return nil, fmt.Errorf("debug must be string or bool, got %T", value)
		}

	default:
		return nil, fmt.Errorf("unknown configuration key: %s", key)
	}

	viper.Set(key, validated)
	return validated, nil
}

func (c *Config) Unset(key string) error {
	configFile, err := c.EnsureConfigDir()
	if err != nil {
		return err
	}

	vCurrent := viper.New()
	vCurrent.SetConfigFile(configFile)
	vCurrent.ReadInConfig()

	vNew := viper.New()
	vNew.SetConfigFile(configFile)

	_, validKey := defaultValues[key]
	for k, v := range vCurrent.AllSettings() {
		if k != key {
			vNew.Set(k, v)
		} else {
			validKey = true
		}
	}

	if !validKey {
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	// Apply the default to the current global viper state
	if def, ok := defaultValues[key]; ok {
		if _, err := c.updateField(key, def); err != nil {
			return err
		}
	}

	if err := vNew.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

func (c *Config) Reset() error {
	configFile, err := c.EnsureConfigDir()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(configFile)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	// Apply all defaults to the current global viper state
	for key, value := range defaultValues {
		if _, err := c.updateField(key, value); err != nil {
			return err
		}
	}

	return nil
}

func GetConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

func (c *Config) GetConfigFile() string {
	return GetConfigFile(c.ConfigDir)
}

func GetDefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.config/corpus"
	}

	return filepath.Join(homeDir, ".config", "corpus")
}

func GetEffectiveConfigDir(configDirFlag *pflag.Flag) string {
	if configDirFlag.Changed {
		return util.ExpandPath(configDirFlag.Value.String())
	}

	if dir := os.Getenv("CORPUS_CONFIG_DIR"); dir != "" {
		return util.ExpandPath(dir)
	}

	return GetDefaultConfigDir()
}

// ResetGlobalConfig clears the global viper state for testing
// This is mainly used to reset viper configuration between test runs
func ResetGlobalConfig() {
	viper.Reset()
}
