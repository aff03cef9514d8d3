// Package config loads the wordladder TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned when a configuration value fails validation
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds settings shared by all commands. Zero values mean "use the
// default" so flags and files can be layered.
type Config struct {
	Dictionary string `toml:"dictionary"`
	Alphabet   string `toml:"alphabet" validate:"omitempty,lowercase,alpha"`
	Format     string `toml:"format" validate:"omitempty,oneof=text json dot tree"`
	MaxLength  int    `toml:"max_length" validate:"gte=0"`
	Debug      bool   `toml:"debug"`
	AWS        AWS    `toml:"aws"`
}

// AWS holds the settings used for s3:// dictionaries
type AWS struct {
	Profile string `toml:"profile"`
	Region  string `toml:"region"`
}

// Defaults
const (
	DefaultDictionary = "words.txt"
	DefaultFormat     = "text"
)

var validate = validator.New()

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Dictionary: DefaultDictionary,
		Format:     DefaultFormat,
	}
}

// DefaultPath returns ~/.wordladder/config.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wordladder", "config.toml"), nil
}

// Load reads the file at path on top of the defaults. A missing file is an
// error only when required is true, so the default location may be absent.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
