package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
)

// DefaultPath is the configuration document looked up in the invocation directory.
const DefaultPath = "config.json"

var (
	// ErrNotFound indicates the configuration document does not exist.
	ErrNotFound = errors.New("configuration not found")
	// ErrMalformed indicates the configuration document is not valid structured data.
	ErrMalformed = errors.New("configuration malformed")
)

// Load reads and decodes the configuration document at path. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON. Missing section
// fields are not an error here; renderers check what they need.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is the operator-supplied config location
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.WrapError(ErrNotFound, ferrors.CategoryConfig, "configuration file not found").
				Fatal().
				WithContext("path", path).
				Build()
		}
		return nil, ferrors.WrapError(ferrors.NewIOError(path, err), ferrors.CategoryConfig, "failed to read configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}

	cfg, err := Decode(data, formatFor(path))
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return cfg, nil
}

// Format selects the decoder for a configuration document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data in the given format. Decode failures wrap ErrMalformed.
func Decode(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	return &cfg, nil
}
