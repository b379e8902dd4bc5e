package config

import (
	"os"
	"regexp"

	"github.com/grovetools/seshconnect/errors"
	"github.com/grovetools/seshconnect/pkg/paths"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a preferences file. A missing file is an error here;
// use LoadDefault for the optional default location. SESHCONNECT_PATH
// overrides environment_path.
func Load(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	prefs, err := LoadFromBytes(data)
	if err != nil {
		if seshErr, ok := errors.As(err); ok {
			seshErr.WithDetail("path", path)
		}
		return nil, err
	}

	applyEnvOverrides(prefs)
	return prefs, nil
}

// LoadDefault loads preferences from the default location. The document is
// optional: when it does not exist, defaults are returned. SESHCONNECT_PATH
// overrides environment_path either way.
func LoadDefault() (*Preferences, error) {
	return LoadDefaultWithLogger(logrus.New())
}

// LoadDefaultWithLogger is LoadDefault with debug logging.
func LoadDefaultWithLogger(logger *logrus.Logger) (*Preferences, error) {
	path := paths.PreferencesFile()

	var prefs *Preferences
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			logger.WithField("path", path).Debug("Loading preferences")
			loaded, err := Load(path)
			if err != nil {
				return nil, err
			}
			prefs = loaded
		} else {
			logger.WithField("path", path).Debug("No preferences file, using defaults")
		}
	}

	if prefs == nil {
		prefs = Default()
	}

	applyEnvOverrides(prefs)
	return prefs, nil
}

// LoadFromBytes parses preferences from a YAML document
func LoadFromBytes(data []byte) (*Preferences, error) {
	expanded := expandEnvVars(string(data))

	var prefs Preferences
	if err := yaml.Unmarshal([]byte(expanded), &prefs); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}

	prefs.SetDefaults()

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}

	if err := validator.Validate(&prefs); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	return &prefs, nil
}

// applyEnvOverrides applies SESHCONNECT_* environment variables.
func applyEnvOverrides(prefs *Preferences) {
	if p, ok := os.LookupEnv("SESHCONNECT_PATH"); ok {
		prefs.EnvironmentPath = p
	}
}

// expandEnvVars replaces ${VAR} references with their values
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
