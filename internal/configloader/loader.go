package configloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JohnnyFun/svelte-language-server/pkg/plugin"
)

// Enable holds the per-capability feature gates. Nil means "not set", which
// defaults to enabled.
type Enable struct {
	Diagnostics *bool `yaml:"diagnostics"`
	Completions *bool `yaml:"completions"`
	Definitions *bool `yaml:"definitions"`
	Format      *bool `yaml:"format"`
}

// Settings is the loaded plugin configuration. It implements
// plugin.Settings.
type Settings struct {
	// LogLevel sets the logger level: debug, info, warn, error.
	LogLevel string `yaml:"log-level"`

	// Enable gates the plugin capabilities.
	Enable Enable `yaml:"enable"`
}

// Defaults returns the settings used when no settings file exists:
// everything enabled, info logging.
func Defaults() *Settings {
	return &Settings{LogLevel: "info"}
}

// Load discovers and parses the settings file above startDir. A missing
// file yields defaults; a malformed file is an error (unlike alias configs,
// the plugin's own settings are user-authored for this tool and silently
// ignoring them would be confusing).
func Load(startDir string) (*Settings, error) {
	path := FindSettings(startDir)
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	settings := Defaults()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil {
		// A file with no documents (empty or comments only) expresses no
		// settings; the decoder reports that as io.EOF.
		if errors.Is(err, io.EOF) {
			return settings, nil
		}
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return settings, nil
}

// GetBool implements plugin.Settings. Capability keys default to true when
// unset; unknown keys are false.
func (s *Settings) GetBool(key string) bool {
	switch key {
	case plugin.SettingDiagnostics:
		return enabled(s.Enable.Diagnostics)
	case plugin.SettingCompletions:
		return enabled(s.Enable.Completions)
	case plugin.SettingDefinitions:
		return enabled(s.Enable.Definitions)
	case plugin.SettingFormat:
		return enabled(s.Enable.Format)
	default:
		return false
	}
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}
