package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/grovetools/seshconnect/pkg/paths"
	"github.com/grovetools/seshconnect/util/pathutil"
)

// Default values applied when the preferences document leaves a field empty.
const (
	DefaultSeshBinary      = "sesh"
	DefaultTmuxBinary      = "tmux"
	DefaultTerminalBinary  = "wezterm"
	DefaultTerminalClass   = "me.mloeper.wezterm_tmux_main"
	DefaultFocusDispatcher = "hyprctl"
)

// Preferences is the user's seshconnect configuration (config.yml).
type Preferences struct {
	// EnvironmentPath is a colon-separated search path used for every
	// external command, e.g. /usr/local/bin:/usr/bin.
	// Can be overridden by the SESHCONNECT_PATH environment variable.
	EnvironmentPath string `yaml:"environment_path,omitempty" json:"environment_path,omitempty" jsonschema:"description=Colon-separated PATH used for external commands (e.g. /usr/local/bin:/usr/bin)"`

	Sesh     SeshConfig     `yaml:"sesh,omitempty" json:"sesh,omitempty" jsonschema:"description=sesh CLI settings"`
	Tmux     TmuxConfig     `yaml:"tmux,omitempty" json:"tmux,omitempty" jsonschema:"description=tmux settings used for the liveness check"`
	Terminal TerminalConfig `yaml:"terminal,omitempty" json:"terminal,omitempty" jsonschema:"description=Terminal window focus settings"`

	// Extensions holds any other top-level sections, such as logging.
	Extensions map[string]interface{} `yaml:",inline" json:"-" jsonschema:"-"`
}

// SeshConfig configures the session manager CLI.
type SeshConfig struct {
	Binary string `yaml:"binary,omitempty" json:"binary,omitempty" jsonschema:"description=sesh executable name or path (default: sesh)"`
	// Config is the sesh.toml consulted for per-session focus flags.
	Config string `yaml:"config,omitempty" json:"config,omitempty" jsonschema:"description=Path to sesh.toml (default: ~/.config/sesh/sesh.toml)"`
}

// TmuxConfig configures the multiplexer liveness check.
type TmuxConfig struct {
	Binary string `yaml:"binary,omitempty" json:"binary,omitempty" jsonschema:"description=tmux executable name or path (default: tmux)"`
	Socket string `yaml:"socket,omitempty" json:"socket,omitempty" jsonschema:"description=Optional tmux server socket name (-L),pattern=^[A-Za-z0-9_-]+$"`
}

// TerminalConfig identifies the terminal window to bring forward.
type TerminalConfig struct {
	Class      string `yaml:"class,omitempty" json:"class,omitempty" jsonschema:"description=Compositor window class of the terminal,pattern=^[A-Za-z0-9][A-Za-z0-9._-]*$"`
	Binary     string `yaml:"binary,omitempty" json:"binary,omitempty" jsonschema:"description=Terminal executable launched when focusing fails (default: wezterm)"`
	Dispatcher string `yaml:"dispatcher,omitempty" json:"dispatcher,omitempty" jsonschema:"description=Compositor control CLI (default: hyprctl)"`
}

// SetDefaults fills empty fields with their defaults.
func (p *Preferences) SetDefaults() {
	if p.Sesh.Binary == "" {
		p.Sesh.Binary = DefaultSeshBinary
	}
	if p.Tmux.Binary == "" {
		p.Tmux.Binary = DefaultTmuxBinary
	}
	if p.Terminal.Binary == "" {
		p.Terminal.Binary = DefaultTerminalBinary
	}
	if p.Terminal.Class == "" {
		p.Terminal.Class = DefaultTerminalClass
	}
	if p.Terminal.Dispatcher == "" {
		p.Terminal.Dispatcher = DefaultFocusDispatcher
	}
}

// SeshConfigPath returns the sesh.toml location: sesh.config when set (with
// ~ and environment variables expanded), otherwise the XDG default.
func (p *Preferences) SeshConfigPath() string {
	if p.Sesh.Config == "" {
		return paths.SeshConfigFile()
	}
	return pathutil.Expand(p.Sesh.Config)
}

// Default returns preferences with every default applied.
func Default() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// UnmarshalExtension decodes a custom top-level section (e.g. "logging")
// into target, which must be a pointer. A missing section leaves target
// untouched.
func (p *Preferences) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := p.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
