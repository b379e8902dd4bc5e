package command

import (
	"context"
	"testing"
)

func TestValidateSessionName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "dotfiles", false},
		{"name with spaces", "my project", false},
		{"path-like name", "~/code/api", false},
		{"name with quotes", `say "hi"`, false},
		{"empty name", "", true},
		{"blank name", "   ", true},
		{"newline", "a\nb", true},
		{"nul byte", "a\x00b", true},
		{"leading dash", "-scratch", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSessionName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSessionName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWindowClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"reverse dns", "me.mloeper.wezterm_tmux_main", false},
		{"plain", "kitty", false},
		{"with hyphen", "org-wezfurlong-wezterm", false},
		{"empty", "", true},
		{"space", "my class", true},
		{"selector injection", "kitty,title:x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWindowClass(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWindowClass(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBinary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bare name", "sesh", false},
		{"absolute path", "/usr/local/bin/sesh", false},
		{"path with space", "/Applications/My Term/bin/term", false},
		{"empty", "", true},
		{"command injection semicolon", "sesh; rm -rf /", true},
		{"command injection dollar", "$(whoami)", true},
		{"command injection backtick", "`whoami`", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBinary(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateBinary(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSafeBuilder_Build(t *testing.T) {
	sb := NewSafeBuilder()
	ctx := context.Background()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := sb.Build(ctx, "echo", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.name != "echo" {
			t.Errorf("expected command name 'echo', got %q", cmd.name)
		}
		if len(cmd.args) != 1 || cmd.args[0] != "hello" {
			t.Errorf("expected args ['hello'], got %v", cmd.args)
		}
		if cmd.String() != "echo hello" {
			t.Errorf("unexpected command string %q", cmd.String())
		}
	})

	t.Run("empty command name", func(t *testing.T) {
		_, err := sb.Build(ctx, "")
		if err == nil {
			t.Error("expected error for empty command name")
		}
	})

	t.Run("env is applied", func(t *testing.T) {
		cmd, err := sb.Build(ctx, "echo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		execCmd := cmd.WithEnv([]string{"PATH=/opt/bin"}).Exec()
		if len(execCmd.Env) != 1 || execCmd.Env[0] != "PATH=/opt/bin" {
			t.Errorf("expected env to be set, got %v", execCmd.Env)
		}
		if execCmd.WaitDelay != WaitDelay {
			t.Errorf("expected WaitDelay %v, got %v", WaitDelay, execCmd.WaitDelay)
		}
	})
}

func TestSafeBuilder_Validate(t *testing.T) {
	sb := NewSafeBuilder()

	t.Run("valid session name", func(t *testing.T) {
		if err := sb.Validate("sessionName", "dotfiles"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid socket name", func(t *testing.T) {
		if err := sb.Validate("socketName", "a/b"); err == nil {
			t.Error("expected error for invalid socket name")
		}
	})

	t.Run("unknown validator type", func(t *testing.T) {
		if err := sb.Validate("unknownType", "value"); err == nil {
			t.Error("expected error for unknown validator type")
		}
	})
}
