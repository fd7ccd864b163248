package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectError    bool
	}{
		{
			name:           "help flag",
			args:           []string{"--help"},
			expectedOutput: "Event manager server",
		},
		{
			name:           "short help flag",
			args:           []string{"-h"},
			expectedOutput: "Event manager server",
		},
		{
			name:           "invalid flag",
			args:           []string{"--invalid-flag"},
			expectedOutput: "unknown flag: --invalid-flag",
			expectError:    true,
		},
		{
			name:           "migrate help",
			args:           []string{"migrate", "--help"},
			expectedOutput: "server migrate down 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand()

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			output := buf.String()

			if tt.expectError && err == nil {
				t.Errorf("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !strings.Contains(output, tt.expectedOutput) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.expectedOutput, output)
			}
		})
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	cmd := newRootCommand()

	for _, flag := range []string{"log-level", "log-format"} {
		if f := cmd.PersistentFlags().Lookup(flag); f == nil {
			t.Errorf("expected persistent flag %q to be defined", flag)
		}
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"serve", "migrate", "token", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := newServeCommand(&rootOptions{})

	for _, flag := range []string{"host", "port"} {
		if f := cmd.Flags().Lookup(flag); f == nil {
			t.Errorf("expected serve flag %q to be defined", flag)
		}
	}
}

func TestLoadConfigAppliesLogFlags(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("APP_LOG_LEVEL", "info")

	cfg, err := loadConfig(&rootOptions{logLevel: "debug", logFormat: "json"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected log format json, got %q", cfg.Log.Format)
	}
}

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "default", args: nil, want: 1},
		{name: "explicit", args: []string{"3"}, want: 3},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "not a number", args: []string{"all"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSteps(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d steps, got %d", tt.want, got)
			}
		})
	}
}
