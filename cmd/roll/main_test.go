package main

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/rolldice/internal/platform/config"
)

// TestRollCommand_Exit runs main in a child process because it exits through
// os.Exit. The child reads its command line from TEST_ROLL_ARGS.
func TestRollCommand_Exit(t *testing.T) {
	if os.Getenv("TEST_ROLL_MAIN") == "1" {
		os.Args = []string{"roll"}
		if args := os.Getenv("TEST_ROLL_ARGS"); args != "" {
			os.Args = append(os.Args, strings.Split(args, "\n")...)
		}
		main()
		os.Exit(0)
	}

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "trailing separator",
			args:       []string{"3+"},
			wantCode:   config.ExitFailure,
			wantStderr: "roll: invalid expression 3+: term 2 is empty",
		},
		{
			name:       "invalid modifier",
			args:       []string{"abc+3"},
			wantCode:   config.ExitFailure,
			wantStderr: "roll: invalid modifier abc: must be an integer",
		},
		{
			name:       "missing expression",
			wantCode:   config.ExitUsage,
			wantStderr: "usage: roll [flags] <expression>",
		},
		{
			name:       "localized usage",
			args:       []string{"-locale", "pt-BR"},
			wantCode:   config.ExitUsage,
			wantStderr: "uso: roll [opções] <expressão>",
		},
		{
			name:       "single die",
			args:       []string{"1d1"},
			wantStdout: "Rolling 1d1: \n1\n",
		},
		{
			name:       "seeded breakdown",
			args:       []string{"-seed", "3", "-breakdown", "1d1+2"},
			wantStdout: "Rolling 1d1+2: \n  1d1: 1 = 1\n  2: 2\n3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestRollCommand_Exit$")
			cmd.Env = append(environWithoutConfig(),
				"TEST_ROLL_MAIN=1",
				"TEST_ROLL_ARGS="+strings.Join(tt.args, "\n"),
			)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()

			code := 0
			if err != nil {
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
				}
				code = exitErr.ExitCode()
			}
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if tt.wantCode != 0 {
				if stdout.Len() != 0 {
					t.Fatalf("expected empty stdout, got %q", stdout.String())
				}
				if !strings.Contains(stderr.String(), tt.wantStderr) {
					t.Fatalf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
				}
				return
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Fatalf("stdout = %q, want %q", got, tt.wantStdout)
			}
		})
	}
}

// environWithoutConfig drops ROLLDICE_* so the host environment stays
// out of the child's config.
func environWithoutConfig() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "ROLLDICE_") {
			env = append(env, kv)
		}
	}
	return env
}
