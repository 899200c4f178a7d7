package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const commandName = "command"

// Command represents the result of executing the clipboard command
type Command struct {
	Input  string `json:"input,omitempty"`  // The command that was executed
	Output string `json:"output,omitempty"` // Combined output from the command
	Status int    `json:"status,omitempty"` // Exit code of the command
}

// Runner executes a command feeding stdin to it.
type Runner func(ctx context.Context, command *CommandLine, stdin string) (*Command, error)

// Exec runs the command as a child process.
func Exec(ctx context.Context, command *CommandLine, stdin string) (*Command, error) {
	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &output
	cmd.Stderr = &output
	err := cmd.Run()
	result := &Command{Input: command.String(), Output: strings.TrimSpace(output.String())}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.Status = exitErr.ExitCode()
		return result, nil
	}
	return result, err
}

// Shell writes to the clipboard through an operating system command.
type Shell struct {
	platform *Platform
	run      Runner
	timeout  time.Duration
	command  *CommandLine
	resolved bool
}

func (s *Shell) Name() string {
	return commandName
}

func (s *Shell) Available(ctx context.Context) bool {
	return s.resolve() != nil
}

// resolve probes the platform once and remembers the selected command.
func (s *Shell) resolve() *CommandLine {
	if !s.resolved {
		s.command = s.platform.Command()
		s.resolved = true
	}
	return s.command
}

func (s *Shell) Copy(ctx context.Context, text string) error {
	command := s.resolve()
	if command == nil {
		return ErrNoCommand
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	result, err := s.run(ctx, command, text)
	if err != nil {
		return fmt.Errorf("failed to run %v: %w", command, err)
	}
	if result.Status != 0 {
		if result.Output != "" {
			return fmt.Errorf("%v exited with status %d: %s", command, result.Status, result.Output)
		}
		return fmt.Errorf("%v exited with status %d", command, result.Status)
	}
	return nil
}

// NewShell creates a command strategy
func NewShell(platform *Platform, run Runner, timeout time.Duration) *Shell {
	if run == nil {
		run = Exec
	}
	return &Shell{platform: platform, run: run, timeout: timeout}
}
