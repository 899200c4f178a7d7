package clipboard

import (
	"os"
	"os/exec"
	"runtime"
	"sync"
)

// Platform describes the host operating system and how to probe it.
type Platform struct {
	OS       string
	LookPath func(file string) (string, error)
	Getenv   func(key string) string
}

var (
	hostOnce sync.Once
	host     *Platform
)

// Host returns the platform of the running process; it is computed once.
func Host() *Platform {
	hostOnce.Do(func() {
		host = &Platform{OS: runtime.GOOS, LookPath: exec.LookPath, Getenv: os.Getenv}
	})
	return host
}

// CommandLine is an executable with its arguments
type CommandLine struct {
	Name string
	Args []string
}

func (c *CommandLine) String() string {
	ret := c.Name
	for _, arg := range c.Args {
		ret += " " + arg
	}
	return ret
}

var linuxCommands = []*CommandLine{
	{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	{Name: "xsel", Args: []string{"--clipboard", "--input"}},
}

// Command returns the clipboard command for the platform or nil when none is installed.
func (p *Platform) Command() *CommandLine {
	switch p.OS {
	case "windows":
		return &CommandLine{Name: "clip.exe"}
	case "darwin":
		return &CommandLine{Name: "pbcopy"}
	case "linux":
		for _, candidate := range linuxCommands {
			if p.exists(candidate.Name) {
				return candidate
			}
		}
	}
	return nil
}

// HasDisplay reports whether a graphical session is reachable.
func (p *Platform) HasDisplay() bool {
	switch p.OS {
	case "windows", "darwin":
		return true
	}
	if p.Getenv == nil {
		return false
	}
	return p.Getenv("DISPLAY") != "" || p.Getenv("WAYLAND_DISPLAY") != ""
}

func (p *Platform) exists(name string) bool {
	if p.LookPath == nil {
		return false
	}
	_, err := p.LookPath(name)
	return err == nil
}
