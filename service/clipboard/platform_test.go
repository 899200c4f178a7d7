package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookPath(installed ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, candidate := range installed {
			if candidate == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
}

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestPlatform_Command(t *testing.T) {
	testCases := []struct {
		description string
		platform    *Platform
		expect      string
	}{
		{description: "windows", platform: &Platform{OS: "windows"}, expect: "clip.exe"},
		{description: "darwin", platform: &Platform{OS: "darwin"}, expect: "pbcopy"},
		{description: "linux xclip preferred", platform: &Platform{OS: "linux", LookPath: lookPath("xsel", "xclip")}, expect: "xclip -selection clipboard"},
		{description: "linux xsel fallback", platform: &Platform{OS: "linux", LookPath: lookPath("xsel")}, expect: "xsel --clipboard --input"},
		{description: "linux none", platform: &Platform{OS: "linux", LookPath: lookPath()}, expect: ""},
		{description: "linux without probe", platform: &Platform{OS: "linux"}, expect: ""},
		{description: "unknown os", platform: &Platform{OS: "plan9", LookPath: lookPath("xclip")}, expect: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual := testCase.platform.Command()
			if testCase.expect == "" {
				assert.Nil(t, actual)
				return
			}
			if assert.NotNil(t, actual) {
				assert.Equal(t, testCase.expect, actual.String())
			}
		})
	}
}

func TestPlatform_HasDisplay(t *testing.T) {
	assert.True(t, (&Platform{OS: "darwin"}).HasDisplay())
	assert.True(t, (&Platform{OS: "windows"}).HasDisplay())
	assert.False(t, (&Platform{OS: "linux"}).HasDisplay())
	assert.False(t, (&Platform{OS: "linux", Getenv: env(nil)}).HasDisplay())
	assert.True(t, (&Platform{OS: "linux", Getenv: env(map[string]string{"DISPLAY": ":0"})}).HasDisplay())
	assert.True(t, (&Platform{OS: "freebsd", Getenv: env(map[string]string{"WAYLAND_DISPLAY": "wayland-0"})}).HasDisplay())
}

func TestHost(t *testing.T) {
	assert.Same(t, Host(), Host())
	assert.NotEmpty(t, Host().OS)
}
