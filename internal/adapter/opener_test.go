package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type startCall struct {
	name string
	args []string
}

// recordingOpener replaces both launch paths with recorders
func recordingOpener(command string, args []string, err error) (*Opener, *[]startCall, *[]string) {
	var calls []startCall
	var opened []string
	o := NewOpener(command, args, NullLogger())
	o.start = func(name string, args ...string) error {
		calls = append(calls, startCall{name: name, args: args})
		return err
	}
	o.openURL = func(url string) error {
		opened = append(opened, url)
		return err
	}
	return o, &calls, &opened
}

func TestOpener_ConfiguredCommand(t *testing.T) {
	o, calls, opened := recordingOpener("firefox", []string{"--new-tab"}, nil)

	require.NoError(t, o.Open("https://example.org/84.html"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "firefox", (*calls)[0].name)
	assert.Equal(t, []string{"--new-tab", "https://example.org/84.html"}, (*calls)[0].args)
	assert.Empty(t, *opened)
}

func TestOpener_SystemDefaultUsesBrowser(t *testing.T) {
	o, calls, opened := recordingOpener("", nil, nil)

	require.NoError(t, o.Open("https://example.org"))
	assert.Empty(t, *calls)
	assert.Equal(t, []string{"https://example.org"}, *opened)
}

func TestOpener_Errors(t *testing.T) {
	o, _, _ := recordingOpener("nope", nil, errors.New("not found"))
	assert.Error(t, o.Open("https://example.org"))
	assert.Error(t, o.Open(""))

	o, _, _ = recordingOpener("", nil, errors.New("no handler"))
	assert.ErrorContains(t, o.Open("https://example.org"), "failed to open link")
}
