package media

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorPlayer(t *testing.T) {
	p := NewIndicatorPlayer()
	assert.False(t, p.Playing())
	assert.Equal(t, "⏸", Indicator(p))

	require.NoError(t, p.Play())
	assert.True(t, p.Playing())
	assert.Equal(t, "▶", Indicator(p))

	p.Pause()
	assert.False(t, p.Playing())
}

func TestIndicator_Nil(t *testing.T) {
	assert.Equal(t, "⏸", Indicator(nil))
}

func TestNewPlayer(t *testing.T) {
	tests := []struct {
		command string
		want    interface{}
	}{
		{"", &IndicatorPlayer{}},
		{"   ", &IndicatorPlayer{}},
		{"mpv --really-quiet", &CommandPlayer{}},
	}

	for _, tt := range tests {
		assert.IsType(t, tt.want, NewPlayer(tt.command, "https://cdn/v.mp4"), "command %q", tt.command)
	}
}

func TestCommandPlayer_NoCommand(t *testing.T) {
	p := NewCommandPlayer("", "https://cdn/v.mp4")
	assert.ErrorIs(t, p.Play(), ErrNoCommand)
	assert.False(t, p.Playing())
}

func TestCommandPlayer_MissingBinary(t *testing.T) {
	p := NewCommandPlayer("climbreels-no-such-player", "https://cdn/v.mp4")
	assert.Error(t, p.Play())
	assert.False(t, p.Playing())
}

func TestCommandPlayer_PlayPause(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	// "sleep 30": the URL argument doubles as the duration.
	p := NewCommandPlayer("sleep", "30")
	require.NoError(t, p.Play())
	assert.True(t, p.Playing())

	// Playing again keeps the same process.
	require.NoError(t, p.Play())
	assert.True(t, p.Playing())

	p.Pause()
	assert.False(t, p.Playing())
	p.Pause()
}

func TestCommandPlayer_ExitClearsHandle(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	p := NewCommandPlayer("true", "ignored")
	require.NoError(t, p.Play())

	assert.Eventually(t, func() bool { return !p.Playing() }, 5*time.Second, 10*time.Millisecond)
}
