// Package media holds the things a reel card can play into: an in-terminal
// indicator and an external video player process.
package media

import (
	"errors"
	"os/exec"
	"strings"
	"sync"

	"github.com/climbreels/cli/pkg/logger"
)

// Player is one playable element of the feed.
type Player interface {
	Play() error
	Pause()
	Playing() bool
}

const (
	playingGlyph = "▶"
	pausedGlyph  = "⏸"
)

// IndicatorPlayer only tracks state; the viewer renders it as a glyph.
type IndicatorPlayer struct {
	mu      sync.Mutex
	playing bool
}

// NewIndicatorPlayer returns a paused indicator.
func NewIndicatorPlayer() *IndicatorPlayer {
	return &IndicatorPlayer{}
}

func (p *IndicatorPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	return nil
}

func (p *IndicatorPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *IndicatorPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Indicator returns the glyph for the current state.
func Indicator(p Player) string {
	if p != nil && p.Playing() {
		return playingGlyph
	}
	return pausedGlyph
}

// ErrNoCommand is returned when a CommandPlayer has nothing to run.
var ErrNoCommand = errors.New("no player command configured")

// CommandPlayer runs an external player (e.g. "mpv --really-quiet") with
// the video URL appended as the last argument. Pause stops the process.
type CommandPlayer struct {
	args []string
	url  string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewCommandPlayer builds a player for url. command is split on
// whitespace; quoting is not supported.
func NewCommandPlayer(command, url string) *CommandPlayer {
	return &CommandPlayer{args: strings.Fields(command), url: url}
}

func (p *CommandPlayer) Play() error {
	if len(p.args) == 0 {
		return ErrNoCommand
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd != nil {
		return nil
	}

	args := append(append([]string{}, p.args[1:]...), p.url)
	cmd := exec.Command(p.args[0], args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	p.cmd = cmd
	logger.Debug("Started player", "command", p.args[0], "url", p.url, "pid", cmd.Process.Pid)

	go p.reap(cmd)
	return nil
}

// reap waits for the process so it does not linger as a zombie, and
// clears the handle if the player exited on its own.
func (p *CommandPlayer) reap(cmd *exec.Cmd) {
	err := cmd.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd == cmd {
		p.cmd = nil
		logger.Debug("Player exited", "url", p.url, "err", err)
	}
}

func (p *CommandPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd == nil {
		return
	}
	if err := p.cmd.Process.Kill(); err != nil {
		logger.Warn("Cannot stop player", "url", p.url, "err", err)
	}
	p.cmd = nil
}

func (p *CommandPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}

// NewPlayer returns a CommandPlayer when command is set, otherwise an
// IndicatorPlayer.
func NewPlayer(command, url string) Player {
	if strings.TrimSpace(command) == "" {
		return NewIndicatorPlayer()
	}
	return NewCommandPlayer(command, url)
}
