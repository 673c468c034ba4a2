package playback

import (
	"errors"
	"fmt"
	"sync"

	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/media"
)

// ErrRatioCount is returned by Observe when the number of ratios does not
// match the number of attached players.
var ErrRatioCount = errors.New("visibility ratios do not match attached players")

// Controller drives a list of players from visibility observations.
//
// In exclusive mode at most one player is playing after every Observe.
// With exclusivity off every player at or above the threshold plays and
// every player below it pauses, so several may play at once.
type Controller struct {
	threshold float64
	exclusive bool

	mu      sync.Mutex
	players []media.Player
	active  int
}

// NewController returns a detached controller. A threshold outside (0,1]
// falls back to DefaultThreshold.
func NewController(threshold float64, exclusive bool) *Controller {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Controller{threshold: threshold, exclusive: exclusive, active: -1}
}

// Threshold returns the visibility threshold in use.
func (c *Controller) Threshold() float64 {
	return c.threshold
}

// Attach starts observing players, replacing any list attached before.
// An empty list is ignored.
func (c *Controller) Attach(players []media.Player) {
	if len(players) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.detachLocked()
	c.players = append([]media.Player(nil), players...)
	logger.Debug("Playback attached", "players", len(players), "exclusive", c.exclusive)
}

// Detach pauses everything and forgets the players. Observe is a no-op
// until the next Attach.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detachLocked()
}

func (c *Controller) detachLocked() {
	if c.players == nil {
		return
	}
	for _, p := range c.players {
		if p.Playing() {
			p.Pause()
		}
	}
	c.players = nil
	c.active = -1
	logger.Debug("Playback detached")
}

// Attached reports whether a list of players is being observed.
func (c *Controller) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.players != nil
}

// Active returns the element most recently selected to play.
func (c *Controller) Active() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.active >= 0
}

// Observe applies one visibility pass. ratios[i] is the visible fraction
// of player i.
func (c *Controller) Observe(ratios []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.players == nil {
		return nil
	}
	if len(ratios) != len(c.players) {
		return fmt.Errorf("%w: %d ratios for %d players", ErrRatioCount, len(ratios), len(c.players))
	}

	idx, ok := SelectActive(ratios, c.threshold)
	if !ok {
		idx = -1
	}
	c.active = idx

	if c.exclusive {
		for i, p := range c.players {
			if i != idx && p.Playing() {
				p.Pause()
			}
		}
		if ok {
			c.play(idx)
		}
		return nil
	}

	for i, p := range c.players {
		if ratios[i] >= c.threshold {
			c.play(i)
		} else if p.Playing() {
			p.Pause()
		}
	}
	return nil
}

func (c *Controller) play(i int) {
	p := c.players[i]
	if p.Playing() {
		return
	}
	if err := p.Play(); err != nil {
		logger.Warn("Cannot play video", "index", i, "err", err)
	}
}
