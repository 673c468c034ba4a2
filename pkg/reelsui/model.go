// Package reelsui is the terminal reels viewer: a vertically scrolling
// feed of full-height video cards where the card in view plays and the
// rest are paused.
//
// Network calls run as tea.Cmds. Their results come back as messages and
// the feed is changed only in Update, after the server answered.
package reelsui

import (
	"context"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/media"
	"github.com/climbreels/cli/pkg/playback"
	"github.com/climbreels/cli/pkg/reels"
)

// footerHeight is the number of rows below the feed: notice and help.
const footerHeight = 2

// Source is what the viewer needs from the backend.
type Source interface {
	reels.Gateway
	FetchReels(ctx context.Context, concurrency int) ([]api.Video, error)
}

// Options configures a viewer.
type Options struct {
	// UserID is the logged-in user; empty means anonymous.
	UserID string
	// Saved seeds the saved set, usually from the user's profile.
	Saved []string

	Threshold     float64
	Exclusive     bool
	Concurrency   int
	PlayerCommand string

	// Context bounds every request the viewer makes. Defaults to
	// context.Background.
	Context context.Context
}

// reelsLoadedMsg carries the result of fetching the feed.
type reelsLoadedMsg struct {
	videos []api.Video
	err    error
}

// likeResultMsg, saveResultMsg and commentResultMsg carry the result of
// an interaction. videoID guards against applying a result to a
// different list after a reload.
type likeResultMsg struct {
	index   int
	videoID string
	err     error
}

type saveResultMsg struct {
	index   int
	videoID string
	resp    *api.SaveResponse
	err     error
}

type commentResultMsg struct {
	index   int
	videoID string
	comment *api.Comment
	err     error
}

// Model is the bubbletea model of the viewer.
type Model struct {
	source  Source
	options Options
	keys    KeyMap
	theme   Theme
	help    help.Model

	feed       *reels.Feed
	controller *playback.Controller
	players    []media.Player

	loading bool
	loadErr error
	spinner spinner.Model

	width  int
	height int
	offset int

	commentsOpen  bool
	commentsIndex int
	input         textinput.Model
	commentsView  viewport.Model
}

// NewModel creates a viewer that loads its feed from source on Init.
func NewModel(source Source, options Options) Model {
	if options.Context == nil {
		options.Context = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "Add a comment..."
	input.CharLimit = 500

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	feed := reels.NewFeed(nil)
	feed.SetSaved(options.Saved)

	return Model{
		source:       source,
		options:      options,
		keys:         DefaultKeyMap,
		theme:        DefaultTheme,
		help:         help.New(),
		feed:         feed,
		controller:   playback.NewController(options.Threshold, options.Exclusive),
		loading:      true,
		spinner:      spin,
		input:        input,
		commentsView: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.spinner.Tick, model.fetch())
}

func (model Model) fetch() tea.Cmd {
	source, ctx, limit := model.source, model.options.Context, model.options.Concurrency
	return func() tea.Msg {
		videos, err := source.FetchReels(ctx, limit)
		return reelsLoadedMsg{videos: videos, err: err}
	}
}

// Close pauses every player and stops observing. The command calls it
// after the program exits, whatever the reason.
func (model Model) Close() {
	model.controller.Detach()
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		index, within := model.position()
		model.width = message.Width
		model.height = message.Height
		model.offset = index*model.feedHeight() + int(math.Round(within*float64(model.feedHeight())))
		model.commentsView.Width = message.Width
		model.commentsView.Height = max(model.feedHeight()-3, 1)
		model.input.Width = max(message.Width-4, 10)
		model.help.Width = message.Width
		model.clampOffset()
		model.observe()
		model.refreshComments()
		return model, nil

	case spinner.TickMsg:
		if !model.loading {
			return model, nil
		}
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		return model, command

	case reelsLoadedMsg:
		return model.handleLoaded(message), nil

	case likeResultMsg:
		_ = model.feed.ResolveLike(message.index, message.videoID, model.options.UserID, message.err)
		return model, nil

	case saveResultMsg:
		_ = model.feed.ResolveSave(message.videoID, message.resp, message.err)
		return model, nil

	case commentResultMsg:
		if model.feed.ResolveComment(message.index, message.videoID, message.comment, message.err) == nil {
			model.input.SetValue("")
			model.refreshComments()
			model.commentsView.GotoBottom()
		}
		return model, nil

	case tea.KeyMsg:
		if model.commentsOpen {
			return model.handleCommentKeys(message)
		}
		return model.handleFeedKeys(message)
	}

	return model, nil
}

func (model Model) handleLoaded(message reelsLoadedMsg) Model {
	model.loading = false
	model.controller.Detach()
	model.players = nil
	model.offset = 0

	if message.err != nil {
		logger.Error("Error fetching reels", "err", message.err)
		model.loadErr = message.err
		model.feed.Replace(nil)
		model.feed.SetNotice(reels.NoticeLoadFailed)
		return model
	}

	model.loadErr = nil
	model.feed.Replace(message.videos)
	model.players = make([]media.Player, len(message.videos))
	for i, video := range message.videos {
		model.players[i] = media.NewPlayer(model.options.PlayerCommand, video.VideoURL)
	}
	model.controller.Attach(model.players)
	model.observe()
	return model
}

func (model Model) handleFeedKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.controller.Detach()
		return model, tea.Quit

	case key.Matches(message, model.keys.Refresh):
		model.controller.Detach()
		model.loading = true
		return model, tea.Batch(model.spinner.Tick, model.fetch())

	case key.Matches(message, model.keys.Dismiss):
		model.feed.DismissNotice()
		return model, nil
	}

	if model.loading || model.feed.Len() == 0 {
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Down):
		model.scrollBy(1)
	case key.Matches(message, model.keys.Up):
		model.scrollBy(-1)
	case key.Matches(message, model.keys.PageDown):
		model.snapTo(model.current() + 1)
	case key.Matches(message, model.keys.PageUp):
		model.snapTo(model.current() - 1)
	case key.Matches(message, model.keys.Home):
		model.snapTo(0)
	case key.Matches(message, model.keys.End):
		model.snapTo(model.feed.Len() - 1)

	case key.Matches(message, model.keys.Like):
		return model, model.like(model.current())
	case key.Matches(message, model.keys.Save):
		return model, model.save(model.current())
	case key.Matches(message, model.keys.Comments):
		model.commentsOpen = true
		model.commentsIndex = model.current()
		model.refreshComments()
		model.commentsView.GotoBottom()
		focus := model.input.Focus()
		return model, focus
	}
	return model, nil
}

func (model Model) handleCommentKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		model.controller.Detach()
		return model, tea.Quit

	case key.Matches(message, model.keys.Close):
		model.commentsOpen = false
		model.input.Blur()
		return model, nil

	case key.Matches(message, model.keys.Submit):
		return model, model.comment(model.commentsIndex, model.input.Value())

	case message.Type == tea.KeyPgUp:
		model.commentsView.HalfViewUp()
		return model, nil

	case message.Type == tea.KeyPgDown:
		model.commentsView.HalfViewDown()
		return model, nil
	}

	var command tea.Cmd
	model.input, command = model.input.Update(message)
	return model, command
}

// Interactions. Each validates locally, then returns a command that
// performs the request; nil means nothing is sent.

func (model Model) like(index int) tea.Cmd {
	userID := model.options.UserID
	videoID, err := model.feed.BeginLike(index, userID)
	if err != nil {
		return nil
	}
	source, ctx := model.source, model.options.Context
	return func() tea.Msg {
		_, err := source.ToggleLike(ctx, videoID, userID)
		return likeResultMsg{index: index, videoID: videoID, err: err}
	}
}

func (model Model) save(index int) tea.Cmd {
	userID := model.options.UserID
	videoID, err := model.feed.BeginSave(index, userID)
	if err != nil {
		return nil
	}
	source, ctx := model.source, model.options.Context
	return func() tea.Msg {
		resp, err := source.ToggleSave(ctx, videoID, userID)
		return saveResultMsg{index: index, videoID: videoID, resp: resp, err: err}
	}
}

func (model Model) comment(index int, text string) tea.Cmd {
	userID := model.options.UserID
	videoID, text, err := model.feed.BeginComment(index, userID, text)
	if err != nil {
		return nil
	}
	source, ctx := model.source, model.options.Context
	return func() tea.Msg {
		comment, err := source.AddComment(ctx, videoID, text, userID)
		return commentResultMsg{index: index, videoID: videoID, comment: comment, err: err}
	}
}

// Scrolling and playback.

// feedHeight is the height of one card: the whole screen minus the
// footer.
func (model Model) feedHeight() int {
	return max(model.height-footerHeight, 1)
}

func (model Model) maxOffset() int {
	return max((model.feed.Len()-1)*model.feedHeight(), 0)
}

func (model *Model) clampOffset() {
	model.offset = min(max(model.offset, 0), model.maxOffset())
}

// position returns the card at the top of the screen and how far into
// it the screen starts, as a fraction of the card height.
func (model Model) position() (int, float64) {
	if model.height == 0 {
		return 0, 0
	}
	height := model.feedHeight()
	return model.offset / height, float64(model.offset%height) / float64(height)
}

// current is the card covering most of the screen.
func (model Model) current() int {
	height := model.feedHeight()
	index := (model.offset + height/2) / height
	return min(index, max(model.feed.Len()-1, 0))
}

func (model *Model) scrollBy(lines int) {
	model.offset += lines
	model.clampOffset()
	model.observe()
}

func (model *Model) snapTo(index int) {
	model.offset = index * model.feedHeight()
	model.clampOffset()
	model.observe()
}

// observe feeds the current visibility of every card to the playback
// controller.
func (model *Model) observe() {
	if model.height == 0 || model.feed.Len() == 0 {
		return
	}
	height := model.feedHeight()
	ratios := playback.VisibilityAll(model.feed.Len(), height, model.offset, height)
	if err := model.controller.Observe(ratios); err != nil {
		logger.Warn("Playback observe failed", "err", err)
	}
}
