package reelsui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/formatter"
	"github.com/climbreels/cli/pkg/media"
	"github.com/climbreels/cli/pkg/reels"
)

// View implements tea.Model.
func (model Model) View() string {
	if model.height == 0 {
		return ""
	}

	var body []string
	switch {
	case model.loading:
		body = []string{model.spinner.View() + " Loading reels..."}
	case model.commentsOpen:
		body = model.commentsLines()
	case model.feed.Len() == 0:
		body = []string{model.style(model.theme.FaintText).Render("No reels to show.")}
	default:
		body = model.feedLines()
	}

	lines := fit(body, model.feedHeight())
	lines = append(lines, model.noticeLine(), model.helpLine())
	return strings.Join(lines, "\n")
}

func (model Model) style(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color)
}

// feedLines renders the screen-sized window of the card strip starting
// at the scroll offset. At most two cards are on screen.
func (model Model) feedLines() []string {
	height := model.feedHeight()
	first := model.offset / height

	var strip []string
	for i := first; i <= first+1 && i < model.feed.Len(); i++ {
		strip = append(strip, fit(model.cardLines(i), height)...)
	}

	top := model.offset - first*height
	return strip[top:min(top+height, len(strip))]
}

// cardLines renders one reel card, unpadded.
func (model Model) cardLines(index int) []string {
	video, _ := model.feed.Video(index)
	width := model.width - 2

	var player media.Player
	if index < len(model.players) {
		player = model.players[index]
	}
	indicator := media.Indicator(player)
	indicatorColor := model.theme.Paused
	if player != nil && player.Playing() {
		indicatorColor = model.theme.Playing
	}

	header := model.style(indicatorColor).Render(indicator) + " " +
		model.style(model.theme.Author).Bold(true).Render(formatter.Truncate(video.Profile.DisplayName(), width/2))
	if video.DifficultyLevel != "" {
		header += "  " + model.style(model.theme.Grade).Render(video.DifficultyLevel)
	}

	lines := []string{
		model.style(model.theme.BorderLine).Render(strings.Repeat("─", max(width, 1))),
		header,
		"",
	}
	if video.Description != "" {
		lines = append(lines, model.style(model.theme.NormalText).Render(formatter.Truncate(video.Description, width)))
	}
	lines = append(lines,
		model.style(model.theme.FaintText).Render(formatter.Truncate(video.VideoURL, width)),
		"",
		model.statsLine(index, video),
	)
	return lines
}

func (model Model) statsLine(index int, video *api.Video) string {
	heart := "♡"
	heartColor := model.theme.FaintText
	if model.feed.IsLiked(index, model.options.UserID) {
		heart, heartColor = "♥", model.theme.Liked
	}

	saved := model.style(model.theme.FaintText).Render("☆ save")
	if model.feed.IsSaved(video.ID) {
		saved = model.style(model.theme.Saved).Render("★ saved")
	}

	return fmt.Sprintf("%s %d   %s %d   %s",
		model.style(heartColor).Render(heart), reels.LikeCount(*video),
		model.style(model.theme.NormalText).Render("💬"), len(video.Comments),
		saved,
	)
}

// commentsLines renders the comments panel: title, scrollable list and
// the input line.
func (model Model) commentsLines() []string {
	video, err := model.feed.Video(model.commentsIndex)
	title := "Comments"
	if err == nil {
		title = fmt.Sprintf("Comments on %s's reel (%d)", video.Profile.DisplayName(), len(video.Comments))
	}

	lines := []string{model.style(model.theme.Author).Bold(true).Render(title)}
	lines = append(lines, fit(strings.Split(model.commentsView.View(), "\n"), model.commentsView.Height)...)
	lines = append(lines,
		model.style(model.theme.BorderLine).Render(strings.Repeat("─", max(model.width-2, 1))),
		model.input.View(),
	)
	return lines
}

// refreshComments reloads the comments viewport from the feed.
func (model *Model) refreshComments() {
	video, err := model.feed.Video(model.commentsIndex)
	if err != nil {
		model.commentsView.SetContent("")
		return
	}
	if len(video.Comments) == 0 {
		model.commentsView.SetContent(model.style(model.theme.FaintText).Render("No comments yet."))
		return
	}

	now := time.Now()
	var sb strings.Builder
	for i, comment := range video.Comments {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(model.style(model.theme.Author).Render(comment.Profile.DisplayName()))
		sb.WriteString(model.style(model.theme.FaintText).Render(" · " + formatter.Ago(comment.CreatedAt, now)))
		sb.WriteString("\n  ")
		sb.WriteString(model.style(model.theme.NormalText).Render(comment.Text))
	}
	model.commentsView.SetContent(sb.String())
}

func (model Model) noticeLine() string {
	notice := model.feed.Notice()
	if notice == "" {
		return ""
	}
	return model.style(model.theme.Notice).Render(notice) +
		model.style(model.theme.FaintText).Render("  (x to dismiss)")
}

func (model Model) helpLine() string {
	if model.commentsOpen {
		return model.help.ShortHelpView(model.keys.commentHelp())
	}
	return model.help.ShortHelpView(model.keys.feedHelp())
}

// fit pads or cuts lines to exactly height entries.
func fit(lines []string, height int) []string {
	if len(lines) >= height {
		return lines[:height]
	}
	padded := make([]string, height)
	copy(padded, lines)
	return padded
}
