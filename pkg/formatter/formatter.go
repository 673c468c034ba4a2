// Package formatter turns backend records into the rows and fields the
// output package prints.
package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/output"
	"github.com/climbreels/cli/pkg/reels"
)

// Column headers, shared by commands that print the same kind of record.
var (
	VideoHeaders   = []string{"ID", "GRADE", "LIKES", "COMMENTS", "BY", "DESCRIPTION"}
	GymHeaders     = []string{"ID", "NAME", "LOCATION", "VIDEOS"}
	CommentHeaders = []string{"BY", "WHEN", "COMMENT"}
	ProfileHeaders = []string{"ID", "NAME", "LEVEL", "LOCATION"}
)

const descriptionWidth = 48

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// Ago renders a timestamp relative to now ("3h ago").
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func VideoRow(v api.Video) []string {
	return []string{
		v.ID,
		orDash(v.DifficultyLevel),
		fmt.Sprint(reels.LikeCount(v)),
		fmt.Sprint(len(v.Comments)),
		v.Profile.DisplayName(),
		orDash(Truncate(v.Description, descriptionWidth)),
	}
}

func VideoRows(videos []api.Video) [][]string {
	rows := make([][]string, len(videos))
	for i, v := range videos {
		rows[i] = VideoRow(v)
	}
	return rows
}

func GymRows(gyms []api.Gym) [][]string {
	rows := make([][]string, len(gyms))
	for i, g := range gyms {
		rows[i] = []string{g.ID, g.Name, orDash(g.Location), fmt.Sprint(len(g.Videos))}
	}
	return rows
}

func CommentRows(comments []api.Comment, now time.Time) [][]string {
	rows := make([][]string, len(comments))
	for i, c := range comments {
		rows[i] = []string{c.Profile.DisplayName(), Ago(c.CreatedAt, now), c.Text}
	}
	return rows
}

func ProfileRows(profiles []api.Profile) [][]string {
	rows := make([][]string, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		rows[i] = []string{p.ID, p.DisplayName(), orDash(p.ClimbingLevel), orDash(p.Location)}
	}
	return rows
}

// ProfileFields lists a profile for PrintRecord.
func ProfileFields(p *api.Profile) []output.Field {
	email := "-"
	if p.User != nil && p.User.Email != "" {
		email = p.User.Email
	}
	prefs := "-"
	if len(p.Preferences) > 0 {
		prefs = strings.Join(p.Preferences, ", ")
	}
	return []output.Field{
		{Key: "Name", Value: p.DisplayName()},
		{Key: "Email", Value: email},
		{Key: "Profile ID", Value: p.ID},
		{Key: "Climbing level", Value: orDash(p.ClimbingLevel)},
		{Key: "Location", Value: orDash(p.Location)},
		{Key: "Bio", Value: orDash(p.Bio)},
		{Key: "Preferences", Value: prefs},
		{Key: "Saved videos", Value: len(p.SavedVideos)},
	}
}

// VideoFields lists a single video for PrintRecord.
func VideoFields(v *api.Video) []output.Field {
	return []output.Field{
		{Key: "ID", Value: v.ID},
		{Key: "URL", Value: v.VideoURL},
		{Key: "Grade", Value: orDash(v.DifficultyLevel)},
		{Key: "Gym", Value: orDash(string(v.Gym))},
		{Key: "By", Value: v.Profile.DisplayName()},
		{Key: "Likes", Value: reels.LikeCount(*v)},
		{Key: "Description", Value: orDash(v.Description)},
	}
}
