package reels

import (
	"strings"

	"github.com/climbreels/cli/pkg/api"
)

// Grades are the preset difficulty filters offered to the user.
var Grades = []string{"V0", "V1", "V2", "V3", "V4", "V5"}

// FilterByDifficulty keeps the videos whose difficulty label contains
// filter, ignoring case. A blank filter keeps everything.
func FilterByDifficulty(videos []api.Video, filter string) []api.Video {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return videos
	}

	out := make([]api.Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.DifficultyLevel), filter) {
			out = append(out, v)
		}
	}
	return out
}
