package service

import (
	"context"
	"fmt"

	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/formatter"
	"github.com/climbreels/cli/pkg/output"
	"github.com/climbreels/cli/pkg/reels"
)

type GymService struct{}

// NewGymService creates a new gym service
func NewGymService() *GymService {
	return &GymService{}
}

// List prints every gym, or only gyms that have videos.
func (s *GymService) List(ctx context.Context, withVideos bool) ([]api.Gym, error) {
	if _, err := loadSession(); err != nil {
		return nil, err
	}

	var gyms []api.Gym
	var err error
	if withVideos {
		gyms, err = api.GetGymsWithVideos(ctx)
	} else {
		gyms, err = api.GetGyms(ctx)
	}
	if err != nil {
		return nil, err
	}

	return gyms, output.PrintList("Gyms", gyms, formatter.GymHeaders, formatter.GymRows(gyms))
}

// Videos prints a gym's videos, keeping only those whose grade contains
// grade. A blank grade keeps all.
func (s *GymService) Videos(ctx context.Context, gymID, grade string) ([]api.Video, error) {
	if _, err := loadSession(); err != nil {
		return nil, err
	}

	videos, err := api.GetVideosByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	filtered := reels.FilterByDifficulty(videos, grade)
	title := "Videos"
	if grade != "" {
		title = fmt.Sprintf("Videos matching %q", grade)
	}
	return filtered, output.PrintList(title, filtered, formatter.VideoHeaders, formatter.VideoRows(filtered))
}
