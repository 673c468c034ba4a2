package api

import (
	"context"
	"net/http"

	"github.com/climbreels/cli/pkg/logger"
)

// GetGyms lists every gym
func GetGyms(ctx context.Context) ([]Gym, error) {
	logger.Debug("Fetching gyms")

	resp, err := send(newRequest(ctx), http.MethodGet, "/gyms", "fetching gyms")
	if err != nil {
		return nil, err
	}

	var gyms []Gym
	if err := decode(resp, &gyms, "fetching gyms"); err != nil {
		return nil, err
	}
	return gyms, nil
}

// GetGymsWithVideos lists gyms that have at least one video, with their
// videos populated
func GetGymsWithVideos(ctx context.Context) ([]Gym, error) {
	logger.Debug("Fetching gyms with videos")

	resp, err := send(newRequest(ctx), http.MethodGet, "/gyms/gyms-with-videos", "fetching gyms with videos")
	if err != nil {
		return nil, err
	}

	var gyms []Gym
	if err := decode(resp, &gyms, "fetching gyms with videos"); err != nil {
		return nil, err
	}
	return gyms, nil
}
