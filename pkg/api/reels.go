package api

import (
	"context"

	"github.com/climbreels/cli/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// FetchReels lists every video and then fetches each video's comments.
// The comment requests run concurrently, at most concurrency at a time
// (0 means no limit), and are joined before returning. Any failure fails
// the whole fetch.
func FetchReels(ctx context.Context, concurrency int) ([]Video, error) {
	videos, err := GetAllVideos(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i := range videos {
		g.Go(func() error {
			comments, err := GetComments(gctx, videos[i].ID)
			if err != nil {
				return err
			}
			videos[i].Comments = comments
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Fetched reels", "count", len(videos))
	return videos, nil
}
