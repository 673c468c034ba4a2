package service

import (
	"context"
	"time"

	"github.com/climbreels/cli/pkg/api"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/formatter"
	"github.com/climbreels/cli/pkg/output"
	"github.com/climbreels/cli/pkg/reels"
)

type CommentService struct{}

// NewCommentService creates a new comment service
func NewCommentService() *CommentService {
	return &CommentService{}
}

// List prints the comments on a video.
func (s *CommentService) List(ctx context.Context, videoID string) ([]api.Comment, error) {
	if _, err := loadSession(); err != nil {
		return nil, err
	}

	comments, err := api.GetComments(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return comments, output.PrintList("Comments", comments, formatter.CommentHeaders, formatter.CommentRows(comments, time.Now()))
}

// Add posts a comment as the logged-in user. Blank text is rejected
// without contacting the server.
func (s *CommentService) Add(ctx context.Context, videoID, text string) (*api.Comment, error) {
	text, err := reels.TrimComment(text)
	if err != nil {
		return nil, clierrors.ValidationError("comment", "cannot be empty")
	}
	creds, err := requireSession(reels.NoticeLoginToComment)
	if err != nil {
		return nil, err
	}

	comment, err := api.AddComment(ctx, videoID, text, creds.UserID)
	if err != nil {
		return nil, clierrors.NewCLIError(clierrors.ErrorTypeUnknown, reels.NoticeCommentFailed, err)
	}
	output.PrintSuccess("✓ Comment added")
	return comment, nil
}
