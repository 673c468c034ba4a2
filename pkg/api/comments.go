package api

import (
	"context"
	"net/http"

	"github.com/climbreels/cli/pkg/logger"
)

// GetComments retrieves the comments on a video
func GetComments(ctx context.Context, videoID string) ([]Comment, error) {
	logger.Debug("Getting comments", "video_id", videoID)

	resp, err := send(newRequest(ctx).SetPathParam("videoId", videoID),
		http.MethodGet, "/videos/{videoId}/comments", "fetching comments")
	if err != nil {
		return nil, err
	}

	var comments []Comment
	if err := decode(resp, &comments, "fetching comments"); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment posts a comment as userID and returns the stored comment
func AddComment(ctx context.Context, videoID, text, userID string) (*Comment, error) {
	logger.Debug("Adding comment", "video_id", videoID, "user_id", userID)

	resp, err := send(newRequest(ctx).
		SetPathParam("videoId", videoID).
		SetBody(AddCommentRequest{Text: text, UserID: userID}),
		http.MethodPost, "/videos/{videoId}/comment", "adding comment")
	if err != nil {
		return nil, err
	}

	var comment Comment
	if err := decode(resp, &comment, "adding comment"); err != nil {
		return nil, err
	}
	return &comment, nil
}
