package client

import (
	"context"

	"github.com/wanderlust/travel-client/client/internal/api"
	"github.com/wanderlust/travel-client/client/internal/types"
)

// FeedbackService submits and lists customer testimonials.
type FeedbackService struct{ c *Client }

func (s *FeedbackService) Submit(ctx context.Context, f Feedback) Result[Feedback] {
	return api.SubmitFeedback(ctx, s.c.rest, f)
}

// List returns all testimonials, falling back like PackageService.List.
func (s *FeedbackService) List(ctx context.Context) Result[[]Feedback] {
	return readWithFallback(ctx, s.c, "feedback",
		func(ctx context.Context) types.Result[[]Feedback] { return api.ListFeedback(ctx, s.c.rest) },
		s.c.data.Feedback)
}
