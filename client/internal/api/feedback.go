package api

import (
	"context"
	"net/http"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// SubmitFeedback posts a customer testimonial.
func SubmitFeedback(ctx context.Context, r Requester, f types.Feedback) types.Result[types.Feedback] {
	return write[types.Feedback](ctx, r, http.MethodPost, "/feedback", f, "Failed to submit feedback")
}

// ListFeedback fetches all testimonials.
func ListFeedback(ctx context.Context, r Requester) types.Result[[]types.Feedback] {
	return list[types.Feedback](ctx, r, "/feedback", "Failed to fetch feedbacks")
}
