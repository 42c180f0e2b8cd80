package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wanderlust/travel-client/client/internal/types"
)

// ListTravels fetches the partner travel agencies.
func ListTravels(ctx context.Context, r Requester) types.Result[[]types.Travel] {
	return list[types.Travel](ctx, r, "/travelsList", "Failed to fetch travels")
}

// CreateTravel adds a travel agency. Requires the admin key.
func CreateTravel(ctx context.Context, r Requester, t types.Travel) types.Result[types.Travel] {
	path := withQuery("/travels", "authKey", r.AuthKey())
	return write[types.Travel](ctx, r, http.MethodPost, path, t, "Failed to create travel")
}

// UpdateTravel replaces a travel agency identified by its travelId.
func UpdateTravel(ctx context.Context, r Requester, t types.Travel) types.Result[types.Travel] {
	path := withQuery("/travelsUpdate", "authKey", r.AuthKey())
	return write[types.Travel](ctx, r, http.MethodPut, path, t, "Failed to update travel")
}

// DeleteTravel removes the travel agency with the given id.
func DeleteTravel(ctx context.Context, r Requester, id int64) types.Result[json.RawMessage] {
	path := withQuery("/travelsDelete", "travelId", strconv.FormatInt(id, 10), "authKey", r.AuthKey())
	return write[json.RawMessage](ctx, r, http.MethodDelete, path, nil, "Failed to delete travel")
}
