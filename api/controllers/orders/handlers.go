package orders

import (
	"net/http"
	"time"

	"github.com/netyark/storefront-backend/api/middleware"
	"github.com/netyark/storefront-backend/api/responses"
	"github.com/netyark/storefront-backend/internal/orders"
	"github.com/netyark/storefront-backend/pkg/db/models"
	"github.com/netyark/storefront-backend/pkg/logger"
)

type ArchivedOrderResponse struct {
	ID             string    `json:"id"`
	RemoteID       string    `json:"remote_id,omitempty"`
	Outcome        string    `json:"outcome"`
	Status         string    `json:"status"`
	Total          string    `json:"total"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListOrders returns the caller's order history: by user id when the
// request carried a valid token, else by cart session.
func ListOrders(archive *orders.Archive, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			entries []models.ArchivedOrder
			err     error
		)
		if userID := middleware.UserIDFromContext(ctx); userID != "" {
			entries, err = archive.ListByUser(ctx, userID)
		} else {
			entries, err = archive.ListBySession(ctx, middleware.CartSessionFromContext(ctx))
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		out := make([]ArchivedOrderResponse, 0, len(entries))
		for _, entry := range entries {
			out = append(out, toArchivedOrderResponse(entry))
		}
		responses.WriteSuccess(w, map[string]any{
			"orders": out,
			"count":  len(out),
		})
	}
}

func toArchivedOrderResponse(entry models.ArchivedOrder) ArchivedOrderResponse {
	resp := ArchivedOrderResponse{
		ID:        entry.ID.String(),
		Outcome:   string(entry.Outcome),
		Status:    string(entry.Status),
		Total:     entry.TotalAmount,
		CreatedAt: entry.CreatedAt,
	}
	if entry.RemoteID != nil {
		resp.RemoteID = *entry.RemoteID
	}
	if entry.TrackingNumber != nil {
		resp.TrackingNumber = *entry.TrackingNumber
	}
	return resp
}
