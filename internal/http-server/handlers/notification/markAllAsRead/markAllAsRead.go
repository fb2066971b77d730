package markAllAsRead

import (
	"log/slog"
	"net/http"

	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type MarkAllResponse struct {
	response.Response
	Updated int64 `json:"updated"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AllReadMarker
type AllReadMarker interface {
	MarkAllNotificationsRead(userID int64) (int64, error)
}

func New(log *slog.Logger, marker AllReadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.markAllAsRead.New"

		log = log.With(slog.String("op", op))

		identity, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		updated, err := marker.MarkAllNotificationsRead(identity.UserID)
		if err != nil {
			log.Error("failed to mark notifications read", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to mark notifications read"))
			return
		}

		log.Info("notifications marked read", slog.Int64("updated", updated))

		render.JSON(w, r, MarkAllResponse{
			Response: response.OK(),
			Updated:  updated,
		})
	}
}
