package markAsRead

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReadMarker
type ReadMarker interface {
	MarkNotificationRead(id, userID int64) error
}

func New(log *slog.Logger, marker ReadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.markAsRead.New"

		log = log.With(slog.String("op", op))

		identity, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		notificationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid notification id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid notification id format"))
			return
		}

		if err = marker.MarkNotificationRead(notificationID, identity.UserID); err != nil {
			if errors.Is(err, storage.ErrNotificationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("notification not found"))
				return
			}

			log.Error("failed to mark notification read", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to mark notification read"))
			return
		}

		render.JSON(w, r, response.OK())
	}
}
