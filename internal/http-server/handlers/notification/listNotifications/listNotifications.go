package listNotifications

import (
	"log/slog"
	"net/http"

	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"

	"github.com/go-chi/render"
)

type NotificationsResponse struct {
	response.Response
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationsProvider
type NotificationsProvider interface {
	NotificationsByUser(userID int64) ([]models.Notification, error)
	UnreadNotificationCount(userID int64) (int, error)
}

func New(log *slog.Logger, provider NotificationsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.listNotifications.New"

		log = log.With(slog.String("op", op))

		identity, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		notifications, err := provider.NotificationsByUser(identity.UserID)
		if err != nil {
			log.Error("failed to get notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get notifications"))
			return
		}

		unread, err := provider.UnreadNotificationCount(identity.UserID)
		if err != nil {
			log.Error("failed to count unread notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get notifications"))
			return
		}

		render.JSON(w, r, NotificationsResponse{
			Response:      response.OK(),
			Notifications: notifications,
			UnreadCount:   unread,
		})
	}
}
