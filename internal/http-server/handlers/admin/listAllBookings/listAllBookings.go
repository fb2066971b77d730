package listAllBookings

import (
	"log/slog"
	"net/http"
	"strconv"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsProvider
type BookingsProvider interface {
	AllBookings(filter storage.BookingFilter) ([]models.Booking, error)
}

func New(log *slog.Logger, provider BookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.listAllBookings.New"

		log = log.With(slog.String("op", op))

		var filter storage.BookingFilter

		if status := r.URL.Query().Get("status"); status != "" {
			s := models.BookingStatus(status)
			if !s.Valid() {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown booking status"))
				return
			}
			filter.Status = s
		}

		filter.Date = r.URL.Query().Get("date")

		if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid user_id format"))
				return
			}
			filter.UserID = userID
		}

		bookings, err := provider.AllBookings(filter)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
