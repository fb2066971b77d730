package bookingsByDate

import (
	"log/slog"
	"net/http"
	"time"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type DateBookingsResponse struct {
	response.Response
	Date        string           `json:"date"`
	Bookings    []models.Booking `json:"bookings"`
	Total       int              `json:"total"`
	TotalGuests int              `json:"total_guests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DateBookingsProvider
type DateBookingsProvider interface {
	BookingsOnDate(date string) ([]models.Booking, error)
}

func New(log *slog.Logger, provider DateBookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.bookingsByDate.New"

		log = log.With(slog.String("op", op))

		date := chi.URLParam(r, "date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			log.Error("invalid date", slog.String("date", date))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format, use YYYY-MM-DD"))
			return
		}

		bookings, err := provider.BookingsOnDate(date)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		totalGuests := 0
		for _, b := range bookings {
			totalGuests += b.Guests
		}

		log.Info("bookings retrieved", slog.String("date", date), slog.Int("count", len(bookings)))

		render.JSON(w, r, DateBookingsResponse{
			Response:    response.OK(),
			Date:        date,
			Bookings:    bookings,
			Total:       len(bookings),
			TotalGuests: totalGuests,
		})
	}
}
