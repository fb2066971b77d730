package bookingStats

import (
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"

	"github.com/go-chi/render"
)

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type StatsResponse struct {
	response.Response
	Period              Period         `json:"period"`
	TotalBookings       int            `json:"total_bookings"`
	ConfirmedBookings   int            `json:"confirmed_bookings"`
	PendingBookings     int            `json:"pending_bookings"`
	CancelledBookings   int            `json:"cancelled_bookings"`
	TotalGuests         int            `json:"total_guests"`
	AveragePartySize    float64        `json:"average_party_size"`
	BookingsByDayOfWeek map[string]int `json:"bookings_by_day_of_week"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsSource
type StatsSource interface {
	BookingsBetween(startDate, endDate string) ([]models.Booking, error)
}

func New(log *slog.Logger, source StatsSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.bookingStats.New"

		log = log.With(slog.String("op", op))

		// default to the current month
		now := time.Now()
		startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		endDate := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.Local).Format("2006-01-02")

		if s := r.URL.Query().Get("start_date"); s != "" {
			if _, err := time.Parse("2006-01-02", s); err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid start_date format, use YYYY-MM-DD"))
				return
			}
			startDate = s
		}
		if e := r.URL.Query().Get("end_date"); e != "" {
			if _, err := time.Parse("2006-01-02", e); err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid end_date format, use YYYY-MM-DD"))
				return
			}
			endDate = e
		}

		if endDate < startDate {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("end_date must not be before start_date"))
			return
		}

		bookings, err := source.BookingsBetween(startDate, endDate)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking statistics"))
			return
		}

		stats := StatsResponse{
			Response: response.OK(),
			Period:   Period{StartDate: startDate, EndDate: endDate},
			BookingsByDayOfWeek: map[string]int{
				"sunday": 0, "monday": 0, "tuesday": 0, "wednesday": 0,
				"thursday": 0, "friday": 0, "saturday": 0,
			},
		}

		for _, b := range bookings {
			stats.TotalBookings++
			stats.TotalGuests += b.Guests

			switch b.Status {
			case models.StatusConfirmed:
				stats.ConfirmedBookings++
			case models.StatusPending:
				stats.PendingBookings++
			case models.StatusCancelled:
				stats.CancelledBookings++
			}

			if d, err := time.Parse("2006-01-02", b.Date); err == nil {
				stats.BookingsByDayOfWeek[strings.ToLower(d.Weekday().String())]++
			}
		}

		if stats.TotalBookings > 0 {
			avg := float64(stats.TotalGuests) / float64(stats.TotalBookings)
			stats.AveragePartySize = math.Round(avg*10) / 10
		}

		log.Info("stats computed",
			slog.String("start", startDate),
			slog.String("end", endDate),
			slog.Int("bookings", stats.TotalBookings),
		)

		render.JSON(w, r, stats)
	}
}
