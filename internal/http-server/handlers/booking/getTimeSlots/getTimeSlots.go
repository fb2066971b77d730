package getTimeSlots

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"

	"github.com/go-chi/render"
)

type SlotsResponse struct {
	response.Response
	Date      string            `json:"date"`
	Guests    int               `json:"guests"`
	TimeSlots []models.TimeSlot `json:"time_slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotLister
type SlotLister interface {
	ListSlots(date string, guests int) ([]models.TimeSlot, error)
}

func New(log *slog.Logger, lister SlotLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getTimeSlots.New"

		log = log.With(slog.String("op", op))

		date := r.URL.Query().Get("date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			log.Error("invalid date", slog.String("date", date))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date, expected YYYY-MM-DD"))
			return
		}

		guests, err := strconv.Atoi(r.URL.Query().Get("guests"))
		if err != nil || guests < 1 || guests > 20 {
			log.Error("invalid guests parameter")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("guests must be an integer between 1 and 20"))
			return
		}

		slots, err := lister.ListSlots(date, guests)
		if err != nil {
			log.Error("failed to list time slots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list time slots"))
			return
		}

		log.Info("time slots listed", slog.String("date", date), slog.Int("count", len(slots)))

		render.JSON(w, r, SlotsResponse{
			Response:  response.OK(),
			Date:      date,
			Guests:    guests,
			TimeSlots: slots,
		})
	}
}
