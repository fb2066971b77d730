package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tableBooker/internal/booking"
	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	Guests          int    `json:"guests" validate:"required,min=1,max=20"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(userID int64, date, timeOfDay string, guests int, specialRequests string) (*models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		identity, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if pastDate(req.Date) {
			log.Error("booking date is in the past", slog.String("date", req.Date))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date must not be in the past"))
			return
		}

		b, err := creator.Create(identity.UserID, req.Date, req.Time, req.Guests, req.SpecialRequests)
		if err != nil {
			if errors.Is(err, booking.ErrSlotUnavailable) {
				log.Info("slot unavailable",
					slog.String("date", req.Date), slog.String("time", req.Time))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("the selected time slot is not available"))
				return
			}

			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created", slog.Int64("booking_id", b.ID))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, b)
	}
}

func pastDate(date string) bool {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	return d.Before(today)
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
