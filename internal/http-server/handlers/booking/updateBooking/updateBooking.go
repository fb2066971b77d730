package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"tableBooker/internal/booking"
	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// All fields are optional; absent fields keep their current value.
type UpdateRequest struct {
	Date            *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time            *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Guests          *int    `json:"guests,omitempty" validate:"omitempty,min=1,max=20"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=500"`
}

type UpdateResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(userID, id int64, upd booking.Update) (*models.Booking, error)
}

func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		identity, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		bookingID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
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

		b, err := updater.UpdateBooking(identity.UserID, bookingID, booking.Update{
			Date:            req.Date,
			Time:            req.Time,
			Guests:          req.Guests,
			SpecialRequests: req.SpecialRequests,
		})
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrNotPending):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("only pending bookings can be updated"))
			case errors.Is(err, booking.ErrSlotUnavailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("the selected time slot is not available"))
			default:
				log.Error("failed to update booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated")

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.Booking) {
	render.JSON(w, r, UpdateResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
