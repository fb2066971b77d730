package cancelBooking

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
)

type CancelResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	Cancel(userID, id int64) (*models.Booking, error)
}

func New(log *slog.Logger, canceller BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

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

		b, err := canceller.Cancel(identity.UserID, bookingID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrPastBooking):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("cannot cancel past bookings"))
			case errors.Is(err, booking.ErrAlreadyFinished):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("booking is already finished or cancelled"))
			default:
				log.Error("failed to cancel booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled")

		render.JSON(w, r, CancelResponse{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
