package updateStatus

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"tableBooker/internal/booking"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled rejected"`
}

type StatusResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusSetter
type StatusSetter interface {
	SetStatus(id int64, status models.BookingStatus) (*models.Booking, error)
}

func New(log *slog.Logger, setter StatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.updateStatus.New"

		log = log.With(slog.String("op", op))

		bookingID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID))

		var req StatusRequest

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

		b, err := setter.SetStatus(bookingID, models.BookingStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrUnknownStatus):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown booking status"))
			default:
				log.Error("failed to update booking status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking status"))
			}
			return
		}

		log.Info("booking status updated", slog.String("status", req.Status))

		render.JSON(w, r, StatusResponse{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
