package checkAvailability

import (
	"errors"
	"log/slog"
	"net/http"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type AvailabilityRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	Guests int    `json:"guests" validate:"required,min=1,max=20"`
}

type AvailabilityResponse struct {
	response.Response
	Available bool `json:"available"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityChecker
type AvailabilityChecker interface {
	IsSlotAvailable(date, timeOfDay string, guests int, excludeID int64) (bool, error)
}

func New(log *slog.Logger, checker AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.checkAvailability.New"

		log = log.With(slog.String("op", op))

		var req AvailabilityRequest

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

		available, err := checker.IsSlotAvailable(req.Date, req.Time, req.Guests, 0)
		if err != nil {
			log.Error("failed to check availability", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check availability"))
			return
		}

		render.JSON(w, r, AvailabilityResponse{
			Response:  response.OK(),
			Available: available,
		})
	}
}
