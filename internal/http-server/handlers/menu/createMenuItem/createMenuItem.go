package createMenuItem

import (
	"errors"
	"log/slog"
	"net/http"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ItemRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  int64   `json:"category_id" validate:"required"`
	Available   *bool   `json:"available,omitempty"`
	Featured    bool    `json:"featured"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type ItemResponse struct {
	response.Response
	ItemID int64 `json:"item_id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MenuItemCreator
type MenuItemCreator interface {
	CreateMenuItem(item *models.MenuItem) (int64, error)
}

func New(log *slog.Logger, creator MenuItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.createMenuItem.New"

		log = log.With(slog.String("op", op))

		var req ItemRequest

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

		available := true
		if req.Available != nil {
			available = *req.Available
		}

		id, err := creator.CreateMenuItem(&models.MenuItem{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			CategoryID:  req.CategoryID,
			Available:   available,
			Featured:    req.Featured,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			if errors.Is(err, storage.ErrCategoryNotFound) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("menu category not found"))
				return
			}

			log.Error("failed to create menu item", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create menu item"))
			return
		}

		log.Info("menu item created", slog.Int64("item_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ItemResponse{
			Response: response.OK(),
			ItemID:   id,
		})
	}
}
