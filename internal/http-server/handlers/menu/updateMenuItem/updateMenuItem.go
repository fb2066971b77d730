package updateMenuItem

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryID  *int64   `json:"category_id,omitempty"`
	Available   *bool    `json:"available,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateResponse struct {
	response.Response
	Item *models.MenuItem `json:"item,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MenuItemUpdater
type MenuItemUpdater interface {
	MenuItemByID(id int64) (*models.MenuItem, error)
	UpdateMenuItem(item *models.MenuItem) error
}

func New(log *slog.Logger, updater MenuItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.updateMenuItem.New"

		log = log.With(slog.String("op", op))

		itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid menu item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid menu item id format"))
			return
		}

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		item, err := updater.MenuItemByID(itemID)
		if err != nil {
			if errors.Is(err, storage.ErrMenuItemNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("menu item not found"))
				return
			}

			log.Error("failed to get menu item", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update menu item"))
			return
		}

		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Price != nil {
			item.Price = *req.Price
		}
		if req.CategoryID != nil {
			item.CategoryID = *req.CategoryID
		}
		if req.Available != nil {
			item.Available = *req.Available
		}
		if req.Featured != nil {
			item.Featured = *req.Featured
		}
		if req.ImageURL != nil {
			item.ImageURL = *req.ImageURL
		}

		if err = updater.UpdateMenuItem(item); err != nil {
			switch {
			case errors.Is(err, storage.ErrMenuItemNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("menu item not found"))
			case errors.Is(err, storage.ErrCategoryNotFound):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("menu category not found"))
			default:
				log.Error("failed to update menu item", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update menu item"))
			}
			return
		}

		log.Info("menu item updated", slog.Int64("item_id", itemID))

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Item:     item,
		})
	}
}
