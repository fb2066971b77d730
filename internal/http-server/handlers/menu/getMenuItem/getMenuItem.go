package getMenuItem

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
)

type MenuItemResponse struct {
	response.Response
	Item *models.MenuItem `json:"item,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MenuItemProvider
type MenuItemProvider interface {
	MenuItemByID(id int64) (*models.MenuItem, error)
}

func New(log *slog.Logger, provider MenuItemProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.getMenuItem.New"

		log = log.With(slog.String("op", op))

		itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid menu item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid menu item id format"))
			return
		}

		item, err := provider.MenuItemByID(itemID)
		if err != nil {
			if errors.Is(err, storage.ErrMenuItemNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("menu item not found"))
				return
			}

			log.Error("failed to get menu item", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get menu item"))
			return
		}

		render.JSON(w, r, MenuItemResponse{
			Response: response.OK(),
			Item:     item,
		})
	}
}
