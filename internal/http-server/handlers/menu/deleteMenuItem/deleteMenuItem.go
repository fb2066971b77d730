package deleteMenuItem

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MenuItemDeleter
type MenuItemDeleter interface {
	DeleteMenuItem(id int64) error
}

func New(log *slog.Logger, deleter MenuItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.deleteMenuItem.New"

		log = log.With(slog.String("op", op))

		itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid menu item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid menu item id format"))
			return
		}

		if err = deleter.DeleteMenuItem(itemID); err != nil {
			if errors.Is(err, storage.ErrMenuItemNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("menu item not found"))
				return
			}

			log.Error("failed to delete menu item", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete menu item"))
			return
		}

		log.Info("menu item deleted", slog.Int64("item_id", itemID))

		render.JSON(w, r, response.OK())
	}
}
