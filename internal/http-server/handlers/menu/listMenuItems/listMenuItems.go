package listMenuItems

import (
	"log/slog"
	"net/http"
	"strconv"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/go-chi/render"
)

type MenuResponse struct {
	response.Response
	Items []models.MenuItem `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MenuProvider
type MenuProvider interface {
	MenuItems(filter storage.MenuFilter) ([]models.MenuItem, error)
}

func New(log *slog.Logger, provider MenuProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.listMenuItems.New"

		log = log.With(slog.String("op", op))

		var filter storage.MenuFilter

		if categoryStr := r.URL.Query().Get("category_id"); categoryStr != "" {
			categoryID, err := strconv.ParseInt(categoryStr, 10, 64)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid category_id format"))
				return
			}
			filter.CategoryID = categoryID
		}

		if availableStr := r.URL.Query().Get("available"); availableStr != "" {
			available, err := strconv.ParseBool(availableStr)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid available format"))
				return
			}
			filter.Available = &available
		}

		if featuredStr := r.URL.Query().Get("featured"); featuredStr != "" {
			featured, err := strconv.ParseBool(featuredStr)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid featured format"))
				return
			}
			filter.Featured = &featured
		}

		filter.Search = r.URL.Query().Get("search")

		items, err := provider.MenuItems(filter)
		if err != nil {
			log.Error("failed to get menu items", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get menu items"))
			return
		}

		log.Info("menu items retrieved", slog.Int("count", len(items)))

		render.JSON(w, r, MenuResponse{
			Response: response.OK(),
			Items:    items,
		})
	}
}
