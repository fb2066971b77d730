package listCategories

import (
	"log/slog"
	"net/http"

	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"

	"github.com/go-chi/render"
)

type CategoriesResponse struct {
	response.Response
	Categories []models.MenuCategory `json:"categories"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoriesProvider
type CategoriesProvider interface {
	MenuCategories() ([]models.MenuCategory, error)
}

func New(log *slog.Logger, provider CategoriesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.menu.listCategories.New"

		log = log.With(slog.String("op", op))

		categories, err := provider.MenuCategories()
		if err != nil {
			log.Error("failed to get categories", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get categories"))
			return
		}

		render.JSON(w, r, CategoriesResponse{
			Response:   response.OK(),
			Categories: categories,
		})
	}
}
