package get

import (
	"context"
	"embroidery-quote/internal/storage"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

type AdminPresetProvider interface {
	GetAllPresetsAdmin(ctx context.Context) ([]*storage.Preset, error)
}

// GetPresetsAdmin lists every stored preset, inactive ones included.
func GetPresetsAdmin(log *slog.Logger, presets AdminPresetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetPresetsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		list, err := presets.GetAllPresetsAdmin(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to get presets")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if list == nil {
			list = []*storage.Preset{}
		}

		render.JSON(w, r, list)
	}
}
