package get

import (
	"context"
	"embroidery-quote/internal/constants"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type PresetLister interface {
	List(ctx context.Context) []constants.Preset
}

type ResponsePresets struct {
	Presets []constants.Preset `json:"presets"`
}

func GetPresets(log *slog.Logger, presets PresetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ResponsePresets{Presets: presets.List(r.Context())})
	}
}

type ResponseComplexity struct {
	Levels []constants.Complexity `json:"levels"`
}

func GetComplexity(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ResponseComplexity{Levels: constants.ComplexityLevels})
	}
}
