package update

import (
	"context"
	"embroidery-quote/internal/constants"
	"embroidery-quote/internal/storage"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"log/slog"
	"net/http"
	"time"
)

type PresetUpdater interface {
	GetPresetByKey(ctx context.Context, key string) (*storage.Preset, error)
	UpdatePresetAdmin(ctx context.Context, key string, p storage.Preset) error
}

// UpdatePresetAdmin replaces the stored preset named by the {key} URL param.
func UpdatePresetAdmin(log *slog.Logger, presets PresetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdatePresetAdmin"

		key := chi.URLParam(r, "key")
		if key == constants.PresetCustom {
			http.Error(w, "custom プリセットは変更できません", http.StatusBadRequest)
			return
		}

		var preset storage.Preset
		if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
			http.Error(w, "不正なJSONです", http.StatusBadRequest)
			return
		}

		preset.Key = key
		if err := preset.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		preset.ComplexityMultiplier = constants.NearestComplexity(preset.ComplexityMultiplier).Multiplier

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		existing, err := presets.GetPresetByKey(ctx, key)
		if errors.Is(err, storage.ErrPresetNotFound) {
			http.Error(w, "プリセットが見つかりません", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to get preset", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		preset.ID = existing.ID

		err = presets.UpdatePresetAdmin(ctx, key, preset)
		if errors.Is(err, storage.ErrPresetNotFound) {
			http.Error(w, "プリセットが見つかりません", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to update preset", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("preset updated", slog.String("op", op), slog.String("key", key))

		w.WriteHeader(http.StatusOK)
	}
}
