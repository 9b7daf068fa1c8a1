package save

import (
	"context"
	"embroidery-quote/internal/constants"
	"embroidery-quote/internal/storage"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type PresetCreator interface {
	CreatePresetAdmin(ctx context.Context, p storage.Preset) error
}

// SavePresetAdmin stores a new preset. The multiplier is snapped onto the selector set.
func SavePresetAdmin(log *slog.Logger, presets PresetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SavePresetAdmin"

		var preset storage.Preset
		if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
			http.Error(w, "不正なJSONです", http.StatusBadRequest)
			return
		}

		preset.Key = strings.TrimSpace(preset.Key)
		if preset.Key == constants.PresetCustom {
			http.Error(w, "custom プリセットは変更できません", http.StatusBadRequest)
			return
		}
		if err := preset.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		preset.ComplexityMultiplier = constants.NearestComplexity(preset.ComplexityMultiplier).Multiplier

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		err := presets.CreatePresetAdmin(ctx, preset)
		if errors.Is(err, storage.ErrPresetExists) {
			http.Error(w, "プリセットは既に存在します", http.StatusConflict)
			return
		}
		if err != nil {
			log.Error("failed to create preset", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("preset created", slog.String("op", op), slog.String("key", preset.Key))

		w.WriteHeader(http.StatusCreated)
	}
}
