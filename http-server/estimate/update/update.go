package update

import (
	"context"
	"embroidery-quote/internal/service/estimate"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/spf13/cast"
	"log/slog"
	"net/http"
)

type EstimateEditor interface {
	UpdateField(field, raw string) estimate.Snapshot
	SetComplexity(key string) estimate.Snapshot
	ApplyPreset(ctx context.Context, key string) estimate.Snapshot
	Reset() estimate.Snapshot
}

type FieldRequest struct {
	Field string `json:"field"`
	// free text or a JSON number/bool; coerced by the estimator
	Value any `json:"value"`
}

func UpdateField(log *slog.Logger, est EstimateEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.estimate.UpdateField"

		var req FieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "不正なJSONです", http.StatusBadRequest)
			return
		}

		if req.Field == "" {
			http.Error(w, "field は必須です", http.StatusBadRequest)
			return
		}

		log.Debug("update field",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("field", req.Field),
		)

		snap := est.UpdateField(req.Field, cast.ToString(req.Value))

		render.JSON(w, r, snap.View())
	}
}

func ApplyPreset(log *slog.Logger, est EstimateEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.estimate.ApplyPreset"

		key := chi.URLParam(r, "key")

		log.Debug("apply preset", slog.String("op", op), slog.String("key", key))

		render.JSON(w, r, est.ApplyPreset(r.Context(), key).View())
	}
}

func SetComplexity(log *slog.Logger, est EstimateEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.estimate.SetComplexity"

		key := chi.URLParam(r, "key")

		log.Debug("set complexity", slog.String("op", op), slog.String("key", key))

		render.JSON(w, r, est.SetComplexity(key).View())
	}
}

func Reset(log *slog.Logger, est EstimateEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.estimate.Reset"

		log.Info("estimate reset", slog.String("op", op))

		render.JSON(w, r, est.Reset().View())
	}
}
