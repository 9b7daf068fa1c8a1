package calculate

import (
	"embroidery-quote/internal/service/estimate"
	"embroidery-quote/internal/service/pricing"
	"github.com/go-chi/render"
	"github.com/spf13/cast"
	"log/slog"
	"net/http"
)

// Calculate prices an order sent in full without touching the live estimate.
func Calculate(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculate.Calculate"

		var req map[string]any
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Debug("bad calculate request", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "不正なJSONです", http.StatusBadRequest)
			return
		}

		fields := make(map[string]string, len(req))
		for k, v := range req {
			fields[k] = cast.ToString(v)
		}

		spec := estimate.ParseSpec(fields)
		snap := estimate.Snapshot{Spec: spec, Breakdown: pricing.Compute(spec)}

		render.JSON(w, r, snap.View())
	}
}
