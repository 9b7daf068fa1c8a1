package get

import (
	"embroidery-quote/internal/service/estimate"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type SnapshotProvider interface {
	Snapshot() estimate.Snapshot
}

func GetEstimate(log *slog.Logger, est SnapshotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, est.Snapshot().View())
	}
}
