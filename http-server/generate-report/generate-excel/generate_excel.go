package generate_excel

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"embroidery-quote/internal/service/estimate"
	"embroidery-quote/internal/service/pricing"
	"embroidery-quote/internal/service/quote"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// shown to the user for any render or delivery failure
	generateFailedMessage = "見積書の生成に失敗しました。もう一度お試しください。"
)

type SnapshotProvider interface {
	Snapshot() estimate.Snapshot
}

type QuoteRenderer interface {
	Render(spec pricing.OrderSpec, b pricing.CostBreakdown, generatedOn time.Time) quote.Document
}

type QuoteGenerator interface {
	GenerateQuote(ctx context.Context, doc quote.Document) ([]byte, error)
}

// GenerateQuoteExcel renders the current estimate and sends it as a download.
// The estimate itself is only read, so a failure leaves it as it was.
func GenerateQuoteExcel(log *slog.Logger, est SnapshotProvider, renderer QuoteRenderer, gen QuoteGenerator, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.quote.GenerateQuoteExcel"

		snap := est.Snapshot()
		doc := renderer.Render(snap.Spec, snap.Breakdown, now())

		data, err := gen.GenerateQuote(r.Context(), doc)
		if err != nil {
			log.Error("failed to generate quote",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("error", err.Error()),
			)
			http.Error(w, generateFailedMessage, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypeXLSX)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))

		if _, err := w.Write(data); err != nil {
			log.Error("failed to deliver quote", slog.String("op", op), slog.String("error", err.Error()))
			return
		}

		log.Info("quote generated",
			slog.String("op", op),
			slog.String("quote_id", doc.ID),
			slog.String("file", doc.FileName),
		)
	}
}
