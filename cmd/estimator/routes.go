package main

import (
	getadmin "embroidery-quote/http-server/admin/get"
	saveadmin "embroidery-quote/http-server/admin/save"
	upadmin "embroidery-quote/http-server/admin/update"
	"embroidery-quote/http-server/calculate"
	getestimate "embroidery-quote/http-server/estimate/get"
	upestimate "embroidery-quote/http-server/estimate/update"
	generate_excel "embroidery-quote/http-server/generate-report/generate-excel"
	getpresets "embroidery-quote/http-server/presets/get"
	"embroidery-quote/internal/config"
	"embroidery-quote/internal/middleware/auth"
	"embroidery-quote/internal/service/estimate"
	generate_excel2 "embroidery-quote/internal/service/generate-excel"
	"embroidery-quote/internal/service/quote"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"log/slog"
	"time"
)

type adminPresetStore interface {
	getadmin.AdminPresetProvider
	saveadmin.PresetCreator
	upadmin.PresetUpdater
}

type application struct {
	estimator *estimate.Estimator
	catalog   *estimate.PresetCatalog
	renderer  *quote.Renderer
	generator *generate_excel2.GenerateQuoteService
	now       func() time.Time
	// nil when no database is configured; admin routes are not mounted then.
	admin adminPresetStore
}

func routes(cfg config.Config, log *slog.Logger, app *application) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// live estimate
	router.Get("/api/estimate", getestimate.GetEstimate(log, app.estimator))
	router.Put("/api/estimate/fields", upestimate.UpdateField(log, app.estimator))
	router.Post("/api/estimate/preset/{key}", upestimate.ApplyPreset(log, app.estimator))
	router.Post("/api/estimate/complexity/{key}", upestimate.SetComplexity(log, app.estimator))
	router.Post("/api/estimate/reset", upestimate.Reset(log, app.estimator))

	router.Get("/api/estimate/quote", generate_excel.GenerateQuoteExcel(log, app.estimator, app.renderer, app.generator, app.now))

	router.Post("/api/calculate", calculate.Calculate(log))

	router.Get("/api/presets", getpresets.GetPresets(log, app.catalog))
	router.Get("/api/complexity", getpresets.GetComplexity(log))

	if app.admin != nil {
		adminRouter := chi.NewRouter()
		adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

		adminRouter.Get("/presets", getadmin.GetPresetsAdmin(log, app.admin))
		adminRouter.Post("/presets", saveadmin.SavePresetAdmin(log, app.admin))
		adminRouter.Put("/presets/{key}", upadmin.UpdatePresetAdmin(log, app.admin))

		router.Mount("/api/admin", adminRouter)
	}

	return router
}
