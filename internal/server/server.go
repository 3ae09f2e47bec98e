// Package server wires the calculation handlers into an HTTP server.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"nicspectra/internal/calc/ash"
	"nicspectra/internal/calc/premium/batch"
	"nicspectra/internal/calc/premium/importer"
	"nicspectra/internal/calc/report"
	"nicspectra/internal/calc/seismic"
	"nicspectra/internal/calc/site"
	"nicspectra/internal/calc/wind"
	"nicspectra/internal/config"
	"nicspectra/internal/middleware"
	"nicspectra/internal/refdata"
)

// HandleList registers every route on mux.
func HandleList(mux *mux.Router, tables *refdata.Tables, limiter *middleware.IPRateLimiter, staticDir string) {
	mux.Use(middleware.Metrics)

	engine := seismic.NewEngine(tables)
	siteH := &site.Handler{Resolver: site.NewResolver(tables)}
	seismicH := &seismic.Handler{Engine: engine}
	reportH := &report.Handler{Engine: engine}
	windH := &wind.Handler{}
	ashH := &ash.Handler{}
	batchH := &batch.Handler{Engine: engine}
	importerH := &importer.Handler{}

	mux.Handle("/metrics", promhttp.Handler()).Methods("GET")
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/sites", siteH.List).Methods("GET")
	api.HandleFunc("/sites/nearest", siteH.Nearest).Methods("GET")
	api.HandleFunc("/sites/vs30", siteH.Vs30).Methods("GET")
	api.HandleFunc("/systems", seismicH.Systems).Methods("GET")
	api.HandleFunc("/ash", ashH.Calc).Methods("GET")

	api.HandleFunc("/seismic/calc", seismicH.Calc).Methods("POST")
	api.HandleFunc("/seismic/spectrum.txt", seismicH.SpectrumTXT).Methods("POST")
	api.HandleFunc("/seismic/spectrum.csv", seismicH.SpectrumCSV).Methods("POST")
	api.HandleFunc("/seismic/plot.png", seismicH.Plot).Methods("POST")
	api.HandleFunc("/seismic/report.pdf", reportH.Generate).Methods("POST")

	api.HandleFunc("/wind/calc", windH.Calc).Methods("POST")
	api.HandleFunc("/wind/csv", windH.CSV).Methods("POST")
	api.HandleFunc("/wind/xlsx", windH.XLSX).Methods("POST")

	api.HandleFunc("/batch/seismic", batchH.Seismic).Methods("POST")
	api.HandleFunc("/batch/wind", batchH.Wind).Methods("POST")
	api.HandleFunc("/import/wind", importerH.Wind).Methods("POST")

	if staticDir != "" {
		mux.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}
}

// New builds the HTTP server for cfg.
func New(cfg config.Config, tables *refdata.Tables, limiter *middleware.IPRateLimiter) *http.Server {
	r := mux.NewRouter()
	HandleList(r, tables, limiter, cfg.StaticDir)
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           middleware.CORS(r),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves until ctx is cancelled, then drains connections within
// cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, tables *refdata.Tables) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	server := New(cfg, tables, limiter)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Prune(10 * time.Minute)
			}
		}
	}()

	serveErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s (tls=%v)", cfg.Addr, cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	shutdownErr := server.Shutdown(shutdownCtx)
	wg.Wait()

	select {
	case err := <-serveErr:
		return err
	default:
	}
	if shutdownErr != nil {
		return shutdownErr
	}
	log.Println("Server stopped")
	return nil
}
