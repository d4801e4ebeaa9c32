package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Dipanshu93198/DRS/internal/api/handlers/http/dispatch"
	"github.com/Dipanshu93198/DRS/internal/api/handlers/http/sos"
	"github.com/Dipanshu93198/DRS/internal/api/handlers/http/system"
	"github.com/Dipanshu93198/DRS/internal/config"
	"github.com/Dipanshu93198/DRS/internal/middleware"
	"github.com/Dipanshu93198/DRS/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, probes map[string]system.Pinger) *Server {
	sosHandler := sos.NewHandler(logger, svc.SOS, svc.Assistance, svc.Alert)
	dispatchHandler := dispatch.NewHandler(logger, svc.Dispatch, svc.Resource)
	systemHandler := system.NewHandler(logger, probes)

	r := InitRouter(sosHandler, dispatchHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(sosHandler *sos.Handler, dispatchHandler *dispatch.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// Citizen-facing reporting. The limit must survive a burst of
		// reports from a single neighborhood.
		api.Route("/sos", func(sr chi.Router) {
			sr.Use(middleware.Limit(20, 40, 5*time.Minute, logger))

			sr.Post("/report", sosHandler.SOSReportCreate)
			sr.Get("/active", sosHandler.SOSActiveList)
			sr.Get("/nearby", sosHandler.SOSNearby)
			sr.Get("/clustered", sosHandler.SOSClustered)
			sr.Get("/analytics", sosHandler.SOSAnalytics)

			sr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", sosHandler.SOSReportGet)
				ir.Post("/acknowledge", sosHandler.SOSAcknowledge)
				ir.Post("/resolve", sosHandler.SOSResolve)
				ir.Post("/assist", sosHandler.AssistOffer)
				ir.Get("/assistance", sosHandler.AssistanceList)
			})
		})

		api.Post("/assistance/{id}/accept", sosHandler.AssistanceAccept)

		// Operator surface.
		api.Route("/dispatch", func(dr chi.Router) {
			dr.Use(middleware.Limit(10, 20, 10*time.Minute, logger))

			dr.Post("/auto", dispatchHandler.DispatchAuto)
			dr.Get("/nearby-resources", dispatchHandler.DispatchNearbyResources)
			dr.Get("/active", dispatchHandler.DispatchActiveList)

			dr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", dispatchHandler.DispatchGet)
				ir.Put("/status", dispatchHandler.DispatchUpdateStatus)
			})
		})

		api.Route("/resources", func(rr chi.Router) {
			rr.Post("/", dispatchHandler.ResourceCreate)
			rr.Get("/", dispatchHandler.ResourceList)

			rr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", dispatchHandler.ResourceGet)
				ir.Put("/location", dispatchHandler.ResourceUpdateLocation)
				ir.Put("/status", dispatchHandler.ResourceUpdateStatus)
			})
		})

		api.Post("/alerts/broadcast", sosHandler.AlertBroadcast)

		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Http.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
