package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appconfig "github.com/coopcredit/coopcredit/internal/config"
	"github.com/coopcredit/coopcredit/internal/risk"
	"github.com/coopcredit/coopcredit/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type config struct {
	Address string `env:"RISK_MOCK_ADDRESS" envDefault:"localhost:8081"`
	LogLvl  string `env:"LOG_LVL"           envDefault:"info"`
}

// Standalone stand-in for the central risk bureau, for local end-to-end runs.
// It serves the same deterministic per-document evaluations as the offline
// fallback, so decisions match whether the bureau is up or down.
func main() {
	cfg := &config{}
	env.Parse(cfg)
	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run the mock bureau")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if err := logger.InitLogger(&appconfig.Config{LogLvl: cfg.LogLvl}); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: newRouter(risk.NewFallbackScorer()),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("can't shut down mock bureau", zap.Error(err))
		}
	}()

	zap.L().Info("mock risk bureau listening", zap.String("address", cfg.Address))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Fatal("mock risk bureau failed", zap.Error(err))
	}
	zap.L().Info("mock risk bureau stopped")
}

func newRouter(scorer *risk.FallbackScorer) chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Get("/risk-central/api/v1/evaluations/{document}", func(w http.ResponseWriter, req *http.Request) {
		document := chi.URLParam(req, "document")

		evaluation, err := scorer.Score(req.Context(), document, decimal.Zero, 0)
		if err != nil {
			zap.L().Error("can't score document", zap.String("document", document), zap.Error(err))
			http.Error(w, "can't score document", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(risk.Response{
			Document:  document,
			Score:     evaluation.Score,
			RiskLevel: string(evaluation.RiskLevel),
			Detail:    evaluation.Detail,
		})
		zap.L().Info("evaluation served",
			zap.String("document", document),
			zap.Int("score", evaluation.Score),
			zap.String("riskLevel", string(evaluation.RiskLevel)))
	})

	return r
}
