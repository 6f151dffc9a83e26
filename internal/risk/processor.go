package risk

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coopcredit/coopcredit/internal/config"
	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/service/evaluationservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=processor.go -destination=processor_mock.go -package=risk

type PendingRepo interface {
	FindPendingBefore(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.CreditApplication, error)
}

type Evaluator interface {
	Evaluate(ctx context.Context, applicationID int) (*evaluationservice.Result, error)
}

var processingApplications sync.Map

// Processor is the auto-evaluation sweep: it periodically picks up PENDING
// applications that sat unevaluated past a minimum age and drives them
// through the same Evaluate use case an analyst would. Races with manual
// evaluations are expected and harmless - the conditional write makes the
// loser a no-op.
type Processor struct {
	pendingRepo PendingRepo
	evaluator   Evaluator
	limit       uint32
	minAge      time.Duration
	interval    time.Duration
	workerPool  WorkerPoolI
}

func NewProcessor(cfg *config.Config, pendingRepo PendingRepo, evaluator Evaluator) *Processor {
	return &Processor{
		pendingRepo: pendingRepo,
		evaluator:   evaluator,
		limit:       1000,
		minAge:      cfg.EvalMinAge,
		interval:    cfg.EvalInterval,
		workerPool:  NewWorkerPool(10),
	}
}

func (p *Processor) Start(ctx context.Context) {
	zap.L().Info("Auto-evaluation sweep started", zap.Duration("interval", p.interval))
	go p.run(ctx)
}

func (p *Processor) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping auto-evaluation sweep")
			return
		case <-ticker.C:
			p.processApplications(ctx)
		}
	}
}

func (p *Processor) processApplications(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-p.minAge)
	apps, err := p.pendingRepo.FindPendingBefore(ctx, cutoff, p.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending applications", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, app := range apps {
		app := app

		if _, loaded := processingApplications.LoadOrStore(app.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := p.workerPool.AddTask(ctx, func() error {
				defer processingApplications.Delete(app.ID)
				return p.handleApplication(ctx, app.ID)
			})
			if err != nil {
				processingApplications.Delete(app.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing pending applications", zap.Error(err))
	}
}

func (p *Processor) handleApplication(ctx context.Context, applicationID int) error {
	result, err := p.evaluator.Evaluate(ctx, applicationID)
	if err != nil {
		// losing a race or hitting an application that turned ineligible
		// since the fetch is a skip, not a failure
		if errors.Is(err, domain.ErrEvaluationConflict) || errors.Is(err, domain.ErrNotEvaluable) {
			zap.L().Info("Skipping application", zap.Int("applicationID", applicationID), zap.Error(err))
			return nil
		}
		return err
	}

	zap.L().Info("Application auto-evaluated",
		zap.Int("applicationID", applicationID),
		zap.Bool("approved", result.Approved))
	return nil
}
