package applicationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const selectApplication = `
        SELECT ca.id, ca.requested_amount, ca.term_months, ca.interest_rate,
               ca.application_date, ca.status, ca.decision_reason,
               a.id, a.document, a.name, a.salary, a.affiliation_date, a.status,
               re.id, re.score, re.risk_level, re.detail, re.evaluated_at, re.approved, re.rejection_reason
        FROM credit_applications ca
        JOIN affiliates a ON a.id = ca.affiliate_id
        LEFT JOIN risk_evaluations re ON re.id = ca.risk_evaluation_id
`

func (r *Repository) Save(ctx context.Context, app *domain.CreditApplication) error {
	query := `
        INSERT INTO credit_applications (affiliate_id, requested_amount, term_months, interest_rate, application_date, status, decision_reason)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			app.Affiliate.ID, app.RequestedAmount, app.TermMonths, app.InterestRate,
			app.ApplicationDate, app.Status, app.DecisionReason,
		).Scan(&app.ID)
		if err != nil {
			zap.L().Error("can't save application", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.CreditApplication, error) {
	row := r.db.QueryRow(ctx, selectApplication+" WHERE ca.id = $1", id)
	app, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) FindByAffiliateID(ctx context.Context, affiliateID int) ([]domain.CreditApplication, error) {
	return r.findMany(ctx, selectApplication+" WHERE ca.affiliate_id = $1 ORDER BY ca.application_date DESC", affiliateID)
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.CreditApplication, error) {
	return r.findMany(ctx, selectApplication+" WHERE ca.status = $1 ORDER BY ca.application_date DESC", status)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.CreditApplication, error) {
	return r.findMany(ctx, selectApplication+" ORDER BY ca.application_date DESC")
}

// FindPendingBefore returns PENDING applications submitted before the cutoff,
// oldest first; the auto-evaluation sweep feeds on it.
func (r *Repository) FindPendingBefore(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.CreditApplication, error) {
	query := selectApplication + `
        WHERE ca.status = 'PENDING' AND ca.application_date < $1
        ORDER BY ca.application_date ASC
        LIMIT $2
    `
	return r.findMany(ctx, query, cutoff, int(limit))
}

// UpdateDecision persists the terminal state of an application as one atomic
// write: the risk evaluation row (when present) and a conditional update
// keyed on status = PENDING. A zero-row update means another request already
// decided the application and surfaces ErrEvaluationConflict.
func (r *Repository) UpdateDecision(ctx context.Context, app *domain.CreditApplication) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var evalID *int
		if app.RiskEvaluation != nil {
			insertEval := `
                INSERT INTO risk_evaluations (score, risk_level, detail, evaluated_at, approved, rejection_reason)
                VALUES ($1, $2, $3, $4, $5, $6)
                RETURNING id
            `
			e := app.RiskEvaluation
			if err := r.db.QueryRow(ctx, insertEval,
				e.Score, string(e.RiskLevel), e.Detail, e.EvaluatedAt, e.Approved, e.RejectionReason,
			).Scan(&e.ID); err != nil {
				zap.L().Error("can't save risk evaluation", zap.Error(err))
				return err
			}
			evalID = &e.ID
		}

		update := `
            UPDATE credit_applications
            SET status = $1, decision_reason = $2, risk_evaluation_id = $3
            WHERE id = $4 AND status = 'PENDING'
        `
		tag, err := r.db.Exec(ctx, update, app.Status, app.DecisionReason, evalID, app.ID)
		if err != nil {
			zap.L().Error("can't update application decision", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrEvaluationConflict
		}
		return nil
	})
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.CreditApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.CreditApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func scanApplication(row pgx.Row) (*domain.CreditApplication, error) {
	var (
		app       domain.CreditApplication
		affiliate domain.Affiliate

		evalID     *int
		score      *int
		riskLevel  *string
		detail     *string
		evalAt     *time.Time
		approved   *bool
		rejectionR *string
	)
	err := row.Scan(
		&app.ID, &app.RequestedAmount, &app.TermMonths, &app.InterestRate,
		&app.ApplicationDate, &app.Status, &app.DecisionReason,
		&affiliate.ID, &affiliate.Document, &affiliate.Name, &affiliate.Salary,
		&affiliate.AffiliationDate, &affiliate.Status,
		&evalID, &score, &riskLevel, &detail, &evalAt, &approved, &rejectionR,
	)
	if err != nil {
		return nil, err
	}

	app.Affiliate = &affiliate
	if evalID != nil {
		app.RiskEvaluation = &domain.RiskEvaluation{
			ID:              *evalID,
			Score:           *score,
			RiskLevel:       domain.RiskLevel(*riskLevel),
			Detail:          *detail,
			EvaluatedAt:     *evalAt,
			Approved:        *approved,
			RejectionReason: *rejectionR,
		}
	}
	return &app, nil
}
