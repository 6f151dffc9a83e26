package affiliaterepo

import (
	"context"
	"errors"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

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

func (r *Repository) Save(ctx context.Context, affiliate *domain.Affiliate) error {
	query := `
        INSERT INTO affiliates (document, name, salary, affiliation_date, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			affiliate.Document, affiliate.Name, affiliate.Salary, affiliate.AffiliationDate, affiliate.Status,
		).Scan(&affiliate.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDocumentTaken
			}
			zap.L().Error("can't save affiliate", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// Update replaces every mutable attribute of the stored row with the given
// instance; aggregates are never patched field by field.
func (r *Repository) Update(ctx context.Context, affiliate *domain.Affiliate) error {
	query := `
        UPDATE affiliates
        SET name = $1, salary = $2, affiliation_date = $3, status = $4
        WHERE id = $5 AND deleted_at IS NULL
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			affiliate.Name, affiliate.Salary, affiliate.AffiliationDate, affiliate.Status, affiliate.ID)
		if err != nil {
			zap.L().Error("can't update affiliate", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAffiliateNotFound
		}
		return nil
	})
	return err
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Affiliate, error) {
	query := `
        SELECT id, document, name, salary, affiliation_date, status
        FROM affiliates
        WHERE id = $1 AND deleted_at IS NULL
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) FindByDocument(ctx context.Context, document string) (*domain.Affiliate, error) {
	query := `
        SELECT id, document, name, salary, affiliation_date, status
        FROM affiliates
        WHERE document = $1 AND deleted_at IS NULL
    `
	return r.scanOne(r.db.QueryRow(ctx, query, document))
}

func (r *Repository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM affiliates WHERE document = $1 AND deleted_at IS NULL
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, document).Scan(&exists); err != nil {
		zap.L().Error("can't check affiliate document", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Affiliate, error) {
	query := `
        SELECT id, document, name, salary, affiliation_date, status
        FROM affiliates
        WHERE deleted_at IS NULL
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get affiliates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var affiliates []domain.Affiliate
	for rows.Next() {
		var a domain.Affiliate
		if err := rows.Scan(&a.ID, &a.Document, &a.Name, &a.Salary, &a.AffiliationDate, &a.Status); err != nil {
			zap.L().Error("can't scan affiliate row", zap.Error(err))
			return nil, err
		}
		affiliates = append(affiliates, a)
	}
	return affiliates, rows.Err()
}

// Delete soft-deletes the affiliate; the row stays for referential history.
func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        UPDATE affiliates
        SET deleted_at = now()
        WHERE id = $1 AND deleted_at IS NULL
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't delete affiliate", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAffiliateNotFound
		}
		return nil
	})
	return err
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Affiliate, error) {
	var a domain.Affiliate
	err := row.Scan(&a.ID, &a.Document, &a.Name, &a.Salary, &a.AffiliationDate, &a.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
