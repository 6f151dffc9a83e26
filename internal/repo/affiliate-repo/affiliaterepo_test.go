package affiliaterepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_Save(t *testing.T) {
	affiliationDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("3500000")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr error
	}{
		{
			name: "Affiliate is saved and gets an id",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO affiliates").
					WithArgs("1030657890", "Maria Rodriguez", salary, affiliationDate, "ACTIVE").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
		},
		{
			name: "Duplicate document",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO affiliates").
					WithArgs("1030657890", "Maria Rodriguez", salary, affiliationDate, "ACTIVE").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrDocumentTaken,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO affiliates").
					WithArgs("1030657890", "Maria Rodriguez", salary, affiliationDate, "ACTIVE").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, txManager := NewMock(t)
			passThroughTx(txManager)
			tt.mockSetup(mock)

			affiliate := &domain.Affiliate{
				Document:        "1030657890",
				Name:            "Maria Rodriguez",
				Salary:          salary,
				AffiliationDate: affiliationDate,
				Status:          "ACTIVE",
			}
			err := repo.Save(context.Background(), affiliate)

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, affiliate.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	affiliationDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("3800000")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr error
	}{
		{
			name: "Affiliate is updated",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE affiliates").
					WithArgs("Maria Rodriguez", salary, affiliationDate, "SUSPENDED", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Missing or deleted affiliate",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE affiliates").
					WithArgs("Maria Rodriguez", salary, affiliationDate, "SUSPENDED", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrAffiliateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, txManager := NewMock(t)
			passThroughTx(txManager)
			tt.mockSetup(mock)

			affiliate := &domain.Affiliate{
				ID:              1,
				Document:        "1030657890",
				Name:            "Maria Rodriguez",
				Salary:          salary,
				AffiliationDate: affiliationDate,
				Status:          "SUSPENDED",
			}
			err := repo.Update(context.Background(), affiliate)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	affiliationDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("3500000")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Affiliate
	}{
		{
			name: "Affiliate exists",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "document", "name", "salary", "affiliation_date", "status"}).
					AddRow(1, "1030657890", "Maria Rodriguez", salary, affiliationDate, "ACTIVE")
				mock.ExpectQuery("SELECT id, document, name, salary, affiliation_date, status").
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Affiliate{
				ID:              1,
				Document:        "1030657890",
				Name:            "Maria Rodriguez",
				Salary:          salary,
				AffiliationDate: affiliationDate,
				Status:          "ACTIVE",
			},
		},
		{
			name: "Affiliate does not exist",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, document, name, salary, affiliation_date, status").
					WithArgs(404).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT id, document, name, salary, affiliation_date, status").
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			id := 1
			if tt.result == nil && !tt.expectErr {
				id = 404
			}
			affiliate, err := repo.FindByID(context.Background(), id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, affiliate)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ExistsByDocument(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("1030657890").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByDocument(context.Background(), "1030657890")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	affiliationDate := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("3500000")

	rows := pgxmock.NewRows([]string{"id", "document", "name", "salary", "affiliation_date", "status"}).
		AddRow(1, "1030657890", "Maria Rodriguez", salary, affiliationDate, "ACTIVE").
		AddRow(2, "1045872310", "Carlos Gomez", salary, affiliationDate, "INACTIVE")
	mock.ExpectQuery("SELECT id, document, name, salary, affiliation_date, status").
		WillReturnRows(rows)

	affiliates, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, affiliates, 2)
	assert.Equal(t, "1045872310", affiliates[1].Document)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	t.Run("Affiliate is soft-deleted", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectExec("UPDATE affiliates").
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing affiliate", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passThroughTx(txManager)
		mock.ExpectExec("UPDATE affiliates").
			WithArgs(404).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 404), domain.ErrAffiliateNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
