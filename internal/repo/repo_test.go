package repo

import (
	"testing"

	"github.com/coopcredit/coopcredit/internal/pg"
	affiliaterepo "github.com/coopcredit/coopcredit/internal/repo/affiliate-repo"
	applicationrepo "github.com/coopcredit/coopcredit/internal/repo/application-repo"
	userrepo "github.com/coopcredit/coopcredit/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.AffiliateRepo)
	assert.NotNil(t, repo.ApplicationRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &affiliaterepo.Repository{}, repo.AffiliateRepo)
	assert.IsType(t, &applicationrepo.Repository{}, repo.ApplicationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
