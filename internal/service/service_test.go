package service

import (
	"testing"
	"time"

	"github.com/coopcredit/coopcredit/internal/config"
	"github.com/coopcredit/coopcredit/internal/pg"
	"github.com/coopcredit/coopcredit/internal/repo"
	"github.com/coopcredit/coopcredit/pkg/clients"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	cfg := &config.Config{
		RiskAddress: "http://localhost:8081",
		RiskTimeout: 5 * time.Second,
	}

	services := New(cfg, repos, clients.NewMockHTTPClientI(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AffiliateService)
	assert.NotNil(t, services.ApplicationService)
	assert.NotNil(t, services.EvaluationService)
}
