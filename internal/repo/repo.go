package repo

import (
	"github.com/coopcredit/coopcredit/internal/pg"
	affiliaterepo "github.com/coopcredit/coopcredit/internal/repo/affiliate-repo"
	applicationrepo "github.com/coopcredit/coopcredit/internal/repo/application-repo"
	userrepo "github.com/coopcredit/coopcredit/internal/repo/user-repo"
)

// Repositories holds the concrete repositories. Fields stay concrete so a
// single repository can be handed to every service interface it satisfies.
type Repositories struct {
	UserRepo        *userrepo.Repository
	AffiliateRepo   *affiliaterepo.Repository
	ApplicationRepo *applicationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		AffiliateRepo:   affiliaterepo.New(conn, txManager),
		ApplicationRepo: applicationrepo.New(conn, txManager),
	}
}
