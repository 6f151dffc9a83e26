package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ActiveStatus - the affiliate is a member in good standing.
	ActiveStatus string = "ACTIVE"
	// InactiveStatus - the affiliate left the cooperative.
	InactiveStatus string = "INACTIVE"
	// SuspendedStatus - membership temporarily suspended by an administrator.
	SuspendedStatus string = "SUSPENDED"
)

const minimumSeniorityMonths = 6

// Affiliate is a cooperative member who can apply for credit. Instances are
// immutable: updates build a replacement through NewAffiliate, so a valid
// instance can never drift into an invalid state.
type Affiliate struct {
	ID              int             `db:"id"`
	Document        string          `db:"document"`
	Name            string          `db:"name"`
	Salary          decimal.Decimal `db:"salary"`
	AffiliationDate time.Time       `db:"affiliation_date"`
	Status          string          `db:"status"`
}

// NewAffiliate validates all attributes atomically and returns either a valid
// affiliate or a ValidationError. A zero affiliationDate defaults to today
// and an empty status defaults to ACTIVE. Dates are handled in UTC.
func NewAffiliate(id int, document, name string, salary decimal.Decimal, affiliationDate time.Time, status string) (*Affiliate, error) {
	if strings.TrimSpace(document) == "" {
		return nil, newValidationError("document", "cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("name", "cannot be empty")
	}
	if salary.LessThanOrEqual(decimal.Zero) {
		return nil, newValidationError("salary", "must be greater than zero")
	}
	if affiliationDate.IsZero() {
		affiliationDate = time.Now().UTC()
	}
	if status == "" {
		status = ActiveStatus
	}
	affiliationDate = truncateToDate(affiliationDate.UTC())
	if affiliationDate.After(truncateToDate(time.Now().UTC())) {
		return nil, newValidationError("affiliation_date", "cannot be in the future")
	}
	switch status {
	case ActiveStatus, InactiveStatus, SuspendedStatus:
	default:
		return nil, newValidationError("status", "must be one of ACTIVE, INACTIVE, SUSPENDED")
	}

	return &Affiliate{
		ID:              id,
		Document:        document,
		Name:            name,
		Salary:          salary,
		AffiliationDate: affiliationDate,
		Status:          status,
	}, nil
}

// IsActive reports whether the affiliate is in ACTIVE status.
func (a *Affiliate) IsActive() bool {
	return a.Status == ActiveStatus
}

// HasMinimumSeniority reports whether at least 6 whole calendar months passed
// since the affiliation date.
func (a *Affiliate) HasMinimumSeniority() bool {
	return a.MonthsSinceAffiliation() >= minimumSeniorityMonths
}

// CanApplyForCredit reports whether the affiliate is eligible to submit a
// credit application: ACTIVE and with minimum seniority.
func (a *Affiliate) CanApplyForCredit() bool {
	return a.IsActive() && a.HasMinimumSeniority()
}

// MaxCreditAmount returns salary multiplied by the given factor.
func (a *Affiliate) MaxCreditAmount(multiplier int) decimal.Decimal {
	return a.Salary.Mul(decimal.NewFromInt(int64(multiplier)))
}

// MonthsSinceAffiliation returns whole months between the affiliation date
// and today (UTC), with calendar-month truncation: a partial trailing month
// does not count.
func (a *Affiliate) MonthsSinceAffiliation() int {
	return monthsBetween(a.AffiliationDate, time.Now().UTC())
}

func monthsBetween(from, to time.Time) int {
	from, to = truncateToDate(from), truncateToDate(to)
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
