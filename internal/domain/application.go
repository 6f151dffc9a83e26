package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PendingStatus - submitted, awaiting evaluation.
	PendingStatus string = "PENDING"
	// ApprovedStatus - evaluated and approved.
	ApprovedStatus string = "APPROVED"
	// RejectedStatus - evaluated and rejected.
	RejectedStatus string = "REJECTED"
	// CancelledStatus - withdrawn through an administrative action.
	CancelledStatus string = "CANCELLED"
)

const (
	minTermMonths = 1
	maxTermMonths = 360
	// maxAmountSalaryMultiplier caps the principal at 10x monthly salary.
	maxAmountSalaryMultiplier = 10
)

var (
	oneHundred = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)
	// maxPaymentToIncomeRatio caps the monthly payment at 40% of salary.
	maxPaymentToIncomeRatio = decimal.NewFromFloat(0.40)
)

// CreditApplication ties an affiliate to a requested loan and, once
// evaluated, to its risk evaluation. The aggregate is immutable; the single
// legal transition PENDING -> APPROVED/REJECTED is produced by Decide.
type CreditApplication struct {
	ID              int             `db:"id"`
	Affiliate       *Affiliate      `db:"-"`
	RequestedAmount decimal.Decimal `db:"requested_amount"`
	TermMonths      int             `db:"term_months"`
	InterestRate    decimal.Decimal `db:"interest_rate"`
	ApplicationDate time.Time       `db:"application_date"`
	Status          string          `db:"status"`
	RiskEvaluation  *RiskEvaluation `db:"-"`
	DecisionReason  string          `db:"decision_reason"`
}

// NewCreditApplication validates every numeric attribute atomically: amount
// positive, term within [1, 360], annual rate within [0, 100] percent, date
// not in the future, affiliate ACTIVE, and a decision reason on every
// non-PENDING status. A zero applicationDate defaults to now and an empty
// status to PENDING.
func NewCreditApplication(id int, affiliate *Affiliate, requestedAmount decimal.Decimal, termMonths int,
	interestRate decimal.Decimal, applicationDate time.Time, status string, riskEval *RiskEvaluation, decisionReason string,
) (*CreditApplication, error) {
	if affiliate == nil {
		return nil, newValidationError("affiliate", "is required")
	}
	if !affiliate.IsActive() {
		return nil, newValidationError("affiliate", "must be ACTIVE to apply for credit")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, newValidationError("requested_amount", "must be greater than zero")
	}
	if termMonths < minTermMonths || termMonths > maxTermMonths {
		return nil, newValidationError("term_months", "must be between 1 and 360")
	}
	if interestRate.IsNegative() || interestRate.GreaterThan(oneHundred) {
		return nil, newValidationError("interest_rate", "must be between 0 and 100")
	}
	if applicationDate.IsZero() {
		applicationDate = time.Now().UTC()
	}
	if applicationDate.After(time.Now().UTC()) {
		return nil, newValidationError("application_date", "cannot be in the future")
	}
	if status == "" {
		status = PendingStatus
	}
	switch status {
	case PendingStatus, ApprovedStatus, RejectedStatus, CancelledStatus:
	default:
		return nil, newValidationError("status", "must be one of PENDING, APPROVED, REJECTED, CANCELLED")
	}
	if status != PendingStatus && strings.TrimSpace(decisionReason) == "" {
		return nil, newValidationError("decision_reason", "required for non-pending applications")
	}

	return &CreditApplication{
		ID:              id,
		Affiliate:       affiliate,
		RequestedAmount: requestedAmount,
		TermMonths:      termMonths,
		InterestRate:    interestRate,
		ApplicationDate: applicationDate.UTC(),
		Status:          status,
		RiskEvaluation:  riskEval,
		DecisionReason:  decisionReason,
	}, nil
}

// MonthlyPayment computes the fixed amortizing payment
// M = P*r*(1+r)^n / ((1+r)^n - 1), where r is the monthly decimal rate held
// at 6 fractional digits. Zero-rate loans repay straight-line P/n. The result
// is rounded half-up to 2 fractional digits; this exact rounding sequence
// feeds approval thresholds and must not change.
func (c *CreditApplication) MonthlyPayment() decimal.Decimal {
	n := decimal.NewFromInt(int64(c.TermMonths))
	if c.InterestRate.IsZero() {
		return c.RequestedAmount.DivRound(n, 2)
	}

	monthlyRate := c.InterestRate.DivRound(oneHundred, 6).DivRound(twelve, 6)
	power := decimal.NewFromInt(1).Add(monthlyRate).Pow(n)

	numerator := c.RequestedAmount.Mul(monthlyRate).Mul(power)
	denominator := power.Sub(decimal.NewFromInt(1))

	return numerator.DivRound(denominator, 2)
}

// PaymentToIncomeRatio returns MonthlyPayment divided by the affiliate's
// salary, rounded half-up to 4 fractional digits.
func (c *CreditApplication) PaymentToIncomeRatio() decimal.Decimal {
	return c.MonthlyPayment().DivRound(c.Affiliate.Salary, 4)
}

// HasAcceptablePaymentToIncomeRatio reports whether the ratio is at most 40%.
func (c *CreditApplication) HasAcceptablePaymentToIncomeRatio() bool {
	return c.PaymentToIncomeRatio().LessThanOrEqual(maxPaymentToIncomeRatio)
}

// HasAcceptableAmount reports whether the principal is at most 10x salary.
func (c *CreditApplication) HasAcceptableAmount() bool {
	return c.RequestedAmount.LessThanOrEqual(c.Affiliate.MaxCreditAmount(maxAmountSalaryMultiplier))
}

// CanBeEvaluated reports whether the application is PENDING and its affiliate
// is still eligible.
func (c *CreditApplication) CanBeEvaluated() bool {
	return c.Status == PendingStatus && c.Affiliate.CanApplyForCredit()
}

// IsPending reports whether the application awaits a decision.
func (c *CreditApplication) IsPending() bool {
	return c.Status == PendingStatus
}

// MeetsApprovalCriteria checks every approval rule: affiliate eligibility,
// payment-to-income ratio, amount cap, and - when present - the risk
// evaluation's approved flag.
func (c *CreditApplication) MeetsApprovalCriteria() bool {
	if !c.Affiliate.CanApplyForCredit() {
		return false
	}
	if !c.HasAcceptablePaymentToIncomeRatio() {
		return false
	}
	if !c.HasAcceptableAmount() {
		return false
	}
	if c.RiskEvaluation != nil && !c.RiskEvaluation.Approved {
		return false
	}
	return true
}

// Decide produces the decided replacement of a PENDING application, attaching
// the risk evaluation and the decision reason. Calling it on a non-PENDING
// application fails with ErrNotEvaluable.
func (c *CreditApplication) Decide(approved bool, eval *RiskEvaluation, reason string) (*CreditApplication, error) {
	if !c.IsPending() {
		return nil, ErrNotEvaluable
	}
	status := RejectedStatus
	if approved {
		status = ApprovedStatus
	}
	return NewCreditApplication(c.ID, c.Affiliate, c.RequestedAmount, c.TermMonths,
		c.InterestRate, c.ApplicationDate, status, eval, reason)
}
