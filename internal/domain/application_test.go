package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func seniorAffiliate(t *testing.T, salary decimal.Decimal) *Affiliate {
	t.Helper()
	affiliate, err := NewAffiliate(1, "1020304050", "Maria Gomez", salary, time.Now().UTC().AddDate(-2, 0, 0), ActiveStatus)
	assert.NoError(t, err)
	return affiliate
}

func TestNewCreditApplication(t *testing.T) {
	salary := decimal.NewFromInt(3000000)
	affiliate := seniorAffiliate(t, salary)
	inactive, err := NewAffiliate(2, "555", "Pedro Ruiz", salary, time.Now().UTC().AddDate(-2, 0, 0), InactiveStatus)
	assert.NoError(t, err)

	amount := decimal.NewFromInt(5000000)
	rate := decimal.NewFromFloat(12.5)

	tests := []struct {
		name      string
		affiliate *Affiliate
		amount    decimal.Decimal
		term      int
		rate      decimal.Decimal
		status    string
		reason    string
		expectErr bool
	}{
		{name: "Valid pending application", affiliate: affiliate, amount: amount, term: 36, rate: rate},
		{name: "Nil affiliate fails", affiliate: nil, amount: amount, term: 36, rate: rate, expectErr: true},
		{name: "Inactive affiliate fails", affiliate: inactive, amount: amount, term: 36, rate: rate, expectErr: true},
		{name: "Zero amount fails", affiliate: affiliate, amount: decimal.Zero, term: 36, rate: rate, expectErr: true},
		{name: "Term below range fails", affiliate: affiliate, amount: amount, term: 0, rate: rate, expectErr: true},
		{name: "Term above range fails", affiliate: affiliate, amount: amount, term: 361, rate: rate, expectErr: true},
		{name: "Term upper boundary ok", affiliate: affiliate, amount: amount, term: 360, rate: rate},
		{name: "Negative rate fails", affiliate: affiliate, amount: amount, term: 36, rate: decimal.NewFromInt(-1), expectErr: true},
		{name: "Rate above 100 fails", affiliate: affiliate, amount: amount, term: 36, rate: decimal.NewFromInt(101), expectErr: true},
		{name: "Zero rate ok", affiliate: affiliate, amount: amount, term: 36, rate: decimal.Zero},
		{name: "Decided without reason fails", affiliate: affiliate, amount: amount, term: 36, rate: rate, status: ApprovedStatus, expectErr: true},
		{name: "Decided with reason ok", affiliate: affiliate, amount: amount, term: 36, rate: rate, status: RejectedStatus, reason: "high risk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewCreditApplication(0, tt.affiliate, tt.amount, tt.term, tt.rate, time.Time{}, tt.status, nil, tt.reason)
			if tt.expectErr {
				assert.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Nil(t, app)
				return
			}
			assert.NoError(t, err)
			if tt.status == "" {
				assert.Equal(t, PendingStatus, app.Status)
			}
			assert.False(t, app.ApplicationDate.IsZero())
		})
	}
}

func TestCreditApplication_MonthlyPayment(t *testing.T) {
	salary := decimal.NewFromInt(3000000)
	affiliate := seniorAffiliate(t, salary)

	t.Run("Amortizing loan", func(t *testing.T) {
		// 5,000,000 over 36 months at 12.5% nominal annual:
		// monthly rate 0.010417 held at 6 digits, payment rounded half-up.
		app, err := NewCreditApplication(0, affiliate, decimal.NewFromInt(5000000), 36, decimal.NewFromFloat(12.5), time.Time{}, "", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, "167269.09", app.MonthlyPayment().StringFixed(2))
	})

	t.Run("Zero rate is straight-line", func(t *testing.T) {
		app, err := NewCreditApplication(0, affiliate, decimal.NewFromInt(10000), 3, decimal.Zero, time.Time{}, "", nil, "")
		assert.NoError(t, err)
		payment := app.MonthlyPayment()
		assert.Equal(t, "3333.33", payment.StringFixed(2))

		// payment * n equals principal within 2-digit rounding
		diff := payment.Mul(decimal.NewFromInt(3)).Sub(decimal.NewFromInt(10000)).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.02)))
	})

	t.Run("Payment is always positive", func(t *testing.T) {
		app, err := NewCreditApplication(0, affiliate, decimal.NewFromInt(100), 360, decimal.NewFromInt(100), time.Time{}, "", nil, "")
		assert.NoError(t, err)
		assert.True(t, app.MonthlyPayment().GreaterThan(decimal.Zero))
	})
}

func TestCreditApplication_PaymentToIncomeRatio(t *testing.T) {
	salary := decimal.NewFromInt(3000000)
	affiliate := seniorAffiliate(t, salary)

	app, err := NewCreditApplication(0, affiliate, decimal.NewFromInt(5000000), 36, decimal.NewFromFloat(12.5), time.Time{}, "", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, "0.0558", app.PaymentToIncomeRatio().StringFixed(4))
	assert.True(t, app.HasAcceptablePaymentToIncomeRatio())
}

func TestCreditApplication_RatioBoundary(t *testing.T) {
	affiliate := seniorAffiliate(t, decimal.NewFromInt(10000))

	// zero-rate single-month loans make the payment equal the principal
	exact, err := NewCreditApplication(0, affiliate, decimal.NewFromInt(4000), 1, decimal.Zero, time.Time{}, "", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, "0.4000", exact.PaymentToIncomeRatio().StringFixed(4))
	assert.True(t, exact.HasAcceptablePaymentToIncomeRatio())

	over, err := NewCreditApplication(0, affiliate, decimal.NewFromInt(4001), 1, decimal.Zero, time.Time{}, "", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, "0.4001", over.PaymentToIncomeRatio().StringFixed(4))
	assert.False(t, over.HasAcceptablePaymentToIncomeRatio())
}

func TestCreditApplication_AmountBoundary(t *testing.T) {
	affiliate := seniorAffiliate(t, decimal.NewFromInt(1000000))

	atLimit, err := NewCreditApplication(0, affiliate, decimal.NewFromInt(10000000), 120, decimal.Zero, time.Time{}, "", nil, "")
	assert.NoError(t, err)
	assert.True(t, atLimit.HasAcceptableAmount())

	overLimit, err := NewCreditApplication(0, affiliate, decimal.NewFromFloat(10000000.01), 120, decimal.Zero, time.Time{}, "", nil, "")
	assert.NoError(t, err)
	assert.False(t, overLimit.HasAcceptableAmount())
}

func TestCreditApplication_CanBeEvaluated(t *testing.T) {
	affiliate := seniorAffiliate(t, decimal.NewFromInt(3000000))
	amount := decimal.NewFromInt(1000000)

	pending, err := NewCreditApplication(1, affiliate, amount, 12, decimal.Zero, time.Time{}, PendingStatus, nil, "")
	assert.NoError(t, err)
	assert.True(t, pending.CanBeEvaluated())

	approved, err := NewCreditApplication(1, affiliate, amount, 12, decimal.Zero, time.Time{}, ApprovedStatus, nil, "approved")
	assert.NoError(t, err)
	assert.False(t, approved.CanBeEvaluated())

	junior, err := NewAffiliate(2, "777", "Ana Diaz", decimal.NewFromInt(3000000), time.Now().UTC().AddDate(0, -2, 0), ActiveStatus)
	assert.NoError(t, err)
	juniorApp, err := NewCreditApplication(2, junior, amount, 12, decimal.Zero, time.Time{}, PendingStatus, nil, "")
	assert.NoError(t, err)
	assert.False(t, juniorApp.CanBeEvaluated())
}

func TestCreditApplication_MeetsApprovalCriteria(t *testing.T) {
	affiliate := seniorAffiliate(t, decimal.NewFromInt(3000000))

	app, err := NewCreditApplication(1, affiliate, decimal.NewFromInt(5000000), 36, decimal.NewFromFloat(12.5), time.Time{}, "", nil, "")
	assert.NoError(t, err)
	assert.True(t, app.MeetsApprovalCriteria())

	rejectedEval, err := NewRiskEvaluation(0, 400, "", "bureau flag", time.Time{}, false, "high risk")
	assert.NoError(t, err)
	withEval, err := NewCreditApplication(1, affiliate, decimal.NewFromInt(5000000), 36, decimal.NewFromFloat(12.5), time.Time{}, "", rejectedEval, "")
	assert.NoError(t, err)
	assert.False(t, withEval.MeetsApprovalCriteria())
}

func TestCreditApplication_Decide(t *testing.T) {
	affiliate := seniorAffiliate(t, decimal.NewFromInt(3000000))
	eval, err := NewRiskEvaluation(0, 946, "", "excellent history", time.Time{}, true, "")
	assert.NoError(t, err)

	pending, err := NewCreditApplication(1, affiliate, decimal.NewFromInt(5000000), 36, decimal.NewFromFloat(12.5), time.Time{}, "", nil, "")
	assert.NoError(t, err)

	approved, err := pending.Decide(true, eval, "Approved - Risk level: LOW, Score: 946")
	assert.NoError(t, err)
	assert.Equal(t, ApprovedStatus, approved.Status)
	assert.Equal(t, eval, approved.RiskEvaluation)
	// original instance is untouched
	assert.Equal(t, PendingStatus, pending.Status)

	// a decided application cannot transition again
	_, err = approved.Decide(false, eval, "late rejection")
	assert.ErrorIs(t, err, ErrNotEvaluable)
}
