package payrollcalc_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollcalc"
	payrollcalcerrors "github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/payrollcalc/errors"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/taxconfig"
)

func standardConfig() taxconfig.TaxConfiguration {
	return taxconfig.DefaultConfiguration(uuid.New(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestCalculate_StandardBreakdown(t *testing.T) {
	calc, err := payrollcalc.Calculate(payrollcalc.CalculationInput{
		GrossPay:           450000,
		BasicPay:           400000,
		TransportAllowance: 50000,
	}, standardConfig())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), calc.OtherAllowances)
	assert.Equal(t, int64(99000), calc.Paye)
	assert.Equal(t, int64(27000), calc.PensionEmployee)
	assert.Equal(t, int64(36000), calc.PensionEmployer)
	assert.Equal(t, int64(1200), calc.MaternityEmployee)
	assert.Equal(t, int64(1200), calc.MaternityEmployer)
	assert.Equal(t, int64(30000), calc.MedicalEmployee)
	assert.Equal(t, int64(30000), calc.MedicalEmployer)
	assert.Equal(t, int64(292800), calc.NetBeforeLevy)
	assert.Equal(t, int64(1464), calc.CommunityHealthLevy)
	assert.Equal(t, int64(291336), calc.FinalNetPay)
	assert.Equal(t, int64(158664), calc.EmployeeTax())
	assert.Equal(t, int64(67200), calc.EmployerContributions())
}

func TestCalculate_ContributionBases(t *testing.T) {
	// Gross 500000 = basic 300000 + transport 80000 + other allowances 120000.
	calc, err := payrollcalc.Calculate(payrollcalc.CalculationInput{
		GrossPay:           500000,
		BasicPay:           300000,
		TransportAllowance: 80000,
	}, standardConfig())

	assert.NoError(t, err)
	assert.Equal(t, int64(120000), calc.OtherAllowances)
	// Pension on full gross.
	assert.Equal(t, int64(30000), calc.PensionEmployee)
	assert.Equal(t, int64(40000), calc.PensionEmployer)
	// Maternity excludes transport: 0.3% of 420000.
	assert.Equal(t, int64(1260), calc.MaternityEmployee)
	assert.Equal(t, int64(1260), calc.MaternityEmployer)
	// Medical on basic only: 7.5% of 300000.
	assert.Equal(t, int64(22500), calc.MedicalEmployee)
	assert.Equal(t, int64(22500), calc.MedicalEmployer)
}

func TestCalculate_NetIdentity(t *testing.T) {
	inputs := []payrollcalc.CalculationInput{
		{GrossPay: 55000, BasicPay: 55000},
		{GrossPay: 100001, BasicPay: 90000, TransportAllowance: 10001},
		{GrossPay: 450000, BasicPay: 400000, TransportAllowance: 50000, OtherDeductions: 25000},
		{GrossPay: 2500000, BasicPay: 1800000, TransportAllowance: 200000, OtherDeductions: 300000},
	}

	for _, in := range inputs {
		calc, err := payrollcalc.Calculate(in, standardConfig())
		assert.NoError(t, err)
		assert.Equal(t,
			calc.GrossPay-calc.Paye-calc.PensionEmployee-calc.MaternityEmployee-
				calc.MedicalEmployee-calc.CommunityHealthLevy-calc.OtherDeductions,
			calc.FinalNetPay,
			"identity must hold for gross %d", in.GrossPay,
		)
		assert.Equal(t, calc.GrossPay, calc.BasicPay+calc.TransportAllowance+calc.OtherAllowances)
	}
}

func TestCalculate_NegativeNetNotClamped(t *testing.T) {
	calc, err := payrollcalc.Calculate(payrollcalc.CalculationInput{
		GrossPay:        100000,
		BasicPay:        100000,
		OtherDeductions: 500000,
	}, standardConfig())

	assert.NoError(t, err)
	assert.Negative(t, calc.FinalNetPay)
}

func TestCalculate_LevyBaseClampedAtZero(t *testing.T) {
	// A medical rate high enough to drive net before levy negative; the levy
	// base clamps to zero rather than producing a negative levy.
	config := standardConfig()
	config.MedicalAssociation.Employee = decimal.NewFromInt(90)

	calc, err := payrollcalc.Calculate(payrollcalc.CalculationInput{
		GrossPay: 300000,
		BasicPay: 300000,
	}, config)

	assert.NoError(t, err)
	assert.Negative(t, calc.NetBeforeLevy)
	assert.Equal(t, int64(0), calc.CommunityHealthLevy)
}

func TestCalculate_Rejections(t *testing.T) {
	config := standardConfig()

	t.Run("negative gross", func(t *testing.T) {
		_, err := payrollcalc.Calculate(payrollcalc.CalculationInput{GrossPay: -1}, config)
		assert.ErrorIs(t, err, payrollcalcerrors.ErrNegativeAmount)
	})

	t.Run("negative deductions", func(t *testing.T) {
		_, err := payrollcalc.Calculate(payrollcalc.CalculationInput{GrossPay: 100, OtherDeductions: -1}, config)
		assert.ErrorIs(t, err, payrollcalcerrors.ErrNegativeAmount)
	})

	t.Run("gross below composition", func(t *testing.T) {
		_, err := payrollcalc.Calculate(payrollcalc.CalculationInput{
			GrossPay:           100000,
			BasicPay:           90000,
			TransportAllowance: 20000,
		}, config)
		assert.ErrorIs(t, err, payrollcalcerrors.ErrGrossBelowComposition)
	})
}

func TestCalculate_NetMonotonicInGross(t *testing.T) {
	config := standardConfig()
	prev := int64(-1 << 62)

	for gross := int64(0); gross <= 1000000; gross += 7919 {
		calc, err := payrollcalc.Calculate(payrollcalc.CalculationInput{GrossPay: gross}, config)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, calc.FinalNetPay, prev, "net must not decrease at gross %d", gross)
		prev = calc.FinalNetPay
	}
}
