package services

import (
	"testing"

	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxOwedSingle(t *testing.T) {
	tests := []struct {
		name    string
		taxable float64
		want    float64
	}{
		{"zero income", 0, 0},
		{"bottom bracket", 10000, 1000},
		{"first threshold", 11000, 1100},
		{"second bracket", 20000, 1100 + 0.12*9000},
		{"second threshold", 44725, 5147},
		{"third bracket", 63000, 5147 + 0.22*18275},
		{"third threshold", 95375, 16290},
		{"fourth threshold", 182100, 37104},
		{"fifth threshold", 231250, 52832.75},
		{"sixth threshold", 578125, 174238.25},
		{"top bracket", 600000, 174238.25 + 0.37*21875},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, taxOwedSingle(tt.taxable), 0.001)
		})
	}
}

func TestTaxOwedSingleMonotonic(t *testing.T) {
	prev := 0.0
	for income := 0.0; income <= 700000; income += 2500 {
		owed := taxOwedSingle(income)
		require.GreaterOrEqual(t, owed, prev, "tax owed must not decrease at income %.0f", income)
		prev = owed
	}
}

func TestTaxCalculate(t *testing.T) {
	db := openTestDB(t, &models.TaxCalculation{})
	chat := &fakeChat{reply: "Max out your 401k."}
	svc := NewTaxService(db, chat)
	userID := uuid.New()

	resp, err := svc.Calculate(userID, dto.TaxRequest{
		TaxYear:      2024,
		AnnualIncome: 63000,
		Deductions:   0,
		FilingStatus: "single",
	})
	require.NoError(t, err)

	assert.Equal(t, 63000.0, resp.TaxableIncome)
	assert.Equal(t, 9167.50, resp.TaxOwed)
	assert.Equal(t, 14.55, resp.EffectiveRate)
	assert.Equal(t, "Max out your 401k.", resp.OptimizationTips)

	history, err := svc.History(userID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 9167.50, history[0].TaxOwed)
}

func TestTaxCalculateDeductionsExceedIncome(t *testing.T) {
	db := openTestDB(t, &models.TaxCalculation{})
	svc := NewTaxService(db, &fakeChat{reply: "ok"})

	resp, err := svc.Calculate(uuid.New(), dto.TaxRequest{
		TaxYear:      2024,
		AnnualIncome: 20000,
		Deductions:   30000,
		FilingStatus: "single",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.TaxableIncome)
	assert.Equal(t, 0.0, resp.TaxOwed)
	assert.Equal(t, 0.0, resp.EffectiveRate)
}

func TestTaxCalculateUnsupportedFilingStatus(t *testing.T) {
	db := openTestDB(t, &models.TaxCalculation{})
	chat := &fakeChat{reply: "ok"}
	svc := NewTaxService(db, chat)

	_, err := svc.Calculate(uuid.New(), dto.TaxRequest{
		TaxYear:      2024,
		AnnualIncome: 50000,
		FilingStatus: "married_joint",
	})
	require.ErrorIs(t, err, ErrUnsupportedFilingStatus)
	assert.Empty(t, chat.prompts, "unsupported status must not reach the provider")
}

func TestTaxCalculateValidation(t *testing.T) {
	db := openTestDB(t, &models.TaxCalculation{})
	svc := NewTaxService(db, &fakeChat{reply: "ok"})

	_, err := svc.Calculate(uuid.New(), dto.TaxRequest{AnnualIncome: 50000, FilingStatus: "single"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Calculate(uuid.New(), dto.TaxRequest{TaxYear: 2024, AnnualIncome: -1, FilingStatus: "single"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTaxCalculateProviderFailurePersistsNothing(t *testing.T) {
	db := openTestDB(t, &models.TaxCalculation{})
	svc := NewTaxService(db, &fakeChat{err: assert.AnError})
	userID := uuid.New()

	_, err := svc.Calculate(userID, dto.TaxRequest{
		TaxYear:      2024,
		AnnualIncome: 50000,
		FilingStatus: "single",
	})
	require.Error(t, err)

	history, err := svc.History(userID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
