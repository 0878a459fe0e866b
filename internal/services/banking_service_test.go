package services

import (
	"testing"

	"github.com/finmitra/backend/internal/ai"
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityScore(t *testing.T) {
	tests := []struct {
		name string
		req  dto.LoanRequest
		want float64
	}{
		{
			name: "best tiers everywhere",
			req:  dto.LoanRequest{CreditScore: 780, AnnualIncome: 100000, ExistingLoans: 10000, Amount: 200000},
			want: 100,
		},
		{
			name: "middle tiers",
			req:  dto.LoanRequest{CreditScore: 700, AnnualIncome: 100000, ExistingLoans: 40000, Amount: 400000},
			want: 55,
		},
		{
			name: "worst tiers",
			req:  dto.LoanRequest{CreditScore: 500, AnnualIncome: 100000, ExistingLoans: 60000, Amount: 600000},
			want: 0,
		},
		{
			name: "zero income forces worst ratios",
			req:  dto.LoanRequest{CreditScore: 800, AnnualIncome: 0, ExistingLoans: 0, Amount: 1},
			want: 40,
		},
		{
			name: "credit tier boundaries",
			req:  dto.LoanRequest{CreditScore: 750, AnnualIncome: 100000, ExistingLoans: 0, Amount: 100000},
			want: 100,
		},
		{
			name: "fair credit only",
			req:  dto.LoanRequest{CreditScore: 550, AnnualIncome: 100000, ExistingLoans: 0, Amount: 100000},
			want: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eligibilityScore(tt.req))
		})
	}
}

func TestEligibilityStatus(t *testing.T) {
	assert.Equal(t, "approved", eligibilityStatus(60))
	assert.Equal(t, "approved", eligibilityStatus(100))
	assert.Equal(t, "needs_review", eligibilityStatus(59.9))
	assert.Equal(t, "needs_review", eligibilityStatus(40))
	assert.Equal(t, "declined", eligibilityStatus(39.9))
	assert.Equal(t, "declined", eligibilityStatus(0))
}

func TestCheckLoanEligibility(t *testing.T) {
	db := openTestDB(t, &models.LoanApplication{})
	chat := &fakeChat{reply: "Looks solid."}
	svc := NewBankingService(db, chat)
	userID := uuid.New()

	resp, err := svc.CheckLoanEligibility(userID, dto.LoanRequest{
		LoanType:      "home",
		Amount:        200000,
		Purpose:       "house purchase",
		AnnualIncome:  100000,
		CreditScore:   780,
		ExistingLoans: 10000,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, resp.EligibilityScore)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "Looks solid.", resp.Recommendations)

	var application models.LoanApplication
	require.NoError(t, db.First(&application, "user_id = ?", userID).Error)
	assert.Equal(t, "pending", application.Status)
	assert.Equal(t, 100.0, application.EligibilityScore)
}

func TestCheckLoanEligibilityValidation(t *testing.T) {
	db := openTestDB(t, &models.LoanApplication{})
	svc := NewBankingService(db, &fakeChat{reply: "ok"})

	_, err := svc.CheckLoanEligibility(uuid.New(), dto.LoanRequest{Amount: 0, CreditScore: 700})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CheckLoanEligibility(uuid.New(), dto.LoanRequest{Amount: 1000, CreditScore: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckLoanEligibilityProviderError(t *testing.T) {
	db := openTestDB(t, &models.LoanApplication{})
	svc := NewBankingService(db, &fakeChat{err: ai.ErrProvider})
	userID := uuid.New()

	_, err := svc.CheckLoanEligibility(userID, dto.LoanRequest{
		Amount: 1000, AnnualIncome: 50000, CreditScore: 700,
	})
	require.ErrorIs(t, err, ai.ErrProvider)

	var count int64
	db.Model(&models.LoanApplication{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
}

func TestAnalyzeInvestment(t *testing.T) {
	db := openTestDB(t, &models.InvestmentAnalysis{})
	chat := &fakeChat{reply: "60/40 split."}
	svc := NewBankingService(db, chat)
	userID := uuid.New()

	resp, err := svc.AnalyzeInvestment(userID, dto.InvestmentRequest{
		InvestmentAmount:  50000,
		RiskTolerance:     "moderate",
		InvestmentHorizon: "10 years",
	})
	require.NoError(t, err)
	assert.Equal(t, "60/40 split.", resp.Recommendations)
	assert.Equal(t, "moderate", resp.RiskLevel)

	var analysis models.InvestmentAnalysis
	require.NoError(t, db.First(&analysis, "user_id = ?", userID).Error)
	assert.Equal(t, "Moderate Risk Portfolio", analysis.PortfolioName)
}

func TestCreateSavingsPlan(t *testing.T) {
	db := openTestDB(t)
	svc := NewBankingService(db, &fakeChat{reply: "Save monthly."})

	resp, err := svc.CreateSavingsPlan(dto.SavingsPlanRequest{
		GoalAmount:     100000,
		TimelineMonths: 36,
		MonthlyIncome:  60000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Save monthly.", resp.Plan)
	assert.Equal(t, 2777.78, resp.MonthlyTarget)

	_, err = svc.CreateSavingsPlan(dto.SavingsPlanRequest{GoalAmount: 0, TimelineMonths: 12})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreditScoreCategory(t *testing.T) {
	assert.Equal(t, "Excellent", creditScoreCategory(750))
	assert.Equal(t, "Good", creditScoreCategory(650))
	assert.Equal(t, "Fair", creditScoreCategory(550))
	assert.Equal(t, "Poor", creditScoreCategory(549))
}

func TestAnalyzeCreditScore(t *testing.T) {
	db := openTestDB(t)
	svc := NewBankingService(db, &fakeChat{reply: "Pay on time."})

	resp, err := svc.AnalyzeCreditScore(dto.CreditScoreRequest{
		CreditScore:       720,
		PaymentHistory:    "good",
		CreditUtilization: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pay on time.", resp.Analysis)
	assert.Equal(t, "Good", resp.ScoreCategory)
}
