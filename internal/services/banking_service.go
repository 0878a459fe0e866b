package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/finmitra/backend/internal/ai"
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	loanSystemPrompt       = "You are a financial advisor specializing in loans and credit."
	investmentSystemPrompt = "You are an investment advisor providing portfolio recommendations."
	savingsSystemPrompt    = "You are a financial planner specializing in savings strategies."
	creditSystemPrompt     = "You are a credit counselor helping people improve their credit scores."
)

type BankingService struct {
	db   *gorm.DB
	chat ai.Chat
}

func NewBankingService(db *gorm.DB, chat ai.Chat) *BankingService {
	return &BankingService{db: db, chat: chat}
}

// eligibilityScore is the additive 0-100 heuristic: credit tier plus
// debt-to-income tier plus loan-to-income tier. Zero income forces both
// ratios into the worst tier.
func eligibilityScore(req dto.LoanRequest) float64 {
	dtiRatio := 1.0
	incomeRatio := 10.0
	if req.AnnualIncome > 0 {
		dtiRatio = req.ExistingLoans / req.AnnualIncome
		incomeRatio = req.Amount / req.AnnualIncome
	}

	score := 0.0
	switch {
	case req.CreditScore >= 750:
		score += 40
	case req.CreditScore >= 650:
		score += 25
	case req.CreditScore >= 550:
		score += 10
	}

	switch {
	case dtiRatio < 0.3:
		score += 30
	case dtiRatio < 0.5:
		score += 15
	}

	switch {
	case incomeRatio < 3:
		score += 30
	case incomeRatio < 5:
		score += 15
	}

	return score
}

func eligibilityStatus(score float64) string {
	switch {
	case score >= 60:
		return "approved"
	case score >= 40:
		return "needs_review"
	default:
		return "declined"
	}
}

func (s *BankingService) CheckLoanEligibility(userID uuid.UUID, req dto.LoanRequest) (*dto.LoanEligibilityResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if req.AnnualIncome < 0 || req.ExistingLoans < 0 {
		return nil, fmt.Errorf("%w: income and existing loans cannot be negative", ErrValidation)
	}
	if req.CreditScore <= 0 {
		return nil, fmt.Errorf("%w: credit_score is required", ErrValidation)
	}

	score := eligibilityScore(req)

	query := fmt.Sprintf(`Analyze this loan application:
- Loan Type: %s
- Amount: %.2f
- Purpose: %s
- Annual Income: %.2f
- Credit Score: %d
- Existing Loans: %.2f
- Eligibility Score: %.0f/100

Provide: 1) Approval recommendation, 2) Key factors, 3) Improvement tips (if needed)`,
		req.LoanType, req.Amount, req.Purpose, req.AnnualIncome, req.CreditScore, req.ExistingLoans, score)

	recommendations, err := s.chat.Send(loanSystemPrompt, query)
	if err != nil {
		return nil, err
	}

	application := models.LoanApplication{
		ID:               uuid.New(),
		UserID:           userID,
		LoanType:         req.LoanType,
		Amount:           req.Amount,
		Purpose:          req.Purpose,
		Status:           "pending",
		EligibilityScore: score,
		Recommendations:  recommendations,
	}
	if err := s.db.Create(&application).Error; err != nil {
		return nil, err
	}

	return &dto.LoanEligibilityResponse{
		EligibilityScore: score,
		Status:           eligibilityStatus(score),
		Recommendations:  recommendations,
	}, nil
}

func (s *BankingService) AnalyzeInvestment(userID uuid.UUID, req dto.InvestmentRequest) (*dto.InvestmentResponse, error) {
	if req.InvestmentAmount <= 0 {
		return nil, fmt.Errorf("%w: investment_amount must be positive", ErrValidation)
	}
	if req.RiskTolerance == "" {
		return nil, fmt.Errorf("%w: risk_tolerance is required", ErrValidation)
	}

	portfolio := "None"
	if len(req.CurrentPortfolio) > 0 {
		portfolio = fmt.Sprintf("%v", req.CurrentPortfolio)
	}

	query := fmt.Sprintf(`Create investment portfolio recommendation:
- Investment Amount: %.2f
- Risk Tolerance: %s
- Investment Horizon: %s
- Current Portfolio: %s

Provide: 1) Asset allocation breakdown, 2) Specific investment suggestions, 3) Expected returns, 4) Risk considerations`,
		req.InvestmentAmount, req.RiskTolerance, req.InvestmentHorizon, portfolio)

	recommendations, err := s.chat.Send(investmentSystemPrompt, query)
	if err != nil {
		return nil, err
	}

	analysis := models.InvestmentAnalysis{
		ID:              uuid.New(),
		UserID:          userID,
		PortfolioName:   capitalize(req.RiskTolerance) + " Risk Portfolio",
		Allocation:      req.CurrentPortfolio,
		RiskLevel:       req.RiskTolerance,
		Recommendations: recommendations,
	}
	if err := s.db.Create(&analysis).Error; err != nil {
		return nil, err
	}

	return &dto.InvestmentResponse{
		Recommendations: recommendations,
		RiskLevel:       req.RiskTolerance,
	}, nil
}

// CreateSavingsPlan is advisory-only; nothing is persisted.
func (s *BankingService) CreateSavingsPlan(req dto.SavingsPlanRequest) (*dto.SavingsPlanResponse, error) {
	if req.GoalAmount <= 0 || req.TimelineMonths <= 0 {
		return nil, fmt.Errorf("%w: goal_amount and timeline_months must be positive", ErrValidation)
	}

	query := fmt.Sprintf(`Create a savings plan:
- Goal Amount: %.2f
- Timeline: %d months
- Monthly Income: %.2f

Provide: 1) Monthly savings target, 2) Budget recommendations, 3) Tips to reach goal faster, 4) Alternative strategies`,
		req.GoalAmount, req.TimelineMonths, req.MonthlyIncome)

	plan, err := s.chat.Send(savingsSystemPrompt, query)
	if err != nil {
		return nil, err
	}

	return &dto.SavingsPlanResponse{
		Plan:          plan,
		MonthlyTarget: round2(req.GoalAmount / float64(req.TimelineMonths)),
	}, nil
}

func (s *BankingService) AnalyzeCreditScore(req dto.CreditScoreRequest) (*dto.CreditScoreResponse, error) {
	if req.CreditScore <= 0 {
		return nil, fmt.Errorf("%w: credit_score is required", ErrValidation)
	}

	query := fmt.Sprintf(`Analyze credit profile:
- Current Score: %d
- Payment History: %s
- Credit Utilization: %.1f%%

Provide: 1) Score assessment, 2) Key factors affecting score, 3) Actionable improvement steps, 4) Timeline for improvement`,
		req.CreditScore, req.PaymentHistory, req.CreditUtilization)

	analysis, err := s.chat.Send(creditSystemPrompt, query)
	if err != nil {
		return nil, err
	}

	return &dto.CreditScoreResponse{
		Analysis:      analysis,
		ScoreCategory: creditScoreCategory(req.CreditScore),
	}, nil
}

func creditScoreCategory(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 650:
		return "Good"
	case score >= 550:
		return "Fair"
	default:
		return "Poor"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
