package dto

type LoanRequest struct {
	LoanType      string  `json:"loan_type"`
	Amount        float64 `json:"amount"`
	Purpose       string  `json:"purpose"`
	AnnualIncome  float64 `json:"annual_income"`
	CreditScore   int     `json:"credit_score"`
	ExistingLoans float64 `json:"existing_loans"`
}

type LoanEligibilityResponse struct {
	EligibilityScore float64 `json:"eligibility_score"`
	Status           string  `json:"status"` // approved | needs_review | declined
	Recommendations  string  `json:"recommendations"`
}

type InvestmentRequest struct {
	InvestmentAmount  float64                `json:"investment_amount"`
	RiskTolerance     string                 `json:"risk_tolerance"`
	InvestmentHorizon string                 `json:"investment_horizon"`
	CurrentPortfolio  map[string]interface{} `json:"current_portfolio,omitempty"`
}

type InvestmentResponse struct {
	Recommendations string `json:"recommendations"`
	RiskLevel       string `json:"risk_level"`
}

type SavingsPlanRequest struct {
	GoalAmount     float64 `json:"goal_amount"`
	TimelineMonths int     `json:"timeline_months"`
	MonthlyIncome  float64 `json:"monthly_income"`
}

type SavingsPlanResponse struct {
	Plan          string  `json:"plan"`
	MonthlyTarget float64 `json:"monthly_target"`
}

type CreditScoreRequest struct {
	CreditScore       int     `json:"credit_score"`
	PaymentHistory    string  `json:"payment_history"`
	CreditUtilization float64 `json:"credit_utilization"`
}

type CreditScoreResponse struct {
	Analysis      string `json:"analysis"`
	ScoreCategory string `json:"score_category"` // Excellent | Good | Fair | Poor
}
