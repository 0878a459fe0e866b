package dto

import "github.com/finmitra/backend/internal/models"

type CreateTransactionRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // RFC3339
	Type        string  `json:"type"` // income | expense
}

type CreateBillRequest struct {
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	DueDate      string  `json:"due_date"`
	Recurring    *bool   `json:"recurring,omitempty"`
	ReminderDays *int    `json:"reminder_days,omitempty"`
}

type CreateBudgetRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type CreateGoalRequest struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
	Priority      string  `json:"priority"`
}

type DashboardSummary struct {
	TotalBudget         float64 `json:"total_budget"`
	TotalSpent          float64 `json:"total_spent"`
	Remaining           float64 `json:"remaining"`
	UpcomingBillsAmount float64 `json:"upcoming_bills_amount"`
}

type DashboardResponse struct {
	Budgets            []models.Budget        `json:"budgets"`
	RecentTransactions []models.Transaction   `json:"recent_transactions"`
	UpcomingBills      []models.Bill          `json:"upcoming_bills"`
	Goals              []models.FinancialGoal `json:"goals"`
	Summary            DashboardSummary       `json:"summary"`
}
