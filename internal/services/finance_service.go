package services

import (
	"fmt"
	"time"

	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	financeListLimit       = 100
	dashboardRecentTxLimit = 10
	dashboardBillsShown    = 5
)

type FinanceService struct {
	db *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{db: db}
}

// AddTransaction records one transaction; an expense also increments the
// matching category budget's spent counter in place.
func (s *FinanceService) AddTransaction(userID uuid.UUID, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Type != "income" && req.Type != "expense" {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be RFC3339", ErrValidation)
	}

	transaction := models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Type:        req.Type,
	}
	if err := s.db.Create(&transaction).Error; err != nil {
		return nil, err
	}

	if req.Type == "expense" {
		err := s.db.Model(&models.Budget{}).
			Where("user_id = ? AND category = ?", userID, req.Category).
			UpdateColumn("spent", gorm.Expr("spent + ?", req.Amount)).Error
		if err != nil {
			return nil, err
		}
	}

	return &transaction, nil
}

func (s *FinanceService) Transactions(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > financeListLimit {
		limit = financeListLimit
	}

	var transactions []models.Transaction
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (s *FinanceService) AddBill(userID uuid.UUID, req dto.CreateBillRequest) (*models.Bill, error) {
	if req.Name == "" || req.DueDate == "" {
		return nil, fmt.Errorf("%w: name and due_date are required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}
	reminderDays := 3
	if req.ReminderDays != nil {
		reminderDays = *req.ReminderDays
	}

	bill := models.Bill{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		Recurring:    recurring,
		Status:       "pending",
		ReminderDays: reminderDays,
	}
	if err := s.db.Create(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *FinanceService) Bills(userID uuid.UUID) ([]models.Bill, error) {
	var bills []models.Bill
	err := s.db.
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Limit(financeListLimit).
		Find(&bills).Error
	return bills, err
}

func (s *FinanceService) AddBudget(userID uuid.UUID, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	budget := models.Budget{
		ID:       uuid.New(),
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
	}
	if err := s.db.Create(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *FinanceService) Budgets(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.
		Where("user_id = ?", userID).
		Limit(financeListLimit).
		Find(&budgets).Error
	return budgets, err
}

func (s *FinanceService) AddGoal(userID uuid.UUID, req dto.CreateGoalRequest) (*models.FinancialGoal, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target_amount must be positive", ErrValidation)
	}

	goal := models.FinancialGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Priority:      req.Priority,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *FinanceService) Goals(userID uuid.UUID) ([]models.FinancialGoal, error) {
	var goals []models.FinancialGoal
	err := s.db.
		Where("user_id = ?", userID).
		Limit(financeListLimit).
		Find(&goals).Error
	return goals, err
}

func (s *FinanceService) Dashboard(userID uuid.UUID) (*dto.DashboardResponse, error) {
	budgets, err := s.Budgets(userID)
	if err != nil {
		return nil, err
	}

	var recentTransactions []models.Transaction
	err = s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(dashboardRecentTxLimit).
		Find(&recentTransactions).Error
	if err != nil {
		return nil, err
	}

	var pendingBills []models.Bill
	err = s.db.
		Where("user_id = ? AND status = ?", userID, "pending").
		Order("due_date ASC").
		Limit(financeListLimit).
		Find(&pendingBills).Error
	if err != nil {
		return nil, err
	}

	goals, err := s.Goals(userID)
	if err != nil {
		return nil, err
	}

	var totalBudget, totalSpent, upcomingBills float64
	for _, b := range budgets {
		totalBudget += b.Amount
		totalSpent += b.Spent
	}
	for _, b := range pendingBills {
		upcomingBills += b.Amount
	}

	shown := pendingBills
	if len(shown) > dashboardBillsShown {
		shown = shown[:dashboardBillsShown]
	}

	return &dto.DashboardResponse{
		Budgets:            budgets,
		RecentTransactions: recentTransactions,
		UpcomingBills:      shown,
		Goals:              goals,
		Summary: dto.DashboardSummary{
			TotalBudget:         totalBudget,
			TotalSpent:          totalSpent,
			Remaining:           totalBudget - totalSpent,
			UpcomingBillsAmount: upcomingBills,
		},
	}, nil
}
