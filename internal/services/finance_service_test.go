package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func financeTestDB(t *testing.T) *FinanceService {
	t.Helper()
	db := openTestDB(t,
		&models.Transaction{},
		&models.Bill{},
		&models.Budget{},
		&models.FinancialGoal{},
	)
	return NewFinanceService(db)
}

func TestAddTransactionValidation(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := svc.AddTransaction(userID, dto.CreateTransactionRequest{
		Type: "transfer", Amount: 10, Category: "misc", Date: now,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddTransaction(userID, dto.CreateTransactionRequest{
		Type: "expense", Amount: 0, Category: "misc", Date: now,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddTransaction(userID, dto.CreateTransactionRequest{
		Type: "expense", Amount: 10, Category: "misc", Date: "yesterday",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExpenseIncrementsBudgetSpent(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()

	_, err := svc.AddBudget(userID, dto.CreateBudgetRequest{Category: "groceries", Amount: 500})
	require.NoError(t, err)

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = svc.AddTransaction(userID, dto.CreateTransactionRequest{
		Type: "expense", Amount: 120.50, Category: "groceries", Date: now,
	})
	require.NoError(t, err)

	// Income must not touch the budget.
	_, err = svc.AddTransaction(userID, dto.CreateTransactionRequest{
		Type: "income", Amount: 1000, Category: "groceries", Date: now,
	})
	require.NoError(t, err)

	budgets, err := svc.Budgets(userID)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, 120.50, budgets[0].Spent)
}

func TestExpenseWithoutMatchingBudget(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()

	now := time.Now().UTC().Format(time.RFC3339)
	tx, err := svc.AddTransaction(userID, dto.CreateTransactionRequest{
		Type: "expense", Amount: 40, Category: "fuel", Date: now,
	})
	require.NoError(t, err)
	assert.Equal(t, "fuel", tx.Category)
}

func TestTransactionsOrderAndLimit(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := svc.AddTransaction(userID, dto.CreateTransactionRequest{
			Type:     "expense",
			Amount:   float64(i + 1),
			Category: "misc",
			Date:     base.AddDate(0, 0, i).Format(time.RFC3339),
		})
		require.NoError(t, err)
	}

	transactions, err := svc.Transactions(userID, 3)
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, 5.0, transactions[0].Amount, "newest first")

	// Out-of-range limits fall back to the default cap.
	all, err := svc.Transactions(userID, -1)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestAddBillDefaults(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()

	bill, err := svc.AddBill(userID, dto.CreateBillRequest{
		Name: "Electricity", Amount: 90, DueDate: "2026-09-10",
	})
	require.NoError(t, err)
	assert.True(t, bill.Recurring)
	assert.Equal(t, "pending", bill.Status)
	assert.Equal(t, 3, bill.ReminderDays)

	recurring := false
	reminder := 7
	bill, err = svc.AddBill(userID, dto.CreateBillRequest{
		Name: "Deposit", Amount: 1000, DueDate: "2026-09-01",
		Recurring: &recurring, ReminderDays: &reminder,
	})
	require.NoError(t, err)
	assert.False(t, bill.Recurring)
	assert.Equal(t, 7, bill.ReminderDays)
}

func TestBillsSortedByDueDate(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()

	for _, due := range []string{"2026-09-20", "2026-09-05", "2026-09-12"} {
		_, err := svc.AddBill(userID, dto.CreateBillRequest{Name: "b", Amount: 10, DueDate: due})
		require.NoError(t, err)
	}

	bills, err := svc.Bills(userID)
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "2026-09-05", bills[0].DueDate)
	assert.Equal(t, "2026-09-20", bills[2].DueDate)
}

func TestAddGoal(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()

	goal, err := svc.AddGoal(userID, dto.CreateGoalRequest{
		Name: "Emergency fund", TargetAmount: 300000, CurrentAmount: 50000, Priority: "high",
	})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, goal.CurrentAmount)

	_, err = svc.AddGoal(userID, dto.CreateGoalRequest{Name: "", TargetAmount: 100})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDashboard(t *testing.T) {
	svc := financeTestDB(t)
	userID := uuid.New()

	_, err := svc.AddBudget(userID, dto.CreateBudgetRequest{Category: "groceries", Amount: 500})
	require.NoError(t, err)
	_, err = svc.AddBudget(userID, dto.CreateBudgetRequest{Category: "transport", Amount: 200})
	require.NoError(t, err)

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = svc.AddTransaction(userID, dto.CreateTransactionRequest{
		Type: "expense", Amount: 150, Category: "groceries", Date: now,
	})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err = svc.AddBill(userID, dto.CreateBillRequest{
			Name: "bill", Amount: 10, DueDate: fmt.Sprintf("2026-09-%02d", i+1),
		})
		require.NoError(t, err)
	}

	dashboard, err := svc.Dashboard(userID)
	require.NoError(t, err)

	assert.Len(t, dashboard.Budgets, 2)
	assert.Len(t, dashboard.RecentTransactions, 1)
	assert.Len(t, dashboard.UpcomingBills, 5, "dashboard shows at most five bills")
	assert.Equal(t, 700.0, dashboard.Summary.TotalBudget)
	assert.Equal(t, 150.0, dashboard.Summary.TotalSpent)
	assert.Equal(t, 550.0, dashboard.Summary.Remaining)
	assert.Equal(t, 70.0, dashboard.Summary.UpcomingBillsAmount, "summary totals all pending bills")
}
