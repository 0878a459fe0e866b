package handlers

import (
	"strconv"

	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/middleware"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FinanceHandler struct {
	finance *services.FinanceService
}

func NewFinanceHandler(finance *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	transaction, err := h.finance.AddTransaction(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	transactions, err := h.finance.Transactions(user.ID, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(transactions)
}

func (h *FinanceHandler) CreateBill(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bill, err := h.finance.AddBill(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(bill)
}

func (h *FinanceHandler) ListBills(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	bills, err := h.finance.Bills(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(bills)
}

func (h *FinanceHandler) CreateBudget(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	budget, err := h.finance.AddBudget(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(budget)
}

func (h *FinanceHandler) ListBudgets(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	budgets, err := h.finance.Budgets(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(budgets)
}

func (h *FinanceHandler) CreateGoal(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	goal, err := h.finance.AddGoal(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *FinanceHandler) ListGoals(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	goals, err := h.finance.Goals(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(goals)
}

func (h *FinanceHandler) Dashboard(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	dashboard, err := h.finance.Dashboard(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dashboard)
}
