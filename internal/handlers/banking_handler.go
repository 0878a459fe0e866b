package handlers

import (
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/middleware"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BankingHandler struct {
	banking *services.BankingService
}

func NewBankingHandler(banking *services.BankingService) *BankingHandler {
	return &BankingHandler{banking: banking}
}

func (h *BankingHandler) CheckLoanEligibility(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.LoanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.banking.CheckLoanEligibility(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *BankingHandler) AnalyzeInvestment(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.InvestmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.banking.AnalyzeInvestment(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *BankingHandler) CreateSavingsPlan(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUser(c); err != nil {
		return unauthorized(c)
	}

	var req dto.SavingsPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.banking.CreateSavingsPlan(req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *BankingHandler) AnalyzeCreditScore(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUser(c); err != nil {
		return unauthorized(c)
	}

	var req dto.CreditScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.banking.AnalyzeCreditScore(req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}
