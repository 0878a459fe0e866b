package routes

import (
	"time"

	"github.com/finmitra/backend/internal/handlers"
	"github.com/finmitra/backend/internal/middleware"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	adviceHandler *handlers.AdviceHandler,
	bankingHandler *handlers.BankingHandler,
	taxHandler *handlers.TaxHandler,
	propertyHandler *handlers.PropertyHandler,
	financeHandler *handlers.FinanceHandler,
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Contact form is open to visitors who have not signed in.
	api.Post("/contact", contactHandler.Submit)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/session", authHandler.CreateSession)

	// Everything below requires a valid session.
	protected := api.Group("", middleware.RequireAuth(authService))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	protected.Post("/ai/advice", adviceHandler.Advise)
	protected.Get("/ai/conversations", adviceHandler.ListConversations)
	protected.Delete("/ai/conversation/:id", adviceHandler.ClearConversation)

	protected.Post("/banking/loan/check-eligibility", bankingHandler.CheckLoanEligibility)
	protected.Post("/banking/investment/analyze", bankingHandler.AnalyzeInvestment)
	protected.Post("/banking/savings/plan", bankingHandler.CreateSavingsPlan)
	protected.Post("/banking/credit-score/analyze", bankingHandler.AnalyzeCreditScore)

	protected.Post("/tax/calculate", taxHandler.Calculate)
	protected.Get("/tax/history", taxHandler.History)

	protected.Post("/property/legal-search", propertyHandler.LegalSearch)
	protected.Post("/property/valuation", propertyHandler.Valuation)
	protected.Get("/property/searches", propertyHandler.Searches)
	protected.Get("/property/valuations", propertyHandler.Valuations)

	protected.Post("/finance/transaction", financeHandler.CreateTransaction)
	protected.Get("/finance/transactions", financeHandler.ListTransactions)
	protected.Post("/finance/bill", financeHandler.CreateBill)
	protected.Get("/finance/bills", financeHandler.ListBills)
	protected.Post("/finance/budget", financeHandler.CreateBudget)
	protected.Get("/finance/budgets", financeHandler.ListBudgets)
	protected.Post("/finance/goal", financeHandler.CreateGoal)
	protected.Get("/finance/goals", financeHandler.ListGoals)
	protected.Get("/finance/dashboard", financeHandler.Dashboard)
}
