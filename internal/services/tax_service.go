package services

import (
	"fmt"

	"github.com/finmitra/backend/internal/ai"
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const taxSystemPrompt = "You are a tax advisor providing optimization strategies."

const taxHistoryLimit = 100

type TaxService struct {
	db   *gorm.DB
	chat ai.Chat
}

func NewTaxService(db *gorm.DB, chat ai.Chat) *TaxService {
	return &TaxService{db: db, chat: chat}
}

// taxOwedSingle applies the 2024 US progressive schedule for a single
// filer. Each base is the cumulative tax at the bracket threshold.
func taxOwedSingle(taxableIncome float64) float64 {
	switch {
	case taxableIncome > 578125:
		return 174238.25 + 0.37*(taxableIncome-578125)
	case taxableIncome > 231250:
		return 52832.75 + 0.35*(taxableIncome-231250)
	case taxableIncome > 182100:
		return 37104 + 0.32*(taxableIncome-182100)
	case taxableIncome > 95375:
		return 16290 + 0.24*(taxableIncome-95375)
	case taxableIncome > 44725:
		return 5147 + 0.22*(taxableIncome-44725)
	case taxableIncome > 11000:
		return 1100 + 0.12*(taxableIncome-11000)
	default:
		return 0.10 * taxableIncome
	}
}

func (s *TaxService) Calculate(userID uuid.UUID, req dto.TaxRequest) (*dto.TaxResponse, error) {
	if req.TaxYear <= 0 {
		return nil, fmt.Errorf("%w: tax_year is required", ErrValidation)
	}
	if req.AnnualIncome < 0 || req.Deductions < 0 {
		return nil, fmt.Errorf("%w: income and deductions cannot be negative", ErrValidation)
	}
	if req.FilingStatus != "single" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFilingStatus, req.FilingStatus)
	}

	taxableIncome := req.AnnualIncome - req.Deductions
	if taxableIncome < 0 {
		taxableIncome = 0
	}
	taxOwed := round2(taxOwedSingle(taxableIncome))

	effectiveRate := 0.0
	if req.AnnualIncome > 0 {
		effectiveRate = round2(taxOwed / req.AnnualIncome * 100)
	}

	query := fmt.Sprintf(`Analyze tax situation:
- Tax Year: %d
- Annual Income: %.2f
- Deductions: %.2f
- Dependents: %d
- Filing Status: %s
- Estimated Tax: %.2f

Provide: 1) Additional deductions to consider, 2) Tax-saving strategies, 3) Credits that may apply, 4) Next year planning tips`,
		req.TaxYear, req.AnnualIncome, req.Deductions, req.Dependents, req.FilingStatus, taxOwed)

	tips, err := s.chat.Send(taxSystemPrompt, query)
	if err != nil {
		return nil, err
	}

	calculation := models.TaxCalculation{
		ID:               uuid.New(),
		UserID:           userID,
		TaxYear:          req.TaxYear,
		Income:           req.AnnualIncome,
		Deductions:       req.Deductions,
		TaxOwed:          taxOwed,
		OptimizationTips: tips,
	}
	if err := s.db.Create(&calculation).Error; err != nil {
		return nil, err
	}

	return &dto.TaxResponse{
		TaxableIncome:    taxableIncome,
		TaxOwed:          taxOwed,
		EffectiveRate:    effectiveRate,
		OptimizationTips: tips,
	}, nil
}

func (s *TaxService) History(userID uuid.UUID) ([]models.TaxCalculation, error) {
	var calculations []models.TaxCalculation
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(taxHistoryLimit).
		Find(&calculations).Error
	return calculations, err
}
