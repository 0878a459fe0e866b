package services

import (
	"fmt"

	"github.com/finmitra/backend/internal/ai"
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	legalSearchSystemPrompt = "You are a property legal expert in India specializing in property verification and legal documentation."
	valuationSystemPrompt   = "You are a certified property valuer in India with expertise in rural and urban property valuation."
)

const (
	propertyHistoryLimit = 100

	// Placeholder valuation model pending extraction of a figure from
	// the advisory text: flat per-sqft rate with straight-line age
	// depreciation capped at 30%.
	valuationBaseRate   = 3000.0
	depreciationPerYear = 0.02
	maxDepreciation     = 0.3
)

type PropertyService struct {
	db   *gorm.DB
	chat ai.Chat
}

func NewPropertyService(db *gorm.DB, chat ai.Chat) *PropertyService {
	return &PropertyService{db: db, chat: chat}
}

func (s *PropertyService) LegalSearch(userID uuid.UUID, req dto.PropertySearchRequest) (*dto.PropertySearchResponse, error) {
	if req.PropertyAddress == "" || req.SearchType == "" {
		return nil, fmt.Errorf("%w: property_address and search_type are required", ErrValidation)
	}

	query := fmt.Sprintf(`Provide comprehensive property legal search guidance for:
- Property Address: %s
- Property Type: %s
- State: %s
- District: %s
- Search Type: %s

For Indian rural property context, provide:
1) Documents required for %s
2) Step-by-step verification process
3) Government offices/portals to check (Sub-Registrar Office, Revenue Department)
4) Common red flags to watch for
5) Timeline and costs involved
6) Online verification options available in %s`,
		req.PropertyAddress, req.PropertyType, req.State, req.District, req.SearchType,
		req.SearchType, req.State)

	results, err := s.chat.Send(legalSearchSystemPrompt, query)
	if err != nil {
		return nil, err
	}

	search := models.PropertySearch{
		ID:              uuid.New(),
		UserID:          userID,
		PropertyAddress: req.PropertyAddress,
		PropertyType:    req.PropertyType,
		SearchType:      req.SearchType,
		Status:          "completed",
		Results:         results,
	}
	if err := s.db.Create(&search).Error; err != nil {
		return nil, err
	}

	return &dto.PropertySearchResponse{
		SearchID: search.ID.String(),
		Status:   search.Status,
		Results:  results,
	}, nil
}

func estimatedValue(areaSqft float64, ageYears int) float64 {
	value := areaSqft * valuationBaseRate
	if ageYears > 0 {
		depreciation := float64(ageYears) * depreciationPerYear
		if depreciation > maxDepreciation {
			depreciation = maxDepreciation
		}
		value *= 1 - depreciation
	}
	return round2(value)
}

func (s *PropertyService) Valuation(userID uuid.UUID, req dto.PropertyValuationRequest) (*dto.PropertyValuationResponse, error) {
	if req.PropertyAddress == "" {
		return nil, fmt.Errorf("%w: property_address is required", ErrValidation)
	}
	if req.AreaSqft <= 0 {
		return nil, fmt.Errorf("%w: area_sqft must be positive", ErrValidation)
	}

	query := fmt.Sprintf(`Provide detailed property valuation for:
- Property Address: %s
- Property Type: %s
- Area: %.0f sq ft
- Location: %s, %s
- Age: %d years
- Amenities: %s

For Indian market context (rural/semi-urban), provide:
1) Estimated market value range in INR
2) Valuation methodology used
3) Key factors affecting the valuation
4) Comparison with similar properties in the area
5) Future appreciation potential
6) Documentation needed for official valuation
7) Registered valuer recommendations`,
		req.PropertyAddress, req.PropertyType, req.AreaSqft, req.Location, req.State,
		req.AgeOfProperty, req.Amenities)

	details, err := s.chat.Send(valuationSystemPrompt, query)
	if err != nil {
		return nil, err
	}

	value := estimatedValue(req.AreaSqft, req.AgeOfProperty)

	valuation := models.PropertyValuation{
		ID:               uuid.New(),
		UserID:           userID,
		PropertyAddress:  req.PropertyAddress,
		PropertyType:     req.PropertyType,
		AreaSqft:         req.AreaSqft,
		Location:         req.Location,
		EstimatedValue:   value,
		ValuationDetails: details,
	}
	if err := s.db.Create(&valuation).Error; err != nil {
		return nil, err
	}

	return &dto.PropertyValuationResponse{
		EstimatedValue:   value,
		ValuationDetails: details,
	}, nil
}

func (s *PropertyService) Searches(userID uuid.UUID) ([]models.PropertySearch, error) {
	var searches []models.PropertySearch
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(propertyHistoryLimit).
		Find(&searches).Error
	return searches, err
}

func (s *PropertyService) Valuations(userID uuid.UUID) ([]models.PropertyValuation, error) {
	var valuations []models.PropertyValuation
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(propertyHistoryLimit).
		Find(&valuations).Error
	return valuations, err
}
