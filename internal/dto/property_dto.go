package dto

type PropertySearchRequest struct {
	PropertyAddress string `json:"property_address"`
	PropertyType    string `json:"property_type"`
	SearchType      string `json:"search_type"` // legal_verification | ownership | encumbrance
	State           string `json:"state"`
	District        string `json:"district"`
}

type PropertySearchResponse struct {
	SearchID string `json:"search_id"`
	Status   string `json:"status"`
	Results  string `json:"results"`
}

type PropertyValuationRequest struct {
	PropertyAddress string  `json:"property_address"`
	PropertyType    string  `json:"property_type"`
	AreaSqft        float64 `json:"area_sqft"`
	Location        string  `json:"location"`
	State           string  `json:"state"`
	AgeOfProperty   int     `json:"age_of_property"`
	Amenities       string  `json:"amenities"`
}

type PropertyValuationResponse struct {
	EstimatedValue   float64 `json:"estimated_value"`
	ValuationDetails string  `json:"valuation_details"`
}
