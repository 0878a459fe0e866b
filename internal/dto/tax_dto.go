package dto

type TaxRequest struct {
	TaxYear      int     `json:"tax_year"`
	AnnualIncome float64 `json:"annual_income"`
	Deductions   float64 `json:"deductions"`
	Dependents   int     `json:"dependents"`
	FilingStatus string  `json:"filing_status"`
}

type TaxResponse struct {
	TaxableIncome    float64 `json:"taxable_income"`
	TaxOwed          float64 `json:"tax_owed"`
	EffectiveRate    float64 `json:"effective_rate"`
	OptimizationTips string  `json:"optimization_tips"`
}
