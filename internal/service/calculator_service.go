package service

import (
	"taxdesk/internal/gst"
)

// CalculateInput is the DTO for a single-rate GST calculation.
type CalculateInput struct {
	Amount    float64 `json:"amount" binding:"required"`
	Rate      float64 `json:"rate"`
	Inclusive bool    `json:"inclusive"`
}

// ItemInput is one line item in a summary request.
type ItemInput struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Rate      float64 `json:"rate"`
}

// ItemSummaryOutput pairs the computed items with their aggregate totals.
type ItemSummaryOutput struct {
	Items   []gst.Item  `json:"items"`
	Summary gst.Summary `json:"summary"`
}

// CalculatorService defines the stateless GST calculation contract.
type CalculatorService interface {
	Calculate(input CalculateInput) (gst.Breakdown, error)
	CompareSlabs(amount float64, inclusive bool) ([]gst.Breakdown, error)
	SummarizeItems(inputs []ItemInput) (*ItemSummaryOutput, error)
}

type calculatorService struct{}

// NewCalculatorService creates a new CalculatorService implementation.
func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

func (s *calculatorService) Calculate(input CalculateInput) (gst.Breakdown, error) {
	return gst.Compute(input.Amount, input.Rate, input.Inclusive)
}

func (s *calculatorService) CompareSlabs(amount float64, inclusive bool) ([]gst.Breakdown, error) {
	return gst.CompareSlabs(amount, inclusive)
}

func (s *calculatorService) SummarizeItems(inputs []ItemInput) (*ItemSummaryOutput, error) {
	items := []gst.Item{}
	for _, in := range inputs {
		item, err := gst.NewItem(in.Name, in.Quantity, in.UnitPrice, in.Rate)
		if err != nil {
			return nil, err
		}
		items = gst.Add(items, item)
	}
	return &ItemSummaryOutput{
		Items:   items,
		Summary: gst.Summarize(items),
	}, nil
}
