package payment

import (
	"context"

	"hotelreservation/internal/domain"
)

// Simulator stands in for a payment provider. It charges nothing and only
// tells the operator which amount would have been processed.
type Simulator struct {
	reportf func(format string, args ...interface{})
}

func NewSimulator(reportf func(format string, args ...interface{})) *Simulator {
	if reportf == nil {
		reportf = func(string, ...interface{}) {}
	}
	return &Simulator{reportf: reportf}
}

func (s *Simulator) Process(ctx context.Context, amount float64) {
	s.reportf("%s", Describe(amount))
}

// Describe is the operator-facing payment line for amount.
func Describe(amount float64) string {
	return "Processing payment of PKR " + domain.FormatPrice(amount)
}
