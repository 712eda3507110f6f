package finance

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"homewise/internal/model"
)

// LoadBankRates reads a bank → annual interest rate (%) mapping from a JSON
// file, e.g. {"HDFC": 8.4, "SBI": 8.5}.
func LoadBankRates(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank rates file: %w", err)
	}

	rates := map[string]float64{}
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to parse bank rates file: %w", err)
	}
	return rates, nil
}

// CompareBanks computes the EMI and total cost of a loan across banks,
// cheapest EMI first.
func CompareBanks(rates map[string]float64, propertyPrice, downPayment float64, tenureYears int) []model.BankLoanOffer {
	loanAmount := propertyPrice - downPayment
	offers := make([]model.BankLoanOffer, 0, len(rates))

	for bank, rate := range rates {
		emi := ComputeEMI(loanAmount, rate, tenureYears)
		totalPaid := emi * float64(tenureYears*12)

		offers = append(offers, model.BankLoanOffer{
			Bank:          bank,
			InterestRate:  rate,
			LoanAmount:    round2(loanAmount),
			MonthlyEMI:    emi,
			TotalInterest: round2(totalPaid - loanAmount),
			TotalPayment:  round2(totalPaid),
		})
	}

	sort.Slice(offers, func(i, j int) bool {
		if offers[i].MonthlyEMI != offers[j].MonthlyEMI {
			return offers[i].MonthlyEMI < offers[j].MonthlyEMI
		}
		return offers[i].Bank < offers[j].Bank
	})

	return offers
}
