package finance

import (
	"math"

	"homewise/internal/model"
)

// Params holds the assumption set for a buy-vs-rent projection.
type Params struct {
	DownPaymentPercent float64 // % of property price paid upfront
	LoanRate           float64 // annual home-loan rate, %
	TaxRate            float64 // capital-gains tax rate on appreciation, %
	AppreciationRate   float64 // annual property appreciation, %
	RentEscalation     float64 // annual rent escalation, %
	InvestRate         float64 // annual return on invested capital, %
	MonthlySaving      float64 // monthly SIP contribution while renting
	TenureYears        int

	// DeductCapitalGainsTax subtracts tax on the appreciation delta from the
	// buying wealth. SubtractRentPaid subtracts total rent paid from the
	// renting wealth. Both default to on, matching the batch analyzer that
	// produced the shipped dataset.
	DeductCapitalGainsTax bool
	SubtractRentPaid      bool
}

// DefaultParams returns the standard assumption set used by the batch
// analyzer: 20% down, 8.5% loan, 20% tax, 5% appreciation and escalation,
// 10% investment return, ₹15,000/month savings over a 20-year horizon.
func DefaultParams() Params {
	return Params{
		DownPaymentPercent:    20,
		LoanRate:              8.5,
		TaxRate:               20,
		AppreciationRate:      5,
		RentEscalation:        5,
		InvestRate:            10,
		MonthlySaving:         15000,
		TenureYears:           20,
		DeductCapitalGainsTax: true,
		SubtractRentPaid:      true,
	}
}

// ComputeEMI calculates the equated monthly installment for a loan using the
// standard amortization formula P*r*(1+r)^n / ((1+r)^n - 1). Returns 0 for
// non-positive principal or tenure, or a negative rate. A zero rate falls
// back to straight-line division.
func ComputeEMI(principal, annualRatePercent float64, tenureYears int) float64 {
	if principal <= 0 || tenureYears <= 0 || annualRatePercent < 0 {
		return 0
	}

	n := float64(tenureYears * 12)
	r := annualRatePercent / 100 / 12
	if r == 0 {
		return round2(principal / n)
	}

	pow := math.Pow(1+r, n)
	emi := principal * r * pow / (pow - 1)
	return round2(emi)
}

// BuyOutcome holds the buying-scenario projection.
type BuyOutcome struct {
	DownPayment  float64 `json:"down_payment"`
	LoanAmount   float64 `json:"loan_amount"`
	EMI          float64 `json:"emi"`
	TotalPaid    float64 `json:"total_paid"`
	InterestPaid float64 `json:"interest_paid"`
	FutureValue  float64 `json:"future_property_value"`
	TaxOnGain    float64 `json:"tax_on_gain"`
	Wealth       float64 `json:"wealth_buying"`
}

// BuyingWealth projects net wealth after buying: loan EMIs are paid over the
// tenure, the property compounds at the appreciation rate, and capital-gains
// tax is optionally deducted from the appreciation delta.
func BuyingWealth(propertyPrice, downPayment float64, p Params) BuyOutcome {
	out := BuyOutcome{DownPayment: round2(downPayment)}
	if propertyPrice <= 0 || p.TenureYears <= 0 {
		return out
	}

	loanAmount := propertyPrice - downPayment
	emi := ComputeEMI(loanAmount, p.LoanRate, p.TenureYears)
	totalPaid := emi * float64(p.TenureYears*12)

	futureValue := propertyPrice * math.Pow(1+p.AppreciationRate/100, float64(p.TenureYears))

	taxOnGain := 0.0
	if p.DeductCapitalGainsTax {
		taxOnGain = (futureValue - propertyPrice) * (p.TaxRate / 100)
	}

	out.LoanAmount = round2(loanAmount)
	out.EMI = emi
	out.TotalPaid = round2(totalPaid)
	out.InterestPaid = round2(totalPaid - loanAmount)
	out.FutureValue = round2(futureValue)
	out.TaxOnGain = round2(taxOnGain)
	out.Wealth = round2(futureValue - taxOnGain - totalPaid - downPayment)
	return out
}

// RentOutcome holds the renting-scenario projection.
type RentOutcome struct {
	TotalRentPaid float64 `json:"total_rent_paid"`
	LumpSumValue  float64 `json:"lump_sum_value"`
	SIPValue      float64 `json:"sip_value"`
	Wealth        float64 `json:"wealth_renting"`
}

// RentingWealth projects net wealth after renting: the down payment is
// invested as a lump sum, monthly savings compound as a SIP, and total rent
// paid (escalating annually) is optionally subtracted.
func RentingWealth(initialRent, downPayment float64, p Params) RentOutcome {
	var out RentOutcome
	if p.TenureYears <= 0 {
		return out
	}

	totalRent := 0.0
	rent := initialRent
	for y := 0; y < p.TenureYears; y++ {
		totalRent += rent * 12
		rent *= 1 + p.RentEscalation/100
	}

	annualRate := p.InvestRate / 100
	lumpSum := downPayment * math.Pow(1+annualRate, float64(p.TenureYears))

	months := float64(p.TenureYears * 12)
	monthlyRate := annualRate / 12
	var sip float64
	if monthlyRate == 0 {
		sip = p.MonthlySaving * months
	} else {
		sip = p.MonthlySaving * ((math.Pow(1+monthlyRate, months) - 1) / monthlyRate) * (1 + monthlyRate)
	}

	wealth := lumpSum + sip
	if p.SubtractRentPaid {
		wealth -= totalRent
	}

	out.TotalRentPaid = round2(totalRent)
	out.LumpSumValue = round2(lumpSum)
	out.SIPValue = round2(sip)
	out.Wealth = round2(wealth)
	return out
}

// CompareWealth picks the scenario with the strictly higher final wealth.
// Equal outcomes report a tie.
func CompareWealth(buyWealth, rentWealth float64) model.Decision {
	switch {
	case buyWealth > rentWealth:
		return model.DecisionBuy
	case rentWealth > buyWealth:
		return model.DecisionRent
	default:
		return model.DecisionTie
	}
}

// ROIMetrics holds return-on-investment figures for a rental property.
type ROIMetrics struct {
	InitialInvestment float64 `json:"initial_investment"`
	FutureValue       float64 `json:"future_value"`
	RentalIncome      float64 `json:"rental_income"`
	TotalReturn       float64 `json:"total_return"`
	ROIPercent        float64 `json:"roi_percent"`
	AnnualROI         float64 `json:"annual_roi"`
}

// ComputeROI projects total return for a property held as a rental: compound
// appreciation plus rental income escalating 5% annually.
func ComputeROI(propertyPrice, monthlyRent, appreciationRate float64, years int) ROIMetrics {
	if propertyPrice <= 0 || years <= 0 {
		return ROIMetrics{InitialInvestment: propertyPrice}
	}

	futureValue := propertyPrice * math.Pow(1+appreciationRate/100, float64(years))

	totalRent := 0.0
	rent := monthlyRent
	for y := 0; y < years; y++ {
		totalRent += rent * 12
		rent *= 1.05
	}

	totalReturn := (futureValue - propertyPrice) + totalRent
	roi := totalReturn / propertyPrice * 100

	return ROIMetrics{
		InitialInvestment: propertyPrice,
		FutureValue:       round2(futureValue),
		RentalIncome:      round2(totalRent),
		TotalReturn:       round2(totalReturn),
		ROIPercent:        round2(roi),
		AnnualROI:         round2(roi / float64(years)),
	}
}

// EstimateRent estimates monthly rent at ₹20 per sqft, capped between 0.2%
// and 0.4% of the property price.
func EstimateRent(price, areaSqft float64) float64 {
	if price <= 0 {
		return 0
	}

	estimated := areaSqft * 20
	minRent := price * 0.002
	maxRent := price * 0.004

	if estimated < minRent {
		estimated = minRent
	}
	if estimated > maxRent {
		estimated = maxRent
	}
	return round2(estimated)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
