package domain

import "math"

// BulkDiscountMinQty is the per-line quantity threshold for the merchant
// discount. Eligibility is decided line by line, never for the whole order.
const BulkDiscountMinQty = 10

// Discount applies a percentage discount to a line total.
// savings = round(lineTotal * percent / 100). Percent outside [0,100] is the
// caller's responsibility.
func Discount(lineTotal int64, percent int) (discounted int64, savings int64) {
	savings = int64(math.Round(float64(lineTotal) * float64(percent) / 100))
	return lineTotal - savings, savings
}

// OrderLine is a derived view of one cart entry priced against the selected
// merchant. Never persisted; recomputed from the cart on demand.
type OrderLine struct {
	Denomination     Denomination `json:"denomination"`
	Quantity         int64        `json:"quantity"`
	LineTotal        int64        `json:"line_total"`
	DiscountEligible bool         `json:"discount_eligible"`
	DiscountedAmount int64        `json:"discounted_amount"`
	Savings          int64        `json:"savings"`
}

// OrderSummary aggregates the priced lines of a cart.
type OrderSummary struct {
	Lines        []OrderLine `json:"lines"`
	TotalRegular int64       `json:"total_regular"`
	TotalSavings int64       `json:"total_savings"`
	TotalToPay   int64       `json:"total_to_pay"`
}

// Summarize prices a cart against a merchant's discount. Only lines with
// quantity >= BulkDiscountMinQty receive the discount; the rest are charged
// in full. A nil merchant means no discount at all. Lines follow catalog
// order.
func Summarize(cart Cart, catalog []Denomination, merchant *SubMerchant) OrderSummary {
	percent := 0
	if merchant != nil {
		percent = merchant.DiscountPercent
	}

	summary := OrderSummary{}
	for _, d := range catalog {
		qty, ok := cart[d.ID]
		if !ok {
			continue
		}
		line := OrderLine{
			Denomination: d,
			Quantity:     qty,
			LineTotal:    d.MobiValue * qty,
		}
		if qty >= BulkDiscountMinQty {
			line.DiscountEligible = true
			line.DiscountedAmount, line.Savings = Discount(line.LineTotal, percent)
		} else {
			line.DiscountedAmount = line.LineTotal
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalRegular += line.LineTotal
		summary.TotalSavings += line.Savings
	}
	summary.TotalToPay = summary.TotalRegular - summary.TotalSavings
	return summary
}
