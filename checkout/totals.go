// Package checkout computes the order summary shown at checkout: subtotal,
// shipping, insurance, tax and the grand total.
package checkout

import "math"

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 500.00
	// ShippingFlatFee applies to every order at or below the threshold.
	ShippingFlatFee = 25.00
	// InsuranceRate is the fraction of the subtotal charged for transit
	// insurance.
	InsuranceRate = 0.01
)

type Line struct {
	Price    float64
	Quantity int
}

type Summary struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Insurance float64 `json:"insurance"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize computes the checkout summary for a set of cart lines.
// Insurance and tax are each rounded to the cent; the total is the plain
// sum of the four components and is never rounded again.
func Summarize(lines []Line, taxRate float64) Summary {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	subtotal = roundCents(subtotal)

	shipping := ShippingFlatFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	insurance := roundCents(subtotal * InsuranceRate)
	tax := roundCents(subtotal * taxRate)

	return Summary{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Insurance: insurance,
		Tax:       tax,
		Total:     subtotal + shipping + insurance + tax,
	}
}
