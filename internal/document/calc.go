package document

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces raw user input to a number. Empty strings, garbage and
// non-finite values all collapse to zero so invalid keystrokes never surface
// as errors or poison the totals.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CalculateTotals derives subtotal and total from the current line items and
// the delivery/discount adjustments.
func CalculateTotals(items []LineItem, deliveryCost, discount float64) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.Amount
	}
	total = subtotal + deliveryCost - discount
	return subtotal, total
}

func recalculate(d *Document) {
	d.Subtotal, d.Total = CalculateTotals(d.LineItems, d.DeliveryCost, d.Discount)
}

func nextLineItemID(items []LineItem) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
