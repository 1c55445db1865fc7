package amendment

import (
	"github.com/shopspring/decimal"

	"schooladmin/internal/domain/models"
)

// TotalAmount is the booking total snapshot taken at creation: course price
// plus attached service prices, less discounts, never below zero.
func TotalAmount(coursePrice decimal.Decimal, servicePrices []decimal.Decimal, bookingDiscount, serviceDiscount decimal.Decimal) decimal.Decimal {
	total := coursePrice
	for _, p := range servicePrices {
		total = total.Add(p)
	}
	total = total.Sub(bookingDiscount).Sub(serviceDiscount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// TotalPaid sums the amounts of completed payments.
func TotalPaid(payments []models.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// TotalServicePaid sums the amounts of completed service payments.
func TotalServicePaid(payments []models.ServicePayment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}
