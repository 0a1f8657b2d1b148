package store

import (
	"fmt"
	"strconv"
	"strings"

	"go-hardware-demo/internal/model"

	"github.com/shopspring/decimal"
)

const InvoicePrefix = "INV-"

// Line is anything that contributes an amount to an invoice subtotal.
type Line interface {
	Amount() int64
}

var half = decimal.New(5, -1)

// ComputeTotals sums the line amounts and applies taxRate, rounding the tax
// half up to a whole currency unit.
func ComputeTotals[L Line](lines []L, taxRate decimal.Decimal) model.Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Amount()
	}
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Add(half).Floor().IntPart()
	return model.Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// NextInvoiceNo returns the number following the highest numeric suffix in
// invoices. Numbers that do not parse are ignored.
func NextInvoiceNo(invoices []model.Invoice) string {
	highest := 0
	for _, inv := range invoices {
		n, err := strconv.Atoi(strings.Replace(inv.InvoiceNo, InvoicePrefix, "", 1))
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}
	return fmt.Sprintf("%s%04d", InvoicePrefix, highest+1)
}
