package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var brl = accounting.Accounting{Symbol: "R$ ", Precision: 2, Thousand: ".", Decimal: ","}

// BRL renders a decimal the Brazilian way: "R$ 1.234,56".
func BRL(amount decimal.Decimal) string {
	return brl.FormatMoney(amount)
}
