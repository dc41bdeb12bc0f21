package orcamento

import (
	"encoding/json"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/models"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the value-copy of a product taken at add time. Catalog
// edits after that moment never touch an existing orçamento line.
type ProductSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Unit  string `json:"unit"`
	Image string `json:"image"`
}

// Line is one orçamento entry, keyed by (product id, modality). The same
// product may appear once per modality.
type Line struct {
	Product   ProductSnapshot `json:"product"`
	Modality  models.Modality `json:"modality"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type lineAlias struct {
	Product   ProductSnapshot `json:"product"`
	Modality  models.Modality `json:"modality"`
	Quantity  int             `json:"quantity"`
	UnitPrice json.RawMessage `json:"unit_price"`
}

// UnmarshalJSON coerces a missing or non-numeric stored price to zero so a
// corrupted persisted cart can never poison the total.
func (l *Line) UnmarshalJSON(data []byte) error {
	var alias lineAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	l.Product = alias.Product
	l.Modality = alias.Modality
	l.Quantity = alias.Quantity
	l.UnitPrice = coercePrice(alias.UnitPrice)
	return nil
}

func coercePrice(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, perr := decimal.NewFromString(s); perr == nil {
			return parsed
		}
	}
	return decimal.Zero
}
