package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Balance holds a value whose source column has drifted between numeric and
// free-text across schema revisions. When the cell parses cleanly Amount is
// set and Numeric is true; otherwise the original text is preserved in Raw so
// the consuming layer can decide how to render it.
type Balance struct {
	Amount  decimal.Decimal
	Raw     string
	Numeric bool
}

// NumericBalance wraps a cleanly parsed amount.
func NumericBalance(amount decimal.Decimal) Balance {
	return Balance{Amount: amount, Numeric: true}
}

// RawBalance preserves text that did not parse as an amount.
func RawBalance(raw string) Balance {
	return Balance{Raw: raw}
}

type balanceJSON struct {
	Amount  *decimal.Decimal `json:"amount,omitempty"`
	Raw     string           `json:"raw,omitempty"`
	Numeric bool             `json:"numeric"`
}

// MarshalJSON renders either the amount or the raw text, never both.
func (b Balance) MarshalJSON() ([]byte, error) {
	if b.Numeric {
		amount := b.Amount
		return json.Marshal(balanceJSON{Amount: &amount, Numeric: true})
	}
	return json.Marshal(balanceJSON{Raw: b.Raw})
}

// UnmarshalJSON restores a Balance written by MarshalJSON.
func (b *Balance) UnmarshalJSON(data []byte) error {
	var aux balanceJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Numeric {
		amount := decimal.Zero
		if aux.Amount != nil {
			amount = *aux.Amount
		}
		*b = NumericBalance(amount)
		return nil
	}
	*b = RawBalance(aux.Raw)
	return nil
}
