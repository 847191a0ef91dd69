package moneybook

import (
	"fmt"
	"strings"

	"github.com/hyejin/moneybook/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Type is the direction of a transaction. It decides which summary
// bucket the amount contributes to and how the amount is displayed;
// the amount itself is always a positive magnitude.
type Type string

// Transaction types.
const (
	Income  Type = "income"
	Expense Type = "expense"
	Saving  Type = "saving"
)

// ParseType parses a transaction type from its string form.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense, Saving:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want income, expense or saving)", s)
	}
}

// Classification distinguishes recurring (fixed) from ad hoc
// (variable) transactions, independently of Type.
type Classification string

// Transaction classifications.
const (
	Fixed    Classification = "fixed"
	Variable Classification = "variable"
)

// ParseClassification parses a classification from its string form.
func ParseClassification(s string) (Classification, error) {
	switch c := Classification(strings.ToLower(strings.TrimSpace(s))); c {
	case Fixed, Variable:
		return c, nil
	default:
		return "", fmt.Errorf("unknown classification %q (want fixed or variable)", s)
	}
}

// Transaction is the sole persisted entity of the account book.
//
// The id is assigned by the remote service when authenticated, or
// generated locally in anonymous mode. Position within the collection
// encodes the manual sort order; there is no order field.
type Transaction struct {
	ID             int64           `json:"id"`
	Date           date.Date       `json:"date"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Type           Type            `json:"type"`
	Classification Classification  `json:"classification"`
}

// Validate checks the invariants required to commit a transaction.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return errValidation("description is required")
	}
	if !t.Amount.IsPositive() {
		return errValidation("amount must be a positive number, got %s", t.Amount)
	}
	if _, err := ParseType(string(t.Type)); err != nil {
		return errValidation("%v", err)
	}
	if _, err := ParseClassification(string(t.Classification)); err != nil {
		return errValidation("%v", err)
	}
	return nil
}

// Equal reports whether two transactions carry the same values.
// Amounts are compared by value, not by decimal representation.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Classification == o.Classification
}

// Patch carries a partial change to a transaction. Nil fields are
// left untouched when the patch is applied.
type Patch struct {
	Date           *date.Date       `json:"date,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Type           *Type            `json:"type,omitempty"`
	Classification *Classification  `json:"classification,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Date == nil && p.Description == nil && p.Amount == nil &&
		p.Type == nil && p.Classification == nil
}

// apply merges the patch into the transaction, field by field.
func (p Patch) apply(t *Transaction) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Classification != nil {
		t.Classification = *p.Classification
	}
}

// FieldPatch builds a single-field patch from a field name and its raw
// string value, coercing the amount field to a number. It is the entry
// point for cell-level edits.
func FieldPatch(field, value string) (Patch, error) {
	var p Patch
	switch field {
	case "date":
		d, err := date.Parse(value)
		if err != nil {
			return p, errValidation("%v", err)
		}
		p.Date = &d
	case "description":
		if strings.TrimSpace(value) == "" {
			return p, errValidation("description is required")
		}
		p.Description = &value
	case "amount":
		amt, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || !amt.IsPositive() {
			return p, errValidation("amount must be a positive number, got %q", value)
		}
		p.Amount = &amt
	case "type":
		t, err := ParseType(value)
		if err != nil {
			return p, errValidation("%v", err)
		}
		p.Type = &t
	case "classification":
		c, err := ParseClassification(value)
		if err != nil {
			return p, errValidation("%v", err)
		}
		p.Classification = &c
	default:
		return p, errValidation("unknown field %q", field)
	}
	return p, nil
}
