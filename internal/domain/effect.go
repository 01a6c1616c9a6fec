package domain

import (
	"fmt"
	"math"
)

type EffectKind string

const (
	EffectCredit            EffectKind = "credit"
	EffectDebit             EffectKind = "debit"
	EffectTransferToSavings EffectKind = "transfer_to_savings"
	EffectDebitFromSavings  EffectKind = "debit_from_savings"
)

func (k EffectKind) Valid() bool {
	switch k {
	case EffectCredit, EffectDebit, EffectTransferToSavings, EffectDebitFromSavings:
		return true
	default:
		return false
	}
}

// Effect is a ledger operation attached to a choice or an entry action.
// The set of implementations is closed to this package.
type Effect interface {
	Kind() EffectKind
	Amount() float64
	isEffect()
}

type CreditEffect struct{ Value float64 }

type DebitEffect struct{ Value float64 }

type SavingsTransferEffect struct{ Value float64 }

type SavingsDebitEffect struct{ Value float64 }

func (CreditEffect) Kind() EffectKind          { return EffectCredit }
func (DebitEffect) Kind() EffectKind           { return EffectDebit }
func (SavingsTransferEffect) Kind() EffectKind { return EffectTransferToSavings }
func (SavingsDebitEffect) Kind() EffectKind    { return EffectDebitFromSavings }

func (e CreditEffect) Amount() float64          { return e.Value }
func (e DebitEffect) Amount() float64           { return e.Value }
func (e SavingsTransferEffect) Amount() float64 { return e.Value }
func (e SavingsDebitEffect) Amount() float64    { return e.Value }

func (CreditEffect) isEffect()          {}
func (DebitEffect) isEffect()           {}
func (SavingsTransferEffect) isEffect() {}
func (SavingsDebitEffect) isEffect()    {}

func NewEffect(kind EffectKind, amount float64) (Effect, error) {
	switch kind {
	case EffectCredit:
		return CreditEffect{Value: amount}, nil
	case EffectDebit:
		return DebitEffect{Value: amount}, nil
	case EffectTransferToSavings:
		return SavingsTransferEffect{Value: amount}, nil
	case EffectDebitFromSavings:
		return SavingsDebitEffect{Value: amount}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEffectKind, kind)
	}
}

// ValidAmount reports whether amount is a finite, non-negative number.
func ValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}
