// Package zakat computes the yearly alms due on net wealth above Nisab.
package zakat

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// NisabGoldGrams is the gold-standard Nisab weight.
	NisabGoldGrams = decimal.RequireFromString("87.48")
	// DefaultGoldPricePerGram is used when no price is configured (USD).
	DefaultGoldPricePerGram = decimal.NewFromInt(65)

	rate = decimal.RequireFromString("0.025")
)

var ErrNegativeAmount = errors.New("amounts must not be negative")

type Assets struct {
	Cash        decimal.Decimal `json:"cash"`
	Gold        decimal.Decimal `json:"gold"`
	Silver      decimal.Decimal `json:"silver"`
	Investments decimal.Decimal `json:"investments"`
	Business    decimal.Decimal `json:"business"`
	Receivables decimal.Decimal `json:"receivables"`
}

func (a Assets) items() []decimal.Decimal {
	return []decimal.Decimal{a.Cash, a.Gold, a.Silver, a.Investments, a.Business, a.Receivables}
}

type Liabilities struct {
	Debts    decimal.Decimal `json:"debts"`
	Expenses decimal.Decimal `json:"expenses"`
}

func (l Liabilities) items() []decimal.Decimal {
	return []decimal.Decimal{l.Debts, l.Expenses}
}

type Result struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWealth        decimal.Decimal `json:"net_wealth"`
	Nisab            decimal.Decimal `json:"nisab"`
	Eligible         bool            `json:"eligible"`
	ZakatDue         decimal.Decimal `json:"zakat_due"`
}

// Nisab is the threshold value for a gold price per gram.
func Nisab(goldPricePerGram decimal.Decimal) decimal.Decimal {
	return NisabGoldGrams.Mul(goldPricePerGram)
}

// Calculate returns 2.5% of net wealth when it reaches nisab, otherwise zero.
func Calculate(assets Assets, liabilities Liabilities, nisab decimal.Decimal) (Result, error) {
	totalAssets, err := sum(assets.items())
	if err != nil {
		return Result{}, err
	}
	totalLiabilities, err := sum(liabilities.items())
	if err != nil {
		return Result{}, err
	}

	net := totalAssets.Sub(totalLiabilities)
	res := Result{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWealth:        net,
		Nisab:            nisab,
		ZakatDue:         decimal.Zero,
	}
	if net.GreaterThanOrEqual(nisab) {
		res.Eligible = true
		res.ZakatDue = net.Mul(rate).Round(2)
	}
	return res, nil
}

func sum(values []decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range values {
		if v.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeAmount, v)
		}
		total = total.Add(v)
	}
	return total, nil
}
