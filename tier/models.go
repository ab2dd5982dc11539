package tier

import (
	"math/big"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

// BonusBracket grants extra tokens while the tier's fill percentage sits at
// or above its threshold. Brackets are ordered strictly ascending by
// threshold, richest bonus first.
type BonusBracket struct {
	FillPercentage  uint64 `json:"fillPercentage"`
	BonusPercentage uint64 `json:"bonusPercentage"`
}

// Tier is one priced slice of the sale allocation. Price is 6-decimal USD
// per token, allocation and sold are 18-decimal token units, purchase
// bounds are 6-decimal USD.
type Tier struct {
	Price             string         `json:"price"`
	Allocation        string         `json:"allocation"`
	Sold              string         `json:"sold"`
	MinPurchase       string         `json:"minPurchase"`
	MaxPurchase       string         `json:"maxPurchase"`
	VestingTGEPercent uint64         `json:"vestingTGEPercent"`
	VestingMonths     uint64         `json:"vestingMonths"`
	IsActive          bool           `json:"isActive"`
	StartTime         uint64         `json:"startTime"`
	EndTime           uint64         `json:"endTime"`
	BonusBrackets     []BonusBracket `json:"bonusBrackets"`
}

// TierDetails is the read model returned to collaborators, with the
// remaining allocation precomputed.
type TierDetails struct {
	Index     uint64 `json:"index"`
	Tier      *Tier  `json:"tier"`
	Remaining string `json:"remaining"`
}

func (t *Tier) allocation() (*big.Int, error) {
	return platform.ParseAmount("tier allocation", t.Allocation)
}

func (t *Tier) sold() (*big.Int, error) {
	return platform.ParseAmount("tier sold", t.Sold)
}

func (t *Tier) price() (*big.Int, error) {
	return platform.ParseAmount("tier price", t.Price)
}

// remaining returns allocation - sold.
func (t *Tier) remaining() (*big.Int, error) {
	allocation, err := t.allocation()
	if err != nil {
		return nil, err
	}

	sold, err := t.sold()
	if err != nil {
		return nil, err
	}

	return new(big.Int).Sub(allocation, sold), nil
}

// inWindow reports whether now falls inside the tier's sale window.
func (t *Tier) inWindow(now uint64) bool {
	return now >= t.StartTime && now <= t.EndTime
}

// isEligible reports whether the tier can accept a purchase at now.
func (t *Tier) isEligible(now uint64) (bool, error) {
	if !t.IsActive || !t.inWindow(now) {
		return false, nil
	}

	remaining, err := t.remaining()
	if err != nil {
		return false, err
	}

	return remaining.Sign() > 0, nil
}
