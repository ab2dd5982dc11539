package sale

import (
	"math/big"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

// SaleConfig is the presale-wide configuration written at initialization.
// USD amounts are 6-decimal fixed point, token amounts 18-decimal.
type SaleConfig struct {
	StartTime           uint64 `json:"startTime"`
	EndTime             uint64 `json:"endTime"`
	MinPurchaseInterval uint64 `json:"minPurchaseInterval"`
	MaxPurchaseUSD      string `json:"maxPurchaseUsd"`
	MaxTokensPerAddress string `json:"maxTokensPerAddress"`
	Treasury            string `json:"treasury"`
	Aborted             bool   `json:"aborted"`
}

// Purchase is a buyer's accumulated record across every transaction, not a
// per-transaction entry. TierAmounts tracks USD spent per tier index so the
// per-tier maximum holds across repeated buys; ScheduleIDs keeps every
// vesting schedule the buyer received, never only the latest.
type Purchase struct {
	Buyer            string            `json:"buyer"`
	Tokens           string            `json:"tokens"`
	BonusAmount      string            `json:"bonusAmount"`
	UsdAmount        string            `json:"usdAmount"`
	TierAmounts      map[string]string `json:"tierAmounts"`
	ScheduleIDs      []uint64          `json:"scheduleIds"`
	PaymentsByToken  map[string]string `json:"paymentsByToken"`
	LastPurchaseTime uint64            `json:"lastPurchaseTime"`
	Refunded         bool              `json:"refunded"`
}

// PurchaseResult reports one completed purchase back to the buyer.
type PurchaseResult struct {
	TierIndex         uint64 `json:"tierIndex"`
	UsdAmount         string `json:"usdAmount"`
	TokenAmount       string `json:"tokenAmount"`
	BonusAmount       string `json:"bonusAmount"`
	TotalTokens       string `json:"totalTokens"`
	VestingScheduleID uint64 `json:"vestingScheduleId"`
}

func newPurchase(buyer string) *Purchase {
	return &Purchase{
		Buyer:           buyer,
		Tokens:          "0",
		BonusAmount:     "0",
		UsdAmount:       "0",
		TierAmounts:     map[string]string{},
		PaymentsByToken: map[string]string{},
	}
}

func (p *Purchase) tokens() (*big.Int, error) {
	return platform.ParseAmount("purchase tokens", p.Tokens)
}

func (p *Purchase) usdAmount() (*big.Int, error) {
	return platform.ParseAmount("purchase usdAmount", p.UsdAmount)
}

func (p *Purchase) tierAmount(key string) (*big.Int, error) {
	value, ok := p.TierAmounts[key]
	if !ok {
		return big.NewInt(0), nil
	}

	return platform.ParseAmount("purchase tierAmount", value)
}
