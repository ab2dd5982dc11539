package tier

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

// SmartContract is the TierEngine: it owns the ordered tier table, advances
// the active tier by time window, and answers price/bonus/allocation
// lookups for the sale orchestrator.
type SmartContract struct {
	kalpsdk.Contract
}

// Initialize writes the standard presale tier table. Foundation only, once.
func (s *SmartContract) Initialize(ctx platform.TransactionContextInterface, startTimestamp uint64) error {
	if startTimestamp == 0 {
		return platform.NewCustomError(http.StatusBadRequest, "start timestamp cannot be zero", nil)
	}

	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	count, err := getCounter(ctx, tierCountKey)
	if err != nil {
		return err
	}
	if count != 0 {
		return platform.NewCustomError(http.StatusConflict, "tiers already initialized", nil)
	}

	tiers := standardTiers(startTimestamp)
	for index := range tiers {
		if err := validateTier(&tiers[index]); err != nil {
			return err
		}
		if err := setTier(ctx, uint64(index), &tiers[index]); err != nil {
			return err
		}
		if err := emitTierConfigured(ctx, uint64(index), &tiers[index]); err != nil {
			return err
		}
	}

	return setCounter(ctx, tierCountKey, uint64(len(tiers)))
}

// standardTiers is the fixed presale table: ascending price, descending
// allocation, back-to-back 30 day windows, bonuses thinning as fill grows.
func standardTiers(start uint64) []Tier {
	brackets := []BonusBracket{
		{FillPercentage: 25, BonusPercentage: 20},
		{FillPercentage: 50, BonusPercentage: 15},
		{FillPercentage: 75, BonusPercentage: 10},
		{FillPercentage: 100, BonusPercentage: 5},
	}

	return []Tier{
		{
			Price:             "40000",
			Allocation:        platform.ConvertTeachToWei(250000000),
			Sold:              "0",
			MinPurchase:       platform.ConvertUsdToMicro(100),
			MaxPurchase:       platform.ConvertUsdToMicro(50000),
			VestingTGEPercent: 20,
			VestingMonths:     6,
			IsActive:          true,
			StartTime:         start,
			EndTime:           start + 30*daySeconds,
			BonusBrackets:     brackets,
		},
		{
			Price:             "60000",
			Allocation:        platform.ConvertTeachToWei(200000000),
			Sold:              "0",
			MinPurchase:       platform.ConvertUsdToMicro(100),
			MaxPurchase:       platform.ConvertUsdToMicro(75000),
			VestingTGEPercent: 15,
			VestingMonths:     9,
			IsActive:          true,
			StartTime:         start + 30*daySeconds,
			EndTime:           start + 60*daySeconds,
			BonusBrackets:     brackets,
		},
		{
			Price:             "80000",
			Allocation:        platform.ConvertTeachToWei(150000000),
			Sold:              "0",
			MinPurchase:       platform.ConvertUsdToMicro(50),
			MaxPurchase:       platform.ConvertUsdToMicro(100000),
			VestingTGEPercent: 10,
			VestingMonths:     12,
			IsActive:          true,
			StartTime:         start + 60*daySeconds,
			EndTime:           start + 90*daySeconds,
			BonusBrackets:     brackets,
		},
		{
			Price:             "100000",
			Allocation:        platform.ConvertTeachToWei(100000000),
			Sold:              "0",
			MinPurchase:       platform.ConvertUsdToMicro(50),
			MaxPurchase:       platform.ConvertUsdToMicro(150000),
			VestingTGEPercent: 10,
			VestingMonths:     18,
			IsActive:          true,
			StartTime:         start + 90*daySeconds,
			EndTime:           start + 120*daySeconds,
			BonusBrackets:     brackets,
		},
	}
}

// ConfigureTier creates or replaces a tier at the given index. Foundation
// only. The index must be at most the current tier count, so the table
// stays dense.
func (s *SmartContract) ConfigureTier(ctx platform.TransactionContextInterface, index uint64, tierJSON string) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	var t Tier
	if err := json.Unmarshal([]byte(tierJSON), &t); err != nil {
		return platform.NewCustomError(http.StatusBadRequest, "failed to unmarshal tier configuration", err)
	}
	if t.Sold == "" {
		t.Sold = "0"
	}

	count, err := getCounter(ctx, tierCountKey)
	if err != nil {
		return err
	}
	if index > count {
		return platform.NewCustomError(http.StatusBadRequest, fmt.Sprintf("tier index %d would leave a gap, count is %d", index, count), nil)
	}

	// Replacing an existing tier must not lose its sold counter.
	if index < count {
		existing, err := GetTier(ctx, index)
		if err != nil {
			return err
		}
		t.Sold = existing.Sold
	}

	if err := validateTier(&t); err != nil {
		return err
	}

	if err := setTier(ctx, index, &t); err != nil {
		return err
	}
	if index == count {
		if err := setCounter(ctx, tierCountKey, count+1); err != nil {
			return err
		}
	}

	return emitTierConfigured(ctx, index, &t)
}

// SetTierActive toggles a tier. Tiers are never deleted, only deactivated.
func (s *SmartContract) SetTierActive(ctx platform.TransactionContextInterface, index uint64, active bool) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	t, err := GetTier(ctx, index)
	if err != nil {
		return err
	}

	t.IsActive = active
	return setTier(ctx, index, t)
}

// SetSaleOrchestrator designates the single address allowed to record
// purchases. Foundation only, once.
func (s *SmartContract) SetSaleOrchestrator(ctx platform.TransactionContextInterface, address string) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	if !platform.IsUserAddressValid(address) {
		return fmt.Errorf("%w: %s", platform.ErrInvalidUserAddress, address)
	}

	existing, err := getSaleOrchestrator(ctx)
	if err != nil {
		return err
	}
	if existing != "" {
		return ErrOrchestratorAlreadySet
	}

	if err := ctx.PutStateWithoutKYC(saleOrchestratorKey, []byte(address)); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to set sale orchestrator", err)
	}

	return nil
}

// GetCurrentTier returns the index of the tier currently eligible for sale.
func (s *SmartContract) GetCurrentTier(ctx platform.TransactionContextInterface) (uint64, error) {
	now, err := platform.TxTimestamp(ctx)
	if err != nil {
		return 0, err
	}

	return CurrentTierIndex(ctx, now)
}

// CheckAndAdvanceTier recomputes the current tier and persists the change.
func (s *SmartContract) CheckAndAdvanceTier(ctx platform.TransactionContextInterface) (uint64, error) {
	now, err := platform.TxTimestamp(ctx)
	if err != nil {
		return 0, err
	}

	return AdvanceTier(ctx, now)
}

// GetCurrentBonus returns the bonus percentage applicable to the next
// purchase in the tier.
func (s *SmartContract) GetCurrentBonus(ctx platform.TransactionContextInterface, index uint64) (uint64, error) {
	t, err := GetTier(ctx, index)
	if err != nil {
		return 0, err
	}

	return BonusPercent(t)
}

// RecordPurchase increments a tier's sold counter. Restricted to the
// designated sale orchestrator so only one writer ever mutates the counter.
func (s *SmartContract) RecordPurchase(ctx platform.TransactionContextInterface, index uint64, amount string) error {
	signer, err := platform.GetUserID(ctx)
	if err != nil {
		return platform.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	orchestrator, err := getSaleOrchestrator(ctx)
	if err != nil {
		return err
	}
	if orchestrator == "" || signer != orchestrator {
		return fmt.Errorf("%w: %s", ErrNotSaleOrchestrator, signer)
	}

	tokenAmount, err := platform.ParseAmount("purchase amount", amount)
	if err != nil {
		return err
	}
	if tokenAmount.Sign() == 0 {
		return platform.NewCustomError(http.StatusBadRequest, "purchase amount cannot be zero", nil)
	}

	return ApplyPurchase(ctx, index, tokenAmount)
}

// GetTierDetails returns the tier plus its remaining allocation.
func (s *SmartContract) GetTierDetails(ctx platform.TransactionContextInterface, index uint64) (*TierDetails, error) {
	t, err := GetTier(ctx, index)
	if err != nil {
		return nil, err
	}

	remaining, err := t.remaining()
	if err != nil {
		return nil, err
	}

	return &TierDetails{
		Index:     index,
		Tier:      t,
		Remaining: remaining.String(),
	}, nil
}

// TokensRemainingInTier returns allocation minus sold for the tier.
func (s *SmartContract) TokensRemainingInTier(ctx platform.TransactionContextInterface, index uint64) (string, error) {
	t, err := GetTier(ctx, index)
	if err != nil {
		return "0", err
	}

	remaining, err := t.remaining()
	if err != nil {
		return "0", err
	}

	return remaining.String(), nil
}

// TotalTokensSold returns the sold sum across every tier.
func (s *SmartContract) TotalTokensSold(ctx platform.TransactionContextInterface) (string, error) {
	total, err := getTotalSold(ctx)
	if err != nil {
		return "0", err
	}

	return total.String(), nil
}

// GetTierCount returns the number of configured tiers.
func (s *SmartContract) GetTierCount(ctx platform.TransactionContextInterface) (uint64, error) {
	return getCounter(ctx, tierCountKey)
}
