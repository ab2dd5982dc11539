package tier

import (
	"fmt"
	"math/big"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

// CurrentTierIndex scans tiers in order and returns the first one eligible
// for sale at now. Windows are configured ascending and non-overlapping; if
// an admin misconfigures overlap, the lowest index wins. When no tier
// matches, the last explicitly advanced tier is returned.
func CurrentTierIndex(ctx platform.TransactionContextInterface, now uint64) (uint64, error) {
	count, err := getCounter(ctx, tierCountKey)
	if err != nil {
		return 0, err
	}

	for index := uint64(0); index < count; index++ {
		t, err := GetTier(ctx, index)
		if err != nil {
			return 0, err
		}

		eligible, err := t.isEligible(now)
		if err != nil {
			return 0, err
		}
		if eligible {
			return index, nil
		}
	}

	return getCounter(ctx, currentTierKey)
}

// AdvanceTier recomputes the current tier and persists it when it moved,
// emitting TierAdvanced. Called opportunistically before every purchase;
// advancement is lazy and only guaranteed correct at purchase time.
func AdvanceTier(ctx platform.TransactionContextInterface, now uint64) (uint64, error) {
	current, err := CurrentTierIndex(ctx, now)
	if err != nil {
		return 0, err
	}

	stored, err := getCounter(ctx, currentTierKey)
	if err != nil {
		return 0, err
	}

	if current != stored {
		if err := setCounter(ctx, currentTierKey, current); err != nil {
			return 0, err
		}
		if err := emitTierAdvanced(ctx, stored, current, now); err != nil {
			return 0, err
		}
	}

	return current, nil
}

// BonusPercent selects the applicable bonus bracket for the tier's current
// fill. The highest-indexed bracket whose threshold is at or below the fill
// percentage wins, scanned top down. A tier that has sold nothing sits
// below every threshold and takes the first bracket's bonus.
func BonusPercent(t *Tier) (uint64, error) {
	if len(t.BonusBrackets) == 0 {
		return 0, ErrInvalidBonusBrackets
	}

	allocation, err := t.allocation()
	if err != nil {
		return 0, err
	}
	if allocation.Sign() == 0 {
		return 0, ErrZeroAllocation
	}

	sold, err := t.sold()
	if err != nil {
		return 0, err
	}

	fillPct := new(big.Int).Mul(sold, big.NewInt(100))
	fillPct.Div(fillPct, allocation)

	for i := len(t.BonusBrackets) - 1; i >= 0; i-- {
		threshold := new(big.Int).SetUint64(t.BonusBrackets[i].FillPercentage)
		if fillPct.Cmp(threshold) >= 0 {
			return t.BonusBrackets[i].BonusPercentage, nil
		}
	}

	return t.BonusBrackets[0].BonusPercentage, nil
}

// ApplyPurchase increments a tier's sold counter. Allocation bound failures
// leave the tier untouched.
func ApplyPurchase(ctx platform.TransactionContextInterface, index uint64, amount *big.Int) error {
	t, err := GetTier(ctx, index)
	if err != nil {
		return err
	}

	if !t.IsActive {
		return fmt.Errorf("%w: index %d", ErrTierNotActive, index)
	}

	sold, err := t.sold()
	if err != nil {
		return err
	}

	allocation, err := t.allocation()
	if err != nil {
		return err
	}

	newSold := new(big.Int).Add(sold, amount)
	if newSold.Cmp(allocation) > 0 {
		remaining := new(big.Int).Sub(allocation, sold)
		return InsufficientAllocationError(index, amount.String(), remaining.String())
	}

	t.Sold = newSold.String()
	if err := setTier(ctx, index, t); err != nil {
		return err
	}

	totalSold, err := getTotalSold(ctx)
	if err != nil {
		return err
	}
	totalSold.Add(totalSold, amount)
	if err := setTotalSold(ctx, totalSold); err != nil {
		return err
	}

	return emitPurchaseRecorded(ctx, index, amount.String(), t.Sold)
}

func getTotalSold(ctx platform.TransactionContextInterface) (*big.Int, error) {
	totalAsBytes, err := ctx.GetState(totalTokensSoldKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get total tokens sold: %v", err)
	}

	total := big.NewInt(0)
	if totalAsBytes != nil {
		if _, ok := total.SetString(string(totalAsBytes), 10); !ok {
			return nil, platform.InvalidAmountError("total tokens sold", string(totalAsBytes))
		}
	}

	return total, nil
}

func setTotalSold(ctx platform.TransactionContextInterface, total *big.Int) error {
	if err := ctx.PutStateWithoutKYC(totalTokensSoldKey, []byte(total.String())); err != nil {
		return fmt.Errorf("failed to set total tokens sold: %v", err)
	}

	return nil
}

// validateTier rejects tier configurations that would break the purchase
// path: empty allocation math, inverted windows or purchase bounds, and
// bonus brackets whose thresholds are not strictly increasing.
func validateTier(t *Tier) error {
	if _, err := t.price(); err != nil {
		return err
	}

	allocation, err := t.allocation()
	if err != nil {
		return err
	}
	if allocation.Sign() == 0 {
		return ErrZeroAllocation
	}

	if _, err := t.sold(); err != nil {
		return err
	}

	minPurchase, err := platform.ParseAmount("tier minPurchase", t.MinPurchase)
	if err != nil {
		return err
	}
	maxPurchase, err := platform.ParseAmount("tier maxPurchase", t.MaxPurchase)
	if err != nil {
		return err
	}
	if minPurchase.Cmp(maxPurchase) > 0 {
		return ErrInvalidPurchaseBounds
	}

	if t.StartTime >= t.EndTime {
		return ErrInvalidTierWindow
	}

	if t.VestingTGEPercent > 100 {
		return fmt.Errorf("%w: TGE percent %d", ErrInvalidPurchaseBounds, t.VestingTGEPercent)
	}

	if len(t.BonusBrackets) != bonusBracketsPerTier {
		return fmt.Errorf("%w: expected %d brackets, got %d", ErrInvalidBonusBrackets, bonusBracketsPerTier, len(t.BonusBrackets))
	}
	for i := 1; i < len(t.BonusBrackets); i++ {
		if t.BonusBrackets[i].FillPercentage <= t.BonusBrackets[i-1].FillPercentage {
			return fmt.Errorf("%w: thresholds must be strictly increasing", ErrInvalidBonusBrackets)
		}
	}
	for _, bracket := range t.BonusBrackets {
		if bracket.FillPercentage > 100 || bracket.BonusPercentage > 100 {
			return fmt.Errorf("%w: percentages must not exceed 100", ErrInvalidBonusBrackets)
		}
	}

	return nil
}
