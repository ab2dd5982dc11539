package tier

import (
	"errors"
	"fmt"
)

var (
	ErrTierNotFound               = errors.New("TierNotFound")
	ErrTierNotActive              = errors.New("TierNotActive")
	ErrInsufficientTierAllocation = errors.New("InsufficientTierAllocation")
	ErrZeroAllocation             = errors.New("ZeroAllocation")
	ErrInvalidBonusBrackets       = errors.New("InvalidBonusBrackets")
	ErrInvalidTierWindow          = errors.New("InvalidTierWindow")
	ErrInvalidPurchaseBounds      = errors.New("InvalidPurchaseBounds")
	ErrNotSaleOrchestrator        = errors.New("NotSaleOrchestrator")
	ErrOrchestratorAlreadySet     = errors.New("OrchestratorAlreadySet")
	ErrNoEligibleTier             = errors.New("NoEligibleTier")
)

func TierNotFoundError(index uint64) error {
	return fmt.Errorf("%w: index %d", ErrTierNotFound, index)
}

func InsufficientAllocationError(index uint64, requested, remaining string) error {
	return fmt.Errorf("%w: tier %d requested %s remaining %s", ErrInsufficientTierAllocation, index, requested, remaining)
}
