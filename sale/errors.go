package sale

import (
	"errors"
	"fmt"
)

var (
	ErrSaleNotConfigured       = errors.New("SaleNotConfigured")
	ErrSaleAlreadyConfigured   = errors.New("SaleAlreadyConfigured")
	ErrSaleAborted             = errors.New("SaleAborted")
	ErrSaleNotAborted          = errors.New("SaleNotAborted")
	ErrSaleWindowClosed        = errors.New("SaleWindowClosed")
	ErrUnsupportedPaymentToken = errors.New("UnsupportedPaymentToken")
	ErrPurchaseTooSoon         = errors.New("PurchaseTooSoon")
	ErrAboveGlobalMaximum      = errors.New("AboveGlobalMaximum")
	ErrBelowTierMinimum        = errors.New("BelowTierMinimum")
	ErrAboveTierMaximum        = errors.New("AboveTierMaximum")
	ErrTierCapExceeded         = errors.New("TierCapExceeded")
	ErrAddressCapExceeded      = errors.New("AddressCapExceeded")
	ErrZeroPayment             = errors.New("ZeroPayment")
	ErrNothingToRefund         = errors.New("NothingToRefund")
	ErrInvalidTreasury         = errors.New("InvalidTreasury")
)

func PurchaseTooSoonError(nextAllowed uint64) error {
	return fmt.Errorf("%w: next purchase allowed at %d", ErrPurchaseTooSoon, nextAllowed)
}

func TierCapExceededError(tierIndex uint64, cumulative, maximum string) error {
	return fmt.Errorf("%w: tier %d cumulative %s exceeds %s", ErrTierCapExceeded, tierIndex, cumulative, maximum)
}
