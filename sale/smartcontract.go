package sale

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/buckhoff/TokenContract-sub001/platform"
	"github.com/buckhoff/TokenContract-sub001/tier"
	"github.com/buckhoff/TokenContract-sub001/vesting"
)

// SmartContract is the SaleOrchestrator: it converts payments to USD
// through the price oracle, consults the tier engine for price, bonus and
// allocation, records the purchase and creates the buyer's vesting
// schedule.
//
// All consumed capabilities are injected at construction.
type SmartContract struct {
	kalpsdk.Contract
	Oracle   platform.PriceOracle
	Token    platform.TokenClient
	Payments platform.PaymentMover
	Notifier platform.StabilityNotifier
}

// Initialize writes the presale configuration. Foundation only, once.
func (s *SmartContract) Initialize(ctx platform.TransactionContextInterface, startTime, endTime, minPurchaseInterval uint64, maxPurchaseUSD, maxTokensPerAddress, treasury string) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	if _, err := getSaleConfig(ctx); err == nil {
		return ErrSaleAlreadyConfigured
	}

	if startTime == 0 || endTime <= startTime {
		return platform.NewCustomError(http.StatusBadRequest, "invalid sale window", nil)
	}
	if !platform.IsUserAddressValid(treasury) {
		return fmt.Errorf("%w: %s", ErrInvalidTreasury, treasury)
	}
	if _, err := platform.ParseAmount("max purchase USD", maxPurchaseUSD); err != nil {
		return err
	}
	if _, err := platform.ParseAmount("max tokens per address", maxTokensPerAddress); err != nil {
		return err
	}

	return setSaleConfig(ctx, &SaleConfig{
		StartTime:           startTime,
		EndTime:             endTime,
		MinPurchaseInterval: minPurchaseInterval,
		MaxPurchaseUSD:      maxPurchaseUSD,
		MaxTokensPerAddress: maxTokensPerAddress,
		Treasury:            treasury,
	})
}

// PurchaseWithToken converts a payment into a vested TEACH position: USD
// conversion through the oracle, tier lookup, bonus bracket application,
// purchase recording and vesting schedule creation, all in one transaction.
func (s *SmartContract) PurchaseWithToken(ctx platform.TransactionContextInterface, paymentToken, paymentAmount string) (*PurchaseResult, error) {
	buyer, err := platform.GetUserID(ctx)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, err := getSaleConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config.Aborted {
		return nil, ErrSaleAborted
	}

	payment, err := platform.ParseAmount("payment amount", paymentAmount)
	if err != nil {
		return nil, err
	}
	if payment.Sign() == 0 {
		return nil, ErrZeroPayment
	}

	supported, err := s.Oracle.IsTokenSupported(ctx, paymentToken)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "price oracle lookup failed", err)
	}
	if !supported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPaymentToken, paymentToken)
	}

	usdAmount, err := s.Oracle.ConvertTokenToUSD(ctx, paymentToken, payment)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "price oracle conversion failed", err)
	}

	now, err := platform.TxTimestamp(ctx)
	if err != nil {
		return nil, err
	}

	purchase, err := getPurchase(ctx, buyer)
	if err != nil {
		return nil, err
	}

	if purchase.LastPurchaseTime != 0 && now < purchase.LastPurchaseTime+config.MinPurchaseInterval {
		return nil, PurchaseTooSoonError(purchase.LastPurchaseTime + config.MinPurchaseInterval)
	}

	maxPurchaseUSD, err := platform.ParseAmount("max purchase USD", config.MaxPurchaseUSD)
	if err != nil {
		return nil, err
	}
	if usdAmount.Cmp(maxPurchaseUSD) > 0 {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrAboveGlobalMaximum, usdAmount, maxPurchaseUSD)
	}

	if now < config.StartTime || now > config.EndTime {
		return nil, fmt.Errorf("%w: now %d, window [%d, %d]", ErrSaleWindowClosed, now, config.StartTime, config.EndTime)
	}

	tierIndex, err := tier.AdvanceTier(ctx, now)
	if err != nil {
		return nil, err
	}

	currentTier, err := tier.GetTier(ctx, tierIndex)
	if err != nil {
		return nil, err
	}
	if !currentTier.IsActive {
		return nil, fmt.Errorf("%w: index %d", tier.ErrTierNotActive, tierIndex)
	}

	if err := s.checkTierBounds(currentTier, tierIndex, purchase, usdAmount); err != nil {
		return nil, err
	}

	tokenAmount, err := tokensForUsd(currentTier, usdAmount)
	if err != nil {
		return nil, err
	}

	if err := s.checkAddressCap(config, purchase, tokenAmount); err != nil {
		return nil, err
	}

	bonusPercent, err := tier.BonusPercent(currentTier)
	if err != nil {
		return nil, err
	}
	bonusAmount := new(big.Int).Mul(tokenAmount, new(big.Int).SetUint64(bonusPercent))
	bonusAmount.Div(bonusAmount, big.NewInt(100))
	totalTokens := new(big.Int).Add(tokenAmount, bonusAmount)

	// Bonus tokens are granted on top of the tier: only the base amount
	// counts against the tier allocation.
	if err := tier.ApplyPurchase(ctx, tierIndex, tokenAmount); err != nil {
		return nil, err
	}

	if err := s.recordPurchase(purchase, tierIndex, paymentToken, payment, usdAmount, tokenAmount, bonusAmount, now); err != nil {
		return nil, err
	}

	totalRaised, err := getTotalRaised(ctx)
	if err != nil {
		return nil, err
	}
	totalRaised.Add(totalRaised, usdAmount)
	if err := setTotalRaised(ctx, totalRaised); err != nil {
		return nil, err
	}

	if err := s.Payments.TransferFrom(ctx, paymentToken, buyer, config.Treasury, payment); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "payment transfer failed", err)
	}

	scheduleID, err := vesting.CreateSchedule(ctx, s.Token, &vesting.CreateParams{
		Beneficiary:   buyer,
		Amount:        totalTokens,
		StartTime:     now,
		Duration:      currentTier.VestingMonths * monthSeconds,
		TGEPercentage: currentTier.VestingTGEPercent,
		Type:          vesting.TypeLinear,
		Group:         presaleGroup,
		Revocable:     false,
	})
	if err != nil {
		return nil, err
	}

	purchase.ScheduleIDs = append(purchase.ScheduleIDs, scheduleID)
	if err := setPurchase(ctx, purchase); err != nil {
		return nil, err
	}

	// Best-effort: a stability fund failure is observability, never a
	// reason to unwind the purchase.
	if err := s.Notifier.NotifyPurchase(ctx, buyer, usdAmount, totalTokens); err != nil {
		_ = emit(ctx, stabilityNotifyFailEvent, StabilityNotificationFailedEvent{
			Buyer:  buyer,
			Reason: err.Error(),
		})
	}

	result := &PurchaseResult{
		TierIndex:         tierIndex,
		UsdAmount:         usdAmount.String(),
		TokenAmount:       tokenAmount.String(),
		BonusAmount:       bonusAmount.String(),
		TotalTokens:       totalTokens.String(),
		VestingScheduleID: scheduleID,
	}

	if err := emit(ctx, tokensPurchasedEvent, TokensPurchasedEvent{
		Buyer:             buyer,
		PaymentToken:      paymentToken,
		UsdAmount:         result.UsdAmount,
		TokenAmount:       result.TokenAmount,
		BonusAmount:       result.BonusAmount,
		TierIndex:         tierIndex,
		VestingScheduleID: scheduleID,
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *SmartContract) checkTierBounds(currentTier *tier.Tier, tierIndex uint64, purchase *Purchase, usdAmount *big.Int) error {
	minPurchase, err := platform.ParseAmount("tier minPurchase", currentTier.MinPurchase)
	if err != nil {
		return err
	}
	if usdAmount.Cmp(minPurchase) < 0 {
		return fmt.Errorf("%w: %s below %s", ErrBelowTierMinimum, usdAmount, minPurchase)
	}

	maxPurchase, err := platform.ParseAmount("tier maxPurchase", currentTier.MaxPurchase)
	if err != nil {
		return err
	}
	if usdAmount.Cmp(maxPurchase) > 0 {
		return fmt.Errorf("%w: %s above %s", ErrAboveTierMaximum, usdAmount, maxPurchase)
	}

	tierKey := strconv.FormatUint(tierIndex, 10)
	spent, err := purchase.tierAmount(tierKey)
	if err != nil {
		return err
	}
	cumulative := new(big.Int).Add(spent, usdAmount)
	if cumulative.Cmp(maxPurchase) > 0 {
		return TierCapExceededError(tierIndex, cumulative.String(), maxPurchase.String())
	}

	return nil
}

func (s *SmartContract) checkAddressCap(config *SaleConfig, purchase *Purchase, tokenAmount *big.Int) error {
	maxTokens, err := platform.ParseAmount("max tokens per address", config.MaxTokensPerAddress)
	if err != nil {
		return err
	}

	held, err := purchase.tokens()
	if err != nil {
		return err
	}

	if new(big.Int).Add(held, tokenAmount).Cmp(maxTokens) > 0 {
		return fmt.Errorf("%w: %s tokens would exceed cap %s", ErrAddressCapExceeded, new(big.Int).Add(held, tokenAmount), maxTokens)
	}

	return nil
}

// tokensForUsd converts a 6-decimal USD amount to 18-decimal token units at
// the tier's 6-decimal price. Division truncates.
func tokensForUsd(currentTier *tier.Tier, usdAmount *big.Int) (*big.Int, error) {
	price, err := platform.ParseAmount("tier price", currentTier.Price)
	if err != nil {
		return nil, err
	}
	if price.Sign() == 0 {
		return nil, platform.InvalidAmountError("tier price", currentTier.Price)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(platform.TokenDecimals), nil)
	tokenAmount := new(big.Int).Mul(usdAmount, scale)
	tokenAmount.Div(tokenAmount, price)

	return tokenAmount, nil
}

func (s *SmartContract) recordPurchase(purchase *Purchase, tierIndex uint64, paymentToken string, payment, usdAmount, tokenAmount, bonusAmount *big.Int, now uint64) error {
	var err error
	if purchase.Tokens, err = addAmount("purchase tokens", purchase.Tokens, tokenAmount); err != nil {
		return err
	}
	if purchase.BonusAmount, err = addAmount("purchase bonus", purchase.BonusAmount, bonusAmount); err != nil {
		return err
	}
	if purchase.UsdAmount, err = addAmount("purchase usd", purchase.UsdAmount, usdAmount); err != nil {
		return err
	}

	tierKey := strconv.FormatUint(tierIndex, 10)
	if purchase.TierAmounts[tierKey], err = addAmount("purchase tierAmount", purchase.TierAmounts[tierKey], usdAmount); err != nil {
		return err
	}
	if purchase.PaymentsByToken[paymentToken], err = addAmount("purchase payment", purchase.PaymentsByToken[paymentToken], payment); err != nil {
		return err
	}

	purchase.LastPurchaseTime = now
	return nil
}

// ClaimRefund pays a buyer back after the sale has been aborted. The
// purchase record is zeroed before any transfer leaves the contract.
func (s *SmartContract) ClaimRefund(ctx platform.TransactionContextInterface, refundToken string) (string, error) {
	buyer, err := platform.GetUserID(ctx)
	if err != nil {
		return "0", platform.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, err := getSaleConfig(ctx)
	if err != nil {
		return "0", err
	}
	if !config.Aborted {
		return "0", ErrSaleNotAborted
	}

	purchase, err := getPurchase(ctx, buyer)
	if err != nil {
		return "0", err
	}
	if purchase.Refunded {
		return "0", fmt.Errorf("%w: %s already refunded", ErrNothingToRefund, buyer)
	}

	usdAmount, err := purchase.usdAmount()
	if err != nil {
		return "0", err
	}
	if usdAmount.Sign() == 0 {
		return "0", fmt.Errorf("%w: %s", ErrNothingToRefund, buyer)
	}

	supported, err := s.Oracle.IsTokenSupported(ctx, refundToken)
	if err != nil {
		return "0", platform.NewCustomError(http.StatusInternalServerError, "price oracle lookup failed", err)
	}
	if !supported {
		return "0", fmt.Errorf("%w: %s", ErrUnsupportedPaymentToken, refundToken)
	}

	refundAmount, err := s.Oracle.ConvertUSDToToken(ctx, refundToken, usdAmount)
	if err != nil {
		return "0", platform.NewCustomError(http.StatusInternalServerError, "price oracle conversion failed", err)
	}

	// Zero the record before the transfer so a reentrant claim sees an
	// already-consumed purchase.
	purchase.Tokens = "0"
	purchase.BonusAmount = "0"
	purchase.UsdAmount = "0"
	purchase.TierAmounts = map[string]string{}
	purchase.PaymentsByToken = map[string]string{}
	purchase.Refunded = true
	if err := setPurchase(ctx, purchase); err != nil {
		return "0", err
	}

	if err := s.Payments.Transfer(ctx, refundToken, buyer, refundAmount); err != nil {
		return "0", platform.NewCustomError(http.StatusInternalServerError, "refund transfer failed", err)
	}

	if err := emit(ctx, refundClaimedEvent, RefundClaimedEvent{
		Buyer:        buyer,
		RefundToken:  refundToken,
		UsdAmount:    usdAmount.String(),
		RefundAmount: refundAmount.String(),
	}); err != nil {
		return "0", err
	}

	return refundAmount.String(), nil
}

// SetSaleAborted flips the global abort flag, opening refunds. Foundation
// only.
func (s *SmartContract) SetSaleAborted(ctx platform.TransactionContextInterface, aborted bool) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	config, err := getSaleConfig(ctx)
	if err != nil {
		return err
	}

	config.Aborted = aborted
	if err := setSaleConfig(ctx, config); err != nil {
		return err
	}

	now, err := platform.TxTimestamp(ctx)
	if err != nil {
		return err
	}

	return emit(ctx, saleAbortedEvent, SaleAbortedEvent{Aborted: aborted, Timestamp: now})
}

// GetPurchase returns a buyer's accumulated purchase record.
func (s *SmartContract) GetPurchase(ctx platform.TransactionContextInterface, buyer string) (*Purchase, error) {
	return getPurchase(ctx, buyer)
}

// ClaimableSchedules returns every vesting schedule id a buyer received
// through the sale. Amounts are read from the vesting contract.
func (s *SmartContract) ClaimableSchedules(ctx platform.TransactionContextInterface, buyer string) ([]uint64, error) {
	purchase, err := getPurchase(ctx, buyer)
	if err != nil {
		return nil, err
	}

	return purchase.ScheduleIDs, nil
}

// GetSaleConfig returns the presale configuration.
func (s *SmartContract) GetSaleConfig(ctx platform.TransactionContextInterface) (*SaleConfig, error) {
	return getSaleConfig(ctx)
}

// TotalRaised returns the USD sum across every purchase.
func (s *SmartContract) TotalRaised(ctx platform.TransactionContextInterface) (string, error) {
	total, err := getTotalRaised(ctx)
	if err != nil {
		return "0", err
	}

	return total.String(), nil
}
