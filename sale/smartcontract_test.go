package sale_test

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/stretchr/testify/require"

	"github.com/buckhoff/TokenContract-sub001/mocks"
	"github.com/buckhoff/TokenContract-sub001/platform"
	"github.com/buckhoff/TokenContract-sub001/sale"
	"github.com/buckhoff/TokenContract-sub001/tier"
	"github.com/buckhoff/TokenContract-sub001/vesting"
)

const (
	PlatformFoundation = "4c7b9f20d1e8a35b6c04f88a2e91d37c5a10be64"
	Buyer              = "2da4c4908a393a387b728206b18b16e3c696a085"
	Treasury           = "16f957d479fcf20d1af1a9f1f1e1e0a6470a4c4b"
	VestingAccount     = "af39cc0428c9f8a715c41f942e1786783ef91cba"
	PaymentToken       = "klp-7573647463746f6b656e-cc"

	SaleStart = uint64(1700000000)
	SaleEnd   = SaleStart + 120*24*60*60
)

func SetUserID(transactionContext *mocks.TransactionContext, userID string) {
	completeId := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeId))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	transactionContext.GetClientIdentityReturns(clientIdentity)
}

func setNow(transactionContext *mocks.TransactionContext, now uint64) {
	transactionContext.GetTxTimestampReturns(&timestamp.Timestamp{Seconds: int64(now)}, nil)
}

func newTestContext(now uint64) *mocks.TransactionContext {
	worldState := map[string][]byte{}

	transactionContext := &mocks.TransactionContext{}
	transactionContext.GetStateStub = func(key string) ([]byte, error) {
		return worldState[key], nil
	}
	transactionContext.PutStateWithoutKYCStub = func(key string, value []byte) error {
		worldState[key] = value
		return nil
	}
	setNow(transactionContext, now)

	return transactionContext
}

type fixture struct {
	sale     *sale.SmartContract
	tier     *tier.SmartContract
	vesting  *vesting.SmartContract
	ctx      *mocks.TransactionContext
	oracle   *mocks.PriceOracle
	token    *mocks.TokenClient
	payments *mocks.PaymentMover
	notifier *mocks.StabilityNotifier
}

// setupSale stands up all three contracts against one shared world state,
// the way the chaincode runs them, and signs as the foundation.
func setupSale(t *testing.T) *fixture {
	t.Helper()
	return setupSaleWithCap(t, platform.ConvertTeachToWei(10000000))
}

func setupSaleWithCap(t *testing.T, maxTokensPerAddress string) *fixture {
	t.Helper()

	transactionContext := newTestContext(SaleStart)
	SetUserID(transactionContext, PlatformFoundation)

	oracle := &mocks.PriceOracle{}
	oracle.IsTokenSupportedReturns(true, nil)

	token := &mocks.TokenClient{}
	balance, ok := new(big.Int).SetString("1000000000000000000000000000", 10)
	require.True(t, ok)
	token.BalanceOfReturns(balance, nil)

	payments := &mocks.PaymentMover{}
	notifier := &mocks.StabilityNotifier{}

	tierContract := &tier.SmartContract{}
	require.NoError(t, tierContract.Initialize(transactionContext, SaleStart))

	vestingContract := &vesting.SmartContract{Token: token}
	require.NoError(t, vestingContract.Initialize(transactionContext, VestingAccount))

	saleContract := &sale.SmartContract{
		Oracle:   oracle,
		Token:    token,
		Payments: payments,
		Notifier: notifier,
	}
	require.NoError(t, saleContract.Initialize(transactionContext, SaleStart, SaleEnd, 3600,
		platform.ConvertUsdToMicro(50000), maxTokensPerAddress, Treasury))

	return &fixture{
		sale:     saleContract,
		tier:     tierContract,
		vesting:  vestingContract,
		ctx:      transactionContext,
		oracle:   oracle,
		token:    token,
		payments: payments,
		notifier: notifier,
	}
}

func usd(amount uint64) *big.Int {
	value, _ := new(big.Int).SetString(platform.ConvertUsdToMicro(amount), 10)
	return value
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	f := setupSale(t)

	config, err := f.sale.GetSaleConfig(f.ctx)
	require.NoError(t, err)
	require.Equal(t, SaleStart, config.StartTime)
	require.Equal(t, Treasury, config.Treasury)
	require.False(t, config.Aborted)

	// Configuring twice must fail.
	err = f.sale.Initialize(f.ctx, SaleStart, SaleEnd, 3600,
		platform.ConvertUsdToMicro(50000), platform.ConvertTeachToWei(10000000), Treasury)
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrSaleAlreadyConfigured)

	// Bad treasury and inverted window are rejected up front.
	fresh := newTestContext(SaleStart)
	SetUserID(fresh, PlatformFoundation)
	saleContract := &sale.SmartContract{}
	err = saleContract.Initialize(fresh, SaleStart, SaleEnd, 3600, "1", "1", "bogus")
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrInvalidTreasury)

	err = saleContract.Initialize(fresh, SaleEnd, SaleStart, 3600, "1", "1", Treasury)
	require.Error(t, err)
}

func TestPurchaseWithToken(t *testing.T) {
	t.Parallel()

	f := setupSale(t)

	// $1,000 at the tier 0 price of $0.04 buys 25,000 TEACH; the empty
	// tier carries a 20% bonus, so 5,000 more vest on top.
	f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)

	SetUserID(f.ctx, Buyer)
	result, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.NoError(t, err)

	require.Equal(t, uint64(0), result.TierIndex)
	require.Equal(t, platform.ConvertUsdToMicro(1000), result.UsdAmount)
	require.Equal(t, platform.ConvertTeachToWei(25000), result.TokenAmount)
	require.Equal(t, platform.ConvertTeachToWei(5000), result.BonusAmount)
	require.Equal(t, platform.ConvertTeachToWei(30000), result.TotalTokens)
	require.Equal(t, uint64(1), result.VestingScheduleID)

	// Only the base amount counts against the tier allocation.
	remaining, err := f.tier.TokensRemainingInTier(f.ctx, 0)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(249975000), remaining)

	// The payment moved from the buyer to the treasury.
	require.Equal(t, 1, f.payments.TransferFromCallCount())
	_, paymentToken, from, to, amount := f.payments.TransferFromArgsForCall(0)
	require.Equal(t, PaymentToken, paymentToken)
	require.Equal(t, Buyer, from)
	require.Equal(t, Treasury, to)
	require.Equal(t, "1000000000000000000000", amount.String())

	// The vesting schedule carries base plus bonus with tier 0 terms.
	schedule, err := f.vesting.GetVestingSchedule(f.ctx, 1)
	require.NoError(t, err)
	require.Equal(t, Buyer, schedule.Beneficiary)
	require.Equal(t, platform.ConvertTeachToWei(30000), schedule.TotalAmount)
	require.Equal(t, uint64(20), schedule.TGEPercentage)
	require.Equal(t, uint64(6*30*24*60*60), schedule.Duration)
	require.Equal(t, vesting.TypeLinear, schedule.VestingType)
	require.False(t, schedule.Revocable)

	// The stability fund heard about the purchase.
	require.Equal(t, 1, f.notifier.NotifyPurchaseCallCount())
	_, notifiedBuyer, notifiedUsd, notifiedTokens := f.notifier.NotifyPurchaseArgsForCall(0)
	require.Equal(t, Buyer, notifiedBuyer)
	require.Equal(t, usd(1000).String(), notifiedUsd.String())
	require.Equal(t, platform.ConvertTeachToWei(30000), notifiedTokens.String())

	// Purchase record and totals.
	purchase, err := f.sale.GetPurchase(f.ctx, Buyer)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(25000), purchase.Tokens)
	require.Equal(t, platform.ConvertTeachToWei(5000), purchase.BonusAmount)
	require.Equal(t, platform.ConvertUsdToMicro(1000), purchase.UsdAmount)
	require.Equal(t, []uint64{1}, purchase.ScheduleIDs)
	require.Equal(t, SaleStart, purchase.LastPurchaseTime)

	raised, err := f.sale.TotalRaised(f.ctx)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertUsdToMicro(1000), raised)

	ids, err := f.sale.ClaimableSchedules(f.ctx, Buyer)
	require.NoError(t, err)
	require.Equal(t, []uint64{1}, ids)
}

func TestPurchaseRateLimit(t *testing.T) {
	t.Parallel()

	f := setupSale(t)
	f.oracle.ConvertTokenToUSDReturns(usd(500), nil)

	SetUserID(f.ctx, Buyer)
	_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "500000000000000000000")
	require.NoError(t, err)

	// A second purchase inside the interval is rejected.
	setNow(f.ctx, SaleStart+1800)
	_, err = f.sale.PurchaseWithToken(f.ctx, PaymentToken, "500000000000000000000")
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrPurchaseTooSoon)

	// Once the interval has elapsed it goes through, and the second
	// schedule id is recorded alongside the first.
	setNow(f.ctx, SaleStart+3600)
	result, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "500000000000000000000")
	require.NoError(t, err)
	require.Equal(t, uint64(2), result.VestingScheduleID)

	purchase, err := f.sale.GetPurchase(f.ctx, Buyer)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, purchase.ScheduleIDs)
	require.Equal(t, platform.ConvertUsdToMicro(1000), purchase.UsdAmount)
}

func TestPurchaseValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*fixture)
		expected error
	}{
		{
			name: "unsupported payment token",
			mutate: func(f *fixture) {
				f.oracle.IsTokenSupportedReturns(false, nil)
			},
			expected: sale.ErrUnsupportedPaymentToken,
		},
		{
			name: "above global maximum",
			mutate: func(f *fixture) {
				f.oracle.ConvertTokenToUSDReturns(usd(50001), nil)
			},
			expected: sale.ErrAboveGlobalMaximum,
		},
		{
			name: "below tier minimum",
			mutate: func(f *fixture) {
				f.oracle.ConvertTokenToUSDReturns(usd(99), nil)
			},
			expected: sale.ErrBelowTierMinimum,
		},
		{
			name: "before sale window",
			mutate: func(f *fixture) {
				f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)
				setNow(f.ctx, SaleStart-1)
			},
			expected: sale.ErrSaleWindowClosed,
		},
		{
			name: "after sale window",
			mutate: func(f *fixture) {
				f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)
				setNow(f.ctx, SaleEnd+1)
			},
			expected: sale.ErrSaleWindowClosed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := setupSale(t)
			tt.mutate(f)

			SetUserID(f.ctx, Buyer)
			_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
			require.Error(t, err)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestPurchaseZeroPayment(t *testing.T) {
	t.Parallel()

	f := setupSale(t)
	SetUserID(f.ctx, Buyer)

	_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "0")
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrZeroPayment)

	_, err = f.sale.PurchaseWithToken(f.ctx, PaymentToken, "not-a-number")
	require.Error(t, err)
}

func TestPurchaseTierCap(t *testing.T) {
	t.Parallel()

	f := setupSale(t)

	// Tier 0 caps a single purchase at $50,000; cumulative spending in the
	// tier is capped at the same bound across purchases.
	f.oracle.ConvertTokenToUSDReturns(usd(30000), nil)

	SetUserID(f.ctx, Buyer)
	_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "30000000000000000000000")
	require.NoError(t, err)

	setNow(f.ctx, SaleStart+3600)
	f.oracle.ConvertTokenToUSDReturns(usd(25000), nil)
	_, err = f.sale.PurchaseWithToken(f.ctx, PaymentToken, "25000000000000000000000")
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrTierCapExceeded)
}

func TestPurchaseAddressCap(t *testing.T) {
	t.Parallel()

	// The lifetime cap counts base tokens: each $1,000 purchase adds
	// 25,000 TEACH, so a 40,000 cap admits one purchase and not two.
	f := setupSaleWithCap(t, platform.ConvertTeachToWei(40000))
	f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)

	SetUserID(f.ctx, Buyer)
	_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.NoError(t, err)

	setNow(f.ctx, SaleStart+3600)
	_, err = f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrAddressCapExceeded)

	// The rejection leaves no partial state behind.
	purchase, err := f.sale.GetPurchase(f.ctx, Buyer)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(25000), purchase.Tokens)
	require.Equal(t, platform.ConvertUsdToMicro(1000), purchase.UsdAmount)
	require.Equal(t, []uint64{1}, purchase.ScheduleIDs)

	remaining, err := f.tier.TokensRemainingInTier(f.ctx, 0)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(249975000), remaining)

	raised, err := f.sale.TotalRaised(f.ctx)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertUsdToMicro(1000), raised)
	require.Equal(t, 1, f.payments.TransferFromCallCount())
}

func TestPurchaseInactiveTier(t *testing.T) {
	t.Parallel()

	f := setupSale(t)
	f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)

	require.NoError(t, f.tier.SetTierActive(f.ctx, 0, false))

	SetUserID(f.ctx, Buyer)
	_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.Error(t, err)
	require.ErrorIs(t, err, tier.ErrTierNotActive)
	require.Equal(t, 0, f.payments.TransferFromCallCount())
}

func TestPurchaseWhenPaymentFails(t *testing.T) {
	t.Parallel()

	f := setupSale(t)
	f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)
	f.payments.TransferFromReturns(errors.New("insufficient allowance"))

	SetUserID(f.ctx, Buyer)
	_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "payment transfer failed")
}

func TestPurchaseSurvivesNotifierFailure(t *testing.T) {
	t.Parallel()

	f := setupSale(t)
	f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)
	f.notifier.NotifyPurchaseReturns(errors.New("stability fund unreachable"))

	SetUserID(f.ctx, Buyer)
	result, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(30000), result.TotalTokens)
}

func TestRefundFlow(t *testing.T) {
	t.Parallel()

	f := setupSale(t)
	f.oracle.ConvertTokenToUSDReturns(usd(1000), nil)

	SetUserID(f.ctx, Buyer)
	_, err := f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.NoError(t, err)

	// Refunds only open once the sale is aborted.
	_, err = f.sale.ClaimRefund(f.ctx, PaymentToken)
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrSaleNotAborted)

	SetUserID(f.ctx, PlatformFoundation)
	require.NoError(t, f.sale.SetSaleAborted(f.ctx, true))

	// No further purchases once aborted.
	SetUserID(f.ctx, Buyer)
	setNow(f.ctx, SaleStart+7200)
	_, err = f.sale.PurchaseWithToken(f.ctx, PaymentToken, "1000000000000000000000")
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrSaleAborted)

	refundTokens, _ := new(big.Int).SetString("1000000000000000000000", 10)
	f.oracle.ConvertUSDToTokenReturns(refundTokens, nil)

	refund, err := f.sale.ClaimRefund(f.ctx, PaymentToken)
	require.NoError(t, err)
	require.Equal(t, refundTokens.String(), refund)

	require.Equal(t, 1, f.payments.TransferCallCount())
	_, refundToken, to, amount := f.payments.TransferArgsForCall(0)
	require.Equal(t, PaymentToken, refundToken)
	require.Equal(t, Buyer, to)
	require.Equal(t, refundTokens.String(), amount.String())

	// The record is consumed; a second claim finds nothing.
	purchase, err := f.sale.GetPurchase(f.ctx, Buyer)
	require.NoError(t, err)
	require.True(t, purchase.Refunded)
	require.Equal(t, "0", purchase.UsdAmount)

	_, err = f.sale.ClaimRefund(f.ctx, PaymentToken)
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrNothingToRefund)
}

func TestClaimRefundWithoutPurchase(t *testing.T) {
	t.Parallel()

	f := setupSale(t)
	require.NoError(t, f.sale.SetSaleAborted(f.ctx, true))

	SetUserID(f.ctx, Buyer)
	_, err := f.sale.ClaimRefund(f.ctx, PaymentToken)
	require.Error(t, err)
	require.ErrorIs(t, err, sale.ErrNothingToRefund)
}

func TestSetSaleAbortedRequiresFoundation(t *testing.T) {
	t.Parallel()

	f := setupSale(t)

	SetUserID(f.ctx, Buyer)
	err := f.sale.SetSaleAborted(f.ctx, true)
	require.Error(t, err)
}
