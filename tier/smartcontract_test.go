package tier_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/stretchr/testify/require"

	"github.com/buckhoff/TokenContract-sub001/mocks"
	"github.com/buckhoff/TokenContract-sub001/platform"
	"github.com/buckhoff/TokenContract-sub001/tier"
)

const (
	PlatformFoundation = "4c7b9f20d1e8a35b6c04f88a2e91d37c5a10be64"
	Orchestrator       = "2da4c4908a393a387b728206b18b16e3c696a085"
	Intruder           = "16f957d479fcf20d1af1a9f1f1e1e0a6470a4c4b"

	SaleStart = uint64(1700000000)
	DaySecs   = uint64(24 * 60 * 60)
)

func SetUserID(transactionContext *mocks.TransactionContext, userID string) {
	completeId := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeId))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	transactionContext.GetClientIdentityReturns(clientIdentity)
}

func newTestContext(now uint64) (*mocks.TransactionContext, map[string][]byte) {
	worldState := map[string][]byte{}

	transactionContext := &mocks.TransactionContext{}
	transactionContext.GetStateStub = func(key string) ([]byte, error) {
		return worldState[key], nil
	}
	transactionContext.PutStateWithoutKYCStub = func(key string, value []byte) error {
		worldState[key] = value
		return nil
	}
	transactionContext.GetTxTimestampReturns(&timestamp.Timestamp{Seconds: int64(now)}, nil)

	return transactionContext, worldState
}

func initializedContract(t *testing.T, now uint64) (*tier.SmartContract, *mocks.TransactionContext) {
	t.Helper()

	transactionContext, _ := newTestContext(now)
	SetUserID(transactionContext, PlatformFoundation)

	tierContract := &tier.SmartContract{}
	require.NoError(t, tierContract.Initialize(transactionContext, SaleStart))

	return tierContract, transactionContext
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)

	count, err := tierContract.GetTierCount(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(4), count)

	details, err := tierContract.GetTierDetails(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "40000", details.Tier.Price)
	require.Equal(t, platform.ConvertTeachToWei(250000000), details.Tier.Allocation)
	require.Equal(t, platform.ConvertTeachToWei(250000000), details.Remaining)
	require.Equal(t, uint64(20), details.Tier.VestingTGEPercent)
	require.Equal(t, uint64(6), details.Tier.VestingMonths)
	require.Len(t, details.Tier.BonusBrackets, 4)

	// Windows are back to back 30 day slots.
	tier1, err := tier.GetTier(transactionContext, 1)
	require.NoError(t, err)
	require.Equal(t, SaleStart+30*DaySecs, tier1.StartTime)
	require.Equal(t, SaleStart+60*DaySecs, tier1.EndTime)

	// Second initialization must fail.
	err = tierContract.Initialize(transactionContext, SaleStart)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already initialized")
}

func TestInitializeRequiresFoundation(t *testing.T) {
	t.Parallel()

	transactionContext, _ := newTestContext(SaleStart)
	SetUserID(transactionContext, Intruder)

	tierContract := &tier.SmartContract{}
	err := tierContract.Initialize(transactionContext, SaleStart)
	require.Error(t, err)

	err = tierContract.Initialize(transactionContext, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot be zero")
}

func TestBonusPercent(t *testing.T) {
	t.Parallel()

	brackets := []tier.BonusBracket{
		{FillPercentage: 25, BonusPercentage: 20},
		{FillPercentage: 50, BonusPercentage: 15},
		{FillPercentage: 75, BonusPercentage: 10},
		{FillPercentage: 100, BonusPercentage: 5},
	}

	tests := []struct {
		name     string
		sold     string
		expected uint64
	}{
		{name: "empty tier takes first bracket", sold: "0", expected: 20},
		{name: "below first threshold", sold: "240", expected: 20},
		{name: "exactly 25 percent", sold: "250", expected: 20},
		{name: "exactly 50 percent", sold: "500", expected: 15},
		{name: "74 percent", sold: "740", expected: 15},
		{name: "99 percent", sold: "990", expected: 10},
		{name: "sold out", sold: "1000", expected: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bonus, err := tier.BonusPercent(&tier.Tier{
				Allocation:    "1000",
				Sold:          tt.sold,
				BonusBrackets: brackets,
			})
			require.NoError(t, err)
			require.Equal(t, tt.expected, bonus)
		})
	}
}

func TestBonusPercentZeroAllocation(t *testing.T) {
	t.Parallel()

	_, err := tier.BonusPercent(&tier.Tier{
		Allocation:    "0",
		Sold:          "0",
		BonusBrackets: []tier.BonusBracket{{FillPercentage: 25, BonusPercentage: 20}},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, tier.ErrZeroAllocation)
}

func TestRecordPurchase(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)
	require.NoError(t, tierContract.SetSaleOrchestrator(transactionContext, Orchestrator))

	// Only the designated orchestrator may record.
	SetUserID(transactionContext, Intruder)
	err := tierContract.RecordPurchase(transactionContext, 0, "1000")
	require.Error(t, err)
	require.ErrorIs(t, err, tier.ErrNotSaleOrchestrator)

	SetUserID(transactionContext, Orchestrator)
	require.NoError(t, tierContract.RecordPurchase(transactionContext, 0, platform.ConvertTeachToWei(25000)))

	remaining, err := tierContract.TokensRemainingInTier(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(249975000), remaining)

	total, err := tierContract.TotalTokensSold(transactionContext)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(25000), total)

	err = tierContract.RecordPurchase(transactionContext, 0, "0")
	require.Error(t, err)

	err = tierContract.RecordPurchase(transactionContext, 9, "1000")
	require.Error(t, err)
	require.ErrorIs(t, err, tier.ErrTierNotFound)
}

func TestRecordPurchaseAllocationBound(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)
	require.NoError(t, tierContract.SetSaleOrchestrator(transactionContext, Orchestrator))

	SetUserID(transactionContext, Orchestrator)

	// Fill the tier completely, then one more token must fail and leave
	// the counters untouched.
	require.NoError(t, tierContract.RecordPurchase(transactionContext, 0, platform.ConvertTeachToWei(250000000)))

	err := tierContract.RecordPurchase(transactionContext, 0, "1")
	require.Error(t, err)
	require.ErrorIs(t, err, tier.ErrInsufficientTierAllocation)

	remaining, err := tierContract.TokensRemainingInTier(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "0", remaining)

	total, err := tierContract.TotalTokensSold(transactionContext)
	require.NoError(t, err)
	require.Equal(t, platform.ConvertTeachToWei(250000000), total)
}

func TestSetSaleOrchestratorOnce(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)
	require.NoError(t, tierContract.SetSaleOrchestrator(transactionContext, Orchestrator))

	err := tierContract.SetSaleOrchestrator(transactionContext, Intruder)
	require.Error(t, err)
	require.ErrorIs(t, err, tier.ErrOrchestratorAlreadySet)
}

func TestTierAdvancementByTime(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)

	current, err := tierContract.GetCurrentTier(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(0), current)

	// 35 days in, tier 0's window has closed.
	transactionContext.GetTxTimestampReturns(&timestamp.Timestamp{Seconds: int64(SaleStart + 35*DaySecs)}, nil)

	current, err = tierContract.CheckAndAdvanceTier(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(1), current)

	current, err = tierContract.GetCurrentTier(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(1), current)
}

func TestTierAdvancementBySellout(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)
	require.NoError(t, tierContract.SetSaleOrchestrator(transactionContext, Orchestrator))

	SetUserID(transactionContext, Orchestrator)
	require.NoError(t, tierContract.RecordPurchase(transactionContext, 0, platform.ConvertTeachToWei(250000000)))

	// Tier 0 is sold out, but tier 1's window has not opened: no tier is
	// eligible, so the stored index is returned unchanged.
	current, err := tierContract.CheckAndAdvanceTier(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(0), current)

	// Once tier 1's window opens the scan lands on it.
	transactionContext.GetTxTimestampReturns(&timestamp.Timestamp{Seconds: int64(SaleStart + 31*DaySecs)}, nil)

	current, err = tierContract.CheckAndAdvanceTier(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(1), current)
}

func TestSetTierActive(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)
	require.NoError(t, tierContract.SetTierActive(transactionContext, 0, false))

	// An inactive tier is skipped by the eligibility scan.
	current, err := tierContract.GetCurrentTier(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(0), current) // fallback to the stored index

	details, err := tierContract.GetTierDetails(transactionContext, 0)
	require.NoError(t, err)
	require.False(t, details.Tier.IsActive)

	// An inactive tier refuses purchases outright, counters untouched.
	require.NoError(t, tierContract.SetSaleOrchestrator(transactionContext, Orchestrator))
	SetUserID(transactionContext, Orchestrator)
	err = tierContract.RecordPurchase(transactionContext, 0, platform.ConvertTeachToWei(1000))
	require.Error(t, err)
	require.ErrorIs(t, err, tier.ErrTierNotActive)

	total, err := tierContract.TotalTokensSold(transactionContext)
	require.NoError(t, err)
	require.Equal(t, "0", total)
}

func TestConfigureTier(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)

	newTier := tier.Tier{
		Price:             "120000",
		Allocation:        platform.ConvertTeachToWei(50000000),
		MinPurchase:       platform.ConvertUsdToMicro(50),
		MaxPurchase:       platform.ConvertUsdToMicro(200000),
		VestingTGEPercent: 10,
		VestingMonths:     24,
		IsActive:          true,
		StartTime:         SaleStart + 120*DaySecs,
		EndTime:           SaleStart + 150*DaySecs,
		BonusBrackets: []tier.BonusBracket{
			{FillPercentage: 25, BonusPercentage: 8},
			{FillPercentage: 50, BonusPercentage: 6},
			{FillPercentage: 75, BonusPercentage: 4},
			{FillPercentage: 100, BonusPercentage: 2},
		},
	}
	tierJSON, err := json.Marshal(newTier)
	require.NoError(t, err)

	// Appending at index == count grows the table.
	require.NoError(t, tierContract.ConfigureTier(transactionContext, 4, string(tierJSON)))

	count, err := tierContract.GetTierCount(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(5), count)

	// A gap in the table is rejected.
	err = tierContract.ConfigureTier(transactionContext, 7, string(tierJSON))
	require.Error(t, err)
	require.Contains(t, err.Error(), "gap")
}

func TestConfigureTierPreservesSold(t *testing.T) {
	t.Parallel()

	tierContract, transactionContext := initializedContract(t, SaleStart)
	require.NoError(t, tierContract.SetSaleOrchestrator(transactionContext, Orchestrator))

	SetUserID(transactionContext, Orchestrator)
	require.NoError(t, tierContract.RecordPurchase(transactionContext, 0, platform.ConvertTeachToWei(1000)))

	SetUserID(transactionContext, PlatformFoundation)
	replacement, err := tierContract.GetTierDetails(transactionContext, 0)
	require.NoError(t, err)
	replacement.Tier.Price = "45000"
	replacement.Tier.Sold = "0" // must be ignored on replace
	tierJSON, err := json.Marshal(replacement.Tier)
	require.NoError(t, err)

	require.NoError(t, tierContract.ConfigureTier(transactionContext, 0, string(tierJSON)))

	updated, err := tierContract.GetTierDetails(transactionContext, 0)
	require.NoError(t, err)
	require.Equal(t, "45000", updated.Tier.Price)
	require.Equal(t, platform.ConvertTeachToWei(1000), updated.Tier.Sold)
}

func TestConfigureTierValidation(t *testing.T) {
	t.Parallel()

	base := tier.Tier{
		Price:             "40000",
		Allocation:        "1000",
		MinPurchase:       "100",
		MaxPurchase:       "500",
		VestingTGEPercent: 20,
		VestingMonths:     6,
		IsActive:          true,
		StartTime:         SaleStart,
		EndTime:           SaleStart + 30*DaySecs,
		BonusBrackets: []tier.BonusBracket{
			{FillPercentage: 25, BonusPercentage: 20},
			{FillPercentage: 50, BonusPercentage: 15},
			{FillPercentage: 75, BonusPercentage: 10},
			{FillPercentage: 100, BonusPercentage: 5},
		},
	}

	tests := []struct {
		name   string
		mutate func(*tier.Tier)
	}{
		{name: "min above max", mutate: func(t *tier.Tier) { t.MinPurchase = "600" }},
		{name: "window inverted", mutate: func(t *tier.Tier) { t.EndTime = t.StartTime }},
		{name: "TGE above 100", mutate: func(t *tier.Tier) { t.VestingTGEPercent = 101 }},
		{name: "too few brackets", mutate: func(t *tier.Tier) { t.BonusBrackets = t.BonusBrackets[:2] }},
		{name: "brackets not increasing", mutate: func(t *tier.Tier) {
			t.BonusBrackets = []tier.BonusBracket{
				{FillPercentage: 25, BonusPercentage: 20},
				{FillPercentage: 25, BonusPercentage: 15},
				{FillPercentage: 75, BonusPercentage: 10},
				{FillPercentage: 100, BonusPercentage: 5},
			}
		}},
		{name: "bracket above 100", mutate: func(t *tier.Tier) {
			t.BonusBrackets[3].FillPercentage = 120
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			broken := base
			broken.BonusBrackets = append([]tier.BonusBracket{}, base.BonusBrackets...)
			tt.mutate(&broken)

			tierJSON, err := json.Marshal(broken)
			require.NoError(t, err)

			tierContract, transactionContext := initializedContract(t, SaleStart)
			err = tierContract.ConfigureTier(transactionContext, 4, string(tierJSON))
			require.Error(t, err)
		})
	}
}
