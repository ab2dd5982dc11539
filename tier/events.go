package tier

import (
	"encoding/json"
	"fmt"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

type TierAdvancedEvent struct {
	PreviousTier uint64 `json:"previousTier"`
	CurrentTier  uint64 `json:"currentTier"`
	Timestamp    uint64 `json:"timestamp"`
}

type TierConfiguredEvent struct {
	Index      uint64 `json:"index"`
	Price      string `json:"price"`
	Allocation string `json:"allocation"`
	StartTime  uint64 `json:"startTime"`
	EndTime    uint64 `json:"endTime"`
}

type PurchaseRecordedEvent struct {
	Index  uint64 `json:"index"`
	Amount string `json:"amount"`
	Sold   string `json:"sold"`
}

func emitTierAdvanced(ctx platform.TransactionContextInterface, previous, current, timestamp uint64) error {
	payload, err := json.Marshal(TierAdvancedEvent{
		PreviousTier: previous,
		CurrentTier:  current,
		Timestamp:    timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	if err := ctx.SetEvent(tierAdvancedEvent, payload); err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func emitTierConfigured(ctx platform.TransactionContextInterface, index uint64, t *Tier) error {
	payload, err := json.Marshal(TierConfiguredEvent{
		Index:      index,
		Price:      t.Price,
		Allocation: t.Allocation,
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
	})
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	if err := ctx.SetEvent(tierConfiguredEvent, payload); err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func emitPurchaseRecorded(ctx platform.TransactionContextInterface, index uint64, amount, sold string) error {
	payload, err := json.Marshal(PurchaseRecordedEvent{
		Index:  index,
		Amount: amount,
		Sold:   sold,
	})
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	if err := ctx.SetEvent(purchaseRecordedEvent, payload); err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}
