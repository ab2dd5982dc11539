package sale

import (
	"encoding/json"
	"fmt"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

type TokensPurchasedEvent struct {
	Buyer             string `json:"buyer"`
	PaymentToken      string `json:"paymentToken"`
	UsdAmount         string `json:"usdAmount"`
	TokenAmount       string `json:"tokenAmount"`
	BonusAmount       string `json:"bonusAmount"`
	TierIndex         uint64 `json:"tierIndex"`
	VestingScheduleID uint64 `json:"vestingScheduleId"`
}

type RefundClaimedEvent struct {
	Buyer        string `json:"buyer"`
	RefundToken  string `json:"refundToken"`
	UsdAmount    string `json:"usdAmount"`
	RefundAmount string `json:"refundAmount"`
}

type SaleAbortedEvent struct {
	Aborted   bool   `json:"aborted"`
	Timestamp uint64 `json:"timestamp"`
}

type StabilityNotificationFailedEvent struct {
	Buyer  string `json:"buyer"`
	Reason string `json:"reason"`
}

func emit(ctx platform.TransactionContextInterface, name string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	if err := ctx.SetEvent(name, payload); err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}
