package vesting

import (
	"encoding/json"
	"fmt"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

type ScheduleCreatedEvent struct {
	ScheduleID  uint64 `json:"scheduleId"`
	Beneficiary string `json:"beneficiary"`
	TotalAmount string `json:"totalAmount"`
	VestingType string `json:"vestingType"`
	Group       string `json:"group"`
	StartTime   uint64 `json:"startTime"`
}

type TokensClaimedEvent struct {
	ScheduleID  uint64 `json:"scheduleId"`
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
}

type ScheduleRevokedEvent struct {
	ScheduleID   uint64 `json:"scheduleId"`
	Beneficiary  string `json:"beneficiary"`
	RefundAmount string `json:"refundAmount"`
}

type MilestoneEvent struct {
	ScheduleID uint64 `json:"scheduleId"`
	Index      int    `json:"index"`
	Percentage uint64 `json:"percentage"`
}

type TGECompletedEvent struct {
	Timestamp uint64 `json:"timestamp"`
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

func emitScheduleCreated(ctx platform.TransactionContextInterface, s *VestingSchedule) error {
	return emit(ctx, scheduleCreatedEvent, ScheduleCreatedEvent{
		ScheduleID:  s.ID,
		Beneficiary: s.Beneficiary,
		TotalAmount: s.TotalAmount,
		VestingType: string(s.VestingType),
		Group:       s.Group,
		StartTime:   s.StartTime,
	})
}

func emitTokensClaimed(ctx platform.TransactionContextInterface, scheduleID uint64, beneficiary, amount string) error {
	return emit(ctx, tokensClaimedEvent, TokensClaimedEvent{
		ScheduleID:  scheduleID,
		Beneficiary: beneficiary,
		Amount:      amount,
	})
}

func emitScheduleRevoked(ctx platform.TransactionContextInterface, scheduleID uint64, beneficiary, refund string) error {
	return emit(ctx, scheduleRevokedEvent, ScheduleRevokedEvent{
		ScheduleID:   scheduleID,
		Beneficiary:  beneficiary,
		RefundAmount: refund,
	})
}

func emitMilestoneAdded(ctx platform.TransactionContextInterface, scheduleID uint64, index int, percentage uint64) error {
	return emit(ctx, milestoneAddedEvent, MilestoneEvent{ScheduleID: scheduleID, Index: index, Percentage: percentage})
}

func emitMilestoneAchieved(ctx platform.TransactionContextInterface, scheduleID uint64, index int, percentage uint64) error {
	return emit(ctx, milestoneAchievedEvent, MilestoneEvent{ScheduleID: scheduleID, Index: index, Percentage: percentage})
}

func emitTGECompleted(ctx platform.TransactionContextInterface, timestamp uint64) error {
	return emit(ctx, tgeCompletedEvent, TGECompletedEvent{Timestamp: timestamp})
}
