package vesting

import (
	"math/big"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

// VestingSchedule is one beneficiary's vesting position. Schedule ids start
// at 1. Amounts are 18-decimal token units carried as base-10 strings.
//
// InitialAmount is the absolute TGE-equivalent unlock used by QUARTERLY
// schedules; LINEAR and MILESTONE schedules derive their TGE portion from
// TGEPercentage instead. TGEClaimed tracks the TGE portion strictly
// separately from release and milestone flags so nothing is ever
// double-counted against ClaimedAmount.
type VestingSchedule struct {
	ID            uint64      `json:"id"`
	Beneficiary   string      `json:"beneficiary"`
	TotalAmount   string      `json:"totalAmount"`
	ClaimedAmount string      `json:"claimedAmount"`
	InitialAmount string      `json:"initialAmount"`
	StartTime     uint64      `json:"startTime"`
	CliffDuration uint64      `json:"cliffDuration"`
	Duration      uint64      `json:"duration"`
	TGEPercentage uint64      `json:"tgePercentage"`
	VestingType   VestingType `json:"vestingType"`
	Group         string      `json:"group"`
	Revocable     bool        `json:"revocable"`
	Revoked       bool        `json:"revoked"`
	TGEClaimed    bool        `json:"tgeClaimed"`
}

// QuarterlyRelease is one slice of a QUARTERLY schedule, generated at
// creation time.
type QuarterlyRelease struct {
	ReleaseTime uint64 `json:"releaseTime"`
	Amount      string `json:"amount"`
	Released    bool   `json:"released"`
}

// Milestone is one achievement-gated slice of a MILESTONE schedule, added
// after creation by the foundation.
type Milestone struct {
	Percentage uint64 `json:"percentage"`
	Achieved   bool   `json:"achieved"`
	Claimed    bool   `json:"claimed"`
}

// ClaimableForAllSchedules is the per-beneficiary claimable read model. It
// always reports per-schedule amounts; a buyer with repeat purchases holds
// several schedules and no single cached id can stand in for them.
type ClaimableForAllSchedules struct {
	TotalAmount string   `json:"totalAmount"`
	ScheduleIDs []uint64 `json:"scheduleIds"`
	Amounts     []string `json:"amounts"`
}

func (s *VestingSchedule) totalAmount() (*big.Int, error) {
	return platform.ParseAmount("schedule totalAmount", s.TotalAmount)
}

func (s *VestingSchedule) claimedAmount() (*big.Int, error) {
	return platform.ParseAmount("schedule claimedAmount", s.ClaimedAmount)
}

func (s *VestingSchedule) initialAmount() (*big.Int, error) {
	if s.InitialAmount == "" {
		return big.NewInt(0), nil
	}
	return platform.ParseAmount("schedule initialAmount", s.InitialAmount)
}

// tgeAmount returns the TGE-unlocked portion: the explicit initial amount
// for quarterly schedules, the percentage-derived amount otherwise.
func (s *VestingSchedule) tgeAmount() (*big.Int, error) {
	if s.VestingType == TypeQuarterly {
		return s.initialAmount()
	}

	total, err := s.totalAmount()
	if err != nil {
		return nil, err
	}

	tge := new(big.Int).Mul(total, new(big.Int).SetUint64(s.TGEPercentage))
	return tge.Div(tge, big.NewInt(100)), nil
}

func (s *VestingSchedule) cliffEnd() uint64 {
	return s.StartTime + s.CliffDuration
}

func (s *VestingSchedule) vestingEnd() uint64 {
	return s.StartTime + s.CliffDuration + s.Duration
}
