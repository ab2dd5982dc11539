package vesting

import (
	"errors"
	"fmt"
)

var (
	ErrScheduleNotFound       = errors.New("ScheduleNotFound")
	ErrZeroBeneficiary        = errors.New("ZeroBeneficiary")
	ErrZeroAmount             = errors.New("ZeroAmount")
	ErrInvalidTGEPercentage   = errors.New("InvalidTGEPercentage")
	ErrInvalidReleasesCount   = errors.New("InvalidReleasesCount")
	ErrInitialExceedsTotal    = errors.New("InitialExceedsTotal")
	ErrInsufficientBalance    = errors.New("InsufficientContractBalance")
	ErrNoClaimableTokens      = errors.New("NoClaimableTokens")
	ErrTGENotCompleted        = errors.New("TGENotCompleted")
	ErrTGEAlreadyCompleted    = errors.New("TGEAlreadyCompleted")
	ErrNotBeneficiary         = errors.New("NotBeneficiary")
	ErrScheduleRevoked        = errors.New("ScheduleRevoked")
	ErrScheduleNotRevocable   = errors.New("ScheduleNotRevocable")
	ErrScheduleAlreadyRevoked = errors.New("ScheduleAlreadyRevoked")
	ErrNotScheduleCreator     = errors.New("NotScheduleCreator")
	ErrNotMilestoneSchedule   = errors.New("NotMilestoneSchedule")
	ErrMilestoneNotFound      = errors.New("MilestoneNotFound")
	ErrMilestoneAchieved      = errors.New("MilestoneAlreadyAchieved")
	ErrMilestoneCapExceeded   = errors.New("MilestoneCapExceeded")
	ErrArraysLengthMismatch   = errors.New("ArraysLengthMismatch")
	ErrNoBeneficiaries        = errors.New("NoBeneficiaries")
	ErrAccountNotSet          = errors.New("VestingAccountNotSet")
)

func ScheduleNotFoundError(id uint64) error {
	return fmt.Errorf("%w: id %d", ErrScheduleNotFound, id)
}

func InsufficientBalanceError(balance, required string) error {
	return fmt.Errorf("%w: balance %s, required %s", ErrInsufficientBalance, balance, required)
}

func MilestoneCapError(id uint64, cumulative uint64) error {
	return fmt.Errorf("%w: schedule %d would reach %d%%", ErrMilestoneCapExceeded, id, cumulative)
}
