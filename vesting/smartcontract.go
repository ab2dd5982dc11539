package vesting

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

// SmartContract is the VestingEngine: it owns per-beneficiary vesting
// schedules of three kinds, computes claimable amounts per schedule type,
// and performs claims and revocations with balance accounting.
//
// Token is the transfer capability the engine consumes; it is injected at
// construction so tests can fake it.
type SmartContract struct {
	kalpsdk.Contract
	Token platform.TokenClient
}

// Initialize records the token account whose balance backs every schedule.
// Foundation only, once.
func (s *SmartContract) Initialize(ctx platform.TransactionContextInterface, vestingAccount string) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	if !platform.IsUserAddressValid(vestingAccount) && !platform.IsContractAddressValid(vestingAccount) {
		return fmt.Errorf("%w: %s", platform.ErrInvalidUserAddress, vestingAccount)
	}

	existing, err := ctx.GetState(vestingAccountKey)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to get vesting account", err)
	}
	if len(existing) != 0 {
		return platform.NewCustomError(http.StatusConflict, "vesting account already set", nil)
	}

	return ctx.PutStateWithoutKYC(vestingAccountKey, []byte(vestingAccount))
}

// AuthorizeCreator grants an address the right to create schedules, used
// for the sale orchestrator. Foundation only.
func (s *SmartContract) AuthorizeCreator(ctx platform.TransactionContextInterface, address string) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	if !platform.IsUserAddressValid(address) {
		return fmt.Errorf("%w: %s", platform.ErrInvalidUserAddress, address)
	}

	return ctx.PutStateWithoutKYC(creatorKeyPrefix+address, []byte("1"))
}

// SetTGECompleted records the platform-wide token generation event. Claims
// are rejected until this has happened. Foundation only, once.
func (s *SmartContract) SetTGECompleted(ctx platform.TransactionContextInterface) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	done, err := IsTGECompleted(ctx)
	if err != nil {
		return err
	}
	if done {
		return ErrTGEAlreadyCompleted
	}

	now, err := platform.TxTimestamp(ctx)
	if err != nil {
		return err
	}

	if err := ctx.PutStateWithoutKYC(tgeCompletedKey, []byte(strconv.FormatUint(now, 10))); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to set TGE state", err)
	}

	return emitTGECompleted(ctx, now)
}

// requireCreator gates schedule creation to the foundation and explicitly
// authorized creators.
func requireCreator(ctx platform.TransactionContextInterface) error {
	signer, err := platform.GetUserID(ctx)
	if err != nil {
		return platform.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if platform.IsFoundationAddress(signer) {
		return nil
	}

	authorized, err := isAuthorizedCreator(ctx, signer)
	if err != nil {
		return err
	}
	if !authorized {
		return fmt.Errorf("%w: %s", ErrNotScheduleCreator, signer)
	}

	return nil
}

// CreateLinearVestingSchedule creates a schedule releasing the TGE portion
// up front and the rest continuously over duration seconds after the cliff.
func (s *SmartContract) CreateLinearVestingSchedule(ctx platform.TransactionContextInterface, beneficiary, amount string, startTime, cliffDuration, duration, tgePercentage uint64, group string, revocable bool) (uint64, error) {
	if err := requireCreator(ctx); err != nil {
		return 0, err
	}

	tokenAmount, err := platform.ParseAmount("schedule amount", amount)
	if err != nil {
		return 0, err
	}

	return CreateSchedule(ctx, s.Token, &CreateParams{
		Beneficiary:   beneficiary,
		Amount:        tokenAmount,
		StartTime:     startTime,
		CliffDuration: cliffDuration,
		Duration:      duration,
		TGEPercentage: tgePercentage,
		Type:          TypeLinear,
		Group:         group,
		Revocable:     revocable,
	})
}

// CreateQuarterlyVestingSchedule creates a schedule releasing initialAmount
// at TGE and the remainder in releasesCount quarterly slices, the last
// slice absorbing the rounding remainder.
func (s *SmartContract) CreateQuarterlyVestingSchedule(ctx platform.TransactionContextInterface, beneficiary, amount, initialAmount string, startTime, releasesCount uint64, group string, revocable bool) (uint64, error) {
	if err := requireCreator(ctx); err != nil {
		return 0, err
	}

	tokenAmount, err := platform.ParseAmount("schedule amount", amount)
	if err != nil {
		return 0, err
	}

	initial, err := platform.ParseAmount("initial amount", initialAmount)
	if err != nil {
		return 0, err
	}

	return CreateSchedule(ctx, s.Token, &CreateParams{
		Beneficiary:   beneficiary,
		Amount:        tokenAmount,
		InitialAmount: initial,
		StartTime:     startTime,
		Type:          TypeQuarterly,
		ReleasesCount: releasesCount,
		Group:         group,
		Revocable:     revocable,
	})
}

// CreateMilestoneVestingSchedule creates a schedule whose non-TGE portion
// unlocks through milestones added and achieved by the foundation.
func (s *SmartContract) CreateMilestoneVestingSchedule(ctx platform.TransactionContextInterface, beneficiary, amount string, startTime, tgePercentage uint64, group string, revocable bool) (uint64, error) {
	if err := requireCreator(ctx); err != nil {
		return 0, err
	}

	tokenAmount, err := platform.ParseAmount("schedule amount", amount)
	if err != nil {
		return 0, err
	}

	return CreateSchedule(ctx, s.Token, &CreateParams{
		Beneficiary:   beneficiary,
		Amount:        tokenAmount,
		StartTime:     startTime,
		TGEPercentage: tgePercentage,
		Type:          TypeMilestone,
		Group:         group,
		Revocable:     revocable,
	})
}

// CreateVestingSchedulesBatch creates one linear schedule per beneficiary
// with shared timing parameters. Foundation only. The batch is
// all-or-nothing: a failed solvency check on any entry aborts the whole
// transaction.
func (s *SmartContract) CreateVestingSchedulesBatch(ctx platform.TransactionContextInterface, beneficiaries, amounts []string, startTime, cliffDuration, duration, tgePercentage uint64, group string) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	if len(beneficiaries) == 0 {
		return ErrNoBeneficiaries
	}
	if len(beneficiaries) != len(amounts) {
		return fmt.Errorf("%w: %d != %d", ErrArraysLengthMismatch, len(beneficiaries), len(amounts))
	}

	for i := range beneficiaries {
		amount, err := platform.ParseAmount("batch amount", amounts[i])
		if err != nil {
			return err
		}

		_, err = CreateSchedule(ctx, s.Token, &CreateParams{
			Beneficiary:   beneficiaries[i],
			Amount:        amount,
			StartTime:     startTime,
			CliffDuration: cliffDuration,
			Duration:      duration,
			TGEPercentage: tgePercentage,
			Type:          TypeLinear,
			Group:         group,
			Revocable:     true,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// AddMilestone appends a milestone to a MILESTONE schedule. The cumulative
// milestone percentage including the TGE percentage must never exceed 100;
// exactly 100 is allowed.
func (s *SmartContract) AddMilestone(ctx platform.TransactionContextInterface, scheduleID, percentage uint64) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	if percentage == 0 || percentage > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidTGEPercentage, percentage)
	}

	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if schedule.VestingType != TypeMilestone {
		return fmt.Errorf("%w: schedule %d is %s", ErrNotMilestoneSchedule, scheduleID, schedule.VestingType)
	}
	if schedule.Revoked {
		return fmt.Errorf("%w: schedule %d", ErrScheduleRevoked, scheduleID)
	}

	milestones, err := getMilestones(ctx, scheduleID)
	if err != nil {
		return err
	}

	cumulative := schedule.TGEPercentage + percentage
	for _, m := range milestones {
		cumulative += m.Percentage
	}
	if cumulative > 100 {
		return MilestoneCapError(scheduleID, cumulative)
	}

	milestones = append(milestones, Milestone{Percentage: percentage})
	if err := setMilestones(ctx, scheduleID, milestones); err != nil {
		return err
	}

	return emitMilestoneAdded(ctx, scheduleID, len(milestones)-1, percentage)
}

// AchieveMilestone marks a milestone achieved, unlocking its portion.
func (s *SmartContract) AchieveMilestone(ctx platform.TransactionContextInterface, scheduleID uint64, index int) error {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return err
	}

	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if schedule.Revoked {
		return fmt.Errorf("%w: schedule %d", ErrScheduleRevoked, scheduleID)
	}

	milestones, err := getMilestones(ctx, scheduleID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(milestones) {
		return fmt.Errorf("%w: schedule %d index %d", ErrMilestoneNotFound, scheduleID, index)
	}
	if milestones[index].Achieved {
		return fmt.Errorf("%w: schedule %d index %d", ErrMilestoneAchieved, scheduleID, index)
	}

	milestones[index].Achieved = true
	if err := setMilestones(ctx, scheduleID, milestones); err != nil {
		return err
	}

	return emitMilestoneAchieved(ctx, scheduleID, index, milestones[index].Percentage)
}

// CalculateClaimableAmount is a pure query: the amount the beneficiary
// could claim right now.
func (s *SmartContract) CalculateClaimableAmount(ctx platform.TransactionContextInterface, scheduleID uint64) (string, error) {
	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return "0", err
	}

	claimable, err := s.claimableFor(ctx, schedule)
	if err != nil {
		return "0", err
	}

	return claimable.String(), nil
}

func (s *SmartContract) claimableFor(ctx platform.TransactionContextInterface, schedule *VestingSchedule) (*big.Int, error) {
	tgeDone, err := IsTGECompleted(ctx)
	if err != nil {
		return nil, err
	}

	now, err := platform.TxTimestamp(ctx)
	if err != nil {
		return nil, err
	}

	releases, err := getReleases(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}

	milestones, err := getMilestones(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}

	return claimableAmount(schedule, releases, milestones, now, tgeDone)
}

// ClaimTokens pays out everything currently claimable on the schedule to
// its beneficiary. The accounting mutation and the transfer commit in the
// same transaction; a failed transfer aborts both.
func (s *SmartContract) ClaimTokens(ctx platform.TransactionContextInterface, scheduleID uint64) (string, error) {
	signer, err := platform.GetUserID(ctx)
	if err != nil {
		return "0", platform.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	tgeDone, err := IsTGECompleted(ctx)
	if err != nil {
		return "0", err
	}
	if !tgeDone {
		return "0", ErrTGENotCompleted
	}

	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return "0", err
	}
	if schedule.Revoked {
		return "0", fmt.Errorf("%w: schedule %d", ErrScheduleRevoked, scheduleID)
	}
	if schedule.Beneficiary != signer {
		return "0", fmt.Errorf("%w: %s", ErrNotBeneficiary, signer)
	}

	now, err := platform.TxTimestamp(ctx)
	if err != nil {
		return "0", err
	}

	releases, err := getReleases(ctx, scheduleID)
	if err != nil {
		return "0", err
	}

	milestones, err := getMilestones(ctx, scheduleID)
	if err != nil {
		return "0", err
	}

	claimable, err := applyClaim(schedule, releases, milestones, now, tgeDone)
	if err != nil {
		return "0", err
	}

	if err := setSchedule(ctx, schedule); err != nil {
		return "0", err
	}
	if schedule.VestingType == TypeQuarterly {
		if err := setReleases(ctx, scheduleID, releases); err != nil {
			return "0", err
		}
	}
	if schedule.VestingType == TypeMilestone {
		if err := setMilestones(ctx, scheduleID, milestones); err != nil {
			return "0", err
		}
	}

	if err := s.Token.Transfer(ctx, schedule.Beneficiary, claimable); err != nil {
		return "0", platform.NewCustomError(http.StatusInternalServerError, "failed to transfer claimed tokens", err)
	}

	if err := emitTokensClaimed(ctx, scheduleID, schedule.Beneficiary, claimable.String()); err != nil {
		return "0", err
	}

	return claimable.String(), nil
}

// RevokeSchedule revokes a revocable schedule with sweep semantics: the
// foundation receives everything not yet claimed, vested or not, and the
// beneficiary's claimable is permanently zero afterwards. The running
// vested total drops by the schedule's full amount.
func (s *SmartContract) RevokeSchedule(ctx platform.TransactionContextInterface, scheduleID uint64) (string, error) {
	if err := platform.IsSignerFoundation(ctx); err != nil {
		return "0", err
	}

	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return "0", err
	}
	if !schedule.Revocable {
		return "0", fmt.Errorf("%w: schedule %d", ErrScheduleNotRevocable, scheduleID)
	}
	if schedule.Revoked {
		return "0", fmt.Errorf("%w: schedule %d", ErrScheduleAlreadyRevoked, scheduleID)
	}

	total, err := schedule.totalAmount()
	if err != nil {
		return "0", err
	}

	claimed, err := schedule.claimedAmount()
	if err != nil {
		return "0", err
	}

	refund := new(big.Int).Sub(total, claimed)

	schedule.Revoked = true
	if err := setSchedule(ctx, schedule); err != nil {
		return "0", err
	}

	vestedTotal, err := GetVestedTotal(ctx)
	if err != nil {
		return "0", err
	}
	vestedTotal.Sub(vestedTotal, total)
	if err := setVestedTotal(ctx, vestedTotal); err != nil {
		return "0", err
	}

	signer, err := platform.GetUserID(ctx)
	if err != nil {
		return "0", platform.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if refund.Sign() > 0 {
		if err := s.Token.Transfer(ctx, signer, refund); err != nil {
			return "0", platform.NewCustomError(http.StatusInternalServerError, "failed to return revoked tokens", err)
		}
	}

	if err := emitScheduleRevoked(ctx, scheduleID, schedule.Beneficiary, refund.String()); err != nil {
		return "0", err
	}

	return refund.String(), nil
}

// GetVestingSchedule returns a schedule by id.
func (s *SmartContract) GetVestingSchedule(ctx platform.TransactionContextInterface, scheduleID uint64) (*VestingSchedule, error) {
	return GetSchedule(ctx, scheduleID)
}

// GetSchedulesForBeneficiary returns every schedule id ever created for the
// address.
func (s *SmartContract) GetSchedulesForBeneficiary(ctx platform.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	return getUserVestings(ctx, beneficiary)
}

// GetClaimableForAllSchedules reports the claimable amount of every one of
// the beneficiary's schedules plus their sum.
func (s *SmartContract) GetClaimableForAllSchedules(ctx platform.TransactionContextInterface, beneficiary string) (*ClaimableForAllSchedules, error) {
	ids, err := getUserVestings(ctx, beneficiary)
	if err != nil {
		return nil, err
	}

	total := big.NewInt(0)
	amounts := make([]string, len(ids))
	for i, id := range ids {
		schedule, err := GetSchedule(ctx, id)
		if err != nil {
			return nil, err
		}

		claimable, err := s.claimableFor(ctx, schedule)
		if err != nil {
			return nil, err
		}

		amounts[i] = claimable.String()
		total.Add(total, claimable)
	}

	return &ClaimableForAllSchedules{
		TotalAmount: total.String(),
		ScheduleIDs: ids,
		Amounts:     amounts,
	}, nil
}

// GetQuarterlyReleases returns the release table of a quarterly schedule.
func (s *SmartContract) GetQuarterlyReleases(ctx platform.TransactionContextInterface, scheduleID uint64) ([]QuarterlyRelease, error) {
	if _, err := GetSchedule(ctx, scheduleID); err != nil {
		return nil, err
	}

	return getReleases(ctx, scheduleID)
}

// GetMilestones returns the milestone table of a milestone schedule.
func (s *SmartContract) GetMilestones(ctx platform.TransactionContextInterface, scheduleID uint64) ([]Milestone, error) {
	if _, err := GetSchedule(ctx, scheduleID); err != nil {
		return nil, err
	}

	return getMilestones(ctx, scheduleID)
}

// TotalVestedAmount returns the running vested total.
func (s *SmartContract) TotalVestedAmount(ctx platform.TransactionContextInterface) (string, error) {
	total, err := GetVestedTotal(ctx)
	if err != nil {
		return "0", err
	}

	return total.String(), nil
}
