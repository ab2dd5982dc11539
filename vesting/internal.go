package vesting

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

// CreateParams carries everything needed to create a schedule. ReleasesCount
// and InitialAmount apply to QUARTERLY schedules only.
type CreateParams struct {
	Beneficiary   string
	Amount        *big.Int
	InitialAmount *big.Int
	StartTime     uint64
	CliffDuration uint64
	Duration      uint64
	TGEPercentage uint64
	Type          VestingType
	ReleasesCount uint64
	Group         string
	Revocable     bool
}

func (p *CreateParams) validate() error {
	if !platform.IsUserAddressValid(p.Beneficiary) {
		return fmt.Errorf("%w: %s", ErrZeroBeneficiary, p.Beneficiary)
	}
	if p.Amount == nil || p.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: beneficiary %s", ErrZeroAmount, p.Beneficiary)
	}
	if p.TGEPercentage > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidTGEPercentage, p.TGEPercentage)
	}
	if p.StartTime == 0 {
		return platform.NewCustomError(http.StatusBadRequest, "start time cannot be zero", nil)
	}

	switch p.Type {
	case TypeLinear:
		if p.Duration == 0 {
			return platform.NewCustomError(http.StatusBadRequest, "duration cannot be zero for linear schedules", nil)
		}
	case TypeQuarterly:
		if p.ReleasesCount == 0 {
			return ErrInvalidReleasesCount
		}
		if p.InitialAmount == nil {
			return fmt.Errorf("%w: missing initial amount", ErrZeroAmount)
		}
		if p.InitialAmount.Cmp(p.Amount) > 0 {
			return ErrInitialExceedsTotal
		}
	case TypeMilestone:
		// Milestones are added after creation.
	default:
		return platform.NewCustomError(http.StatusBadRequest, fmt.Sprintf("unknown vesting type %s", p.Type), nil)
	}

	return nil
}

// CreateSchedule stores a new vesting schedule after the solvency check:
// the vesting account's token balance must cover the running vested total
// plus this schedule. Under-provisioning would let later claims fail for
// other beneficiaries, so it is always a hard failure.
func CreateSchedule(ctx platform.TransactionContextInterface, token platform.TokenClient, p *CreateParams) (uint64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	account, err := getVestingAccount(ctx)
	if err != nil {
		return 0, err
	}

	balance, err := token.BalanceOf(ctx, account)
	if err != nil {
		return 0, platform.NewCustomError(http.StatusInternalServerError, "failed to get vesting account balance", err)
	}

	vestedTotal, err := GetVestedTotal(ctx)
	if err != nil {
		return 0, err
	}

	required := new(big.Int).Add(vestedTotal, p.Amount)
	if balance.Cmp(required) < 0 {
		return 0, InsufficientBalanceError(balance.String(), required.String())
	}

	id, err := nextScheduleID(ctx)
	if err != nil {
		return 0, err
	}

	schedule := &VestingSchedule{
		ID:            id,
		Beneficiary:   p.Beneficiary,
		TotalAmount:   p.Amount.String(),
		ClaimedAmount: "0",
		StartTime:     p.StartTime,
		CliffDuration: p.CliffDuration,
		Duration:      p.Duration,
		TGEPercentage: p.TGEPercentage,
		VestingType:   p.Type,
		Group:         p.Group,
		Revocable:     p.Revocable,
	}
	if p.Type == TypeQuarterly {
		schedule.InitialAmount = p.InitialAmount.String()
	}

	if err := setSchedule(ctx, schedule); err != nil {
		return 0, err
	}

	if p.Type == TypeQuarterly {
		releases := generateReleases(p.Amount, p.InitialAmount, p.StartTime, p.ReleasesCount)
		if err := setReleases(ctx, id, releases); err != nil {
			return 0, err
		}
	}

	if err := setVestedTotal(ctx, required); err != nil {
		return 0, err
	}

	if err := appendUserVesting(ctx, p.Beneficiary, id); err != nil {
		return 0, err
	}

	if err := emitScheduleCreated(ctx, schedule); err != nil {
		return 0, err
	}

	return id, nil
}

// generateReleases splits totalAmount - initialAmount into count quarterly
// slices. Division truncates, so the last slice absorbs the remainder and
// initial + all releases reconstructs the total exactly.
func generateReleases(totalAmount, initialAmount *big.Int, startTime uint64, count uint64) []QuarterlyRelease {
	remainder := new(big.Int).Sub(totalAmount, initialAmount)
	each := new(big.Int).Div(remainder, new(big.Int).SetUint64(count))

	releases := make([]QuarterlyRelease, count)
	distributed := big.NewInt(0)
	for i := uint64(0); i < count; i++ {
		amount := new(big.Int).Set(each)
		if i == count-1 {
			amount = new(big.Int).Sub(remainder, distributed)
		}
		distributed.Add(distributed, amount)

		releases[i] = QuarterlyRelease{
			ReleaseTime: startTime + (i+1)*quarterSeconds,
			Amount:      amount.String(),
		}
	}

	return releases
}

// claimableAmount dispatches to the schedule's algorithm. Revoked schedules
// and pre-TGE queries are always zero.
func claimableAmount(s *VestingSchedule, releases []QuarterlyRelease, milestones []Milestone, now uint64, tgeDone bool) (*big.Int, error) {
	if s.Revoked || !tgeDone {
		return big.NewInt(0), nil
	}

	switch s.VestingType {
	case TypeLinear:
		return linearClaimable(s, now)
	case TypeQuarterly:
		return quarterlyClaimable(s, releases, now)
	case TypeMilestone:
		return milestoneClaimable(s, milestones)
	default:
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("unknown vesting type %s", s.VestingType), nil)
	}
}

// linearClaimable interpolates between the TGE portion and the full amount
// over the schedule's duration after the cliff. Monotone in now; equals
// totalAmount - claimedAmount once the duration has fully elapsed.
func linearClaimable(s *VestingSchedule, now uint64) (*big.Int, error) {
	total, err := s.totalAmount()
	if err != nil {
		return nil, err
	}

	claimed, err := s.claimedAmount()
	if err != nil {
		return nil, err
	}

	tge, err := s.tgeAmount()
	if err != nil {
		return nil, err
	}

	var vested *big.Int
	switch {
	case now < s.cliffEnd():
		vested = tge
	case now < s.vestingEnd():
		elapsed := new(big.Int).SetUint64(now - s.cliffEnd())
		linear := new(big.Int).Sub(total, tge)
		linear.Mul(linear, elapsed)
		linear.Div(linear, new(big.Int).SetUint64(s.Duration))
		vested = new(big.Int).Add(tge, linear)
	default:
		vested = total
	}

	claimable := new(big.Int).Sub(vested, claimed)
	if claimable.Sign() < 0 {
		return big.NewInt(0), nil
	}

	return claimable, nil
}

// quarterlyClaimable sums the unclaimed TGE portion and every matured,
// unreleased slice. Released slices never pay twice.
func quarterlyClaimable(s *VestingSchedule, releases []QuarterlyRelease, now uint64) (*big.Int, error) {
	claimable := big.NewInt(0)

	if !s.TGEClaimed {
		initial, err := s.initialAmount()
		if err != nil {
			return nil, err
		}
		claimable.Add(claimable, initial)
	}

	for i := range releases {
		if releases[i].Released || now < releases[i].ReleaseTime {
			continue
		}

		amount, err := platform.ParseAmount("release amount", releases[i].Amount)
		if err != nil {
			return nil, err
		}
		claimable.Add(claimable, amount)
	}

	return claimable, nil
}

// milestoneClaimable sums the unclaimed TGE portion and every achieved,
// unclaimed milestone. The TGE portion and milestone portions are tracked
// by separate flags, so the total paid can never exceed totalAmount as long
// as milestone percentages plus TGE stay within 100.
func milestoneClaimable(s *VestingSchedule, milestones []Milestone) (*big.Int, error) {
	total, err := s.totalAmount()
	if err != nil {
		return nil, err
	}

	claimable := big.NewInt(0)

	if !s.TGEClaimed {
		tge, err := s.tgeAmount()
		if err != nil {
			return nil, err
		}
		claimable.Add(claimable, tge)
	}

	for i := range milestones {
		if !milestones[i].Achieved || milestones[i].Claimed {
			continue
		}

		amount := new(big.Int).Mul(total, new(big.Int).SetUint64(milestones[i].Percentage))
		amount.Div(amount, big.NewInt(100))
		claimable.Add(claimable, amount)
	}

	return claimable, nil
}

// applyClaim computes the claimable amount and consumes it: the TGE flag is
// set, matured releases are marked released, achieved milestones are marked
// claimed, and ClaimedAmount grows. Callers persist the mutations and issue
// the transfer; the whole transaction commits or aborts atomically.
func applyClaim(s *VestingSchedule, releases []QuarterlyRelease, milestones []Milestone, now uint64, tgeDone bool) (*big.Int, error) {
	claimable, err := claimableAmount(s, releases, milestones, now, tgeDone)
	if err != nil {
		return nil, err
	}
	if claimable.Sign() == 0 {
		return nil, fmt.Errorf("%w: schedule %d", ErrNoClaimableTokens, s.ID)
	}

	switch s.VestingType {
	case TypeQuarterly:
		for i := range releases {
			if !releases[i].Released && now >= releases[i].ReleaseTime {
				releases[i].Released = true
			}
		}
		s.TGEClaimed = true
	case TypeMilestone:
		for i := range milestones {
			if milestones[i].Achieved && !milestones[i].Claimed {
				milestones[i].Claimed = true
			}
		}
		s.TGEClaimed = true
	default:
		s.TGEClaimed = true
	}

	claimed, err := s.claimedAmount()
	if err != nil {
		return nil, err
	}
	s.ClaimedAmount = new(big.Int).Add(claimed, claimable).String()

	return claimable, nil
}
