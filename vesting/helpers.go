package vesting

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

func scheduleKey(id uint64) string {
	return fmt.Sprintf("%s%d", scheduleKeyPrefix, id)
}

func GetSchedule(ctx platform.TransactionContextInterface, id uint64) (*VestingSchedule, error) {
	scheduleAsBytes, err := ctx.GetState(scheduleKey(id))
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get schedule %d", id), err)
	}
	if scheduleAsBytes == nil {
		return nil, ScheduleNotFoundError(id)
	}

	var schedule VestingSchedule
	if err := json.Unmarshal(scheduleAsBytes, &schedule); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "failed to unmarshal schedule", err)
	}

	return &schedule, nil
}

func setSchedule(ctx platform.TransactionContextInterface, schedule *VestingSchedule) error {
	scheduleAsBytes, err := json.Marshal(schedule)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to marshal schedule", err)
	}

	if err := ctx.PutStateWithoutKYC(scheduleKey(schedule.ID), scheduleAsBytes); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to set schedule", err)
	}

	return nil
}

// nextScheduleID allocates the next schedule id, starting at 1.
func nextScheduleID(ctx platform.TransactionContextInterface) (uint64, error) {
	countAsBytes, err := ctx.GetState(scheduleCountKey)
	if err != nil {
		return 0, platform.NewCustomError(http.StatusInternalServerError, "failed to get schedule count", err)
	}

	count := uint64(0)
	if countAsBytes != nil {
		count, err = strconv.ParseUint(string(countAsBytes), 10, 64)
		if err != nil {
			return 0, platform.NewCustomError(http.StatusInternalServerError, "failed to parse schedule count", err)
		}
	}

	count++
	if err := ctx.PutStateWithoutKYC(scheduleCountKey, []byte(strconv.FormatUint(count, 10))); err != nil {
		return 0, platform.NewCustomError(http.StatusInternalServerError, "failed to set schedule count", err)
	}

	return count, nil
}

// GetVestedTotal returns the running vested total: the sum of TotalAmount
// across all non-revoked schedules.
func GetVestedTotal(ctx platform.TransactionContextInterface) (*big.Int, error) {
	totalAsBytes, err := ctx.GetState(vestedTotalKey)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "failed to get vested total", err)
	}

	total := big.NewInt(0)
	if totalAsBytes != nil {
		if _, ok := total.SetString(string(totalAsBytes), 10); !ok {
			return nil, platform.InvalidAmountError("vested total", string(totalAsBytes))
		}
	}

	return total, nil
}

func setVestedTotal(ctx platform.TransactionContextInterface, total *big.Int) error {
	if err := ctx.PutStateWithoutKYC(vestedTotalKey, []byte(total.String())); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to set vested total", err)
	}

	return nil
}

func getUserVestings(ctx platform.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	userVestingKey := userVestingsKeyPrefix + beneficiary
	userVestingJSON, err := ctx.GetState(userVestingKey)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusNotFound, fmt.Sprintf("failed to get user vestings for %s", beneficiary), err)
	}
	if userVestingJSON == nil {
		return []uint64{}, nil
	}

	var ids []uint64
	if err := json.Unmarshal(userVestingJSON, &ids); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal user vesting list for %s", beneficiary), err)
	}

	return ids, nil
}

func appendUserVesting(ctx platform.TransactionContextInterface, beneficiary string, id uint64) error {
	ids, err := getUserVestings(ctx, beneficiary)
	if err != nil {
		return err
	}

	ids = append(ids, id)
	updatedJSON, err := json.Marshal(ids)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to marshal user vesting list for %s", beneficiary), err)
	}

	if err := ctx.PutStateWithoutKYC(userVestingsKeyPrefix+beneficiary, updatedJSON); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set user vesting list for %s", beneficiary), err)
	}

	return nil
}

func releasesKey(id uint64) string {
	return fmt.Sprintf("%s%d", releasesKeyPrefix, id)
}

func getReleases(ctx platform.TransactionContextInterface, id uint64) ([]QuarterlyRelease, error) {
	releasesAsBytes, err := ctx.GetState(releasesKey(id))
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get releases for schedule %d", id), err)
	}
	if releasesAsBytes == nil {
		return []QuarterlyRelease{}, nil
	}

	var releases []QuarterlyRelease
	if err := json.Unmarshal(releasesAsBytes, &releases); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal releases for schedule %d", id), err)
	}

	return releases, nil
}

func setReleases(ctx platform.TransactionContextInterface, id uint64, releases []QuarterlyRelease) error {
	releasesAsBytes, err := json.Marshal(releases)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to marshal releases", err)
	}

	if err := ctx.PutStateWithoutKYC(releasesKey(id), releasesAsBytes); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set releases for schedule %d", id), err)
	}

	return nil
}

func milestonesKey(id uint64) string {
	return fmt.Sprintf("%s%d", milestonesKeyPrefix, id)
}

func getMilestones(ctx platform.TransactionContextInterface, id uint64) ([]Milestone, error) {
	milestonesAsBytes, err := ctx.GetState(milestonesKey(id))
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get milestones for schedule %d", id), err)
	}
	if milestonesAsBytes == nil {
		return []Milestone{}, nil
	}

	var milestones []Milestone
	if err := json.Unmarshal(milestonesAsBytes, &milestones); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal milestones for schedule %d", id), err)
	}

	return milestones, nil
}

func setMilestones(ctx platform.TransactionContextInterface, id uint64, milestones []Milestone) error {
	milestonesAsBytes, err := json.Marshal(milestones)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to marshal milestones", err)
	}

	if err := ctx.PutStateWithoutKYC(milestonesKey(id), milestonesAsBytes); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set milestones for schedule %d", id), err)
	}

	return nil
}

// IsTGECompleted reports whether the platform-wide token generation event
// has been recorded.
func IsTGECompleted(ctx platform.TransactionContextInterface) (bool, error) {
	tgeAsBytes, err := ctx.GetState(tgeCompletedKey)
	if err != nil {
		return false, platform.NewCustomError(http.StatusInternalServerError, "failed to get TGE state", err)
	}

	return len(tgeAsBytes) != 0, nil
}

func getVestingAccount(ctx platform.TransactionContextInterface) (string, error) {
	accountAsBytes, err := ctx.GetState(vestingAccountKey)
	if err != nil {
		return "", platform.NewCustomError(http.StatusInternalServerError, "failed to get vesting account", err)
	}
	if len(accountAsBytes) == 0 {
		return "", ErrAccountNotSet
	}

	return string(accountAsBytes), nil
}

func isAuthorizedCreator(ctx platform.TransactionContextInterface, signer string) (bool, error) {
	creatorAsBytes, err := ctx.GetState(creatorKeyPrefix + signer)
	if err != nil {
		return false, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get creator state for %s", signer), err)
	}

	return len(creatorAsBytes) != 0, nil
}
