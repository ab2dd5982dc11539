package vesting

// VestingType selects the claimable algorithm for a schedule.
type VestingType string

const (
	TypeLinear    VestingType = "LINEAR"
	TypeQuarterly VestingType = "QUARTERLY"
	TypeMilestone VestingType = "MILESTONE"
)

const (
	scheduleKeyPrefix     = "vestingschedule_"
	scheduleCountKey      = "schedulecount"
	vestedTotalKey        = "vestedtotal"
	userVestingsKeyPrefix = "uservestings_"
	releasesKeyPrefix     = "quarterlyreleases_"
	milestonesKeyPrefix   = "milestones_"
	tgeCompletedKey       = "tgecompleted"
	vestingAccountKey     = "vestingaccount"
	creatorKeyPrefix      = "schedulecreator_"

	daySeconds     = 24 * 60 * 60
	monthSeconds   = 30 * daySeconds
	quarterSeconds = 3 * monthSeconds

	scheduleCreatedEvent   = "VestingScheduleCreated"
	tokensClaimedEvent     = "TokensClaimed"
	scheduleRevokedEvent   = "VestingScheduleRevoked"
	milestoneAddedEvent    = "MilestoneAdded"
	milestoneAchievedEvent = "MilestoneAchieved"
	tgeCompletedEvent      = "TGECompleted"
)
