package tier

const (
	tierKeyPrefix        = "tier_"
	tierCountKey         = "tiercount"
	currentTierKey       = "currenttier"
	saleOrchestratorKey  = "saleorchestrator"
	totalTokensSoldKey   = "totaltokenssold"
	bonusBracketsPerTier = 4

	daySeconds = 24 * 60 * 60

	tierAdvancedEvent     = "TierAdvanced"
	tierConfiguredEvent   = "TierConfigured"
	purchaseRecordedEvent = "PurchaseRecorded"
)
