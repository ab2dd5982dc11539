package sale

const (
	purchaseKeyPrefix = "purchase_"
	saleConfigKey     = "saleconfig"
	totalRaisedKey    = "totalraisedusd"

	presaleGroup = "Presale"

	monthSeconds = 30 * 24 * 60 * 60

	tokensPurchasedEvent     = "TokensPurchased"
	refundClaimedEvent       = "RefundClaimed"
	saleAbortedEvent         = "SaleAborted"
	stabilityNotifyFailEvent = "StabilityNotificationFailed"
)
