package platform

const (
	// platformFoundation is the only identity allowed to run admin
	// operations across the platform contracts.
	platformFoundation = "4c7b9f20d1e8a35b6c04f88a2e91d37c5a10be64"

	contractAddressRegex = `^klp-[a-fA-F0-9]+-cc$`
	hexAddressRegex      = `^[0-9a-fA-F]{40}$`

	zeroAddress = "0x0000000000000000000000000000000000000000"

	// Fixed-point scales. USD amounts carry 6 decimals, token amounts 18.
	UsdDecimals   = 6
	TokenDecimals = 18

	registryKeyPrefix      = "registry_"
	registryCacheKeyPrefix = "registrycache_"

	// Logical contract names resolved through the registry.
	TeachTokenContract  = "TeachToken"
	PriceOracleContract = "PriceOracle"
	StabilityContract   = "StabilityFund"

	// Static fallbacks used when neither the registry nor the cache can
	// resolve a logical name.
	defaultTeachTokenAddress  = "klp-6b616c70746f6b656e-cc"
	defaultPriceOracleAddress = "klp-70726963656f7261636c65-cc"
	defaultStabilityAddress   = "klp-73746162696c697479-cc"
)
