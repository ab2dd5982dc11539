package platform

import (
	"fmt"
	"net/http"
)

// staticContractAddresses is the last-resort resolution table, used when
// neither the on-ledger registry nor the cache knows a logical name.
var staticContractAddresses = map[string]string{
	TeachTokenContract:  defaultTeachTokenAddress,
	PriceOracleContract: defaultPriceOracleAddress,
	StabilityContract:   defaultStabilityAddress,
}

// ResolveContract resolves a logical contract name to a chaincode address
// using a three-tier strategy: the on-ledger registry entry wins, then the
// last cached address, then the static default. A registry hit refreshes
// the cache so later lookups survive a cleared registry entry.
func ResolveContract(ctx TransactionContextInterface, name string) (string, error) {
	registryKey := registryKeyPrefix + name

	addressBytes, err := ctx.GetState(registryKey)
	if err == nil && len(addressBytes) != 0 {
		address := string(addressBytes)
		if IsContractAddressValid(address) {
			// Refresh the cache; a failed refresh must not fail resolution.
			_ = ctx.PutStateWithoutKYC(registryCacheKeyPrefix+name, addressBytes)
			return address, nil
		}
	}

	cachedBytes, err := ctx.GetState(registryCacheKeyPrefix + name)
	if err == nil && len(cachedBytes) != 0 {
		address := string(cachedBytes)
		if IsContractAddressValid(address) {
			return address, nil
		}
	}

	if address, ok := staticContractAddresses[name]; ok {
		return address, nil
	}

	return "", fmt.Errorf("%w: %s", ErrContractNotResolved, name)
}

// SetRegistryEntry records the current address for a logical contract name.
// Foundation only.
func SetRegistryEntry(ctx TransactionContextInterface, name, address string) error {
	if err := IsSignerFoundation(ctx); err != nil {
		return err
	}

	if !IsContractAddressValid(address) {
		return NewCustomError(http.StatusBadRequest, fmt.Sprintf("invalid contract address %s for %s", address, name), ErrInvalidContractAddress)
	}

	err := ctx.PutStateWithoutKYC(registryKeyPrefix+name, []byte(address))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set registry entry for %s", name), err)
	}

	return nil
}
