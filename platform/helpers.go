package platform

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"
)

// GetUserID extracts the hex user address of the transaction signer from
// the x509 client identity.
func GetUserID(ctx TransactionContextInterface) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to read clientID: %v", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode clientID: %v", err)
	}

	completeID := string(decodeID)
	start := strings.Index(completeID, "x509::CN=")
	end := strings.Index(completeID, ",")
	if start == -1 || end == -1 || end <= start+9 {
		return "", fmt.Errorf("%w: %s", ErrInvalidUserAddress, completeID)
	}
	userID := completeID[start+9 : end]

	if !IsUserAddressValid(userID) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUserAddress, userID)
	}

	return userID, nil
}

func IsUserAddressValid(address string) bool {
	if address == "" || address == zeroAddress {
		return false
	}

	isValid, _ := regexp.MatchString(hexAddressRegex, address)
	return isValid
}

func IsContractAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(contractAddressRegex, address)
	return isValid
}

// IsSignerFoundation gates admin operations to the platform foundation.
func IsSignerFoundation(ctx TransactionContextInterface) error {
	signer, err := GetUserID(ctx)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get client id", err)
	}

	if !IsFoundationAddress(signer) {
		return NewCustomError(http.StatusBadRequest, "signer is not the platform foundation", ErrSignerNotFoundation)
	}

	return nil
}

// IsFoundationAddress reports whether an already extracted signer address is
// the platform foundation. Callers that hold the signer avoid a second
// identity read.
func IsFoundationAddress(address string) bool {
	return address == platformFoundation
}

// TxTimestamp returns the transaction timestamp in unix seconds. All time
// comparisons in the contracts use this clock, never the wall clock, so
// every peer evaluates the same instant.
func TxTimestamp(ctx TransactionContextInterface) (uint64, error) {
	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, fmt.Errorf("failed to get transaction timestamp: %v", err)
	}
	if ts.Seconds < 0 {
		return 0, fmt.Errorf("negative transaction timestamp: %d", ts.Seconds)
	}

	return uint64(ts.Seconds), nil
}

func Decimals() uint64 {
	return TokenDecimals
}

// ConvertTeachToWei scales a whole-token TEACH amount to 18-decimal units.
func ConvertTeachToWei(teachAmount uint64) string {
	amount := new(big.Int).SetUint64(teachAmount)
	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(TokenDecimals)), nil)

	return new(big.Int).Mul(amount, multiplier).String()
}

// ConvertUsdToMicro scales a whole USD amount to the 6-decimal fixed-point
// representation used by tier prices and purchase bounds.
func ConvertUsdToMicro(usdAmount uint64) string {
	amount := new(big.Int).SetUint64(usdAmount)
	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(UsdDecimals)), nil)

	return new(big.Int).Mul(amount, multiplier).String()
}

// ParseAmount parses a base-10 amount string into a big.Int, rejecting
// malformed and negative values.
func ParseAmount(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, InvalidAmountError(entity, value)
	}
	if amount.Sign() < 0 {
		return nil, InvalidAmountError(entity, value)
	}

	return amount, nil
}
