package sale

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

func getSaleConfig(ctx platform.TransactionContextInterface) (*SaleConfig, error) {
	configAsBytes, err := ctx.GetState(saleConfigKey)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "failed to get sale config", err)
	}
	if configAsBytes == nil {
		return nil, ErrSaleNotConfigured
	}

	var config SaleConfig
	if err := json.Unmarshal(configAsBytes, &config); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "failed to unmarshal sale config", err)
	}

	return &config, nil
}

func setSaleConfig(ctx platform.TransactionContextInterface, config *SaleConfig) error {
	configAsBytes, err := json.Marshal(config)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to marshal sale config", err)
	}

	if err := ctx.PutStateWithoutKYC(saleConfigKey, configAsBytes); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to set sale config", err)
	}

	return nil
}

func getPurchase(ctx platform.TransactionContextInterface, buyer string) (*Purchase, error) {
	purchaseAsBytes, err := ctx.GetState(purchaseKeyPrefix + buyer)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get purchase record for %s", buyer), err)
	}
	if purchaseAsBytes == nil {
		return newPurchase(buyer), nil
	}

	var purchase Purchase
	if err := json.Unmarshal(purchaseAsBytes, &purchase); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal purchase record for %s", buyer), err)
	}
	if purchase.TierAmounts == nil {
		purchase.TierAmounts = map[string]string{}
	}
	if purchase.PaymentsByToken == nil {
		purchase.PaymentsByToken = map[string]string{}
	}

	return &purchase, nil
}

func setPurchase(ctx platform.TransactionContextInterface, purchase *Purchase) error {
	purchaseAsBytes, err := json.Marshal(purchase)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to marshal purchase record", err)
	}

	if err := ctx.PutStateWithoutKYC(purchaseKeyPrefix+purchase.Buyer, purchaseAsBytes); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set purchase record for %s", purchase.Buyer), err)
	}

	return nil
}

func getTotalRaised(ctx platform.TransactionContextInterface) (*big.Int, error) {
	totalAsBytes, err := ctx.GetState(totalRaisedKey)
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "failed to get total raised", err)
	}

	total := big.NewInt(0)
	if totalAsBytes != nil {
		if _, ok := total.SetString(string(totalAsBytes), 10); !ok {
			return nil, platform.InvalidAmountError("total raised", string(totalAsBytes))
		}
	}

	return total, nil
}

func setTotalRaised(ctx platform.TransactionContextInterface, total *big.Int) error {
	if err := ctx.PutStateWithoutKYC(totalRaisedKey, []byte(total.String())); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to set total raised", err)
	}

	return nil
}

// addAmount accumulates value into a base-10 string cell.
func addAmount(entity, current string, value *big.Int) (string, error) {
	if current == "" {
		current = "0"
	}

	existing, err := platform.ParseAmount(entity, current)
	if err != nil {
		return "", err
	}

	return new(big.Int).Add(existing, value).String(), nil
}
