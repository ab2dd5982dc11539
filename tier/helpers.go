package tier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/buckhoff/TokenContract-sub001/platform"
)

func tierKey(index uint64) string {
	return fmt.Sprintf("%s%d", tierKeyPrefix, index)
}

func GetTier(ctx platform.TransactionContextInterface, index uint64) (*Tier, error) {
	tierAsBytes, err := ctx.GetState(tierKey(index))
	if err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get tier with index %d", index), err)
	}
	if tierAsBytes == nil {
		return nil, TierNotFoundError(index)
	}

	var t Tier
	if err := json.Unmarshal(tierAsBytes, &t); err != nil {
		return nil, platform.NewCustomError(http.StatusInternalServerError, "failed to unmarshal tier", err)
	}

	return &t, nil
}

func setTier(ctx platform.TransactionContextInterface, index uint64, t *Tier) error {
	tierAsBytes, err := json.Marshal(t)
	if err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to marshal tier", err)
	}

	if err := ctx.PutStateWithoutKYC(tierKey(index), tierAsBytes); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, "failed to set tier", err)
	}

	return nil
}

func getCounter(ctx platform.TransactionContextInterface, key string) (uint64, error) {
	counterAsBytes, err := ctx.GetState(key)
	if err != nil {
		return 0, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get counter %s", key), err)
	}
	if counterAsBytes == nil {
		return 0, nil
	}

	counter, err := strconv.ParseUint(string(counterAsBytes), 10, 64)
	if err != nil {
		return 0, platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to parse counter %s", key), err)
	}

	return counter, nil
}

func setCounter(ctx platform.TransactionContextInterface, key string, value uint64) error {
	if err := ctx.PutStateWithoutKYC(key, []byte(strconv.FormatUint(value, 10))); err != nil {
		return platform.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set counter %s", key), err)
	}

	return nil
}

func getSaleOrchestrator(ctx platform.TransactionContextInterface) (string, error) {
	orchestratorAsBytes, err := ctx.GetState(saleOrchestratorKey)
	if err != nil {
		return "", platform.NewCustomError(http.StatusInternalServerError, "failed to get sale orchestrator", err)
	}

	return string(orchestratorAsBytes), nil
}
