package platform

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
)

// PriceOracle is the conversion capability the sale path consumes. Payment
// amounts are 18-decimal token units, USD amounts 6-decimal fixed point.
//
//go:generate counterfeiter -o ../mocks/priceoracle.go -fake-name PriceOracle . PriceOracle
type PriceOracle interface {
	IsTokenSupported(ctx TransactionContextInterface, token string) (bool, error)
	ConvertTokenToUSD(ctx TransactionContextInterface, token string, amount *big.Int) (*big.Int, error)
	ConvertUSDToToken(ctx TransactionContextInterface, token string, usdAmount *big.Int) (*big.Int, error)
	SupportedPaymentTokens(ctx TransactionContextInterface) ([]string, error)
}

// TokenClient is the transfer capability the vesting and sale contracts
// consume. Transfer moves tokens out of the calling contract's own balance.
//
//go:generate counterfeiter -o ../mocks/tokenclient.go -fake-name TokenClient . TokenClient
type TokenClient interface {
	Transfer(ctx TransactionContextInterface, to string, amount *big.Int) error
	TransferFrom(ctx TransactionContextInterface, from, to string, amount *big.Int) error
	BalanceOf(ctx TransactionContextInterface, account string) (*big.Int, error)
}

// StabilityNotifier is the best-effort post-purchase notification to the
// stability fund. Callers must treat a failure as observability, never as a
// reason to abort the purchase.
//
//go:generate counterfeiter -o ../mocks/stabilitynotifier.go -fake-name StabilityNotifier . StabilityNotifier
type StabilityNotifier interface {
	NotifyPurchase(ctx TransactionContextInterface, buyer string, usdAmount, tokenAmount *big.Int) error
}

// invokeContract resolves a logical contract name and invokes one of its
// functions on the same channel.
func invokeContract(ctx TransactionContextInterface, name, function string, args ...string) ([]byte, error) {
	address, err := ResolveContract(ctx, name)
	if err != nil {
		return nil, err
	}

	invokeArgs := make([][]byte, 0, len(args)+1)
	invokeArgs = append(invokeArgs, []byte(function))
	for _, arg := range args {
		invokeArgs = append(invokeArgs, []byte(arg))
	}

	response := ctx.InvokeChaincode(address, invokeArgs, "")
	if response.Status != http.StatusOK {
		return nil, fmt.Errorf("%s.%s failed with status %d: %s", name, function, response.Status, response.Message)
	}

	return response.Payload, nil
}

func invokeForAmount(ctx TransactionContextInterface, name, function string, args ...string) (*big.Int, error) {
	payload, err := invokeContract(ctx, name, function, args...)
	if err != nil {
		return nil, err
	}

	return ParseAmount(name+"."+function, string(payload))
}

// OracleClient is the chaincode-backed PriceOracle.
type OracleClient struct{}

func NewOracleClient() *OracleClient {
	return &OracleClient{}
}

func (o *OracleClient) IsTokenSupported(ctx TransactionContextInterface, token string) (bool, error) {
	payload, err := invokeContract(ctx, PriceOracleContract, "IsTokenSupported", token)
	if err != nil {
		return false, err
	}

	return string(payload) == "true", nil
}

func (o *OracleClient) ConvertTokenToUSD(ctx TransactionContextInterface, token string, amount *big.Int) (*big.Int, error) {
	return invokeForAmount(ctx, PriceOracleContract, "ConvertTokenToUsd", token, amount.String())
}

func (o *OracleClient) ConvertUSDToToken(ctx TransactionContextInterface, token string, usdAmount *big.Int) (*big.Int, error) {
	return invokeForAmount(ctx, PriceOracleContract, "ConvertUsdToToken", token, usdAmount.String())
}

func (o *OracleClient) SupportedPaymentTokens(ctx TransactionContextInterface) ([]string, error) {
	payload, err := invokeContract(ctx, PriceOracleContract, "GetSupportedPaymentTokens")
	if err != nil {
		return nil, err
	}

	var tokens []string
	if err := json.Unmarshal(payload, &tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal supported payment tokens: %v", err)
	}

	return tokens, nil
}

// TeachTokenClient is the chaincode-backed TokenClient for the TEACH token.
type TeachTokenClient struct{}

func NewTeachTokenClient() *TeachTokenClient {
	return &TeachTokenClient{}
}

func (t *TeachTokenClient) Transfer(ctx TransactionContextInterface, to string, amount *big.Int) error {
	_, err := invokeContract(ctx, TeachTokenContract, "Transfer", to, amount.String())
	return err
}

func (t *TeachTokenClient) TransferFrom(ctx TransactionContextInterface, from, to string, amount *big.Int) error {
	_, err := invokeContract(ctx, TeachTokenContract, "TransferFrom", from, to, amount.String())
	return err
}

func (t *TeachTokenClient) BalanceOf(ctx TransactionContextInterface, account string) (*big.Int, error) {
	return invokeForAmount(ctx, TeachTokenContract, "BalanceOf", account)
}

// PaymentMover moves an arbitrary supported payment token, addressed by its
// own contract address instead of a registry name.
//
//go:generate counterfeiter -o ../mocks/paymentmover.go -fake-name PaymentMover . PaymentMover
type PaymentMover interface {
	TransferFrom(ctx TransactionContextInterface, token, from, to string, amount *big.Int) error
	Transfer(ctx TransactionContextInterface, token, to string, amount *big.Int) error
}

// PaymentTokenClient is the chaincode-backed PaymentMover.
type PaymentTokenClient struct{}

func NewPaymentTokenClient() *PaymentTokenClient {
	return &PaymentTokenClient{}
}

// TransferFrom pulls a payment from the buyer into the treasury.
func (p *PaymentTokenClient) TransferFrom(ctx TransactionContextInterface, token, from, to string, amount *big.Int) error {
	invokeArgs := [][]byte{[]byte("TransferFrom"), []byte(from), []byte(to), []byte(amount.String())}

	response := ctx.InvokeChaincode(token, invokeArgs, "")
	if response.Status != http.StatusOK {
		return fmt.Errorf("payment transfer on %s failed with status %d: %s", token, response.Status, response.Message)
	}

	return nil
}

// Transfer pays out of the calling contract's balance, used for refunds.
func (p *PaymentTokenClient) Transfer(ctx TransactionContextInterface, token, to string, amount *big.Int) error {
	invokeArgs := [][]byte{[]byte("Transfer"), []byte(to), []byte(amount.String())}

	response := ctx.InvokeChaincode(token, invokeArgs, "")
	if response.Status != http.StatusOK {
		return fmt.Errorf("payment refund on %s failed with status %d: %s", token, response.Status, response.Message)
	}

	return nil
}

// StabilityClient is the chaincode-backed StabilityNotifier.
type StabilityClient struct{}

func NewStabilityClient() *StabilityClient {
	return &StabilityClient{}
}

func (s *StabilityClient) NotifyPurchase(ctx TransactionContextInterface, buyer string, usdAmount, tokenAmount *big.Int) error {
	_, err := invokeContract(ctx, StabilityContract, "RecordPurchase", buyer, usdAmount.String(), tokenAmount.String())
	return err
}
