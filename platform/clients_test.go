package platform_test

import (
	"testing"

	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/require"

	"github.com/buckhoff/TokenContract-sub001/mocks"
	"github.com/buckhoff/TokenContract-sub001/platform"
)

func TestOracleSupportedPaymentTokens(t *testing.T) {
	t.Parallel()

	transactionContext := &mocks.TransactionContext{}
	transactionContext.InvokeChaincodeReturns(peer.Response{
		Status:  200,
		Payload: []byte(`["klp-a1b2c3-cc","klp-d4e5f6-cc"]`),
	})

	oracle := platform.NewOracleClient()
	tokens, err := oracle.SupportedPaymentTokens(transactionContext)
	require.NoError(t, err)
	require.Equal(t, []string{"klp-a1b2c3-cc", "klp-d4e5f6-cc"}, tokens)

	// Resolution falls back to the static oracle address.
	address, invokeArgs, channel := transactionContext.InvokeChaincodeArgsForCall(0)
	require.Equal(t, "klp-70726963656f7261636c65-cc", address)
	require.Equal(t, [][]byte{[]byte("GetSupportedPaymentTokens")}, invokeArgs)
	require.Equal(t, "", channel)

	transactionContext.InvokeChaincodeReturns(peer.Response{
		Status:  200,
		Payload: []byte("not a json list"),
	})
	_, err = oracle.SupportedPaymentTokens(transactionContext)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to unmarshal supported payment tokens")

	transactionContext.InvokeChaincodeReturns(peer.Response{
		Status:  500,
		Message: "oracle unavailable",
	})
	_, err = oracle.SupportedPaymentTokens(transactionContext)
	require.Error(t, err)
	require.Contains(t, err.Error(), "oracle unavailable")
}
