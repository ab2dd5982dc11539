package platform_test

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/stretchr/testify/require"

	"github.com/buckhoff/TokenContract-sub001/mocks"
	"github.com/buckhoff/TokenContract-sub001/platform"
)

const (
	PlatformFoundation = "4c7b9f20d1e8a35b6c04f88a2e91d37c5a10be64"
	Buyer              = "2da4c4908a393a387b728206b18b16e3c696a085"
)

func SetUserID(transactionContext *mocks.TransactionContext, userID string) {
	completeId := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeId))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	transactionContext.GetClientIdentityReturns(clientIdentity)
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	transactionContext := &mocks.TransactionContext{}
	SetUserID(transactionContext, Buyer)

	userID, err := platform.GetUserID(transactionContext)
	require.NoError(t, err)
	require.Equal(t, Buyer, userID)
}

func TestGetUserIDErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupMock func(*mocks.TransactionContext)
	}{
		{
			name: "GetID fails",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns("", errors.New("failed to get ID"))
				ctx.GetClientIdentityReturns(clientIdentity)
			},
		},
		{
			name: "not base64",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns("%%%not-base64%%%", nil)
				ctx.GetClientIdentityReturns(clientIdentity)
			},
		},
		{
			name: "no CN attribute",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				b64ID := base64.StdEncoding.EncodeToString([]byte("x509::O=Organization,C=Country"))
				clientIdentity.GetIDReturns(b64ID, nil)
				ctx.GetClientIdentityReturns(clientIdentity)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transactionContext := &mocks.TransactionContext{}
			tt.setupMock(transactionContext)

			_, err := platform.GetUserID(transactionContext)
			require.Error(t, err)
		})
	}
}

func TestIsSignerFoundation(t *testing.T) {
	t.Parallel()

	transactionContext := &mocks.TransactionContext{}
	SetUserID(transactionContext, PlatformFoundation)
	require.NoError(t, platform.IsSignerFoundation(transactionContext))

	SetUserID(transactionContext, Buyer)
	err := platform.IsSignerFoundation(transactionContext)
	require.Error(t, err)
	require.ErrorIs(t, err, platform.ErrSignerNotFoundation)

	require.True(t, platform.IsFoundationAddress(PlatformFoundation))
	require.False(t, platform.IsFoundationAddress(Buyer))
	require.False(t, platform.IsFoundationAddress(""))
}

func TestAddressValidation(t *testing.T) {
	t.Parallel()

	require.True(t, platform.IsUserAddressValid(Buyer))
	require.True(t, platform.IsUserAddressValid(PlatformFoundation))
	require.False(t, platform.IsUserAddressValid("0x"+Buyer))
	require.False(t, platform.IsUserAddressValid("2da4c4908a393a387b728206b18b16e3c696a08"))
	require.False(t, platform.IsUserAddressValid(""))

	require.True(t, platform.IsContractAddressValid("klp-6b616c70746f6b656e-cc"))
	require.False(t, platform.IsContractAddressValid("klp--cc"))
	require.False(t, platform.IsContractAddressValid(Buyer))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	amount, err := platform.ParseAmount("test", "1000000000000000000")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", amount.String())

	amount, err = platform.ParseAmount("test", "0")
	require.NoError(t, err)
	require.Equal(t, int64(0), amount.Int64())

	for _, bad := range []string{"", "abc", "-5", "1.5", "1e18"} {
		_, err = platform.ParseAmount("test", bad)
		require.Error(t, err, "value %q should be rejected", bad)
		require.ErrorIs(t, err, platform.ErrInvalidAmountFormat)
	}
}

func TestConverters(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1000000000000000000", platform.ConvertTeachToWei(1))
	require.Equal(t, "250000000000000000000000000", platform.ConvertTeachToWei(250000000))
	require.Equal(t, "1000000", platform.ConvertUsdToMicro(1))
	require.Equal(t, "50000000000", platform.ConvertUsdToMicro(50000))
}

func TestTxTimestamp(t *testing.T) {
	t.Parallel()

	transactionContext := &mocks.TransactionContext{}
	transactionContext.GetTxTimestampReturns(&timestamp.Timestamp{Seconds: 1700000000}, nil)

	now, err := platform.TxTimestamp(transactionContext)
	require.NoError(t, err)
	require.Equal(t, uint64(1700000000), now)

	transactionContext.GetTxTimestampReturns(nil, errors.New("no timestamp"))
	_, err = platform.TxTimestamp(transactionContext)
	require.Error(t, err)
}

func TestResolveContract(t *testing.T) {
	t.Parallel()

	worldState := map[string][]byte{}
	transactionContext := &mocks.TransactionContext{}
	transactionContext.GetStateStub = func(key string) ([]byte, error) {
		return worldState[key], nil
	}
	transactionContext.PutStateWithoutKYCStub = func(key string, value []byte) error {
		worldState[key] = value
		return nil
	}

	// Static fallback when nothing is registered.
	address, err := platform.ResolveContract(transactionContext, platform.TeachTokenContract)
	require.NoError(t, err)
	require.Equal(t, "klp-6b616c70746f6b656e-cc", address)

	// Registry entries win over the fallback.
	SetUserID(transactionContext, PlatformFoundation)
	require.NoError(t, platform.SetRegistryEntry(transactionContext, platform.TeachTokenContract, "klp-aabbcc-cc"))

	address, err = platform.ResolveContract(transactionContext, platform.TeachTokenContract)
	require.NoError(t, err)
	require.Equal(t, "klp-aabbcc-cc", address)

	_, err = platform.ResolveContract(transactionContext, "NoSuchContract")
	require.Error(t, err)
	require.ErrorIs(t, err, platform.ErrContractNotResolved)
}

func TestSetRegistryEntryRequiresFoundation(t *testing.T) {
	t.Parallel()

	transactionContext := &mocks.TransactionContext{}
	SetUserID(transactionContext, Buyer)

	err := platform.SetRegistryEntry(transactionContext, platform.TeachTokenContract, "klp-aabbcc-cc")
	require.Error(t, err)
}
