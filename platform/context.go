package platform

import (
	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// TransactionContextInterface is the slice of the Kalp SDK transaction
// context the platform contracts actually use. Keeping the surface narrow
// lets every capability the contracts consume be faked in tests.
//
//go:generate counterfeiter -o ../mocks/transactioncontext.go -fake-name TransactionContext . TransactionContextInterface
type TransactionContextInterface interface {
	GetState(key string) ([]byte, error)
	PutStateWithoutKYC(key string, value []byte) error
	SetEvent(name string, payload []byte) error
	GetClientIdentity() cid.ClientIdentity
	GetTxTimestamp() (*timestamp.Timestamp, error)
	InvokeChaincode(chaincodeName string, args [][]byte, channel string) peer.Response
}
