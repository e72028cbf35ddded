package messageservice

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	//go:embed abi/l1messageservice.json
	l1MessageServiceJSON string
	//go:embed abi/l2messageservice.json
	l2MessageServiceJSON string

	// L1MessageServiceABI is the interface of the rollup contract on L1
	L1MessageServiceABI = mustParseABI(l1MessageServiceJSON)
	// L2MessageServiceABI is the interface of the message service on L2
	L2MessageServiceABI = mustParseABI(l2MessageServiceJSON)

	messageSentSignature              = crypto.Keccak256Hash([]byte("MessageSent(address,address,uint256,uint256,uint256,bytes,bytes32)"))
	messageClaimedSignature           = crypto.Keccak256Hash([]byte("MessageClaimed(bytes32)"))
	l2MerkleRootAddedSignature        = crypto.Keccak256Hash([]byte("L2MerkleRootAdded(bytes32,uint256)"))
	l2MessagingBlockAnchoredSignature = crypto.Keccak256Hash([]byte("L2MessagingBlockAnchored(uint256)"))
)

const rateLimitExceededError = "RateLimitExceeded"

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader([]byte(def)))
	if err != nil {
		panic(fmt.Sprintf("invalid message service abi: %v", err))
	}
	return parsed
}

// decodeErrorName returns the name of the custom error encoded in revert data
func decodeErrorName(contractABI abi.ABI, data []byte) (string, bool) {
	if len(data) < 4 {
		return "", false
	}
	for name, e := range contractABI.Errors {
		if bytes.Equal(e.ID[:4], data[:4]) {
			return name, true
		}
	}
	return "", false
}
