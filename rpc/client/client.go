package client

import (
	"github.com/0xPolygon/postman/rpc/types"
	"github.com/ethereum/go-ethereum/common"
)

// ClientInterface is the interface that defines the implementation of all the endpoints
type ClientInterface interface {
	GetMessageByHash(hash common.Hash) (*types.Message, error)
	GetMessagesByStatus(direction, status string, limit uint) ([]types.Message, error)
	GetMessageProof(hash common.Hash) (*types.MessageProof, error)
}

// ClientFactoryInterface interface for the client factory
type ClientFactoryInterface interface {
	NewClient(url string) ClientInterface
}

// ClientFactory builds clients of the postman RPC
type ClientFactory struct{}

// NewClient returns an implementation of the postman RPC client
func (f *ClientFactory) NewClient(url string) ClientInterface {
	return NewClient(url)
}

// Client wraps all the available endpoints of the postman RPC server
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}
