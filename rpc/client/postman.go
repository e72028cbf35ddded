package client

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/postman/rpc/types"
	"github.com/ethereum/go-ethereum/common"
)

// GetMessageByHash returns a stored message
func (c *Client) GetMessageByHash(hash common.Hash) (*types.Message, error) {
	response, err := rpc.JSONRPCCall(c.url, "postman_getMessageByHash", hash)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result types.Message
	return &result, json.Unmarshal(response.Result, &result)
}

// GetMessagesByStatus returns the oldest messages of direction in status
func (c *Client) GetMessagesByStatus(direction, status string, limit uint) ([]types.Message, error) {
	response, err := rpc.JSONRPCCall(c.url, "postman_getMessagesByStatus", direction, status, limit)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result []types.Message
	return result, json.Unmarshal(response.Result, &result)
}

// GetMessageProof returns the proof needed to claim a L2 to L1 message
func (c *Client) GetMessageProof(hash common.Hash) (*types.MessageProof, error) {
	response, err := rpc.JSONRPCCall(c.url, "postman_getMessageProof", hash)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result types.MessageProof
	return &result, json.Unmarshal(response.Result, &result)
}
