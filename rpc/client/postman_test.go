package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xPolygon/postman/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type jsonRPCRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newTestServer answers every call with the result of handle, or with an error object when handle fails
func newTestServer(t *testing.T, handle func(req jsonRPCRequest) (interface{}, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req jsonRPCRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		res := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		result, errMsg := handle(req)
		if errMsg != "" {
			res["error"] = map[string]interface{}{"code": -32000, "message": errMsg}
		} else {
			res["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(res))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGetMessageByHash(t *testing.T) {
	hash := common.HexToHash("0xabc1")
	srv := newTestServer(t, func(req jsonRPCRequest) (interface{}, string) {
		require.Equal(t, "postman_getMessageByHash", req.Method)
		require.Len(t, req.Params, 1)
		var got common.Hash
		require.NoError(t, json.Unmarshal(req.Params[0], &got))
		require.Equal(t, hash, got)
		return types.Message{MessageHash: hash, Direction: "L1_TO_L2", Status: "SENT"}, ""
	})

	msg, err := NewClient(srv.URL).GetMessageByHash(hash)
	require.NoError(t, err)
	require.Equal(t, hash, msg.MessageHash)
	require.Equal(t, "SENT", msg.Status)
}

func TestClientGetMessagesByStatus(t *testing.T) {
	srv := newTestServer(t, func(req jsonRPCRequest) (interface{}, string) {
		require.Equal(t, "postman_getMessagesByStatus", req.Method)
		require.Len(t, req.Params, 3)
		require.JSONEq(t, `"L2_TO_L1"`, string(req.Params[0]))
		require.JSONEq(t, `"ANCHORED"`, string(req.Params[1]))
		require.JSONEq(t, `10`, string(req.Params[2]))
		return []types.Message{{Status: "ANCHORED"}, {Status: "ANCHORED"}}, ""
	})

	msgs, err := NewClient(srv.URL).GetMessagesByStatus("L2_TO_L1", "ANCHORED", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
}

func TestClientGetMessageProof(t *testing.T) {
	hash := common.HexToHash("0xabc1")
	expected := types.MessageProof{
		MessageHash: hash,
		Proof:       []common.Hash{common.HexToHash("0x01")},
		Root:        common.HexToHash("0x02"),
		LeafIndex:   3,
	}
	srv := newTestServer(t, func(req jsonRPCRequest) (interface{}, string) {
		require.Equal(t, "postman_getMessageProof", req.Method)
		return expected, ""
	})

	proof, err := NewClient(srv.URL).GetMessageProof(hash)
	require.NoError(t, err)
	require.Equal(t, expected, *proof)
}

func TestClientRPCError(t *testing.T) {
	srv := newTestServer(t, func(req jsonRPCRequest) (interface{}, string) {
		return nil, "message not found"
	})

	factory := &ClientFactory{}
	_, err := factory.NewClient(srv.URL).GetMessageByHash(common.HexToHash("0x01"))
	require.ErrorContains(t, err, "message not found")
}
