package jsonrpc

import (
	"encoding/json"
	"testing"

	"github.com/tj/assert"
)

func TestNewRequestStampsVersion(t *testing.T) {
	req := NewRequest(Int64ID(1), "math/add", json.RawMessage(`{"a":1,"b":2}`))
	assert.Equal(t, Version, req.JSONRPC)
	assert.Equal(t, "math/add", req.Method)
	assert.Equal(t, Int64ID(1), req.ID)
	assert.False(t, req.IsNotification())

	assert.True(t, NewRequest(NullID(), "math/add", json.RawMessage(`{}`)).IsNotification())
}

func TestRequestWireOrder(t *testing.T) {
	req := NewRequest(StringID("r-1"), "math/add", json.RawMessage(`{"a":1,"b":2}`))

	buf, err := json.Marshal(req)
	assert.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","method":"math/add","params":{"a":1,"b":2},"id":"r-1"}`, string(buf))
}

func TestRawRequestDecodeDefaults(t *testing.T) {
	var req RawRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","method":"ping"}`), &req))

	// Absent members keep their zero values: a null id and nil params.
	assert.True(t, req.ID.IsNull())
	assert.Nil(t, req.Params)
}

func TestRequestDecodeEncodeIdempotence(t *testing.T) {
	text := `{"jsonrpc":"2.0","method":"math/add","params":{"a":1,"b":2},"id":"r-9"}`

	var first RawRequest
	assert.NoError(t, json.Unmarshal([]byte(text), &first))

	buf, err := json.Marshal(first)
	assert.NoError(t, err)

	var second RawRequest
	assert.NoError(t, json.Unmarshal(buf, &second))
	assert.Equal(t, first, second)
}
