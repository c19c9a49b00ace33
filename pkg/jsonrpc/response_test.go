package jsonrpc

import (
	"encoding/json"
	"testing"

	"github.com/tj/assert"
)

func TestNewResponse(t *testing.T) {
	resp := NewResponse(Int64ID(1), json.RawMessage(`{"sum":3}`))
	assert.Equal(t, Version, resp.JSONRPC)
	assert.NotNil(t, resp.Result)
	assert.Nil(t, resp.Error)
	assert.False(t, resp.IsError())
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(Int64ID(1), NewError(MethodNotFound))
	assert.Nil(t, resp.Result)
	assert.True(t, resp.IsError())
	assert.Equal(t, MethodNotFound, resp.Error.Code)
}

func TestResponseWireOrder(t *testing.T) {
	resp := NewResponse(Int64ID(1), json.RawMessage(`{"sum":3}`))

	buf, err := json.Marshal(resp)
	assert.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","result":{"sum":3},"id":1}`, string(buf))

	buf, err = json.Marshal(NewErrorResponse(NullID(), NewError(InvalidRequest)))
	assert.NoError(t, err)

	// The id member is always emitted, even when it is null.
	assert.Equal(t, `{"jsonrpc":"2.0","error":{"code":-32600,"message":"Invalid request"},"id":null}`, string(buf))
}

func TestResponseNullResultCountsAsMissing(t *testing.T) {
	var resp RawResponse
	assert.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","result":null,"id":1}`), &resp))
	assert.Nil(t, resp.Result)
	assert.Nil(t, resp.Error)
}

func TestResponseDecodeEncodeIdempotence(t *testing.T) {
	text := `{"jsonrpc":"2.0","error":{"code":-32000,"message":"Server error","data":"db down"},"id":7}`

	var first RawResponse
	assert.NoError(t, json.Unmarshal([]byte(text), &first))

	buf, err := json.Marshal(first)
	assert.NoError(t, err)

	var second RawResponse
	assert.NoError(t, json.Unmarshal(buf, &second))
	assert.Equal(t, first, second)
}
