package jsonrpc

import (
	"testing"

	"github.com/tj/assert"
)

func TestMethodDescriptorsAreSharedByName(t *testing.T) {
	method := NewMethod[addParams, addResult]("math/add")
	assert.Equal(t, "math/add", method.Name)

	// Server side and client side report the descriptor's wire name.
	bound := Handle(method, func(params addParams) (addResult, *Error) {
		return addResult{}, nil
	})
	assert.Equal(t, "math/add", bound.Name())
	assert.Equal(t, "math/add", NewCall(method).Name())
}

func TestNotImplementedKeepsName(t *testing.T) {
	bound := NotImplemented(NewMethod[addParams, addResult]("math/later"))
	assert.Equal(t, "math/later", bound.Name())
}
