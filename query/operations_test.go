package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationInputType(t *testing.T) {
	doc := testDocument(t)

	def := doc.OperationInputType("CreateUser")
	require.NotNil(t, def)
	assert.Equal(t, "CreateUserRequest", def.Name)
	assert.Equal(t, []string{"user", "address"}, def.Order)
}

func TestOperationOutputType(t *testing.T) {
	doc := testDocument(t)

	def := doc.OperationOutputType("CreateUser")
	require.NotNil(t, def)
	assert.Equal(t, "CreateUserResponse", def.Name)
}

func TestOperationInputType_SuffixRetry(t *testing.T) {
	doc := testDocument(t)

	// DeleteUser declares input "User"; only UserType exists.
	def := doc.OperationInputType("DeleteUser")
	require.NotNil(t, def)
	assert.Equal(t, "UserType", def.Name)
}

func TestOperationBinding_GracefulMisses(t *testing.T) {
	doc := testDocument(t)

	assert.Nil(t, doc.OperationInputType("NoSuchOperation"))
	assert.Nil(t, doc.OperationOutputType("NoSuchOperation"))
	assert.Nil(t, doc.OperationOutputType("DeleteUser"), "operation without output type")
	assert.Nil(t, doc.OperationInputParameters("NoSuchOperation"))
}

func TestOperationInputParameters(t *testing.T) {
	doc := testDocument(t)

	params := doc.OperationInputParameters("CreateUser")
	assert.Equal(t, []string{"request", "trace"}, params)
}

func TestSOAPAction(t *testing.T) {
	doc := testDocument(t)

	action, ok := doc.SOAPAction("CreateUser")
	assert.True(t, ok)
	assert.Equal(t, "urn:example:createUser", action)

	action, ok = doc.SOAPAction("NoSuchOperation")
	assert.False(t, ok)
	assert.Empty(t, action)

	// A declared operation with an empty action still reports ok.
	action, ok = doc.SOAPAction("DeleteUser")
	assert.True(t, ok)
	assert.Empty(t, action)
}
