package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosmosMsgCustomSerialization(t *testing.T) {
	msg := CosmosMsg{Custom: json.RawMessage(`{"assigned_msg":1,"supply":{}}`)}
	bz, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Equal(t, `{"custom":{"assigned_msg":1,"supply":{}}}`, string(bz))

	var parsed CosmosMsg
	require.NoError(t, json.Unmarshal(bz, &parsed))
	assert.JSONEq(t, string(msg.Custom), string(parsed.Custom))
	assert.Nil(t, parsed.Bank)
}

func TestCosmosMsgRejectsTwoArms(t *testing.T) {
	document := []byte(`{"custom":{},"bank":{"send":{"to_address":"umee1x","amount":[]}}}`)
	var msg CosmosMsg
	err := json.Unmarshal(document, &msg)
	require.Error(t, err)

	document = []byte(`{"bank":{"send":{"to_address":"umee1x","amount":[{"denom":"uumee","amount":"5"}]}},"custom":null}`)
	require.NoError(t, json.Unmarshal(document, &msg))
	require.NotNil(t, msg.Bank)
	assert.Equal(t, "umee1x", msg.Bank.Send.ToAddress)
	assert.Nil(t, msg.Custom)
}

func TestReplyOn(t *testing.T) {
	var sub SubMsg
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"msg":{"custom":{}},"reply_on":"never"}`), &sub))
	assert.Equal(t, ReplyNever, sub.ReplyOn)

	err := json.Unmarshal([]byte(`{"id":1,"msg":{"custom":{}},"reply_on":"always"}`), &sub)
	require.Error(t, err)
}

func TestResponseBuilder(t *testing.T) {
	res := NewResponse().
		AddAttribute("method", "instantiate").
		AddMessage(CosmosMsg{Custom: json.RawMessage(`{}`)})

	require.Len(t, res.Messages, 1)
	assert.Equal(t, ReplyNever, res.Messages[0].ReplyOn)
	assert.Equal(t, Array[EventAttribute]{{Key: "method", Value: "instantiate"}}, res.Attributes)

	bz, err := json.Marshal(res.Messages[0])
	require.NoError(t, err)
	assert.Equal(t, `{"id":0,"msg":{"custom":{}},"reply_on":"never"}`, string(bz))
}
