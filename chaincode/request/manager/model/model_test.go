
//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
/*
版权所有IBM公司。保留所有权利。

SPDX许可证标识符：Apache-2.0
**/


package model

import (
	"encoding/json"
	"testing"

	"github.com/carbonaccounting/utility-emissions-channel/common/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenParams struct {
	TokenId string `json:"tokenId"`
	PartyId string `json:"partyId"`
}

func TestRequestManagerInputFromDataChaincodeInput(t *testing.T) {
	params, _ := json.Marshal(tokenParams{TokenId: "tokenId-1", PartyId: "partyId-1"})
	raw, err := json.Marshal(DataChaincodeInput{
		Keys:   []string{"uuid-1", "uuid-2"},
		Params: params,
	})
	require.NoError(t, err)

	var in RequestManagerInput
	require.NoError(t, json.Unmarshal(raw, &in))
	assert.Equal(t, []string{"uuid-1", "uuid-2"}, in.Keys)

	var p tokenParams
	require.NoError(t, in.DecodeParams(&p))
	assert.Equal(t, "tokenId-1", p.TokenId)
	assert.Equal(t, "partyId-1", p.PartyId)
}

func TestDecodeParams(t *testing.T) {
	var p tokenParams
	in := RequestManagerInput{}
	assert.NoError(t, in.DecodeParams(&p))
	assert.Equal(t, tokenParams{}, p)

	in.Params = "%%%"
	assert.Error(t, in.DecodeParams(&p))

	in.Params = "bm90IGpzb24=" // "not json"
	assert.Error(t, in.DecodeParams(&p))
}

func TestRequestManagerOutputPresence(t *testing.T) {
	out := RequestManagerOutput{}
	assert.False(t, out.HasKeys())
	assert.False(t, out.HasOutputToClient())
	assert.False(t, out.HasOutputToStore())

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))

	out = RequestManagerOutput{
		Keys:           []string{"uuid-1"},
		OutputToClient: util.ToBytes("hi"),
	}
	assert.True(t, out.HasKeys())
	assert.True(t, out.HasOutputToClient())
	assert.False(t, out.HasOutputToStore())

	raw, err = json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"keys":["uuid-1"],"outputToClient":[104,105]}`, string(raw))
}

func TestParseDataChaincodeResponseRecords(t *testing.T) {
	raw, _ := json.Marshal(DataChaincodeOutput{
		Keys: []string{"uuid-1"},
		Output: []DataChaincodeData{
			{Name: "OUTPUT", Data: []byte("client")},
			{Name: "OUTPUT", Data: []byte("second"), ToInclude: true},
			{Name: "validUUIDs", Data: []byte(`["uuid-1"]`), ToInclude: true},
			{Name: "skipped", Data: []byte("x")},
		},
	})

	result, err := ParseDataChaincodeResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-1"}, result.Keys)
	assert.Equal(t, []byte("client"), result.OutputToClient)
	assert.Equal(t, map[string][]byte{
		"OUTPUT":     []byte("second"),
		"validUUIDs": []byte(`["uuid-1"]`),
	}, result.OutputToStore)
}

func TestParseDataChaincodeResponseRequestManagerOutput(t *testing.T) {
	raw, _ := json.Marshal(RequestManagerOutput{
		Keys:           []string{"uuid-1", "uuid-2"},
		OutputToClient: util.ToBytes(`[{"UUID":"uuid-1"}]`),
		OutputToStore: map[string]util.ByteArray{
			"validUUIDs": util.ToBytes(`["uuid-1","uuid-2"]`),
		},
	})

	result, err := ParseDataChaincodeResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-1", "uuid-2"}, result.Keys)
	assert.Equal(t, []byte(`[{"UUID":"uuid-1"}]`), result.OutputToClient)
	assert.Equal(t, []byte(`["uuid-1","uuid-2"]`), result.OutputToStore["validUUIDs"])
}

func TestParseDataChaincodeResponseEmpty(t *testing.T) {
	result, err := ParseDataChaincodeResponse([]byte(`{"keys":["a"]}`))
	require.NoError(t, err)
	assert.Nil(t, result.OutputToClient)
	assert.Empty(t, result.OutputToStore)

	_, err = ParseDataChaincodeResponse([]byte(`not json`))
	assert.Error(t, err)
}

func TestRequestCallerType(t *testing.T) {
	assert.True(t, RequestCallerTypeCLIENT.IsValid())
	assert.True(t, RequestCallerTypeMSP.IsValid())
	assert.False(t, RequestCallerType("").IsValid())
	assert.False(t, RequestCallerType("client").IsValid())
}
