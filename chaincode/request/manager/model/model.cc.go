
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
	"encoding/base64"
	"encoding/json"

	"github.com/carbonaccounting/utility-emissions-channel/common/util"
	"github.com/pkg/errors"
)

//model.cc.go：请求管理器与数据链码之间交换的所有输入/输出

//OutputToClientName：名称为OUTPUT的DataChaincodeData直接发送给客户端
const OutputToClientName = "OUTPUT"

//DataChaincodeInput：锁定/解锁前发送给数据链码的输入
//invokeChaincode(args)，
//args[0]：要调用的方法
//args[1]：json.Marshal(DataChaincodeInput)
type DataChaincodeInput struct {
//Keys：锁定/解锁前需要检查的键
	Keys []string `json:"keys"`
//Params：链码逻辑特定
	Params []byte `json:"params"`
}

//DataChaincodeOutput：数据链码执行方法后发送给请求管理器的输出
type DataChaincodeOutput struct {
//Keys：请求管理器需要锁定或解锁的键
	Keys []string `json:"keys"`

	Output []DataChaincodeData `json:"output"`
}

//DataChaincodeData：调用数据链码时产生的输出
type DataChaincodeData struct {
//Name：StageData的Outputs映射的键
//如果Name = "OUTPUT"，请求管理器将数据直接发送给客户端
	Name string `json:"name"`

//Data：StageData的Outputs映射的值
	Data []byte `json:"data"`

//ToInclude：是否将该输出包含在阶段数据中
	ToInclude bool `json:"toInclude"`
}

//RequestManagerInput：数据链码方法从请求管理器收到的输入。
//与DataChaincodeInput的线上格式相同，Params保持为文本
//（Go把[]byte写成base64文本）。
type RequestManagerInput struct {
	Keys   []string `json:"keys"`
	Params string   `json:"params"`
}

//DecodeParams将Params按base64解码，然后按JSON解码到v。
//空Params不做任何事。
func (in *RequestManagerInput) DecodeParams(v interface{}) error {
	if in.Params == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(in.Params)
	if err != nil {
		return errors.Wrap(err, "params are not base64 encoded")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(err, "invalid params")
	}
	return nil
}

//RequestManagerOutput：数据链码方法返回给请求管理器的输出。
//每个字段都是可选的，nil表示不存在。OutputToClient和OutputToStore
//之间没有约束。
type RequestManagerOutput struct {
//Keys：请求管理器需要锁定或解锁的键
	Keys []string `json:"keys,omitempty"`
//OutputToClient：直接发送给客户端
	OutputToClient util.ByteArray `json:"outputToClient,omitempty"`
//OutputToStore：存储到阶段数据中
	OutputToStore map[string]util.ByteArray `json:"outputToStore,omitempty"`
}

func (o *RequestManagerOutput) HasKeys() bool           { return o.Keys != nil }
func (o *RequestManagerOutput) HasOutputToClient() bool { return o.OutputToClient != nil }
func (o *RequestManagerOutput) HasOutputToStore() bool  { return o.OutputToStore != nil }

//DataChaincodeResult：规范化后的数据链码响应
type DataChaincodeResult struct {
	Keys           []string
	OutputToStore  map[string][]byte
	OutputToClient []byte
}

type dataChaincodeResponse struct {
	Keys           []string                  `json:"keys"`
	Output         []DataChaincodeData       `json:"output"`
	OutputToClient util.ByteArray            `json:"outputToClient"`
	OutputToStore  map[string]util.ByteArray `json:"outputToStore"`
}

//ParseDataChaincodeResponse解析两种格式之一的数据链码响应：
//DataChaincodeOutput（output记录）或RequestManagerOutput。
//
//对于output记录，第一个名为OUTPUT的记录发送给客户端，其他
//ToInclude为true的记录被存储。
func ParseDataChaincodeResponse(raw []byte) (*DataChaincodeResult, error) {
	var resp dataChaincodeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.Wrap(err, "invalid data chaincode output")
	}

	result := &DataChaincodeResult{
		Keys:          resp.Keys,
		OutputToStore: make(map[string][]byte),
	}
	for _, output := range resp.Output {
		if output.Name == OutputToClientName && result.OutputToClient == nil {
			result.OutputToClient = output.Data
		} else if output.ToInclude {
			result.OutputToStore[output.Name] = output.Data
		}
	}
	if result.OutputToClient == nil && resp.OutputToClient != nil {
		result.OutputToClient = []byte(resp.OutputToClient)
	}
	for k, v := range resp.OutputToStore {
		if _, ok := result.OutputToStore[k]; !ok {
			result.OutputToStore[k] = []byte(v)
		}
	}
	return result, nil
}
