
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


//Package model包含请求管理器链码的类型定义：
//存储在请求管理器世界状态中的数据，
//请求管理器的输入/输出，
//以及与数据链码之间的输入/输出。
package model

//RequestState是请求的生命周期状态
type RequestState string

const (
	RequestStatePROCESSING RequestState = "PROCESSING"
	RequestStateFINISHED   RequestState = "FINISHED"
)

//RequestCallerType决定谁可以更新请求
type RequestCallerType string

const (
//CLIENT：只有创建请求的客户端（MSP ID + 证书CN）
	RequestCallerTypeCLIENT RequestCallerType = "CLIENT"
//MSP：创建请求的组织中的任何身份
	RequestCallerTypeMSP RequestCallerType = "MSP"
)

//IsValid报告调用者类型是否为已知值
func (t RequestCallerType) IsValid() bool {
	return t == RequestCallerTypeCLIENT || t == RequestCallerTypeMSP
}

//DataLock：请求管理器链码上存储的数据锁
type DataLock struct {
//RequestId：锁定数据的请求
	RequestId string `json:"requestId"`
//Chaincode：存储数据的链码名称
	Chaincode string `json:"chaincode"`
//Key：给定链码中被锁定数据的键
	Key string `json:"key"`
}

//Request：请求管理器世界状态中按请求ID存储的请求
type Request struct {
	ID         string            `json:"id"`
	State      RequestState      `json:"state"`
	CallerType RequestCallerType `json:"callerType"`
	CallerID   string            `json:"callerId"`
	CreatedAt  int64             `json:"createdAt"`

	CurrentStageName  string `json:"currentStageName"`
	CurrentStageState string `json:"currentStageState"`

//StageData：按阶段名称
	StageData map[string]*StageData `json:"stageData"`
}

//StageData：一个阶段产生的数据
type StageData struct {
//Outputs：数据链码名称 -> 输出名称 -> 数据
	Outputs map[string]map[string][]byte `json:"outputs"`
//BlockchainData：在其他区块链上创建的数据
	BlockchainData []BlockchainData `json:"blockchainData"`
}

//BlockchainData：在fabric之外的网络（例如以太坊）上执行的记录
type BlockchainData struct {
	Network         string            `json:"network"`
	ContractAddress string            `json:"contractAddress"`
	KeysCreated     map[string]string `json:"keysCreated"`
}

//StageUpdateInput：stageUpdate方法的输入
type StageUpdateInput struct {
	RequestId  string            `json:"requestId"`
	Name       string            `json:"name"`
	CallerType RequestCallerType `json:"callerType"`
	StageState string            `json:"stageState"`
//IsLast：与StageState == FINISHED一起结束请求
	IsLast bool `json:"isLast"`

//FabricDataLocks：数据链码名称 -> 锁定前调用的方法
	FabricDataLocks map[string]RequestDataChaincodeInput `json:"fabricDataLocks"`
//FabricDataFree：数据链码名称 -> 解锁前调用的方法
	FabricDataFree map[string]RequestDataChaincodeInput `json:"fabricDataFree"`

	BlockchainData []BlockchainData `json:"blockchainData"`
}

//RequestDataChaincodeInput：在数据链码上调用的方法及其输入
type RequestDataChaincodeInput struct {
	MethodName string             `json:"methodName"`
	Input      DataChaincodeInput `json:"input"`
}

//StageUpdateOutput：stageUpdate返回给客户端的输出，
//按数据链码名称
type StageUpdateOutput struct {
	FabricDataLocks map[string][]byte `json:"fabricDataLocks"`
	FabricDataFree  map[string][]byte `json:"fabricDataFree"`
}

const (
	StageStateFINISHED = "FINISHED"
)
