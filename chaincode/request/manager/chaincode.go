
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


//Package manager实现请求管理器链码。
//
//请求管理器跟踪多阶段请求，并在同一通道上的数据链码中
//持有键的排他锁。每个阶段先锁定(fabricDataLocks)，再释放
//(fabricDataFree)，锁定和释放前都会调用数据链码的业务方法。
package manager

import (
	"github.com/carbonaccounting/utility-emissions-channel/common/flogging"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	pb "github.com/hyperledger/fabric-protos-go/peer"
)

type method func(cc *RequestManagerChaincode, stub shim.ChaincodeStubInterface, args []string) ([]byte, error)

var methods = map[string]method{
	"stageUpdate": (*RequestManagerChaincode).stageUpdate,
	"getRequest":  (*RequestManagerChaincode).getRequest,
	"getLock":     (*RequestManagerChaincode).getLock,
}

//RequestManagerChaincode实现shim.Chaincode
type RequestManagerChaincode struct {
	logger *flogging.ChaincodeLogger
}

//NewRequestManagerChaincode使用给定的记录器创建链码。
//记录器为nil时使用名为request_manager的全局记录器。
func NewRequestManagerChaincode(logger *flogging.ChaincodeLogger) *RequestManagerChaincode {
	if logger == nil {
		logger = flogging.MustGetLogger(loggerName)
	}
	return &RequestManagerChaincode{logger: logger}
}

//log在链码不是由NewRequestManagerChaincode创建时返回全局记录器，
//cc.logger只在构造时写入，事务可以并发调用。
func (cc *RequestManagerChaincode) log() *flogging.ChaincodeLogger {
	if cc.logger == nil {
		return flogging.MustGetLogger(loggerName)
	}
	return cc.logger
}

//Init存储通道名称
func (cc *RequestManagerChaincode) Init(stub shim.ChaincodeStubInterface) pb.Response {
	channel := stub.GetChannelID()
	if err := stub.PutState(ccChannelKey, []byte(channel)); err != nil {
		cc.log().Errorf("#Init %s error = %s", errPuttingState, err)
		return shim.Error(err.Error())
	}
	cc.log().Infof("#Init request manager initialized on channel = %s", channel)
	return shim.Success(nil)
}

func (cc *RequestManagerChaincode) Invoke(stub shim.ChaincodeStubInterface) pb.Response {
	fn, args := stub.GetFunctionAndParameters()
	m, ok := methods[fn]
	if !ok {
		cc.log().Errorf("#Invoke %s method = %s", errMethodUnsupported, fn)
		return shim.Error("method = " + fn + " not supported")
	}
	payload, err := m(cc, stub, args)
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success(payload)
}
