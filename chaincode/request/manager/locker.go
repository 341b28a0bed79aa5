
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


package manager

import (
	"encoding/json"
	"fmt"

	"github.com/carbonaccounting/utility-emissions-channel/chaincode/request/manager/model"
	"github.com/carbonaccounting/utility-emissions-channel/common/flogging"
	"github.com/carbonaccounting/utility-emissions-channel/common/util"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

//locker.go：完成fabric数据锁定和解锁的逻辑

type locker struct {
	logger *flogging.ChaincodeLogger
}

func newLocker(logger *flogging.ChaincodeLogger) *locker {
	return &locker{logger: logger}
}

//lock
//1. 检查锁定状态，所有请求的键都必须空闲
//2. 使用空闲的键调用数据链码
//3. 锁定返回的键（数据链码完成业务逻辑之后）
//返回：需要为后续阶段存储的输出，以及直接发送给客户端的输出
func (l *locker) lock(stub shim.ChaincodeStubInterface, reqID string, dataCCName string, method string, input model.DataChaincodeInput) (map[string][]byte, []byte, error) {
	var fnTag = fmt.Sprintf("#lock::%s", dataCCName)
	l.logger.Debugf("%s checking free lock state for %v", fnTag, input.Keys)
	for _, key := range input.Keys {
		k, err := buildLockKey(dataCCName, key)
		if err != nil {
			return nil, nil, err
		}
		raw, err := stub.GetState(k)
		if err != nil {
			l.logger.Errorf("%s :: %s key = %s error = %s", fnTag, errGettingState, k, err)
			return nil, nil, err
		}
		if len(raw) != 0 {
			l.logger.Errorf("%s :: %s key = %s", fnTag, errAlreadyLocked, key)
			return nil, nil, errors.Errorf("key = %s is in locked state", key)
		}
	}

	l.logger.Debugf("%s running business logic method = %s before locking", fnTag, method)
	result, err := l.invokeDataChaincode(stub, fnTag, dataCCName, method, input)
	if err != nil {
		return nil, nil, err
	}

	l.logger.Debugf("%s locking keys = %v", fnTag, result.Keys)
	for _, key := range result.Keys {
		k, err := buildLockKey(dataCCName, key)
		if err != nil {
			return nil, nil, err
		}
		raw, err := json.Marshal(model.DataLock{
			RequestId: reqID,
			Chaincode: dataCCName,
			Key:       key,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to marshal data lock")
		}
		err = stub.PutState(k, raw)
		if err != nil {
			l.logger.Errorf("%s %s key = %s error = %s", fnTag, errPuttingState, k, err)
			return nil, nil, err
		}
	}

	l.debugOutputs(fnTag, result)
	l.logger.Debugf("%s keys = %v are locked", fnTag, result.Keys)
	return result.OutputToStore, result.OutputToClient, nil
}

//unlock
//1. 检查锁定状态，所有请求的键都必须被同一个请求锁定
//2. 使用锁定的键调用数据链码
//3. 释放返回的键上的锁（数据链码完成业务逻辑之后）
func (l *locker) unlock(stub shim.ChaincodeStubInterface, reqID string, dataCCName string, method string, input model.DataChaincodeInput) (map[string][]byte, []byte, error) {
	var fnTag = fmt.Sprintf("#unlock::%s", dataCCName)
	l.logger.Debugf("%s checking locked state of keys = %v", fnTag, input.Keys)
	for _, key := range input.Keys {
		k, err := buildLockKey(dataCCName, key)
		if err != nil {
			return nil, nil, err
		}
		raw, err := stub.GetState(k)
		if err != nil {
			l.logger.Errorf("%s :: %s key = %s error = %s", fnTag, errGettingState, k, err)
			return nil, nil, err
		}
		if len(raw) == 0 {
			l.logger.Errorf("%s :: %s key = %s", fnTag, errFreedLock, key)
			return nil, nil, errors.Errorf("key = %s is in free state", key)
		}
		var dataLock model.DataLock
		if err := json.Unmarshal(raw, &dataLock); err != nil {
			l.logger.Errorf("%s :: %s key = %s error = %s", fnTag, errBadRequestObject, key, err)
			return nil, nil, errors.Wrapf(err, "invalid lock stored for key = %s", key)
		}
		if dataLock.RequestId != reqID {
			l.logger.Errorf("%s :: %s key = %s is locked with request_id = %s not with %s", fnTag, errReqIdMismatchOnLock, key, dataLock.RequestId, reqID)
			return nil, nil, errors.Errorf("key = %s is locked with request_id = %s not with %s on cc = %s", key, dataLock.RequestId, reqID, dataCCName)
		}
	}

	l.logger.Debugf("%s running business logic method = %s before unlocking", fnTag, method)
	result, err := l.invokeDataChaincode(stub, fnTag, dataCCName, method, input)
	if err != nil {
		return nil, nil, err
	}

	l.logger.Debugf("%s unlocking keys = %v", fnTag, result.Keys)
	for _, key := range result.Keys {
		k, err := buildLockKey(dataCCName, key)
		if err != nil {
			return nil, nil, err
		}
		err = stub.DelState(k)
		if err != nil {
			l.logger.Errorf("%s %s key = %s error = %s", fnTag, errDeletingState, key, err)
			return nil, nil, err
		}
	}

	l.debugOutputs(fnTag, result)
	l.logger.Debugf("%s keys = %v are unlocked", fnTag, result.Keys)
	return result.OutputToStore, result.OutputToClient, nil
}

//invokeDataChaincode调用数据链码方法，并检查返回的键是否都在请求的键中
func (l *locker) invokeDataChaincode(stub shim.ChaincodeStubInterface, fnTag string, dataCCName string, method string, input model.DataChaincodeInput) (*model.DataChaincodeResult, error) {
	paramsRaw, err := json.Marshal(input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal data chaincode input")
	}
	resp := stub.InvokeChaincode(dataCCName, [][]byte{util.StringToBytes(method), paramsRaw}, "")
	if resp.Status != shim.OK {
		l.logger.Errorf("%s %s method = %s message = %s", fnTag, errInvokeChaincode, method, resp.GetMessage())
		return nil, errors.New(resp.GetMessage())
	}

	result, err := model.ParseDataChaincodeResponse(resp.GetPayload())
	if err != nil {
		l.logger.Errorf("%s %s error = %s", fnTag, errBadDataChaincodeOutput, err)
		return nil, errors.Errorf("invalid response from %s", dataCCName)
	}
	if extra := util.FindMissingElements(result.Keys, input.Keys); len(extra) != 0 {
		l.logger.Errorf("%s %s keys = %v were not requested", fnTag, errBadDataChaincodeOutput, extra)
		return nil, errors.Errorf("invalid response from %s: keys %v were not requested", dataCCName, extra)
	}
	return result, nil
}

func (l *locker) debugOutputs(fnTag string, result *model.DataChaincodeResult) {
	if !l.logger.IsEnabledFor(zapcore.DebugLevel) {
		return
	}
	l.logger.Debugf("%s output to client = %s", fnTag, string(result.OutputToClient))
	for k, v := range result.OutputToStore {
		l.logger.Debugf("%s output to store key = %s , value = %s", fnTag, k, string(v))
	}
}

func buildLockKey(ccName, key string) (string, error) {
	k, err := shim.CreateCompositeKey(lockObjectType, []string{lockPrefix, ccName, key})
	if err != nil {
		return "", errors.Wrapf(err, "failed to build lock key for %s on %s", key, ccName)
	}
	return k, nil
}
