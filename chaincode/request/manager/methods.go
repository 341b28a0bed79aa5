
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
	"context"
	"encoding/json"
	"sort"

	"github.com/carbonaccounting/utility-emissions-channel/chaincode/request/manager/model"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

//stageUpdate
//args[0]：json.Marshal(StageUpdateInput)
func (cc *RequestManagerChaincode) stageUpdate(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	const fnTag = "#stageUpdate"
	logger := cc.log()
	if len(args) != 1 {
		logger.Errorf("%s %s expected 1 argument, got %d", fnTag, errInvalidArgsCount, len(args))
		return nil, errors.Errorf("incorrect number of arguments, expecting 1 got %d", len(args))
	}

	var input model.StageUpdateInput
	if err := json.Unmarshal([]byte(args[0]), &input); err != nil {
		logger.Errorf("%s %s error = %s", fnTag, errBadRequestObject, err)
		return nil, errors.New("bad request object")
	}
	if err := validateStageUpdate(&input); err != nil {
		logger.Errorf("%s %s error = %s", fnTag, errBadRequestObject, err)
		return nil, err
	}
	logger.Debugf("%s requestId = %s stage = %s", fnTag, input.RequestId, input.Name)

	req, err := loadRequest(stub, input.RequestId)
	if err != nil {
		logger.Errorf("%s %s requestId = %s error = %s", fnTag, errGettingState, input.RequestId, err)
		return nil, err
	}

	mspID, commonName, err := getCaller(stub)
	if err != nil {
		logger.Errorf("%s %s error = %s", fnTag, errGettingCaller, err)
		return nil, err
	}

	if req == nil {
		if !input.CallerType.IsValid() {
			logger.Errorf("%s %s invalid caller type = %q", fnTag, errBadRequestObject, input.CallerType)
			return nil, errors.Errorf("invalid caller type %q, expecting %s or %s", input.CallerType, model.RequestCallerTypeCLIENT, model.RequestCallerTypeMSP)
		}
		ts, err := stub.GetTxTimestamp()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get transaction timestamp")
		}
		req = &model.Request{
			ID:         input.RequestId,
			State:      model.RequestStatePROCESSING,
			CallerType: input.CallerType,
			CallerID:   callerID(input.CallerType, mspID, commonName),
			CreatedAt:  ts.GetSeconds(),
			StageData:  make(map[string]*model.StageData),
		}
		logger.Infof("%s new request = %s owned by %s", fnTag, req.ID, req.CallerID)
	} else {
		caller := callerID(req.CallerType, mspID, commonName)
		if caller != req.CallerID {
			logger.Errorf("%s %s requestId = %s owner = %s caller = %s", fnTag, errWrongCaller, req.ID, req.CallerID, caller)
			return nil, errors.Errorf("caller %s is not allowed to update request %s", caller, req.ID)
		}
	}

	lifecycle := newRequestLifecycle(req.ID, req.State, logger)
	if !lifecycle.canUpdate() {
		logger.Errorf("%s %s requestId = %s", fnTag, errRequestFinished, req.ID)
		return nil, errors.Errorf("request %s is in %s state", req.ID, lifecycle.state())
	}

	req.CurrentStageName = input.Name
	req.CurrentStageState = input.StageState
	if req.StageData == nil {
		req.StageData = make(map[string]*model.StageData)
	}
	stage := req.StageData[input.Name]
	if stage == nil {
		stage = &model.StageData{}
		req.StageData[input.Name] = stage
	}
	if stage.Outputs == nil {
		stage.Outputs = make(map[string]map[string][]byte)
	}

	output := model.StageUpdateOutput{
		FabricDataLocks: make(map[string][]byte),
		FabricDataFree:  make(map[string][]byte),
	}
	l := newLocker(logger)

	for _, ccName := range sortedNames(input.FabricDataLocks) {
		in := input.FabricDataLocks[ccName]
		toStore, toClient, err := l.lock(stub, req.ID, ccName, in.MethodName, in.Input)
		if err != nil {
			return nil, err
		}
		mergeOutputs(stage, ccName, toStore)
		if len(toClient) > 0 {
			output.FabricDataLocks[ccName] = toClient
		}
	}

	for _, ccName := range sortedNames(input.FabricDataFree) {
		in := input.FabricDataFree[ccName]
		toStore, toClient, err := l.unlock(stub, req.ID, ccName, in.MethodName, in.Input)
		if err != nil {
			return nil, err
		}
		mergeOutputs(stage, ccName, toStore)
		if len(toClient) > 0 {
			output.FabricDataFree[ccName] = toClient
		}
	}

	stage.BlockchainData = append(stage.BlockchainData, input.BlockchainData...)

	if input.IsLast && input.StageState == model.StageStateFINISHED {
		if err := lifecycle.finish(context.Background()); err != nil {
			return nil, errors.Wrapf(err, "failed to finish request %s", req.ID)
		}
		req.State = lifecycle.state()
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}
	if err := stub.PutState(req.ID, raw); err != nil {
		logger.Errorf("%s %s requestId = %s error = %s", fnTag, errPuttingState, req.ID, err)
		return nil, err
	}

	return json.Marshal(output)
}

//getRequest
//args[0]：请求ID
func (cc *RequestManagerChaincode) getRequest(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		cc.log().Errorf("#getRequest %s expected 1 argument, got %d", errInvalidArgsCount, len(args))
		return nil, errors.Errorf("incorrect number of arguments, expecting 1 got %d", len(args))
	}
	if args[0] == ccChannelKey {
		return nil, errors.Errorf("request with id = %s not found", args[0])
	}
	raw, err := stub.GetState(args[0])
	if err != nil {
		cc.log().Errorf("#getRequest %s requestId = %s error = %s", errGettingState, args[0], err)
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.Errorf("request with id = %s not found", args[0])
	}
	return raw, nil
}

//getLock
//args[0]：数据链码名称
//args[1]：键
func (cc *RequestManagerChaincode) getLock(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 2 {
		cc.log().Errorf("#getLock %s expected 2 arguments, got %d", errInvalidArgsCount, len(args))
		return nil, errors.Errorf("incorrect number of arguments, expecting 2 got %d", len(args))
	}
	k, err := buildLockKey(args[0], args[1])
	if err != nil {
		return nil, err
	}
	raw, err := stub.GetState(k)
	if err != nil {
		cc.log().Errorf("#getLock %s key = %s error = %s", errGettingState, k, err)
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.Errorf("key = %s is in free state on cc = %s", args[1], args[0])
	}
	return raw, nil
}

func validateStageUpdate(input *model.StageUpdateInput) error {
	if input.RequestId == "" {
		return errors.New("requestId is required")
	}
	if input.RequestId == ccChannelKey {
		return errors.Errorf("requestId %s is reserved", ccChannelKey)
	}
	if input.Name == "" {
		return errors.New("stage name is required")
	}
	for ccName, in := range input.FabricDataLocks {
		if in.MethodName == "" {
			return errors.Errorf("methodName is required for lock on %s", ccName)
		}
	}
	for ccName, in := range input.FabricDataFree {
		if in.MethodName == "" {
			return errors.Errorf("methodName is required for free on %s", ccName)
		}
	}
	return nil
}

//loadRequest返回存储的请求，请求不存在时返回nil
func loadRequest(stub shim.ChaincodeStubInterface, id string) (*model.Request, error) {
	raw, err := stub.GetState(id)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	req := &model.Request{}
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, errors.Wrapf(err, "invalid request stored for id = %s", id)
	}
	return req, nil
}

func mergeOutputs(stage *model.StageData, ccName string, toStore map[string][]byte) {
	if len(toStore) == 0 {
		return
	}
	outputs := stage.Outputs[ccName]
	if outputs == nil {
		outputs = make(map[string][]byte)
		stage.Outputs[ccName] = outputs
	}
	for k, v := range toStore {
		outputs[k] = v
	}
}

func sortedNames(m map[string]model.RequestDataChaincodeInput) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
