
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


//Package emissions实现公用事业排放数据链码。
//
//排放记录按UUID存储。getValidEmissions和UpdateEmissionsWithToken
//由请求管理器在锁定和解锁键之前调用。
package emissions

import (
	"encoding/json"

	"github.com/carbonaccounting/utility-emissions-channel/chaincode/request/manager/model"
	"github.com/carbonaccounting/utility-emissions-channel/common/flogging"
	"github.com/carbonaccounting/utility-emissions-channel/common/util"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

//ValidUUIDsOutput是getValidEmissions存储到阶段数据中的输出名称
const ValidUUIDsOutput = "validUUIDs"

//Emissions：排放记录
type Emissions struct {
	UUID    string
	PartyId string
	TokenId string
}

type tokenParams struct {
	TokenId string `json:"tokenId"`
	PartyId string `json:"partyId"`
}

//EmissionsChaincode实现shim.Chaincode
type EmissionsChaincode struct {
	logger *flogging.ChaincodeLogger
}

//NewEmissionsChaincode使用给定的记录器创建链码，
//记录器为nil时使用Logger()。
func NewEmissionsChaincode(logger *flogging.ChaincodeLogger) *EmissionsChaincode {
	if logger == nil {
		logger = Logger()
	}
	return &EmissionsChaincode{logger: logger}
}

//log不修改cc.logger，零值的EmissionsChaincode也可以并发使用
func (cc *EmissionsChaincode) log() *flogging.ChaincodeLogger {
	if cc.logger == nil {
		return Logger()
	}
	return cc.logger
}

func (cc *EmissionsChaincode) Init(stub shim.ChaincodeStubInterface) pb.Response {
	return shim.Success(nil)
}

func (cc *EmissionsChaincode) Invoke(stub shim.ChaincodeStubInterface) pb.Response {
	fn, args := stub.GetFunctionAndParameters()
	var (
		payload []byte
		err     error
	)
	switch fn {
	case "recordEmissions":
		payload, err = cc.recordEmissions(stub, args)
	case "getEmissionsData":
		payload, err = cc.getEmissionsData(stub, args)
	case "getValidEmissions":
		payload, err = cc.getValidEmissions(stub, args)
	case "UpdateEmissionsWithToken":
		payload, err = cc.updateEmissionsWithToken(stub, args)
	default:
		cc.log().Errorf("#Invoke method = %s not supported", fn)
		return shim.Error("method = " + fn + " not supported")
	}
	if err != nil {
		cc.log().Errorf("#%s %s", fn, err)
		return shim.Error(err.Error())
	}
	return shim.Success(payload)
}

func (cc *EmissionsChaincode) recordEmissions(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, errors.Errorf("incorrect number of arguments, expecting 1 got %d", len(args))
	}
	var record Emissions
	if err := json.Unmarshal([]byte(args[0]), &record); err != nil {
		return nil, errors.Wrap(err, "invalid emissions record")
	}
	if record.UUID == "" {
		return nil, errors.New("emissions record requires a UUID")
	}
	existing, err := getEmissions(stub, record.UUID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Errorf("emissions record with UUID = %s already exists", record.UUID)
	}
	if err := putEmissions(stub, &record); err != nil {
		return nil, err
	}
	cc.log().Debugf("#recordEmissions stored uuid = %s", record.UUID)
	return util.StringToBytes(record.UUID), nil
}

func (cc *EmissionsChaincode) getEmissionsData(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, errors.Errorf("incorrect number of arguments, expecting 1 got %d", len(args))
	}
	record, err := getEmissions(stub, args[0])
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Errorf("emissions record with UUID = %s not found", args[0])
	}
	return json.Marshal(record)
}

//getValidEmissions返回请求的键中存在且尚未被代币化的记录
func (cc *EmissionsChaincode) getValidEmissions(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	input, err := parseInput(args)
	if err != nil {
		return nil, err
	}

	validUUIDs := []string{}
	validRecords := []*Emissions{}
	for _, uuid := range input.Keys {
		record, err := getEmissions(stub, uuid)
		if err != nil {
			return nil, err
		}
		if record == nil || record.TokenId != "" {
			cc.log().Debugf("#getValidEmissions skipping uuid = %s", uuid)
			continue
		}
		validUUIDs = append(validUUIDs, uuid)
		validRecords = append(validRecords, record)
	}

	recordsRaw, err := json.Marshal(validRecords)
	if err != nil {
		return nil, err
	}
	uuidsRaw, err := json.Marshal(validUUIDs)
	if err != nil {
		return nil, err
	}
	cc.log().Infof("#getValidEmissions %d of %d records are valid", len(validUUIDs), len(input.Keys))
	return json.Marshal(model.RequestManagerOutput{
		Keys:           validUUIDs,
		OutputToClient: util.ToBytes(string(recordsRaw)),
		OutputToStore: map[string]util.ByteArray{
			ValidUUIDsOutput: util.ToBytes(string(uuidsRaw)),
		},
	})
}

//updateEmissionsWithToken把params中的tokenId和partyId写入每个请求的记录
func (cc *EmissionsChaincode) updateEmissionsWithToken(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	input, err := parseInput(args)
	if err != nil {
		return nil, err
	}
	var params tokenParams
	if err := input.DecodeParams(&params); err != nil {
		return nil, err
	}
	if params.TokenId == "" {
		return nil, errors.New("tokenId is required")
	}

	for _, uuid := range input.Keys {
		record, err := getEmissions(stub, uuid)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, errors.Errorf("emissions record with UUID = %s not found", uuid)
		}
		record.TokenId = params.TokenId
		record.PartyId = params.PartyId
		if err := putEmissions(stub, record); err != nil {
			return nil, err
		}
	}
	cc.log().Infof("#UpdateEmissionsWithToken tokenId = %s set on %v", params.TokenId, input.Keys)
	return json.Marshal(model.RequestManagerOutput{Keys: input.Keys})
}

func parseInput(args []string) (*model.RequestManagerInput, error) {
	if len(args) != 1 {
		return nil, errors.Errorf("incorrect number of arguments, expecting 1 got %d", len(args))
	}
	input := &model.RequestManagerInput{}
	if err := json.Unmarshal([]byte(args[0]), input); err != nil {
		return nil, errors.Wrap(err, "invalid request manager input")
	}
	return input, nil
}

func getEmissions(stub shim.ChaincodeStubInterface, uuid string) (*Emissions, error) {
	raw, err := stub.GetState(uuid)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get emissions record %s", uuid)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	record := &Emissions{}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, errors.Wrapf(err, "invalid emissions record stored for %s", uuid)
	}
	return record, nil
}

func putEmissions(stub shim.ChaincodeStubInterface, record *Emissions) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return errors.Wrapf(stub.PutState(record.UUID, raw), "failed to store emissions record %s", record.UUID)
}
