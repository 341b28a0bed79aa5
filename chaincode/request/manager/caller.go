
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
	"fmt"

	"github.com/carbonaccounting/utility-emissions-channel/chaincode/request/manager/model"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

//getCaller返回交易创建者的MSP ID和证书通用名称
func getCaller(stub shim.ChaincodeStubInterface) (mspID string, commonName string, err error) {
	creator, err := stub.GetCreator()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to get transaction creator")
	}
	if len(creator) == 0 {
		return "", "", errors.New("transaction creator is empty")
	}

	id, err := cid.New(stub)
	if err != nil {
		return "", "", errors.WithMessage(err, "failed to read caller identity")
	}
	mspID, err = id.GetMSPID()
	if err != nil {
		return "", "", errors.WithMessage(err, "failed to read caller msp id")
	}
	cert, err := id.GetX509Certificate()
	if err != nil {
		return "", "", errors.WithMessage(err, "failed to read caller certificate")
	}
	if cert == nil {
		return "", "", errors.New("caller is not identified by an x509 certificate")
	}
	return mspID, cert.Subject.CommonName, nil
}

//callerID构建拥有请求的调用者ID
func callerID(callerType model.RequestCallerType, mspID, commonName string) string {
	if callerType == model.RequestCallerTypeCLIENT {
		return fmt.Sprintf("%s::%s", mspID, commonName)
	}
	return mspID
}
