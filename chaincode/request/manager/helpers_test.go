
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
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/carbonaccounting/utility-emissions-channel/chaincode/emissions"
	"github.com/carbonaccounting/utility-emissions-channel/chaincode/request/manager/model"
	"github.com/carbonaccounting/utility-emissions-channel/common/flogging"
	"github.com/carbonaccounting/utility-emissions-channel/common/flogging/floggingtest"
	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/msp"
	pb "github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	emissionsCC = "emissions"
	testChannel = "utilityemissionchannel"
)

//newCreator返回一个序列化的x509身份（msp.SerializedIdentity）
func newCreator(t *testing.T, mspID, commonName string) []byte {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: commonName, Organization: []string{mspID}},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	raw, err := proto.Marshal(&msp.SerializedIdentity{
		Mspid:   mspID,
		IdBytes: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
	})
	require.NoError(t, err)
	return raw
}

type testNetwork struct {
	rm       *shimtest.MockStub
	em       *shimtest.MockStub
	recorder *floggingtest.Recorder
	logger   *flogging.ChaincodeLogger
	txCount  int
}

//newTestNetwork创建请求管理器和排放链码，并在排放链码上
//写入测试记录：uuid-1 ... uuid-4没有代币，uuid-5、uuid-6已被代币化。
func newTestNetwork(t *testing.T) *testNetwork {
	logger, recorder := floggingtest.NewTestLogger(t, floggingtest.Named(loggerName))
	n := &testNetwork{
		rm:       shimtest.NewMockStub("request_manager", NewRequestManagerChaincode(logger)),
		em:       shimtest.NewMockStub(emissionsCC, emissions.NewEmissionsChaincode(nil)),
		recorder: recorder,
		logger:   logger,
	}
	n.rm.ChannelID = testChannel
	n.rm.Invokables[emissionsCC] = n.em
	n.rm.Creator = newCreator(t, "auditor1", "user1")

	res := n.rm.MockInit("init", nil)
	require.Equal(t, int32(shim.OK), res.Status, res.Message)

	for _, record := range []emissions.Emissions{
		{UUID: "uuid-1"},
		{UUID: "uuid-2"},
		{UUID: "uuid-3"},
		{UUID: "uuid-4"},
		{UUID: "uuid-5", PartyId: "party-1", TokenId: "1:1"},
		{UUID: "uuid-6", PartyId: "party-1", TokenId: "1:2"},
	} {
		raw, err := json.Marshal(record)
		require.NoError(t, err)
		res := n.em.MockInvoke(n.nextTxID(), [][]byte{[]byte("recordEmissions"), raw})
		require.Equal(t, int32(shim.OK), res.Status, res.Message)
	}
	return n
}

func (n *testNetwork) nextTxID() string {
	n.txCount++
	return fmt.Sprintf("tx%d", n.txCount)
}

func (n *testNetwork) stageUpdate(t *testing.T, input model.StageUpdateInput) pb.Response {
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	return n.rm.MockInvoke(n.nextTxID(), [][]byte{[]byte("stageUpdate"), raw})
}

func (n *testNetwork) request(t *testing.T, id string) *model.Request {
	res := n.rm.MockInvoke(n.nextTxID(), [][]byte{[]byte("getRequest"), []byte(id)})
	require.Equal(t, int32(shim.OK), res.Status, res.Message)
	req := &model.Request{}
	require.NoError(t, json.Unmarshal(res.Payload, req))
	return req
}

func (n *testNetwork) lockOf(key string) pb.Response {
	return n.rm.MockInvoke(n.nextTxID(), [][]byte{[]byte("getLock"), []byte(emissionsCC), []byte(key)})
}

func (n *testNetwork) emissionsRecord(t *testing.T, uuid string) emissions.Emissions {
	res := n.em.MockInvoke(n.nextTxID(), [][]byte{[]byte("getEmissionsData"), []byte(uuid)})
	require.Equal(t, int32(shim.OK), res.Status, res.Message)
	var record emissions.Emissions
	require.NoError(t, json.Unmarshal(res.Payload, &record))
	return record
}

//mockDataChaincode是用testify mock实现的数据链码
type mockDataChaincode struct {
	mock.Mock
}

func (m *mockDataChaincode) Init(stub shim.ChaincodeStubInterface) pb.Response {
	return shim.Success(nil)
}

func (m *mockDataChaincode) Invoke(stub shim.ChaincodeStubInterface) pb.Response {
	fn, args := stub.GetFunctionAndParameters()
	return m.Called(fn, args).Get(0).(pb.Response)
}
