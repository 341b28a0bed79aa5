
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

const (
	errPuttingState           = "ERROR_PUTTING_STATE"
	errGettingState           = "ERROR_GETTING_STATE"
	errDeletingState          = "ERROR_DELETING_STATE"
	errInvalidArgsCount       = "ERROR_INVALID_ARGUMENT_COUNT"
	errMethodUnsupported      = "ERROR_UNSUPPORTED_METHOD"
	errAlreadyLocked          = "ERROR_ALREADY_LOCKED"
	errFreedLock              = "ERROR_FREE_LOCK"
	errReqIdMismatchOnLock    = "ERROR_REQUEST_ID_MISMATCH_ON_LOCK"
	errInvokeChaincode        = "ERROR_INVOKING_CHAINCODE"
	errBadDataChaincodeOutput = "ERROR_BAD_DATA_CC_OUTPUT"
	errBadRequestObject       = "ERROR_BAD_REQUEST_OBJECT"
	errGettingCaller          = "ERROR_GETTING_CALLER"
	errWrongCaller            = "ERROR_WRONG_CALLER"
	errRequestFinished        = "ERROR_REQUEST_FINISHED"
)

const (
//ccChannelKey：Init存储通道名称的键
	ccChannelKey = "CHANNEL_NAME"

	lockObjectType = "PREFIX~CHAINCODE~KEY"
	lockPrefix     = "LOCKER"

	loggerName = "request_manager"
)
