
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


package emissions

import (
	"sync"

	"github.com/carbonaccounting/utility-emissions-channel/common/flogging"
)

//LoggerName是排放记录链码的记录器名称
const LoggerName = "EMISSION_RECORD_CHAINCODE"

var (
	loggerOnce sync.Once
	logger     *flogging.ChaincodeLogger
)

//Logger返回进程范围内唯一的排放链码记录器。
//第一次调用时创建，之后每次调用都返回同一个实例。
func Logger() *flogging.ChaincodeLogger {
	loggerOnce.Do(func() {
		logger = flogging.MustGetLogger(LoggerName)
	})
	return logger
}
