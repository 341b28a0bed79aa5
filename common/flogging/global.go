
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


package flogging

import "go.uber.org/zap/zapcore"

const (
	defaultLevel    = zapcore.InfoLevel
	loggingLevelEnv = "CORE_CHAINCODE_LOGGING_LEVEL"
)

//Global是链码进程的日志系统，ccserver.Run在启动链码前对它应用配置
var Global *Logging

func init() {
	logging, err := New(Config{})
	if err != nil {
		panic(err)
	}
	Global = logging
}

//Reset把全局日志系统恢复为默认配置
func Reset() {
	Global.Apply(Config{})
}

//MustGetLogger返回具有指定名称的记录器。同一名称总是
//返回同一个实例。如果名称无效，操作会恐慌。
func MustGetLogger(loggerName string) *ChaincodeLogger {
	return Global.Logger(loggerName)
}
