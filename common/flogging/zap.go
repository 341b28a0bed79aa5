
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

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//new zap logger围绕一个新的zap.core创建一个zap记录器。
func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(
		core,
		append([]zap.Option{
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		}, options...)...,
	)
}

//NewChaincodeLogger创建一个委托给zap.sugaredLogger的记录器。
func NewChaincodeLogger(l *zap.Logger, options ...zap.Option) *ChaincodeLogger {
	return &ChaincodeLogger{
		s: l.WithOptions(append(options, zap.AddCallerSkip(1))...).Sugar(),
	}
}

//ChaincodeLogger是围绕zap.sugaredLogger的适配器，为链码提供
//带级别的日志记录。
//
//没有格式后缀（f或w）的方法使用fmt.sprintln构建消息，
//参数之间以空格分隔。
type ChaincodeLogger struct{ s *zap.SugaredLogger }

func (c *ChaincodeLogger) Debug(args ...interface{})                   { c.s.Debugf(formatArgs(args)) }
func (c *ChaincodeLogger) Debugf(template string, args ...interface{}) { c.s.Debugf(template, args...) }
func (c *ChaincodeLogger) Debugw(msg string, kvPairs ...interface{})   { c.s.Debugw(msg, kvPairs...) }
func (c *ChaincodeLogger) Error(args ...interface{})                   { c.s.Errorf(formatArgs(args)) }
func (c *ChaincodeLogger) Errorf(template string, args ...interface{}) { c.s.Errorf(template, args...) }
func (c *ChaincodeLogger) Errorw(msg string, kvPairs ...interface{})   { c.s.Errorw(msg, kvPairs...) }
func (c *ChaincodeLogger) Fatal(args ...interface{})                   { c.s.Fatalf(formatArgs(args)) }
func (c *ChaincodeLogger) Fatalf(template string, args ...interface{}) { c.s.Fatalf(template, args...) }
func (c *ChaincodeLogger) Info(args ...interface{})                    { c.s.Infof(formatArgs(args)) }
func (c *ChaincodeLogger) Infof(template string, args ...interface{})  { c.s.Infof(template, args...) }
func (c *ChaincodeLogger) Infow(msg string, kvPairs ...interface{})    { c.s.Infow(msg, kvPairs...) }
func (c *ChaincodeLogger) Warn(args ...interface{})                    { c.s.Warnf(formatArgs(args)) }
func (c *ChaincodeLogger) Warnf(template string, args ...interface{})  { c.s.Warnf(template, args...) }
func (c *ChaincodeLogger) Warnw(msg string, kvPairs ...interface{})    { c.s.Warnw(msg, kvPairs...) }

func (c *ChaincodeLogger) Named(name string) *ChaincodeLogger { return &ChaincodeLogger{s: c.s.Named(name)} }
func (c *ChaincodeLogger) Sync() error                        { return c.s.Sync() }
func (c *ChaincodeLogger) Zap() *zap.Logger                   { return c.s.Desugar() }

//IsEnabledFor报告该记录器当前是否记录指定级别。
//检查经过核心，因此会考虑按名称激活的规范。
func (c *ChaincodeLogger) IsEnabledFor(level zapcore.Level) bool {
	return c.s.Desugar().Check(level, "") != nil
}

func (c *ChaincodeLogger) With(args ...interface{}) *ChaincodeLogger {
	return &ChaincodeLogger{s: c.s.With(args...)}
}

func formatArgs(args []interface{}) string { return strings.TrimSuffix(fmt.Sprintln(args...), "\n") }
