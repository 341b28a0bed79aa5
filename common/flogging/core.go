
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
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

//Encoding是日志记录的输出格式
type Encoding int8

const (
	CONSOLE Encoding = iota
	JSON
)

//Mode决定写入时使用哪个编码器
type Mode struct {
	Encoding    Encoding
	Development bool
}

//ModeSelector在每次写入时报告当前的Mode，因此格式和开发模式
//的变化对已经创建的记录器也生效。
type ModeSelector interface {
	Mode() Mode
}

//Core是zapcore.Core的实现。启用的级别按记录器名称从Levels解析，
//编码器在写入时按Selector报告的Mode从Encoders中选择。
//
//With会克隆所有编码器，因此编码器实例不能跨核心共享。
type Core struct {
	zapcore.LevelEnabler
	Levels   *LoggerLevels
	Encoders map[Mode]zapcore.Encoder
	Selector ModeSelector
	Output   zapcore.WriteSyncer
}

func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clones := make(map[Mode]zapcore.Encoder, len(c.Encoders))
	for mode, enc := range c.Encoders {
		clone := enc.Clone()
		for i := range fields {
			fields[i].AddTo(clone)
		}
		clones[mode] = clone
	}

	return &Core{
		LevelEnabler: c.LevelEnabler,
		Levels:       c.Levels,
		Encoders:     clones,
		Selector:     c.Selector,
		Output:       c.Output,
	}
}

//Check在开发模式下让DPANIC记录写入后恐慌
func (c *Core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(e.Level) || !c.Levels.Level(e.LoggerName).Enabled(e.Level) {
		return ce
	}
	ce = ce.AddCore(e, c)
	if e.Level == zapcore.DPanicLevel && c.Selector != nil && c.Selector.Mode().Development {
		ce = ce.Should(e, zapcore.WriteThenPanic)
	}
	return ce
}

func (c *Core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	enc, err := c.encoder()
	if err != nil {
		return err
	}

	buf, err := enc.EncodeEntry(e, fields)
	if err != nil {
		return err
	}
	_, err = c.Output.Write(buf.Bytes())
	buf.Free()
	if err != nil {
		return err
	}

	if e.Level >= zapcore.PanicLevel {
		c.Sync()
	}
	return nil
}

//encoder返回当前Mode的编码器。没有开发编码器时使用同格式的普通编码器。
func (c *Core) encoder() (zapcore.Encoder, error) {
	mode := c.Selector.Mode()
	if enc, ok := c.Encoders[mode]; ok {
		return enc, nil
	}
	if enc, ok := c.Encoders[Mode{Encoding: mode.Encoding}]; ok {
		return enc, nil
	}
	return nil, errors.Errorf("no encoder for encoding %d", mode.Encoding)
}

func (c *Core) Sync() error {
	return c.Output.Sync()
}
