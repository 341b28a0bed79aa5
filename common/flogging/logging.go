
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
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//config用于提供日志记录实例的依赖项。
type Config struct {
//格式是日志记录实例的日志记录格式。如果格式为字符串
//“json”，日志记录将格式化为json。其他任何值（包括空）
//都使用控制台编码器。
	Format string

//logspec确定为日志系统启用的日志级别。这个
//规范必须采用可由ActivateSpec处理的格式。
//
//如果未提供logspec，将读取CORE_CHAINCODE_LOGGING_LEVEL，
//仍为空时使用默认级别。
	LogSpec string

//Writer是编码和格式化日志记录的接收器。
//
//如果未提供写入程序，则将使用os.stderr作为日志接收器。
	Writer io.Writer

//development降低默认级别为DEBUG，所有记录器改用zap的开发编码器配置，
//DPANIC记录写入后恐慌。
	Development bool
}

//日志记录维护与结构日志记录系统关联的状态。
type Logging struct {
	*LoggerLevels

	mutex  sync.RWMutex
	mode   Mode
	writer zapcore.WriteSyncer

	loggersMutex sync.Mutex
	loggers      map[string]*ChaincodeLogger
}

//新建创建一个新的日志记录系统，并用提供的配置初始化它。
func New(c Config) (*Logging, error) {
	s := &Logging{
		LoggerLevels: &LoggerLevels{defaults: defaultLevel},
		loggers:      map[string]*ChaincodeLogger{},
	}

	err := s.Apply(c)
	if err != nil {
		return nil, err
	}
	return s, nil
}

//应用将提供的配置应用于日志记录系统。
func (s *Logging) Apply(c Config) error {
	s.SetFormat(c.Format)

	if c.LogSpec == "" {
		c.LogSpec = os.Getenv(loggingLevelEnv)
	}
	if c.LogSpec == "" && c.Development {
		c.LogSpec = zapcore.DebugLevel.String()
	}
	if c.LogSpec == "" {
		c.LogSpec = defaultLevel.String()
	}

	err := s.LoggerLevels.ActivateSpec(c.LogSpec)
	if err != nil {
		return err
	}

	if c.Writer == nil {
		c.Writer = os.Stderr
	}
	s.SetWriter(c.Writer)

	s.mutex.Lock()
	s.mode.Development = c.Development
	s.mutex.Unlock()

	return nil
}

//setformat更新日志记录的编码方式。
func (s *Logging) SetFormat(format string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if format == "json" {
		s.mode.Encoding = JSON
		return
	}
	s.mode.Encoding = CONSOLE
}

//setwriter控制写入哪些编写器格式的日志记录。
//除了*os.file之外，编写器需要对并发安全。
func (s *Logging) SetWriter(w io.Writer) {
	var sw zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		sw = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		sw = t
	default:
		sw = zapcore.AddSync(w)
	}

	s.mutex.Lock()
	s.writer = sw
	s.mutex.Unlock()
}

//写满足io.Writer合同。核心在编码时使用这个。
func (s *Logging) Write(b []byte) (int, error) {
	s.mutex.RLock()
	w := s.writer
	s.mutex.RUnlock()

	return w.Write(b)
}

//同步满足zapcore.writesyncer接口。
func (s *Logging) Sync() error {
	s.mutex.RLock()
	w := s.writer
	s.mutex.RUnlock()

	return w.Sync()
}

//Mode满足ModeSelector接口。
func (s *Logging) Mode() Mode {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.mode
}

//ZapLogger用指定的名称创建新的zap.Logger。名称用于确定启用的
//日志级别，编码器在每次写入时按当前Mode选择。
func (s *Logging) ZapLogger(name string) *zap.Logger {
	if !isValidLoggerName(name) {
		panic(fmt.Sprintf("invalid logger name: %s", name))
	}

	production, development := productionEncoderConfig(), developmentEncoderConfig()
	core := &Core{
		LevelEnabler: zap.LevelEnablerFunc(func(l zapcore.Level) bool { return true }),
		Levels:       s.LoggerLevels,
		Encoders: map[Mode]zapcore.Encoder{
			{Encoding: CONSOLE}:                    zapcore.NewConsoleEncoder(production),
			{Encoding: JSON}:                       zapcore.NewJSONEncoder(production),
			{Encoding: CONSOLE, Development: true}: zapcore.NewConsoleEncoder(development),
			{Encoding: JSON, Development: true}:    zapcore.NewJSONEncoder(development),
		},
		Selector: s,
		Output:   s,
	}

	return NewZapLogger(core).Named(name)
}

func productionEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return encoderConfig
}

//开发模式：完整的调用者路径，毫秒精度时间
func developmentEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeCaller = zapcore.FullCallerEncoder
	return encoderConfig
}

//Logger返回指定名称的ChaincodeLogger。同一名称的记录器
//只创建一次，之后的调用返回同一个实例。
func (s *Logging) Logger(name string) *ChaincodeLogger {
	s.loggersMutex.Lock()
	defer s.loggersMutex.Unlock()

	if l, ok := s.loggers[name]; ok {
		return l
	}
	if s.loggers == nil {
		s.loggers = map[string]*ChaincodeLogger{}
	}
	l := NewChaincodeLogger(s.ZapLogger(name))
	s.loggers[name] = l
	return l
}
