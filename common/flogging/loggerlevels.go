
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
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

//LoggerLevels按记录器名称解析日志级别。
//
//日志规范的格式如下：
//[<logger>[,<logger>...]=]<level>[:[<logger>[,<logger>...]=]<level>...]
//
//例如 "info:request_manager=debug:EMISSION_RECORD_CHAINCODE=warn"。
//以句点结尾的名称只匹配该记录器本身，否则也匹配它的子记录器。
type LoggerLevels struct {
	mutex      sync.RWMutex
	defaults   zapcore.Level
	byName     map[string]zapcore.Level
	levelCache map[string]zapcore.Level
}

//ActivateSpec解析规范并替换当前的级别。解析失败时级别保持不变。
func (l *LoggerLevels) ActivateSpec(spec string) error {
	defaults, byName, err := parseSpec(spec)
	if err != nil {
		return err
	}

	l.mutex.Lock()
	l.defaults = defaults
	l.byName = byName
	l.levelCache = map[string]zapcore.Level{}
	l.mutex.Unlock()
	return nil
}

func parseSpec(spec string) (zapcore.Level, map[string]zapcore.Level, error) {
	defaults := zapcore.InfoLevel
	byName := map[string]zapcore.Level{}
	badSegment := func(segment string) error {
		return errors.Errorf("invalid logging specification '%s': bad segment '%s'", spec, segment)
	}

	for _, segment := range strings.Split(spec, ":") {
		if segment == "" {
			continue
		}
		names, levelName, named := strings.Cut(segment, "=")
		if !named {
			lvl, err := nameToLevel(segment)
			if err != nil {
				return 0, nil, badSegment(segment)
			}
			defaults = lvl
			continue
		}
		if names == "" {
			return 0, nil, errors.Errorf("invalid logging specification '%s': no logger specified in segment '%s'", spec, segment)
		}
		lvl, err := nameToLevel(levelName)
		if err != nil {
			return 0, nil, badSegment(segment)
		}
		for _, name := range strings.Split(names, ",") {
			if !isValidLoggerName(strings.TrimSuffix(name, ".")) {
				return 0, nil, errors.Errorf("invalid logging specification '%s': bad logger name '%s'", spec, name)
			}
			byName[name] = lvl
		}
	}
	return defaults, byName, nil
}

//Level返回记录器的有效级别：最长的匹配名称优先，
//没有匹配时为规范的默认级别。
func (l *LoggerLevels) Level(loggerName string) zapcore.Level {
	l.mutex.RLock()
	lvl, ok := l.levelCache[loggerName]
	l.mutex.RUnlock()
	if ok {
		return lvl
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	lvl = l.lookup(loggerName)
	if l.levelCache == nil {
		l.levelCache = map[string]zapcore.Level{}
	}
	l.levelCache[loggerName] = lvl
	return lvl
}

func (l *LoggerLevels) lookup(loggerName string) zapcore.Level {
	if lvl, ok := l.byName[loggerName+"."]; ok {
		return lvl
	}
	for name := loggerName; name != ""; {
		if lvl, ok := l.byName[name]; ok {
			return lvl
		}
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	return l.defaults
}

//Spec返回规范化的活动规范，按名称排序，默认级别在最后
func (l *LoggerLevels) Spec() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	fields := make([]string, 0, len(l.byName)+1)
	for name, lvl := range l.byName {
		fields = append(fields, fmt.Sprintf("%s=%s", name, lvl))
	}
	sort.Strings(fields)
	return strings.Join(append(fields, l.defaults.String()), ":")
}

var loggerNameRegexp = regexp.MustCompile(`^[[:alnum:]_#:-]+(\.[[:alnum:]_#:-]+)*$`)

func isValidLoggerName(loggerName string) bool {
	return loggerNameRegexp.MatchString(loggerName)
}

//nameToLevel接受zap的级别名称以及NOTICE、WARNING、CRITICAL别名，不区分大小写
func nameToLevel(level string) (zapcore.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "INFO", "NOTICE":
		return zapcore.InfoLevel, nil
	case "WARNING", "WARN":
		return zapcore.WarnLevel, nil
	case "ERROR", "CRITICAL":
		return zapcore.ErrorLevel, nil
	case "DPANIC":
		return zapcore.DPanicLevel, nil
	case "PANIC":
		return zapcore.PanicLevel, nil
	case "FATAL":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.InfoLevel, errors.Errorf("invalid log level '%s'", level)
	}
}
