
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


//Package ccconfig加载链码进程的配置：默认值、可选的YAML文件、
//环境变量和命令行标志，后者覆盖前者。
package ccconfig

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//TLS：链码即服务模式下的服务器TLS配置
type TLS struct {
	Disabled         bool   `yaml:"disabled"`
	KeyFile          string `yaml:"key"`
	CertFile         string `yaml:"cert"`
	ClientCACertFile string `yaml:"clientCACert"`
}

//Logging：传给flogging的日志配置
type Logging struct {
	Spec        string `yaml:"spec"`
	Format      string `yaml:"format"`
	Development bool   `yaml:"development"`
}

//Config：链码进程配置。Address为空时链码由peer启动，
//否则作为外部服务监听Address。
type Config struct {
	CCID    string  `yaml:"ccid"`
	Address string  `yaml:"address"`
	TLS     TLS     `yaml:"tls"`
	Logging Logging `yaml:"logging"`
}

//Defaults返回默认配置
func Defaults() Config {
	return Config{
		TLS:     TLS{Disabled: true},
		Logging: Logging{Format: "console"},
	}
}

type binding struct {
	key  string
	env  string
	flag string
	set  func(v *viper.Viper, key string, c *Config)
}

func setString(dst func(c *Config) *string) func(*viper.Viper, string, *Config) {
	return func(v *viper.Viper, key string, c *Config) { *dst(c) = v.GetString(key) }
}

func setBool(dst func(c *Config) *bool) func(*viper.Viper, string, *Config) {
	return func(v *viper.Viper, key string, c *Config) { *dst(c) = v.GetBool(key) }
}

var bindings = []binding{
	{"ccid", "CHAINCODE_ID", "ccid", setString(func(c *Config) *string { return &c.CCID })},
	{"address", "CHAINCODE_SERVER_ADDRESS", "address", setString(func(c *Config) *string { return &c.Address })},
	{"tls.disabled", "CHAINCODE_TLS_DISABLED", "tls-disabled", setBool(func(c *Config) *bool { return &c.TLS.Disabled })},
	{"tls.key", "CHAINCODE_TLS_KEY", "tls-key", setString(func(c *Config) *string { return &c.TLS.KeyFile })},
	{"tls.cert", "CHAINCODE_TLS_CERT", "tls-cert", setString(func(c *Config) *string { return &c.TLS.CertFile })},
	{"tls.clientcacert", "CHAINCODE_CLIENT_CA_CERT", "tls-client-ca-cert", setString(func(c *Config) *string { return &c.TLS.ClientCACertFile })},
	{"logging.spec", "CORE_CHAINCODE_LOGGING_LEVEL", "logging-spec", setString(func(c *Config) *string { return &c.Logging.Spec })},
	{"logging.format", "CHAINCODE_LOGGING_FORMAT", "logging-format", setString(func(c *Config) *string { return &c.Logging.Format })},
	{"logging.development", "", "dev", setBool(func(c *Config) *bool { return &c.Logging.Development })},
}

//Load按以下顺序构建配置：默认值，path指定的YAML文件（可为空），
//环境变量，flags中被显式设置的标志。
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	conf := Defaults()
	if path != "" {
		if err := readFile(path, &conf); err != nil {
			return Config{}, err
		}
	}

	v := viper.New()
	for _, b := range bindings {
		if b.env != "" {
			if err := v.BindEnv(b.key, b.env); err != nil {
				return Config{}, errors.Wrapf(err, "failed binding %s", b.env)
			}
		}
		if flags == nil || b.flag == "" {
			continue
		}
		if f := flags.Lookup(b.flag); f != nil {
			if err := v.BindPFlag(b.key, f); err != nil {
				return Config{}, errors.Wrapf(err, "failed binding flag --%s", b.flag)
			}
		}
	}
	for _, b := range bindings {
		if v.IsSet(b.key) {
			b.set(v, b.key, &conf)
		}
	}

	return conf, conf.Validate()
}

//ConfigFromFile加载给定的YAML文件，未设置的值保持默认
func ConfigFromFile(file string) (Config, error) {
	conf := Defaults()
	if err := readFile(file, &conf); err != nil {
		return Config{}, err
	}
	return conf, conf.Validate()
}

func readFile(file string, conf *Config) error {
	configData, err := os.ReadFile(file)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := yaml.Unmarshal(configData, conf); err != nil {
		return errors.Errorf("error unmarshaling YAML file %s: %s", file, err)
	}
	return nil
}

//ToFile将配置写入文件
func (c Config) ToFile(file string) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config isn't valid")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(file, b, 0600); err != nil {
		return errors.Errorf("failed writing file %s: %v", file, err)
	}
	return nil
}

//ServerMode报告链码是否作为外部服务运行
func (c Config) ServerMode() bool {
	return c.Address != ""
}

func (c Config) Validate() error {
	if !c.ServerMode() {
		return nil
	}
	if c.CCID == "" {
		return errors.New("ccid is required when address is set")
	}
	if c.TLS.Disabled {
		return nil
	}
	if c.TLS.KeyFile == "" || c.TLS.CertFile == "" {
		return errors.New("tls key and cert files are required when tls is enabled")
	}
	return nil
}
