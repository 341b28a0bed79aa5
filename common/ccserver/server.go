
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


//Package ccserver提供链码进程的命令行入口。
package ccserver

import (
	"io/ioutil"

	"github.com/carbonaccounting/utility-emissions-channel/common/ccconfig"
	"github.com/carbonaccounting/utility-emissions-channel/common/flogging"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//Factory在日志系统配置完成后创建链码
type Factory func() shim.Chaincode

//Server是以链码即服务模式运行的链码服务器
type Server interface {
	Start() error
}

var (
	//startPeerLaunched由peer启动链码时使用
	startPeerLaunched = shim.Start
	//newServer创建链码即服务的服务器
	newServer = func(conf ccconfig.Config, cc shim.Chaincode) (Server, error) {
		tls, err := tlsProperties(conf.TLS)
		if err != nil {
			return nil, err
		}
		return &shim.ChaincodeServer{
			CCID:     conf.CCID,
			Address:  conf.Address,
			CC:       cc,
			TLSProps: tls,
		}, nil
	}
)

//NewCommand返回运行链码的cobra命令
func NewCommand(name string, factory Factory) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:           name,
		Short:         "Runs the " + name + " chaincode",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := ccconfig.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return Run(cmd, conf, factory)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.String("address", "", "listen address, runs the chaincode as an external service when set")
	flags.String("ccid", "", "chaincode package ID, required with --address")
	flags.String("logging-spec", "", "logging spec, e.g. info:request_manager=debug")
	flags.String("logging-format", "", "logging format: console or json")
	flags.Bool("dev", false, "development mode, debug logging by default")
	return cmd
}

//Run配置日志系统并启动链码
func Run(cmd *cobra.Command, conf ccconfig.Config, factory Factory) error {
	err := flogging.Global.Apply(flogging.Config{
		Format:      conf.Logging.Format,
		LogSpec:     conf.Logging.Spec,
		Development: conf.Logging.Development,
		Writer:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger := flogging.MustGetLogger("ccserver")
	logger.Debugf("logging spec = %s", flogging.Global.Spec())

	cc := factory()
	if !conf.ServerMode() {
		logger.Infof("starting %s chaincode", cmd.Name())
		return startPeerLaunched(cc)
	}

	server, err := newServer(conf, cc)
	if err != nil {
		return err
	}
	logger.Infof("starting %s chaincode server ccid = %s address = %s tls = %t", cmd.Name(), conf.CCID, conf.Address, !conf.TLS.Disabled)
	return server.Start()
}

func tlsProperties(conf ccconfig.TLS) (shim.TLSProperties, error) {
	if conf.Disabled {
		return shim.TLSProperties{Disabled: true}, nil
	}
	key, err := ioutil.ReadFile(conf.KeyFile)
	if err != nil {
		return shim.TLSProperties{}, errors.Wrap(err, "failed reading tls key")
	}
	cert, err := ioutil.ReadFile(conf.CertFile)
	if err != nil {
		return shim.TLSProperties{}, errors.Wrap(err, "failed reading tls cert")
	}
	props := shim.TLSProperties{Key: key, Cert: cert}
	if conf.ClientCACertFile != "" {
		props.ClientCACerts, err = ioutil.ReadFile(conf.ClientCACertFile)
		if err != nil {
			return shim.TLSProperties{}, errors.Wrap(err, "failed reading client ca cert")
		}
	}
	return props, nil
}
