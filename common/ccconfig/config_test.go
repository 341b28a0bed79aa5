
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


package ccconfig_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/carbonaccounting/utility-emissions-channel/common/ccconfig"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

var envVars = []string{
	"CHAINCODE_ID",
	"CHAINCODE_SERVER_ADDRESS",
	"CHAINCODE_TLS_DISABLED",
	"CHAINCODE_TLS_KEY",
	"CHAINCODE_TLS_CERT",
	"CHAINCODE_CLIENT_CA_CERT",
	"CORE_CHAINCODE_LOGGING_LEVEL",
	"CHAINCODE_LOGGING_FORMAT",
}

var _ = Describe("Config", func() {
	var (
		tempDir string
		saved   map[string]string
	)

	writeFile := func(name, contents string) string {
		path := filepath.Join(tempDir, name)
		err := ioutil.WriteFile(path, []byte(contents), 0600)
		Expect(err).NotTo(HaveOccurred())
		return path
	}

	newFlags := func() *pflag.FlagSet {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("address", "", "")
		flags.String("ccid", "", "")
		flags.String("logging-spec", "", "")
		flags.String("logging-format", "", "")
		flags.Bool("dev", false, "")
		return flags
	}

	BeforeEach(func() {
		var err error
		tempDir, err = ioutil.TempDir("", "ccconfig")
		Expect(err).NotTo(HaveOccurred())

		saved = map[string]string{}
		for _, name := range envVars {
			if v, ok := os.LookupEnv(name); ok {
				saved[name] = v
			}
			os.Unsetenv(name)
		}
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
		for _, name := range envVars {
			os.Unsetenv(name)
			if v, ok := saved[name]; ok {
				os.Setenv(name, v)
			}
		}
	})

	Describe("Load", func() {
		It("returns the defaults", func() {
			conf, err := ccconfig.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf).To(Equal(ccconfig.Defaults()))
			Expect(conf.ServerMode()).To(BeFalse())
			Expect(conf.TLS.Disabled).To(BeTrue())
		})

		It("reads the yaml file", func() {
			path := writeFile("core.yaml", `
ccid: emissions:abc
address: 0.0.0.0:9999
tls:
  disabled: false
  key: /tls/key.pem
  cert: /tls/cert.pem
  clientCACert: /tls/ca.pem
logging:
  spec: debug
  format: json
`)
			conf, err := ccconfig.Load(path, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf).To(Equal(ccconfig.Config{
				CCID:    "emissions:abc",
				Address: "0.0.0.0:9999",
				TLS: ccconfig.TLS{
					KeyFile:          "/tls/key.pem",
					CertFile:         "/tls/cert.pem",
					ClientCACertFile: "/tls/ca.pem",
				},
				Logging: ccconfig.Logging{Spec: "debug", Format: "json"},
			}))
			Expect(conf.ServerMode()).To(BeTrue())
		})

		It("lets the environment override the file", func() {
			path := writeFile("core.yaml", "ccid: from-file\naddress: 0.0.0.0:9999\n")
			os.Setenv("CHAINCODE_ID", "from-env")
			os.Setenv("CORE_CHAINCODE_LOGGING_LEVEL", "warn")

			conf, err := ccconfig.Load(path, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf.CCID).To(Equal("from-env"))
			Expect(conf.Address).To(Equal("0.0.0.0:9999"))
			Expect(conf.Logging.Spec).To(Equal("warn"))
		})

		It("reads tls settings from the environment", func() {
			os.Setenv("CHAINCODE_ID", "cc:1")
			os.Setenv("CHAINCODE_SERVER_ADDRESS", "0.0.0.0:9999")
			os.Setenv("CHAINCODE_TLS_DISABLED", "false")
			os.Setenv("CHAINCODE_TLS_KEY", "/k")
			os.Setenv("CHAINCODE_TLS_CERT", "/c")
			os.Setenv("CHAINCODE_CLIENT_CA_CERT", "/ca")

			conf, err := ccconfig.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf.TLS).To(Equal(ccconfig.TLS{KeyFile: "/k", CertFile: "/c", ClientCACertFile: "/ca"}))
		})

		It("lets changed flags override the environment", func() {
			os.Setenv("CHAINCODE_ID", "from-env")
			os.Setenv("CHAINCODE_LOGGING_FORMAT", "json")
			flags := newFlags()
			Expect(flags.Parse([]string{"--ccid", "from-flag", "--address", "127.0.0.1:7052", "--dev"})).To(Succeed())

			conf, err := ccconfig.Load("", flags)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf.CCID).To(Equal("from-flag"))
			Expect(conf.Address).To(Equal("127.0.0.1:7052"))
			Expect(conf.Logging.Format).To(Equal("json"))
			Expect(conf.Logging.Development).To(BeTrue())
		})

		It("ignores flags that were not set", func() {
			os.Setenv("CHAINCODE_LOGGING_FORMAT", "json")
			flags := newFlags()
			Expect(flags.Parse(nil)).To(Succeed())

			conf, err := ccconfig.Load("", flags)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf.Logging.Format).To(Equal("json"))
			Expect(conf.Logging.Development).To(BeFalse())
		})

		It("fails on a missing file", func() {
			_, err := ccconfig.Load(filepath.Join(tempDir, "missing.yaml"), nil)
			Expect(err).To(MatchError(ContainSubstring("no such file or directory")))
		})

		It("fails on a bad file", func() {
			path := writeFile("bad.yaml", "ccid: [unterminated")
			_, err := ccconfig.Load(path, nil)
			Expect(err).To(MatchError(ContainSubstring("error unmarshaling YAML file")))
		})
	})

	Describe("Validate", func() {
		It("requires a ccid in server mode", func() {
			conf := ccconfig.Defaults()
			conf.Address = "0.0.0.0:9999"
			Expect(conf.Validate()).To(MatchError("ccid is required when address is set"))

			os.Setenv("CHAINCODE_SERVER_ADDRESS", "0.0.0.0:9999")
			_, err := ccconfig.Load("", nil)
			Expect(err).To(MatchError("ccid is required when address is set"))
		})

		It("requires tls files when tls is enabled", func() {
			conf := ccconfig.Config{CCID: "cc:1", Address: "0.0.0.0:9999"}
			Expect(conf.Validate()).To(MatchError("tls key and cert files are required when tls is enabled"))

			conf.TLS.KeyFile = "/k"
			conf.TLS.CertFile = "/c"
			Expect(conf.Validate()).To(Succeed())
		})
	})

	Describe("ToFile", func() {
		It("saves a config that can be loaded back", func() {
			path := filepath.Join(tempDir, "saved.yaml")
			conf := ccconfig.Config{
				CCID:    "cc:1",
				Address: "0.0.0.0:9999",
				TLS:     ccconfig.TLS{Disabled: true},
				Logging: ccconfig.Logging{Spec: "info:request_manager=debug", Format: "json"},
			}
			Expect(conf.ToFile(path)).To(Succeed())

			loaded, err := ccconfig.ConfigFromFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(conf))
		})

		It("does not save an invalid config", func() {
			conf := ccconfig.Config{Address: "0.0.0.0:9999"}
			err := conf.ToFile(filepath.Join(tempDir, "invalid.yaml"))
			Expect(err).To(MatchError(ContainSubstring("config isn't valid")))
		})
	})
})
