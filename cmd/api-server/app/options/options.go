package options

import (
	"errors"
	"os"

	"github.com/akamensky/argparse"
)

type Options struct {
	LogFile   *string
	AccessLog *string
	CertFile  *string
	KeyFile   *string
	Mode      *string
	Port      *int
	Persist   *bool
	parser    *argparse.Parser
}

func NewOptions() (*Options, error) {
	return Parse(os.Args)
}

// Parse reads the api-server flags from args, args[0] being the program name.
func Parse(args []string) (*Options, error) {
	option := &Options{}

	parser := argparse.NewParser("trends-dashboard", "Argument Parser for api-server configurations")
	option.parser = parser

	option.LogFile = parser.String("l", "log-file", &argparse.Options{
		Help:    "log-file name",
		Default: "/var/log/trends-dashboard.log",
	})
	option.AccessLog = parser.String("a", "access-log", &argparse.Options{
		Help: "access log file name, rotated daily (stdout when empty)",
	})
	option.CertFile = parser.String("", "tls-cert-file", &argparse.Options{
		Help: "CertFile containing the defaultx509 Certificate for HTTPS. (CA cert)",
	})
	option.KeyFile = parser.String("", "tls-private-key-file", &argparse.Options{
		Help: "Private key file containing the default x509 private key matching --tls-cert-file",
	})
	option.Port = parser.Int("p", "port", &argparse.Options{
		Help:    "The port used by api-server",
		Default: 8000,
	})
	option.Mode = parser.Selector("m", "mode", []string{"release", "development", "debug"}, &argparse.Options{
		Help:    "Choose release/development mode (default debug mode)",
		Default: "debug",
	})
	option.Persist = parser.Flag("", "persist", &argparse.Options{
		Help: "Store fetched search volume in postgres and serve /search-volume/history",
	})

	if err := parser.Parse(args); err != nil {
		return option, err
	}

	if err := option.Validate(); err != nil {
		return option, err
	}
	return option, nil
}

func (o *Options) Validate() error {
	if (*o.CertFile == "") != (*o.KeyFile == "") {
		return errors.New("certificate/private key both must be present or neither must be present")
	}
	if *o.Port < 1 || *o.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

func (o *Options) Usage(err error) string {
	return o.parser.Usage(err)
}
