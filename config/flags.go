package config

import (
	"github.com/spf13/pflag"
)

var CliArgs *CliConfig

type CliConfig struct {
	ConfigFile string
	Debug      bool
	Version    bool
	Mode       string
	Listen     string
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"mode":           "mode",
	"listen_address": "listen",
}

// NewFlagSet defines the command line flags, storing values into args.
func NewFlagSet(name string, args *CliConfig) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVar(&args.ConfigFile, "config", "", "Path to the config file")
	fs.BoolVarP(&args.Debug, "debug", "d", false, "Enable debug mode")
	fs.BoolVarP(&args.Version, "version", "v", false, "Print version and exit")
	fs.StringVar(&args.Mode, "mode", ModeAuto, "Run mode: auto, lambda or http")
	fs.StringVar(&args.Listen, "listen", "", "Address for the local HTTP server")
	return fs
}

// ParseArgs parses the process arguments into CliArgs and returns the flag set for binding.
func ParseArgs(arguments []string) (*pflag.FlagSet, error) {
	if CliArgs != nil {
		panic("already defined")
	}
	CliArgs = &CliConfig{}
	fs := NewFlagSet("pptxgen", CliArgs)
	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}
	return fs, nil
}
