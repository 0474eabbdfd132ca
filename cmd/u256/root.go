package main

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	num "github.com/EccentricBlock/Eccentricware.Web3.DataTypes-sub000"
)

const (
	configName      = ".u256.toml"
	defaultDecimals = 18
)

// app holds the global flags shared by every subcommand, after the config
// file has been merged in.
type app struct {
	out io.Writer
	log *zap.Logger

	configPath string
	verbose    bool
	signed     bool
	upper      bool
	noPrefix   bool
	fixed      bool
	decimals   int
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "u256",
		Short: "Convert, inspect and calculate with 256-bit integers",
		Long: `u256 works with the fixed width 256-bit integers used by EVM chains.
Values are read as decimal, or as hex with a 0x prefix. Pass --signed to
treat them as two's complement I256 values; put -- before negative
arguments so they are not read as flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $HOME/"+configName+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.BoolVar(&a.signed, "signed", false, "treat values as signed I256")
	flags.BoolVar(&a.upper, "upper", false, "upper-case hex digits")
	flags.BoolVar(&a.noPrefix, "no-prefix", false, "omit the 0x prefix from hex output")
	flags.BoolVar(&a.fixed, "fixed", false, "write hex as all 64 digits")

	cmd.AddCommand(
		newConvertCmd(a),
		newCalcCmd(a),
		newScaleCmd(a),
		newInspectCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return errors.Wrap(err, "u256: logger")
		}
		a.log = log
	}

	path, explicit := a.configPath, a.configPath != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			a.log.Debug("no home directory, skipping config", zap.Error(err))
			return nil
		}
		path = filepath.Join(home, configName)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			a.log.Debug("no config file", zap.String("path", path))
			return nil
		}
		return err
	}
	a.log.Debug("loaded config", zap.String("path", path), zap.Any("config", cfg))
	cfg.apply(a, cmd.Flags())
	return nil
}

func (a *app) hexFlags() num.HexFlags {
	var flags num.HexFlags
	if !a.noPrefix {
		flags |= num.HexPrefix
	}
	if a.upper {
		flags |= num.HexUpper
	}
	return flags
}

func (a *app) hexU256(u num.U256) string {
	if a.fixed {
		return string(u.AppendHex64(nil, a.hexFlags()))
	}
	return string(u.AppendHex(nil, a.hexFlags()))
}

func (a *app) hexI256(i num.I256) string {
	if a.fixed {
		return string(i.AppendHex64(nil, a.hexFlags()))
	}
	return string(i.AppendHex(nil, a.hexFlags()))
}

func (a *app) parseU256(s string) (num.U256, error) {
	u, err := num.ParseU256(s)
	a.log.Debug("parse u256", zap.String("input", s), zap.Error(err))
	return u, err
}

func (a *app) parseI256(s string) (num.I256, error) {
	i, err := num.ParseI256(s)
	a.log.Debug("parse i256", zap.String("input", s), zap.Error(err))
	return i, err
}
