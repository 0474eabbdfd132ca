package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	num "github.com/EccentricBlock/Eccentricware.Web3.DataTypes-sub000"
)

func newScaleCmd(a *app) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "scale <value>",
		Short: "Convert token amounts to base units, or back with --down",
		Example: `  u256 scale 1.5                 # 1500000000000000000
  u256 scale --decimals 6 12.34   # 12340000
  u256 scale --down 1500000000000000000   # 1.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.scale(args[0], down)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
	cmd.Flags().IntVar(&a.decimals, "decimals", defaultDecimals, "number of decimals of the token")
	cmd.Flags().BoolVar(&down, "down", false, "convert base units to a token amount")
	return cmd
}

func (a *app) scale(in string, down bool) (string, error) {
	if a.signed {
		return "", errors.New("scale: --signed is not supported")
	}
	decimals, err := safecast.Conv[uint](a.decimals)
	if err != nil {
		return "", errors.Wrapf(err, "scale: invalid decimals %d", a.decimals)
	}
	a.log.Debug("scale", zap.String("input", in), zap.Uint("decimals", decimals), zap.Bool("down", down))

	if down {
		u, err := a.parseU256(in)
		if err != nil {
			return "", err
		}
		return u.FormatUnits(decimals), nil
	}

	u, err := num.ParseUnits(in, decimals)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
