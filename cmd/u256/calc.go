package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	num "github.com/EccentricBlock/Eccentricware.Web3.DataTypes-sub000"
)

var calcOps = []string{"add", "sub", "mul", "div", "mod", "lsh", "rsh"}

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <op> <a> <b>",
		Short: "Checked arithmetic: add sub mul div mod, or lsh rsh by a bit count",
		Long: `calc applies op to a and b. Overflow and division by zero are reported as
errors rather than wrapping. For lsh and rsh, b is the shift count.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: calcOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.calc(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
}

func parseShift(s string) (uint, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "calc: invalid shift %q", s)
	}
	shift, err := safecast.Conv[uint](n)
	if err != nil {
		return 0, errors.Wrapf(err, "calc: invalid shift %q", s)
	}
	return shift, nil
}

func (a *app) calc(op, x, y string) (string, error) {
	a.log.Debug("calc", zap.String("op", op), zap.Bool("signed", a.signed))
	if a.signed {
		return a.calcI256(op, x, y)
	}
	return a.calcU256(op, x, y)
}

func (a *app) calcU256(op, x, y string) (string, error) {
	u, err := a.parseU256(x)
	if err != nil {
		return "", err
	}

	var out num.U256
	switch op {
	case "lsh", "rsh":
		shift, err := parseShift(y)
		if err != nil {
			return "", err
		}
		if op == "lsh" {
			out = u.Lsh(shift)
		} else {
			out = u.Rsh(shift)
		}
		return a.formatU256(out), nil
	}

	v, err := a.parseU256(y)
	if err != nil {
		return "", err
	}
	switch op {
	case "add":
		out, err = u.AddChecked(v)
	case "sub":
		out, err = u.SubChecked(v)
	case "mul":
		out, err = u.MulChecked(v)
	case "div":
		out, err = u.QuoChecked(v)
	case "mod":
		out, err = u.RemChecked(v)
	default:
		return "", errors.Errorf("calc: unknown op %q, expected one of %v", op, calcOps)
	}
	if err != nil {
		return "", err
	}
	return a.formatU256(out), nil
}

func (a *app) calcI256(op, x, y string) (string, error) {
	i, err := a.parseI256(x)
	if err != nil {
		return "", err
	}

	var out num.I256
	switch op {
	case "lsh", "rsh":
		shift, err := parseShift(y)
		if err != nil {
			return "", err
		}
		if op == "lsh" {
			out = i.Lsh(shift)
		} else {
			out = i.Rsh(shift)
		}
		return a.formatI256(out), nil
	}

	v, err := a.parseI256(y)
	if err != nil {
		return "", err
	}
	switch op {
	case "add":
		out, err = i.AddChecked(v)
	case "sub":
		out, err = i.SubChecked(v)
	case "mul":
		out, err = i.MulChecked(v)
	case "div":
		out, err = i.QuoChecked(v)
	case "mod":
		out, err = i.RemChecked(v)
	default:
		return "", errors.Errorf("calc: unknown op %q, expected one of %v", op, calcOps)
	}
	if err != nil {
		return "", err
	}
	return a.formatI256(out), nil
}

func (a *app) formatU256(u num.U256) string { return u.String() + " " + a.hexU256(u) }
func (a *app) formatI256(i num.I256) string { return i.String() + " " + a.hexI256(i) }
