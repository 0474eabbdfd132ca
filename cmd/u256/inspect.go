package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	num "github.com/EccentricBlock/Eccentricware.Web3.DataTypes-sub000"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// limbDump is the raw storage of a value, most significant limb first.
type limbDump struct {
	Hi, Hm, Lm, Lo uint64
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <value>",
		Short: "Dump the limbs, byte count, bit length and sign of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(args[0])
		},
	}
}

func (a *app) inspect(in string) error {
	var u num.U256
	var bytes, bitLen, sign int

	if a.signed {
		v, err := a.parseI256(in)
		if err != nil {
			return err
		}
		u, bytes, bitLen, sign = v.AsU256(), v.ByteCount(), v.BitLen(), v.Sign()
	} else {
		v, err := a.parseU256(in)
		if err != nil {
			return err
		}
		u, bytes, bitLen = v, v.ByteCount(), v.BitLen()
		if !v.IsZero() {
			sign = 1
		}
	}

	var limbs limbDump
	limbs.Hi, limbs.Hm, limbs.Lm, limbs.Lo = u.Raw()
	dumper.Fdump(a.out, limbs)

	printField(a.out, "hex64", u.Hex64())
	printField(a.out, "bytes", bytes)
	printField(a.out, "bitlen", bitLen)
	printField(a.out, "sign", sign)
	return nil
}
