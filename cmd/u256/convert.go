package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var labelColor = color.New(color.FgCyan, color.Bold)

func printField(w io.Writer, label string, value interface{}) {
	labelColor.Fprintf(w, "%-8s", label)
	fmt.Fprintf(w, " %v\n", value)
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value>",
		Short: "Print a value in every supported representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0])
		},
	}
}

func (a *app) convert(in string) error {
	var dec, minHex, fixedHex string
	var be, le [32]byte

	if a.signed {
		v, err := a.parseI256(in)
		if err != nil {
			return err
		}
		dec = v.String()
		minHex = string(v.AppendHex(nil, a.hexFlags()))
		fixedHex = string(v.AppendHex64(nil, a.hexFlags()))
		be, le = v.Bytes32(), v.Bytes32LE()
	} else {
		v, err := a.parseU256(in)
		if err != nil {
			return err
		}
		dec = v.String()
		minHex = string(v.AppendHex(nil, a.hexFlags()))
		fixedHex = string(v.AppendHex64(nil, a.hexFlags()))
		be, le = v.Bytes32(), v.Bytes32LE()
	}

	printField(a.out, "decimal", dec)
	printField(a.out, "hex", minHex)
	printField(a.out, "hex64", fixedHex)
	printField(a.out, "bytes", hex.EncodeToString(be[:]))
	printField(a.out, "bytesle", hex.EncodeToString(le[:]))
	return nil
}
