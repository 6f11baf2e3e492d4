package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rowmath/places"
)

var result = color.New(color.FgGreen)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Compute a + b",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e places.ErrRow
		sum := e.Add(e.Parse(args[0]), e.Parse(args[1]))
		if e.Err != nil {
			return e.Err
		}
		result.Fprintln(cmd.OutOrStdout(), sum)
		return nil
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <minuend> <subtrahend>",
	Short: "Compute minuend - subtrahend",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e places.ErrRow
		diff := e.Sub(e.Parse(args[0]), e.Parse(args[1]))
		if e.Err != nil {
			return e.Err
		}
		result.Fprintln(cmd.OutOrStdout(), diff)
		return nil
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul <a> <b>",
	Short: "Compute a × b",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e places.ErrRow
		prod := e.Mul(e.Parse(args[0]), e.Parse(args[1]))
		if e.Err != nil {
			return e.Err
		}
		result.Fprintln(cmd.OutOrStdout(), prod)
		return nil
	},
}

var powCmd = &cobra.Command{
	Use:   "pow <base> <exponent>",
	Short: "Compute base raised to exponent (exponent below 65536)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			return fmt.Errorf("parse exponent %q: %w", args[1], err)
		}
		var e places.ErrRow
		pow := e.Pow(e.Parse(args[0]), uint16(exp))
		if e.Err != nil {
			return e.Err
		}
		result.Fprintln(cmd.OutOrStdout(), pow)
		return nil
	},
}

var divremCmd = &cobra.Command{
	Use:   "divrem <dividend> <divisor>",
	Short: "Compute quotient and remainder of dividend ÷ divisor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e places.ErrRow
		q, r := e.DivRem(e.Parse(args[0]), e.Parse(args[1]))
		if e.Err != nil {
			return e.Err
		}
		result.Fprintf(cmd.OutOrStdout(), "%s r %s\n", q, r)
		return nil
	},
}

var cmpCmd = &cobra.Command{
	Use:   "cmp <a> <b>",
	Short: "Compare a to b",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e places.ErrRow
		rel := e.Compare(e.Parse(args[0]), e.Parse(args[1]))
		if e.Err != nil {
			return e.Err
		}
		result.Fprintln(cmd.OutOrStdout(), rel)
		return nil
	},
}
