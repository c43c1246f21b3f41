// moneycalc is a command-line calculator for exact monetary arithmetic.
//
//	moneycalc add USD 1.20 3.40
//	moneycalc div --rounding half-up USD 10.00 3
//	moneycalc split USD 10.00 3
//	moneycalc allocate USD 0.05 3 7
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/decfin/money"
	"github.com/decfin/money/decimal"
)

var roundingFlag string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "moneycalc",
		Short:         "Exact monetary arithmetic on the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&roundingFlag, "rounding", decimal.RoundHalfEven.String(),
		"rounding mode: half-even, half-up, half-down, half-ceiling, half-floor, up, down, ceiling, floor or unnecessary")

	cmd.AddCommand(
		addCmd(),
		subCmd(),
		mulCmd(),
		divCmd(),
		splitCmd(),
		allocateCmd(),
	)
	return cmd
}

func rounding() (decimal.RoundingMode, error) {
	mode, err := decimal.ParseMode(roundingFlag)
	if err != nil {
		return 0, fmt.Errorf("invalid --rounding flag: %w", err)
	}
	return mode, nil
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add CURRENCY AMOUNT AMOUNT",
		Short: "Add two amounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			sum, err := a.Add(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}

func subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub CURRENCY AMOUNT AMOUNT",
		Short: "Subtract one amount from another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			diff, err := a.Sub(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}

func mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul CURRENCY AMOUNT FACTOR",
		Short: "Multiply an amount by a decimal factor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := rounding()
			if err != nil {
				return err
			}
			a, err := money.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			e, err := decimal.Parse(args[2])
			if err != nil {
				return fmt.Errorf("parsing factor: %w", err)
			}
			prod, err := a.Mul(e, mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prod)
			return nil
		},
	}
}

func divCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div CURRENCY AMOUNT DIVISOR",
		Short: "Divide an amount by a decimal divisor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := rounding()
			if err != nil {
				return err
			}
			a, err := money.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			e, err := decimal.Parse(args[2])
			if err != nil {
				return fmt.Errorf("parsing divisor: %w", err)
			}
			quo, err := a.Quo(e, mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), quo)
			return nil
		},
	}
}

func splitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split CURRENCY AMOUNT PARTS",
		Short: "Split an amount into equal parts without losing a minor unit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := money.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("parsing parts: %w", err)
			}
			parts, err := a.Split(n)
			if err != nil {
				return err
			}
			for _, p := range parts {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func allocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allocate CURRENCY AMOUNT RATIO...",
		Short: "Allocate an amount proportionally to the given ratios",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := money.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			ratios := make([]int, 0, len(args)-2)
			for _, arg := range args[2:] {
				r, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("parsing ratio %q: %w", arg, err)
				}
				ratios = append(ratios, r)
			}
			parts, err := a.Allocate(ratios...)
			if err != nil {
				return err
			}
			for _, p := range parts {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func parsePair(curr, a, b string) (money.Amount, money.Amount, error) {
	x, err := money.Parse(curr, a)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}
	y, err := money.Parse(curr, b)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}
	return x, y, nil
}
