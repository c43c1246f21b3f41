package main

import (
	"bytes"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			args []string
			want string
		}{
			{[]string{"add", "USD", "1.20", "3.40"}, "USD 4.60\n"},
			{[]string{"sub", "USD", "1.20", "3.40"}, "USD -2.20\n"},
			{[]string{"mul", "USD", "2.00", "1.5"}, "USD 3.00\n"},
			{[]string{"div", "USD", "10.00", "3"}, "USD 3.33\n"},
			{[]string{"div", "--rounding", "up", "USD", "10.00", "3"}, "USD 3.34\n"},
			{[]string{"split", "USD", "10.00", "3"}, "USD 3.34\nUSD 3.33\nUSD 3.33\n"},
			{[]string{"allocate", "USD", "0.05", "3", "7"}, "USD 0.02\nUSD 0.03\n"},
		}
		for _, tt := range tests {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Errorf("moneycalc %v failed: %v", tt.args, err)
				continue
			}
			if got != tt.want {
				t.Errorf("moneycalc %v = %q, want %q", tt.args, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := [][]string{
			{"add", "UUU", "1", "2"},
			{"add", "USD", "abc", "2"},
			{"div", "USD", "10.00", "0"},
			{"div", "--rounding", "sideways", "USD", "10.00", "3"},
			{"split", "USD", "10.00", "0"},
			{"allocate", "USD", "10.00", "-1"},
		}
		for _, tt := range tests {
			if _, err := run(t, tt...); err == nil {
				t.Errorf("moneycalc %v did not fail", tt)
			}
		}
	})
}
