package money

import (
	"errors"
	"testing"

	"github.com/decfin/money/decimal"
)

func TestAmount_Allocate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			ratios       []int
			want         []string
		}{
			{"USD", "10.00", []int{1, 1, 1}, []string{"USD 3.34", "USD 3.33", "USD 3.33"}},
			{"USD", "0.05", []int{3, 7}, []string{"USD 0.02", "USD 0.03"}},
			{"USD", "1.00", []int{1, 2, 3}, []string{"USD 0.17", "USD 0.33", "USD 0.50"}},
			{"USD", "-10.00", []int{1, 1, 1}, []string{"USD -3.33", "USD -3.33", "USD -3.34"}},
			{"USD", "0.00", []int{1, 2}, []string{"USD 0.00", "USD 0.00"}},
			{"JPY", "100", []int{1, 1, 1}, []string{"JPY 34", "JPY 33", "JPY 33"}},
			{"OMR", "0.100", []int{1, 1, 1}, []string{"OMR 0.034", "OMR 0.033", "OMR 0.033"}},
			{"USD", "7.00", []int{50, 50}, []string{"USD 3.50", "USD 3.50"}},
		}
		for _, tt := range tests {
			a := MustParse(tt.curr, tt.amount)
			got, err := a.Allocate(tt.ratios...)
			if err != nil {
				t.Errorf("%q.Allocate(%v) failed: %v", a, tt.ratios, err)
				continue
			}
			if len(got) != len(tt.want) {
				t.Errorf("%q.Allocate(%v) returned %v parts, want %v", a, tt.ratios, len(got), len(tt.want))
				continue
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("%q.Allocate(%v)[%v] = %q, want %q", a, tt.ratios, i, got[i], tt.want[i])
				}
			}
		}
	})

	t.Run("sum", func(t *testing.T) {
		a := MustParse("USD", "123.47")
		parts, err := a.Allocate(7, 11, 13, 3)
		if err != nil {
			t.Fatalf("%q.Allocate(7, 11, 13, 3) failed: %v", a, err)
		}
		sum := a.Zero()
		for _, p := range parts {
			sum, err = sum.Add(p)
			if err != nil {
				t.Fatalf("summing parts failed: %v", err)
			}
		}
		if ok, _ := sum.Equal(a); !ok {
			t.Errorf("sum of parts = %q, want %q", sum, a)
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParse("USD", "10.00")
		tests := [][]int{
			{},
			{0},
			{-1, 2},
			{1, 0, 1},
		}
		for _, tt := range tests {
			_, err := a.Allocate(tt...)
			if !errors.Is(err, decimal.ErrInvalidRatios) {
				t.Errorf("%q.Allocate(%v) = %v, want invalid ratios", a, tt, err)
			}
		}
	})
}

func TestAmount_Split(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			parts        int
			want         []string
		}{
			{"USD", "10.00", 3, []string{"USD 3.34", "USD 3.33", "USD 3.33"}},
			{"USD", "0.01", 2, []string{"USD 0.01", "USD 0.00"}},
			{"USD", "1.00", 1, []string{"USD 1.00"}},
			{"JPY", "7", 2, []string{"JPY 4", "JPY 3"}},
		}
		for _, tt := range tests {
			a := MustParse(tt.curr, tt.amount)
			got, err := a.Split(tt.parts)
			if err != nil {
				t.Errorf("%q.Split(%v) failed: %v", a, tt.parts, err)
				continue
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("%q.Split(%v)[%v] = %q, want %q", a, tt.parts, i, got[i], tt.want[i])
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParse("USD", "10.00")
		for _, parts := range []int{0, -1} {
			if _, err := a.Split(parts); err == nil {
				t.Errorf("%q.Split(%v) did not fail", a, parts)
			}
		}
	})
}
