package decimal

import (
	"math/rand"
	"strings"
	"testing"

	ss "github.com/shopspring/decimal"
)

// randDecimal returns a random decimal of up to 25 digits together with its
// string form.
func randDecimal(rng *rand.Rand) (Decimal, string) {
	var b strings.Builder
	if rng.Intn(2) == 0 {
		b.WriteByte('-')
	}
	digits := rng.Intn(25) + 1
	for i := 0; i < digits; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	s := b.String()
	scale := rng.Intn(10)
	if scale > 0 && scale < digits {
		s = s[:len(s)-scale] + "." + s[len(s)-scale:]
	}
	return MustParse(s), s
}

// mustSS parses a string with the reference implementation.
func mustSS(t *testing.T, s string) ss.Decimal {
	t.Helper()
	d, err := ss.NewFromString(s)
	if err != nil {
		t.Fatalf("reference parse of %q failed: %v", s, err)
	}
	return d
}

// assertSame fails if got does not represent the same numeric value as want.
// Comparison goes through the reference parser, so differences in trailing
// zeros between the two string forms do not matter.
func assertSame(t *testing.T, op string, got Decimal, want ss.Decimal) {
	t.Helper()
	g := mustSS(t, got.String())
	if g.Cmp(want) != 0 {
		t.Errorf("%s = %q, reference got %q", op, got, want)
	}
}

func TestDecimal_CrossCheckArith(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		d, ds := randDecimal(rng)
		e, es := randDecimal(rng)
		sd := mustSS(t, ds)
		se := mustSS(t, es)

		assertSame(t, ds+" + "+es, d.Add(e), sd.Add(se))
		assertSame(t, ds+" - "+es, d.Sub(e), sd.Sub(se))
		assertSame(t, ds+" * "+es, d.Mul(e), sd.Mul(se))

		if got, want := d.Cmp(e), sd.Cmp(se); got != want {
			t.Errorf("%q.Cmp(%q) = %v, reference got %v", ds, es, got, want)
		}
	}
}

func TestDecimal_CrossCheckQuo(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		d, ds := randDecimal(rng)
		e, es := randDecimal(rng)
		if e.IsZero() {
			continue
		}
		scale := rng.Intn(10)

		// the reference DivRound rounds half away from zero
		got, err := d.Quo(e, scale, RoundHalfUp)
		if err != nil {
			t.Fatalf("%q.Quo(%q, %v, half-up) failed: %v", ds, es, scale, err)
		}
		want := mustSS(t, ds).DivRound(mustSS(t, es), int32(scale))
		assertSame(t, ds+" / "+es, got, want)
	}
}

func TestDecimal_CrossCheckRound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		d, ds := randDecimal(rng)
		scale := rng.Intn(10)
		if scale >= d.Scale() {
			continue
		}

		// the reference RoundBank is half-even, like Round
		got := d.Round(scale)
		want := mustSS(t, ds).RoundBank(int32(scale))
		assertSame(t, "round("+ds+")", got, want)
	}
}
