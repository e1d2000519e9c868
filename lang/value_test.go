package lang

import (
	"errors"
	"math"
	"testing"

	"github.com/sergev/arith/diag"
)

func TestNumberArithmeticPromotion(t *testing.T) {
	type op func(Number, Number) (Number, error)
	add := Number.Add
	sub := Number.Sub
	mul := Number.Mul
	div := Number.Div
	pow := Number.Pow

	cases := []struct {
		name string
		fn   op
		a, b Number
		want Number
	}{
		{"int add", add, IntNumber(2), IntNumber(3), IntNumber(5)},
		{"int sub", sub, IntNumber(2), IntNumber(3), IntNumber(-1)},
		{"int mul", mul, IntNumber(4), IntNumber(-3), IntNumber(-12)},
		{"mixed add", add, IntNumber(1), FloatNumber(0.5), FloatNumber(1.5)},
		{"float mul", mul, FloatNumber(1.5), FloatNumber(2), FloatNumber(3)},
		{"int div is float", div, IntNumber(6), IntNumber(2), FloatNumber(3)},
		{"int div fraction", div, IntNumber(7), IntNumber(2), FloatNumber(3.5)},
		{"int pow stays int", pow, IntNumber(2), IntNumber(10), IntNumber(1024)},
		{"negative base", pow, IntNumber(-2), IntNumber(3), IntNumber(-8)},
		{"zero exponent", pow, IntNumber(5), IntNumber(0), IntNumber(1)},
		{"negative exponent is float", pow, IntNumber(2), IntNumber(-1), FloatNumber(0.5)},
		{"float exponent", pow, IntNumber(4), FloatNumber(0.5), FloatNumber(2)},
		{"zero to zero", pow, IntNumber(0), IntNumber(0), IntNumber(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.a, tc.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %s (%s), want %s (%s)", got, got.Kind, tc.want, tc.want.Kind)
			}
		})
	}
}

func TestNumberOverflowPromotesToFloat(t *testing.T) {
	got, _ := IntNumber(math.MaxInt64).Add(IntNumber(1))
	if got.Kind != KindFloat || got.Float() != 9223372036854775808 {
		t.Fatalf("expected float promotion on add overflow, got %s (%s)", got, got.Kind)
	}
	got, _ = IntNumber(math.MinInt64).Sub(IntNumber(1))
	if got.Kind != KindFloat {
		t.Fatalf("expected float promotion on sub overflow, got %s", got.Kind)
	}
	got, _ = IntNumber(math.MinInt64).Mul(IntNumber(-1))
	if got.Kind != KindFloat || got.Float() != 9223372036854775808 {
		t.Fatalf("expected float promotion on negating MinInt64, got %s", got)
	}
	got, _ = IntNumber(2).Pow(IntNumber(64))
	if got.Kind != KindFloat || got.Float() != math.Pow(2, 64) {
		t.Fatalf("expected float promotion on pow overflow, got %s", got)
	}
	got, _ = IntNumber(2).Pow(IntNumber(62))
	if got.Kind != KindInt || got.Int() != 1<<62 {
		t.Fatalf("expected exact 2^62, got %s", got)
	}
}

func TestNumberDivisionByZero(t *testing.T) {
	text := "5/0"
	start := diag.Start("<t>", text)
	zeroStart := start.Advance('5').Advance('/')
	zeroSpan := diag.Span{Start: zeroStart, End: zeroStart.Advance('0')}
	ctx := diag.NewProgramContext()

	for _, zero := range []Number{IntNumber(0), FloatNumber(0)} {
		_, err := IntNumber(5).WithContext(ctx).Div(zero.WithSpan(zeroSpan))
		var d *diag.Diagnostic
		if !errors.As(err, &d) {
			t.Fatalf("expected diagnostic for %s divisor, got %v", zero.Kind, err)
		}
		if d.Kind != diag.RuntimeError || d.Message != "Division by Zero" {
			t.Fatalf("unexpected diagnostic %v", d)
		}
		if d.Start.Offset != 2 || d.End.Offset != 3 || d.Context != ctx {
			t.Fatalf("expected diagnostic on the divisor with context, got %+v", d)
		}
	}

	if _, err := IntNumber(0).Pow(IntNumber(-2)); err == nil {
		t.Fatalf("expected zero to a negative power to fail")
	}
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		n    Number
		want string
	}{
		{IntNumber(7), "7"},
		{IntNumber(-42), "-42"},
		{FloatNumber(3.5), "3.5"},
		{FloatNumber(3), "3.0"},
		{FloatNumber(0), "0.0"},
		{FloatNumber(math.Copysign(0, -1)), "-0.0"},
		{FloatNumber(0.1), "0.1"},
		{FloatNumber(1e16), "1e+16"},
		{FloatNumber(123456789), "123456789.0"},
		{FloatNumber(0.00001), "1e-05"},
		{FloatNumber(math.Inf(1)), "inf"},
		{FloatNumber(math.Inf(-1)), "-inf"},
		{FloatNumber(math.NaN()), "nan"},
	}
	for _, tc := range cases {
		if got := tc.n.String(); got != tc.want {
			t.Errorf("String() => %q, want %q", got, tc.want)
		}
	}
}

func TestNumberLocationDoesNotAffectValue(t *testing.T) {
	ctx := diag.NewProgramContext()
	a := IntNumber(3).WithContext(ctx)
	b := IntNumber(3)
	if !a.Equal(b) {
		t.Fatalf("location and context must not affect equality")
	}
	sum, _ := a.Add(b)
	if sum.Context != ctx {
		t.Fatalf("expected result to keep the left operand's context")
	}
	if IntNumber(3).Equal(FloatNumber(3)) {
		t.Fatalf("int and float with equal magnitude differ in kind")
	}
}
