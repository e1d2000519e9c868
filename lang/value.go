package lang

import (
	"math"
	"strconv"
	"strings"

	"github.com/sergev/arith/diag"
)

// NumberKind tells whether a Number holds an exact integer or a float.
type NumberKind int

const (
	KindInt NumberKind = iota
	KindFloat
)

func (k NumberKind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "int"
}

// Number is the runtime value of an expression. Span and Context record where
// the value came from; they never affect arithmetic.
type Number struct {
	Kind    NumberKind
	i       int64
	f       float64
	Span    diag.Span
	Context *diag.Context
}

// IntNumber constructs an integer Number.
func IntNumber(i int64) Number {
	return Number{Kind: KindInt, i: i}
}

// FloatNumber constructs a floating-point Number.
func FloatNumber(f float64) Number {
	return Number{Kind: KindFloat, f: f}
}

// Int returns the integer magnitude, truncating floats.
func (n Number) Int() int64 {
	if n.Kind == KindFloat {
		return int64(n.f)
	}
	return n.i
}

// Float returns the magnitude as a float64.
func (n Number) Float() float64 {
	if n.Kind == KindFloat {
		return n.f
	}
	return float64(n.i)
}

// IsZero reports whether the magnitude is exactly zero.
func (n Number) IsZero() bool {
	if n.Kind == KindFloat {
		return n.f == 0
	}
	return n.i == 0
}

// WithSpan returns a copy of n located at span.
func (n Number) WithSpan(span diag.Span) Number {
	n.Span = span
	return n
}

// WithContext returns a copy of n owned by ctx.
func (n Number) WithContext(ctx *diag.Context) Number {
	n.Context = ctx
	return n
}

// Equal compares magnitudes and kinds, ignoring location.
func (n Number) Equal(o Number) bool {
	if n.Kind != o.Kind {
		return false
	}
	if n.Kind == KindFloat {
		return n.f == o.f || (math.IsNaN(n.f) && math.IsNaN(o.f))
	}
	return n.i == o.i
}

// Add returns n + o.
func (n Number) Add(o Number) (Number, error) {
	if n.Kind == KindInt && o.Kind == KindInt {
		s := n.i + o.i
		if (n.i^s)&(o.i^s) >= 0 {
			return n.result(IntNumber(s)), nil
		}
	}
	return n.result(FloatNumber(n.Float() + o.Float())), nil
}

// Sub returns n - o.
func (n Number) Sub(o Number) (Number, error) {
	if n.Kind == KindInt && o.Kind == KindInt {
		d := n.i - o.i
		if (n.i^o.i)&(n.i^d) >= 0 {
			return n.result(IntNumber(d)), nil
		}
	}
	return n.result(FloatNumber(n.Float() - o.Float())), nil
}

// Mul returns n * o.
func (n Number) Mul(o Number) (Number, error) {
	if n.Kind == KindInt && o.Kind == KindInt {
		if p, ok := mulInt(n.i, o.i); ok {
			return n.result(IntNumber(p)), nil
		}
	}
	return n.result(FloatNumber(n.Float() * o.Float())), nil
}

// Div returns n / o, always as a float. Dividing by zero is a runtime error
// located at o.
func (n Number) Div(o Number) (Number, error) {
	if o.IsZero() {
		return Number{}, diag.NewRuntimeError(o.Span, n.Context, "Division by Zero")
	}
	return n.result(FloatNumber(n.Float() / o.Float())), nil
}

// Pow returns n raised to o. Integer operands with a non-negative exponent
// stay exact; a negative exponent or any float operand yields a float.
func (n Number) Pow(o Number) (Number, error) {
	if n.IsZero() && o.Float() < 0 {
		return Number{}, diag.NewRuntimeError(o.Span, n.Context, "Division by Zero")
	}
	if n.Kind == KindInt && o.Kind == KindInt && o.Int() >= 0 {
		if p, ok := powInt(n.Int(), o.Int()); ok {
			return n.result(IntNumber(p)), nil
		}
	}
	return n.result(FloatNumber(math.Pow(n.Float(), o.Float()))), nil
}

func (n Number) result(r Number) Number {
	r.Context = n.Context
	return r
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func powInt(base, exp int64) (int64, bool) {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			var ok bool
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// String returns the bare magnitude: integers in decimal, floats the way
// Python's repr prints them (3.0, 0.5, 1e+16, inf).
func (n Number) String() string {
	if n.Kind == KindInt {
		return strconv.FormatInt(n.i, 10)
	}
	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}
