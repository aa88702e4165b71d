package stdlib

import (
	"math"
	"math/big"

	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
)

// registerArithmetic wires +, -, *, /, % and unary +/- for int and float
// (spec.md §4.4 "arithmetic"). Integer operations are overflow-checked
// against opts.IntWidth unless opts.UncheckedArithmetic is set, in which
// case they wrap like Go's own int64/int32 arithmetic. Float arithmetic
// never faults: IEEE-754 Inf/NaN propagate through untouched, matching
// the host language's own float semantics.
func registerArithmetic(reg *registry.Registry, opts Options) {
	w := opts.IntWidth
	checked := !opts.UncheckedArithmetic

	intOp := func(name string, big2 func(z, x, y *big.Int) *big.Int, wrap func(a, b int64) int64) {
		adapt(reg, name, func(a, b int64) (int64, error) {
			if checked {
				return checkedBinOp(w, a, b, big2, name)
			}
			return wrap(a, b), nil
		})
	}

	intOp("+", (*big.Int).Add, func(a, b int64) int64 { return wrapWidth(w, a+b) })
	intOp("-", (*big.Int).Sub, func(a, b int64) int64 { return wrapWidth(w, a-b) })
	intOp("*", (*big.Int).Mul, func(a, b int64) int64 { return wrapWidth(w, a*b) })

	adapt(reg, "/", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, rterr.NewArithmetic("division by zero")
		}
		if checked {
			return checkedBinOp(w, a, b, (*big.Int).Quo, "/")
		}
		return wrapWidth(w, a/b), nil
	})
	adapt(reg, "%", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, rterr.NewArithmetic("division by zero")
		}
		if checked {
			return checkedBinOp(w, a, b, (*big.Int).Rem, "%")
		}
		return wrapWidth(w, a%b), nil
	})

	adapt(reg, "-", func(a int64) (int64, error) {
		if checked {
			return checkedUnOp(w, a, (*big.Int).Neg, "-")
		}
		return wrapWidth(w, -a), nil
	})
	adapt(reg, "+", func(a int64) (int64, error) { return a, nil })

	adapt(reg, "+", func(a, b float64) (float64, error) { return a + b, nil })
	adapt(reg, "-", func(a, b float64) (float64, error) { return a - b, nil })
	adapt(reg, "*", func(a, b float64) (float64, error) { return a * b, nil })
	adapt(reg, "/", func(a, b float64) (float64, error) { return a / b, nil })
	adapt(reg, "%", func(a, b float64) (float64, error) { return math.Mod(a, b), nil })
	adapt(reg, "-", func(a float64) (float64, error) { return -a, nil })
	adapt(reg, "+", func(a float64) (float64, error) { return a, nil })

	adapt(reg, "abs", func(a int64) (int64, error) {
		if a >= 0 {
			return a, nil
		}
		if checked {
			return checkedUnOp(w, a, (*big.Int).Neg, "abs")
		}
		return wrapWidth(w, -a), nil
	})
	adapt(reg, "abs", func(a float64) (float64, error) { return math.Abs(a), nil })
}

// checkedBinOp computes op(a, b) in arbitrary precision, then rejects the
// result if it falls outside w's bounds — this catches every integer
// overflow case uniformly, including the MinInt64/-1 division overflow
// that a plain int64 check would miss.
func checkedBinOp(w value.IntWidth, a, b int64, op func(z, x, y *big.Int) *big.Int, name string) (int64, error) {
	r := op(new(big.Int), big.NewInt(a), big.NewInt(b))
	return boundCheck(w, r, name)
}

func checkedUnOp(w value.IntWidth, a int64, op func(z, x *big.Int) *big.Int, name string) (int64, error) {
	r := op(new(big.Int), big.NewInt(a))
	return boundCheck(w, r, name)
}

func boundCheck(w value.IntWidth, r *big.Int, name string) (int64, error) {
	lo, hi := w.Bounds()
	if r.Cmp(big.NewInt(lo)) < 0 || r.Cmp(big.NewInt(hi)) > 0 {
		return 0, rterr.NewArithmetic(name + " overflow")
	}
	return r.Int64(), nil
}

func wrapWidth(w value.IntWidth, v int64) int64 {
	if w == value.Width64 {
		return v
	}
	return int64(int32(v))
}
