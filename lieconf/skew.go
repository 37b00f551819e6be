package lieconf

import (
	"github.com/arclimit/veva/qrat"
)

// SkewOpposite derives the table of [b_λ a] from the table of [a_λ b]
// using skew-symmetry
//
//	[b_λ a] = -(-1)^{p(a)p(b)} [a_{-λ-T} b].
//
// Description:
//
//	Writing [a_λ b] = Σ_j λ^(j) c_j, expanding (-λ-T)^(j) gives
//
//	  [b_λ a]_(n) = -(-1)^{p(a)p(b)} Σ_{j≥n} (-1)^j T^((j-n)) c_j,
//
//	where T^((s)) applied to coef·T^((r))g yields coef·C(r+s, s)·T^((r+s))g
//	and annihilates central terms for s > 0. The sum is finite because
//	the table is.
//
// aOdd and bOdd are the parities of the original operands; central
// reports whether a generator name is central.
func SkewOpposite(br Bracket, aOdd, bOdd bool, central func(string) bool) Bracket {
	sign := qrat.One()
	if aOdd && bOdd {
		sign = qrat.Int(-1)
	}
	sign = qrat.Neg(sign)

	maxPole := -1
	for pole := range br {
		if pole > maxPole {
			maxPole = pole
		}
	}
	out := make(Bracket)
	for n := 0; n <= maxPole; n++ {
		var terms []Term
		for j := n; j <= maxPole; j++ {
			s := j - n
			for _, tm := range br[j] {
				if central(tm.Gen) && s > 0 {
					continue
				}
				c := qrat.Mul(tm.Coef, qrat.NegOnePow(j))
				c = qrat.Mul(c, qrat.Binom(tm.Deriv+s, s))
				c = qrat.Mul(c, sign)
				if qrat.IsZero(c) {
					continue
				}
				terms = append(terms, Term{Gen: tm.Gen, Deriv: tm.Deriv + s, Coef: c})
			}
		}
		if len(terms) > 0 {
			out[n] = terms
		}
	}
	return out
}
