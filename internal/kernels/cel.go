package kernels

import "math"

// cel evaluates Bulirsch's generalized complete elliptic integral
// cel(kc, p, c, s). The complete integrals of the first and second kind
// follow as cel(kc,1,1,1) and cel(kc,1,1,kc²).
func cel(kc, p, c, s float64) float64 {
	if kc == 0 {
		return math.NaN()
	}
	const errtol = 1e-12

	k := math.Abs(kc)
	pp, cc, ss := p, c, s
	em := 1.0
	if p > 0 {
		pp = math.Sqrt(p)
		ss = s / pp
	} else {
		f := kc * kc
		q := 1 - f
		g := 1 - pp
		f -= pp
		q *= ss - c*pp
		pp = math.Sqrt(f / g)
		cc = (c - ss) / g
		ss = -q/(g*g*pp) + cc*pp
	}

	f := cc
	cc += ss / pp
	g := k / pp
	ss = 2 * (ss + f*g)
	pp += g
	g = em
	em += k
	kk := k
	for math.Abs(g-k) > g*errtol {
		k = 2 * math.Sqrt(kk)
		kk = k * em
		f = cc
		cc += ss / pp
		g = kk / pp
		ss = 2 * (ss + f*g)
		pp += g
		g = em
		em += k
	}
	return math.Pi / 2 * (ss + cc*em) / (em * (em + pp))
}
