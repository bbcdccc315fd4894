package tbs

import "math/big"

// scalarElem, g1Elem and g2Elem are thin wrappers implementing
// poly.Element[V] for the scalar field, G1 and G2. g1Elem carries signature
// shares in CombineValidShares and g2Elem carries public-key shares in
// AggregatePublicKeyShares; DealerKeygen evaluates its polynomial directly
// and interpolates nothing, so no function in this package uses scalarElem.
// gnark-crypto's types can't have methods added from this package, hence the
// wrappers.
type scalarElem struct{ v *big.Int }

func (s scalarElem) Add(o scalarElem) scalarElem {
	r := new(big.Int).Add(s.v, o.v)
	r.Mod(r, Order)
	return scalarElem{v: r}
}

func (s scalarElem) ScalarMul(k *big.Int) scalarElem {
	r := new(big.Int).Mul(s.v, k)
	r.Mod(r, Order)
	return scalarElem{v: r}
}

type g1Elem struct{ p G1Point }

func (e g1Elem) Add(o g1Elem) g1Elem           { return g1Elem{p: g1Add(e.p, o.p)} }
func (e g1Elem) ScalarMul(k *big.Int) g1Elem   { return g1Elem{p: g1ScalarMul(e.p, k)} }

type g2Elem struct{ p G2Point }

func (e g2Elem) Add(o g2Elem) g2Elem         { return g2Elem{p: g2Add(e.p, o.p)} }
func (e g2Elem) ScalarMul(k *big.Int) g2Elem { return g2Elem{p: g2ScalarMul(e.p, k)} }
