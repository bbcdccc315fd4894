package tbs

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func g1Add(a, b G1Point) G1Point {
	var aJac, bJac bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	var out G1Point
	out.FromJacobian(&aJac)
	return out
}

func g1ScalarMul(a G1Point, k *big.Int) G1Point {
	var jac bls12381.G1Jac
	jac.FromAffine(&a)
	jac.ScalarMultiplication(&jac, new(big.Int).Mod(k, Order))
	var out G1Point
	out.FromJacobian(&jac)
	return out
}

func g1Neg(a G1Point) G1Point {
	var jac bls12381.G1Jac
	jac.FromAffine(&a)
	jac.Neg(&jac)
	var out G1Point
	out.FromJacobian(&jac)
	return out
}

func g2Add(a, b G2Point) G2Point {
	var aJac, bJac bls12381.G2Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	aJac.AddAssign(&bJac)
	var out G2Point
	out.FromJacobian(&aJac)
	return out
}

func g2ScalarMul(a G2Point, k *big.Int) G2Point {
	var jac bls12381.G2Jac
	jac.FromAffine(&a)
	jac.ScalarMultiplication(&jac, new(big.Int).Mod(k, Order))
	var out G2Point
	out.FromJacobian(&jac)
	return out
}

func g2Neg(a G2Point) G2Point {
	var jac bls12381.G2Jac
	jac.FromAffine(&a)
	jac.Neg(&jac)
	var out G2Point
	out.FromJacobian(&jac)
	return out
}
