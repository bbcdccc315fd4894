/*
Package poly implements scalar-coefficient polynomials and Lagrange
interpolation at x=0, generic over the evaluation codomain.

A degree-d polynomial is a sequence of d+1 scalar coefficients [a0 ... ad].
Evaluation always happens in the scalar field (Horner's method); the
interpolation codomain V, however, can be anything that supports addition and
scalar multiplication — a scalar itself during secret sharing, or a curve
point (G1/G2) during signature-share or public-key-share combination. This
lets a single InterpolateZero implementation serve both public-key-share
reconstruction (G2) and signature combination (G1) in package tbs, matching the teacher's Lagrange-coefficient code generalized from
a scalar-only helper into the Element[V] abstraction below.
*/
package poly
