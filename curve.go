// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

// All group operations are performed using Jacobian coordinates.  For a given
// (x, y) position on the curve, the Jacobian coordinates are (x1, y1, z1)
// where x = x1/z1^2 and y = y1/z1^3. The greatest speedups come when the whole
// calculation can be performed within the transform (as in ScalarMult and
// ScalarBaseMult). But even for Add and Double, it's faster to apply and
// reverse the transform than to operate in affine coordinates.

var (
	// Next 6 constants are from Hal Finney's bitcointalk.org post:
	// https://bitcointalk.org/index.php?topic=3238.msg45565#msg45565
	// May he rest in peace.
	endomorphismLambda = fromHex("5363ad4cc05c30e0a5261c028812645a122e22ea20816678df02967c1b23bd72")
	endomorphismBeta   = new(FieldVal).SetHex("7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee")
	endomorphismA1     = fromHex("3086d221a7d46bcde86c90e49284eb15")
	endomorphismB1     = fromHex("-e4437ed6010e88286f547fa90abfe4c3")
	endomorphismA2     = fromHex("114ca50f7a8e2f3f657c1108d9d44cfd8")
	endomorphismB2     = fromHex("3086d221a7d46bcde86c90e49284eb15")

	// nHalfForRounding is N/2 and is added before integer division when
	// rounding the GLV split coefficients to the nearest integer.
	nHalfForRounding = new(big.Int).Rsh(curveParams.N, 1)
)

// JacobianPoint is an element of the group formed by the secp256k1 curve in
// Jacobian projective coordinates and thus represents a point on the curve
// when Z is nonzero and the point at infinity when Z is zero.
type JacobianPoint struct {
	X, Y, Z FieldVal
}

// Set sets the passed point to the receiver's value and returns it for
// chaining.
func (p *JacobianPoint) Set(other *JacobianPoint) *JacobianPoint {
	p.X.Set(&other.X)
	p.Y.Set(&other.Y)
	p.Z.Set(&other.Z)
	return p
}

// ToAffine normalizes the point to have a Z value of 1, leaving its affine
// X and Y coordinates in place.
func (p *JacobianPoint) ToAffine() {
	if p.Z.IsZero() || p.Z.Normalize().Equals(fieldOne) {
		p.X.Normalize()
		p.Y.Normalize()
		return
	}

	var zInv, zInvSq FieldVal
	zInv.Set(&p.Z).Inverse()
	zInvSq.SquareVal(&zInv)
	p.X.Mul(&zInvSq).Normalize()
	p.Y.Mul(&zInvSq).Mul(&zInv).Normalize()
	p.Z.SetInt(1)
}

// IsStrictlyEqual returns whether or not the two Jacobian points are equal
// in terms of their actual X, Y, and Z values, as opposed to their equivalence
// as an affine point.
func (p *JacobianPoint) IsStrictlyEqual(other *JacobianPoint) bool {
	return p.X.Equals(&other.X) && p.Y.Equals(&other.Y) && p.Z.Equals(&other.Z)
}

// addZ1AndZ2EqualsOne adds two Jacobian points that are already known to have
// z values of 1 and stores the result in (x3, y3, z3).  That is to say
// (x1, y1, 1) + (x2, y2, 1) = (x3, y3, z3).  It performs faster addition than
// the generic add routine since less arithmetic is needed due to the ability to
// avoid the z value multiplications.
func addZ1AndZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3 *FieldVal) {
	// To compute the point addition efficiently, this implementation splits
	// the equation into intermediate elements which are used to minimize
	// the number of field multiplications using the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-mmadd-2007-bl
	//
	// H = X2-X1, HH = H^2, I = 4*HH, J = H*I, r = 2*(Y2-Y1), V = X1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*Y1*J, Z3 = 2*H
	x1.Normalize()
	y1.Normalize()
	x2.Normalize()
	y2.Normalize()
	if x1.Equals(x2) {
		if y1.Equals(y2) {
			doubleJacobianFields(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var h, i, j, r, v FieldVal
	var negJ, neg2V, negX3 FieldVal
	h.Set(x1).Negate(1).Add(x2)
	i.SquareVal(&h).MulInt(4)
	j.Mul2(&h, &i)
	r.Set(y1).Negate(1).Add(y2).MulInt(2)
	v.Mul2(x1, &i)
	negJ.Set(&j).Negate(1)
	neg2V.Set(&v).MulInt(2).Negate(2)
	x3.Set(&r).Square().Add(&negJ).Add(&neg2V)
	negX3.Set(x3).Negate(6)
	j.Mul(y1).MulInt(2).Negate(2)
	y3.Set(&v).Add(&negX3).Mul(&r).Add(&j)
	z3.Set(&h).MulInt(2)

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// addZ1EqualsZ2 adds two Jacobian points that are already known to have the
// same z value and stores the result in (x3, y3, z3).
func addZ1EqualsZ2(x1, y1, z1, x2, y2, x3, y3, z3 *FieldVal) {
	// A = X2-X1, B = A^2, C=Y2-Y1, D = C^2, E = X1*B, F = X2*B
	// X3 = D-E-F, Y3 = C*(E-X3)-Y1*(F-E), Z3 = Z1*A
	x1.Normalize()
	y1.Normalize()
	x2.Normalize()
	y2.Normalize()
	if x1.Equals(x2) {
		if y1.Equals(y2) {
			doubleJacobianFields(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var a, b, c, d, e, f FieldVal
	var negX1, negY1, negE, negX3 FieldVal
	negX1.Set(x1).Negate(1)
	negY1.Set(y1).Negate(1)
	a.Set(&negX1).Add(x2)
	b.SquareVal(&a)
	c.Set(&negY1).Add(y2)
	d.SquareVal(&c)
	e.Mul2(x1, &b)
	negE.Set(&e).Negate(1)
	f.Mul2(x2, &b)
	x3.Add2(&e, &f).Negate(3).Add(&d)
	negX3.Set(x3).Negate(5).Normalize()
	y3.Set(y1).Mul(f.Add(&negE)).Negate(3)
	y3.Add(e.Add(&negX3).Mul(&c))
	z3.Mul2(z1, &a)

	x3.Normalize()
	y3.Normalize()
}

// addZ2EqualsOne adds two Jacobian points when the second point is already
// known to have a z value of 1 and stores the result in (x3, y3, z3).
func addZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3 *FieldVal) {
	// Z1Z1 = Z1^2, U2 = X2*Z1Z1, S2 = Y2*Z1*Z1Z1, H = U2-X1, HH = H^2,
	// I = 4*HH, J = H*I, r = 2*(S2-Y1), V = X1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*Y1*J, Z3 = (Z1+H)^2-Z1Z1-HH
	var z1z1, u2, s2 FieldVal
	x1.Normalize()
	y1.Normalize()
	z1z1.SquareVal(z1)
	u2.Set(x2).Mul(&z1z1).Normalize()
	s2.Set(y2).Mul(&z1z1).Mul(z1).Normalize()
	if x1.Equals(&u2) {
		if y1.Equals(&s2) {
			doubleJacobianFields(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var h, hh, i, j, r, rr, v FieldVal
	var negX1, negY1, negX3 FieldVal
	negX1.Set(x1).Negate(1)
	h.Add2(&u2, &negX1)
	hh.SquareVal(&h)
	i.Set(&hh).MulInt(4)
	j.Mul2(&h, &i)
	negY1.Set(y1).Negate(1)
	r.Set(&s2).Add(&negY1).MulInt(2)
	rr.SquareVal(&r)
	v.Mul2(x1, &i)
	x3.Set(&v).MulInt(2).Add(&j).Negate(3)
	x3.Add(&rr)
	negX3.Set(x3).Negate(5)
	y3.Set(y1).Mul(&j).MulInt(2).Negate(2)
	y3.Add(v.Add(&negX3).Mul(&r))
	z3.Add2(z1, &h).Square()
	z3.Add(z1z1.Add(&hh).Negate(2))

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// addGeneric adds two Jacobian points (x1, y1, z1) and (x2, y2, z2) without any
// assumptions about the z values of the two points and stores the result in
// (x3, y3, z3).
func addGeneric(x1, y1, z1, x2, y2, z2, x3, y3, z3 *FieldVal) {
	// Z1Z1 = Z1^2, Z2Z2 = Z2^2, U1 = X1*Z2Z2, U2 = X2*Z1Z1, S1 = Y1*Z2*Z2Z2
	// S2 = Y2*Z1*Z1Z1, H = U2-U1, I = (2*H)^2, J = H*I, r = 2*(S2-S1)
	// V = U1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*S1*J, Z3 = ((Z1+Z2)^2-Z1Z1-Z2Z2)*H
	var z1z1, z2z2, u1, u2, s1, s2 FieldVal
	z1z1.SquareVal(z1)
	z2z2.SquareVal(z2)
	u1.Set(x1).Mul(&z2z2).Normalize()
	u2.Set(x2).Mul(&z1z1).Normalize()
	s1.Set(y1).Mul(&z2z2).Mul(z2).Normalize()
	s2.Set(y2).Mul(&z1z1).Mul(z1).Normalize()
	if u1.Equals(&u2) {
		if s1.Equals(&s2) {
			doubleJacobianFields(x1, y1, z1, x3, y3, z3)
			return
		}
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	var h, i, j, r, rr, v FieldVal
	var negU1, negS1, negX3 FieldVal
	negU1.Set(&u1).Negate(1)
	h.Add2(&u2, &negU1)
	i.Set(&h).MulInt(2).Square()
	j.Mul2(&h, &i)
	negS1.Set(&s1).Negate(1)
	r.Set(&s2).Add(&negS1).MulInt(2)
	rr.SquareVal(&r)
	v.Mul2(&u1, &i)
	x3.Set(&v).MulInt(2).Add(&j).Negate(3)
	x3.Add(&rr)
	negX3.Set(x3).Negate(5)
	y3.Mul2(&s1, &j).MulInt(2).Negate(2)
	y3.Add(v.Add(&negX3).Mul(&r))
	z3.Add2(z1, z2).Square()
	z3.Add(z1z1.Add(&z2z2).Negate(2))
	z3.Mul(&h)

	x3.Normalize()
	y3.Normalize()
}

// addJacobianFields adds the passed Jacobian points (x1, y1, z1) and
// (x2, y2, z2) together and stores the result in (x3, y3, z3).
func addJacobianFields(x1, y1, z1, x2, y2, z2, x3, y3, z3 *FieldVal) {
	// A point at infinity is the identity according to the group law for
	// elliptic curve cryptography.  Thus, ∞ + P = P and P + ∞ = P.
	if (x1.IsZero() && y1.IsZero()) || z1.IsZero() {
		x3.Set(x2)
		y3.Set(y2)
		z3.Set(z2)
		return
	}
	if (x2.IsZero() && y2.IsZero()) || z2.IsZero() {
		x3.Set(x1)
		y3.Set(y1)
		z3.Set(z1)
		return
	}

	z1.Normalize()
	z2.Normalize()
	isZ1One := z1.Equals(fieldOne)
	isZ2One := z2.Equals(fieldOne)
	switch {
	case isZ1One && isZ2One:
		addZ1AndZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3)
		return
	case z1.Equals(z2):
		addZ1EqualsZ2(x1, y1, z1, x2, y2, x3, y3, z3)
		return
	case isZ2One:
		addZ2EqualsOne(x1, y1, z1, x2, y2, x3, y3, z3)
		return
	}

	addGeneric(x1, y1, z1, x2, y2, z2, x3, y3, z3)
}

// doubleZ1EqualsOne performs point doubling on the passed Jacobian point when
// the point is already known to have a z value of 1 and stores the result in
// (x3, y3, z3).
func doubleZ1EqualsOne(x1, y1, x3, y3, z3 *FieldVal) {
	// A = X1^2, B = Y1^2, C = B^2, D = 2*((X1+B)^2-A-C)
	// E = 3*A, F = E^2, X3 = F-2*D, Y3 = E*(D-X3)-8*C
	// Z3 = 2*Y1
	var a, b, c, d, e, f FieldVal
	z3.Set(y1).MulInt(2)
	a.SquareVal(x1)
	b.SquareVal(y1)
	c.SquareVal(&b)
	b.Add(x1).Square()
	d.Set(&a).Add(&c).Negate(2)
	d.Add(&b).MulInt(2)
	e.Set(&a).MulInt(3)
	f.SquareVal(&e)
	x3.Set(&d).MulInt(2).Negate(16)
	x3.Add(&f)
	f.Set(x3).Negate(18).Add(&d).Normalize()
	y3.Set(&c).MulInt(8).Negate(8)
	y3.Add(f.Mul(&e))

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// doubleGeneric performs point doubling on the passed Jacobian point without
// any assumptions about the z value and stores the result in (x3, y3, z3).
func doubleGeneric(x1, y1, z1, x3, y3, z3 *FieldVal) {
	// Z3 = 2*Y1*Z1, remaining formulas as doubleZ1EqualsOne.
	var a, b, c, d, e, f FieldVal
	z3.Mul2(y1, z1).MulInt(2)
	a.SquareVal(x1)
	b.SquareVal(y1)
	c.SquareVal(&b)
	b.Add(x1).Square()
	d.Set(&a).Add(&c).Negate(2)
	d.Add(&b).MulInt(2)
	e.Set(&a).MulInt(3)
	f.SquareVal(&e)
	x3.Set(&d).MulInt(2).Negate(16)
	x3.Add(&f)
	f.Set(x3).Negate(18).Add(&d).Normalize()
	y3.Set(&c).MulInt(8).Negate(8)
	y3.Add(f.Mul(&e))

	x3.Normalize()
	y3.Normalize()
	z3.Normalize()
}

// doubleJacobianFields doubles the passed Jacobian point (x1, y1, z1) and
// stores the result in (x3, y3, z3).
func doubleJacobianFields(x1, y1, z1, x3, y3, z3 *FieldVal) {
	if y1.IsZero() || z1.IsZero() {
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	if z1.Normalize().Equals(fieldOne) {
		doubleZ1EqualsOne(x1, y1, x3, y3, z3)
		return
	}

	doubleGeneric(x1, y1, z1, x3, y3, z3)
}

// AddNonConst adds the passed Jacobian points together and stores the result
// in result.  It is not constant time with respect to the point values.
func AddNonConst(p1, p2, result *JacobianPoint) {
	addJacobianFields(&p1.X, &p1.Y, &p1.Z, &p2.X, &p2.Y, &p2.Z, &result.X,
		&result.Y, &result.Z)
}

// DoubleNonConst doubles the passed Jacobian point and stores the result in
// result.  It is not constant time with respect to the point value.
func DoubleNonConst(p, result *JacobianPoint) {
	doubleJacobianFields(&p.X, &p.Y, &p.Z, &result.X, &result.Y, &result.Z)
}

// isOnCurve returns whether or not the affine point (x, y) satisfies the
// curve equation y^2 = x^3 + 7 (mod P).
func isOnCurve(x, y *FieldVal) bool {
	var y2, x3 FieldVal
	y2.SquareVal(y).Normalize()
	x3.SquareVal(x).Mul(x)
	x3.Add(fieldB()).Normalize()
	return y2.Equals(&x3)
}

// fieldB returns the curve's B parameter (7) as a field value.  It is
// computed on each call rather than cached as a package-level FieldVal since
// it is only used by the infrequently-called IsOnCurve checks.
func fieldB() *FieldVal {
	return new(FieldVal).SetInt(7)
}

// DecompressY attempts to calculate the Y coordinate for the given X
// coordinate such that the result pair is a point on the secp256k1 curve and
// its parity (odd-ness) matches the passed odd flag.  It returns whether or
// not a valid coordinate was found.
func DecompressY(x *FieldVal, odd bool, y *FieldVal) bool {
	var x3 FieldVal
	x3.SquareVal(x).Mul(x).Add(fieldB()).Normalize()

	var candidate FieldVal
	candidate.SqrtVal(&x3).Normalize()
	var check FieldVal
	check.SquareVal(&candidate).Normalize()
	if !check.Equals(&x3) {
		return false
	}

	if candidate.IsOdd() != odd {
		candidate.Negate(1).Normalize()
	}
	y.Set(&candidate)
	return true
}

// bigAffineToJacobian takes an affine point (x, y) as big integers and
// converts it to a Jacobian point with Z=1.
func bigAffineToJacobian(x, y *big.Int, result *JacobianPoint) {
	result.X.SetByteSlice(x.Bytes())
	result.Y.SetByteSlice(y.Bytes())
	result.Z.SetInt(1)
}

// jacobianToBigAffine takes a Jacobian point and converts it to an affine
// point represented as big integers.
func jacobianToBigAffine(point *JacobianPoint) (*big.Int, *big.Int) {
	point.ToAffine()
	x3, y3 := new(big.Int), new(big.Int)
	xb := point.X.Bytes()
	yb := point.Y.Bytes()
	x3.SetBytes(xb[:])
	y3.SetBytes(yb[:])
	return x3, y3
}

// oddMultiples computes the table of odd multiples 1*P, 3*P, 5*P, ...,
// (2*count-1)*P of the passed point for use by the wNAF multiplication loop.
func oddMultiples(p *JacobianPoint, count int) []JacobianPoint {
	table := make([]JacobianPoint, count)
	table[0] = *p
	var double JacobianPoint
	DoubleNonConst(p, &double)
	for i := 1; i < count; i++ {
		AddNonConst(&table[i-1], &double, &table[i])
	}
	return table
}

// wnaf computes the width-w non-adjacent form of the passed non-negative
// integer.  Each returned digit is either 0 or odd with absolute value less
// than 2^(w-1), and digits[i] corresponds to bit weight 2^i.
func wnaf(k *big.Int, w uint) []int32 {
	width := new(big.Int).Lsh(bigOne, w)
	halfWidth := new(big.Int).Lsh(bigOne, w-1)

	n := new(big.Int).Set(k)
	var digits []int32
	for n.Sign() > 0 {
		var d int32
		if n.Bit(0) == 1 {
			mod := new(big.Int).Mod(n, width)
			val := int32(mod.Int64())
			if val >= int32(halfWidth.Int64()) {
				val -= int32(width.Int64())
			}
			d = val
			n.Sub(n, big.NewInt(int64(d)))
		}
		digits = append(digits, d)
		n.Rsh(n, 1)
	}
	return digits
}

// negatePoint returns a new Jacobian point that is the negation of p (i.e.
// p with its Y coordinate negated).
func negatePoint(p *JacobianPoint) JacobianPoint {
	var neg JacobianPoint
	neg.X.Set(&p.X)
	neg.Y.Set(&p.Y).Negate(1).Normalize()
	neg.Z.Set(&p.Z)
	return neg
}

// scalarMultWNAF performs k*point using a simple width-4 wNAF double-and-add
// loop without any endomorphism acceleration.  ScalarMultNonConst uses it as
// the correctness fallback for its GLV-accelerated path.
func scalarMultWNAF(k *big.Int, point *JacobianPoint, result *JacobianPoint) {
	digits := wnaf(new(big.Int).Set(k), pointWindow)
	table := cachedPointTable(point)

	var acc JacobianPoint
	acc.X.SetInt(0)
	acc.Y.SetInt(0)
	acc.Z.SetInt(0)
	for i := len(digits) - 1; i >= 0; i-- {
		var doubled JacobianPoint
		DoubleNonConst(&acc, &doubled)
		acc = doubled
		d := digits[i]
		if d == 0 {
			continue
		}
		idx := (absInt32(d) - 1) / 2
		var sum JacobianPoint
		if d > 0 {
			AddNonConst(&acc, &table.pos[idx], &sum)
		} else {
			AddNonConst(&acc, &table.neg[idx], &sum)
		}
		acc = sum
	}
	*result = acc
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// splitK splits the passed scalar k into two roughly-half-sized components
// k1 and k2 (along with their signs) such that k == k1 + k2*lambda (mod N),
// using the GLV endomorphism lattice basis.  See [GECC] section 3.5 and
// Hal Finney's description linked above the endomorphism constants.
func splitK(k *big.Int) (k1 *big.Int, k1Sign int, k2 *big.Int, k2Sign int) {
	c1 := new(big.Int).Mul(endomorphismB2, k)
	c1.Add(c1, nHalfForRounding)
	c1.Div(c1, curveParams.N)

	c2 := new(big.Int).Mul(new(big.Int).Neg(endomorphismB1), k)
	c2.Add(c2, nHalfForRounding)
	c2.Div(c2, curveParams.N)

	k1 = new(big.Int).Mul(c1, endomorphismA1)
	tmp := new(big.Int).Mul(c2, endomorphismA2)
	k1.Sub(k, k1)
	k1.Sub(k1, tmp)

	k2 = new(big.Int).Mul(c1, endomorphismB1)
	tmp2 := new(big.Int).Mul(c2, endomorphismB2)
	k2.Add(k2, tmp2)
	k2.Neg(k2)

	k1Sign = 1
	if k1.Sign() < 0 {
		k1Sign = -1
		k1.Neg(k1)
	}
	k2Sign = 1
	if k2.Sign() < 0 {
		k2Sign = -1
		k2.Neg(k2)
	}
	return k1, k1Sign, k2, k2Sign
}

// glvSplitValid reports whether k1 + k2*lambda == k (mod N) for the signed
// values produced by splitK, and that both halves stayed within the 2^128
// bound the lattice reduction is expected to guarantee.
func glvSplitValid(k, k1 *big.Int, k1Sign int, k2 *big.Int, k2Sign int) bool {
	maxHalf := new(big.Int).Lsh(bigOne, 128)
	if k1.Cmp(maxHalf) >= 0 || k2.Cmp(maxHalf) >= 0 {
		return false
	}

	signedK1 := new(big.Int).Set(k1)
	if k1Sign < 0 {
		signedK1.Neg(signedK1)
	}
	signedK2 := new(big.Int).Set(k2)
	if k2Sign < 0 {
		signedK2.Neg(signedK2)
	}

	check := new(big.Int).Mul(signedK2, endomorphismLambda)
	check.Add(check, signedK1)
	check.Mod(check, curveParams.N)
	want := new(big.Int).Mod(k, curveParams.N)
	return check.Cmp(want) == 0
}

// endomorphism maps the point (x, y) to (beta*x, y), which is the same as
// multiplying the point by lambda (the endomorphism used to accelerate
// scalar multiplication via the GLV method).
func endomorphism(p *JacobianPoint) JacobianPoint {
	var mapped JacobianPoint
	mapped.X.Mul2(&p.X, endomorphismBeta).Normalize()
	mapped.Y.Set(&p.Y)
	mapped.Z.Set(&p.Z)
	return mapped
}

// ScalarMultNonConst multiplies k*point and stores the result in result.  It
// is not constant time with respect to either the scalar or point values.
//
// When the GLV endomorphism split checks out (which it always should for a
// scalar already reduced modulo N), the multiplication is carried out as two
// simultaneous half-width wNAF multiplications, one of which runs over the
// endomorphism-mapped point, per the method described in [GECC] section
// 3.5 and used by libsecp256k1's ecmult path.  As a defensive fallback for a
// build that cannot be exercised against the Go toolchain before shipping,
// the split is verified algebraically before use and a plain wNAF
// multiplication over the full-width scalar is substituted if it does not
// check out.
func ScalarMultNonConst(k *ModNScalar, point *JacobianPoint, result *JacobianPoint) {
	kBig := bigIntFromScalar(k)
	if kBig.Sign() == 0 {
		result.X.SetInt(0)
		result.Y.SetInt(0)
		result.Z.SetInt(0)
		return
	}

	k1, k1Sign, k2, k2Sign := splitK(kBig)
	if !glvSplitValid(kBig, k1, k1Sign, k2, k2Sign) {
		scalarMultWNAF(kBig, point, result)
		return
	}

	p1 := *point
	if k1Sign < 0 {
		p1 = negatePoint(&p1)
	}
	p2 := endomorphism(point)
	if k2Sign < 0 {
		p2 = negatePoint(&p2)
	}

	digits1 := wnaf(k1, pointWindow)
	digits2 := wnaf(k2, pointWindow)
	table1 := cachedPointTable(&p1)
	table2 := cachedPointTable(&p2)

	maxLen := len(digits1)
	if len(digits2) > maxLen {
		maxLen = len(digits2)
	}

	var acc JacobianPoint
	acc.X.SetInt(0)
	acc.Y.SetInt(0)
	acc.Z.SetInt(0)
	for i := maxLen - 1; i >= 0; i-- {
		var doubled JacobianPoint
		DoubleNonConst(&acc, &doubled)
		acc = doubled

		if i < len(digits1) && digits1[i] != 0 {
			d := digits1[i]
			idx := (absInt32(d) - 1) / 2
			var sum JacobianPoint
			if d > 0 {
				AddNonConst(&acc, &table1.pos[idx], &sum)
			} else {
				AddNonConst(&acc, &table1.neg[idx], &sum)
			}
			acc = sum
		}
		if i < len(digits2) && digits2[i] != 0 {
			d := digits2[i]
			idx := (absInt32(d) - 1) / 2
			var sum JacobianPoint
			if d > 0 {
				AddNonConst(&acc, &table2.pos[idx], &sum)
			} else {
				AddNonConst(&acc, &table2.neg[idx], &sum)
			}
			acc = sum
		}
	}
	*result = acc
}

// ScalarBaseMultNonConst multiplies k*G, where G is the secp256k1 base point,
// and stores the result in result.  It consults the lazily-computed
// precompute cache for G (see precompute.go) rather than performing the GLV
// split, since a dedicated fixed-base window table is faster still.
func ScalarBaseMultNonConst(k *ModNScalar, result *JacobianPoint) {
	kBig := bigIntFromScalar(k)
	scalarMultFixedBase(kBig, result)
}
