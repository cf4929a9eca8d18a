// Copyright 2017-2018 The qitmeer developers

package ecc

import (
	"fmt"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// FieldElement is an element of the prime field GF(prime). Values are never
// mutated once constructed, every operation returns a new element.
type FieldElement struct {
	num   *big.Int
	prime *big.Int
}

// NewFieldElement returns num as an element of GF(prime). num must lie in
// [0, prime) and prime must be greater than one.
func NewFieldElement(num, prime *big.Int) (*FieldElement, error) {
	if prime == nil || prime.Cmp(bigOne) <= 0 {
		return nil, makeError(ErrInvalidFieldValue,
			fmt.Sprintf("field prime %v is not greater than one", prime))
	}
	if num == nil || num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return nil, makeError(ErrInvalidFieldValue,
			fmt.Sprintf("num %v not in field range 0 to %v", num, new(big.Int).Sub(prime, bigOne)))
	}
	return &FieldElement{num: new(big.Int).Set(num), prime: new(big.Int).Set(prime)}, nil
}

// newElement reduces v into the field of prime without validation. prime is
// shared between elements since neither is ever modified.
func newElement(v, prime *big.Int) *FieldElement {
	return &FieldElement{num: v.Mod(v, prime), prime: prime}
}

// Num returns a copy of the element's value.
func (f *FieldElement) Num() *big.Int { return new(big.Int).Set(f.num) }

// Prime returns a copy of the field modulus.
func (f *FieldElement) Prime() *big.Int { return new(big.Int).Set(f.prime) }

func (f *FieldElement) IsZero() bool { return f.num.Sign() == 0 }

func (f *FieldElement) IsEven() bool { return f.num.Bit(0) == 0 }

// Equal reports whether both elements have the same value in the same field.
func (f *FieldElement) Equal(o *FieldElement) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.prime.Cmp(o.prime) == 0 && f.num.Cmp(o.num) == 0
}

func (f *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", f.prime, f.num)
}

func (f *FieldElement) sameField(o *FieldElement, op string) error {
	if f.prime.Cmp(o.prime) != 0 {
		return makeError(ErrMismatchedField,
			fmt.Sprintf("cannot %s elements of GF(%v) and GF(%v)", op, f.prime, o.prime))
	}
	return nil
}

func (f *FieldElement) Add(o *FieldElement) (*FieldElement, error) {
	if err := f.sameField(o, "add"); err != nil {
		return nil, err
	}
	return f.add(o), nil
}

func (f *FieldElement) add(o *FieldElement) *FieldElement {
	return newElement(new(big.Int).Add(f.num, o.num), f.prime)
}

func (f *FieldElement) Sub(o *FieldElement) (*FieldElement, error) {
	if err := f.sameField(o, "subtract"); err != nil {
		return nil, err
	}
	return f.sub(o), nil
}

func (f *FieldElement) sub(o *FieldElement) *FieldElement {
	return newElement(new(big.Int).Sub(f.num, o.num), f.prime)
}

func (f *FieldElement) Mul(o *FieldElement) (*FieldElement, error) {
	if err := f.sameField(o, "multiply"); err != nil {
		return nil, err
	}
	return f.mul(o), nil
}

func (f *FieldElement) mul(o *FieldElement) *FieldElement {
	return newElement(new(big.Int).Mul(f.num, o.num), f.prime)
}

// MulInt multiplies the element by an arbitrary, possibly negative, integer.
func (f *FieldElement) MulInt(k *big.Int) *FieldElement {
	return newElement(new(big.Int).Mul(f.num, k), f.prime)
}

// Neg returns the additive inverse of f.
func (f *FieldElement) Neg() *FieldElement {
	return newElement(new(big.Int).Neg(f.num), f.prime)
}

// Pow raises f to the power e. A negative exponent is reduced modulo
// prime-1, which is only defined for a non-zero base.
func (f *FieldElement) Pow(e *big.Int) (*FieldElement, error) {
	if e.Sign() < 0 {
		if f.IsZero() {
			return nil, makeError(ErrUndefinedOperation,
				"zero element raised to a negative power")
		}
		e = new(big.Int).Mod(e, new(big.Int).Sub(f.prime, bigOne))
	}
	return &FieldElement{num: new(big.Int).Exp(f.num, e, f.prime), prime: f.prime}, nil
}

// Inverse returns the multiplicative inverse f^(prime-2).
func (f *FieldElement) Inverse() (*FieldElement, error) {
	if f.IsZero() {
		return nil, makeError(ErrUndefinedOperation, "zero element has no inverse")
	}
	return f.inverse(), nil
}

// inverse assumes f is non-zero.
func (f *FieldElement) inverse() *FieldElement {
	e := new(big.Int).Sub(f.prime, bigTwo)
	return &FieldElement{num: new(big.Int).Exp(f.num, e, f.prime), prime: f.prime}
}

// Div returns f * o^(prime-2).
func (f *FieldElement) Div(o *FieldElement) (*FieldElement, error) {
	if err := f.sameField(o, "divide"); err != nil {
		return nil, err
	}
	if o.IsZero() {
		return nil, makeError(ErrUndefinedOperation, "division by zero element")
	}
	return f.mul(o.inverse()), nil
}
