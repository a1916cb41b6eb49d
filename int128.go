package monet

import (
	"fmt"
	"math/bits"
	"strconv"
)

// int128 is a two's-complement 128-bit signed integer stored as two 64-bit
// words. The top bit of hi carries the sign.
type int128 struct {
	hi uint64
	lo uint64
}

// int128Min is the smallest representable value, -2^127.
var int128Min = int128{hi: 1 << 63}

func int128FromInt64(v int64) int128 {
	return int128{hi: uint64(v >> 63), lo: uint64(v)}
}

func (x int128) isNeg() bool {
	return x.hi>>63 == 1
}

func (x int128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

// sign returns -1, 0, or +1.
func (x int128) sign() int {
	switch {
	case x.isNeg():
		return -1
	case x.isZero():
		return 0
	default:
		return 1
	}
}

func (x int128) neg() int128 {
	lo, carry := bits.Add64(^x.lo, 1, 0)
	return int128{hi: ^x.hi + carry, lo: lo}
}

// abs returns the magnitude of x. The magnitude of int128Min, 2^127,
// is representable unsigned.
func (x int128) abs() uint128 {
	if x.isNeg() {
		n := x.neg()
		return uint128{hi: n.hi, lo: n.lo}
	}
	return uint128{hi: x.hi, lo: x.lo}
}

func (x int128) cmp(y int128) int {
	if x == y {
		return 0
	}
	if int64(x.hi) != int64(y.hi) {
		if int64(x.hi) < int64(y.hi) {
			return -1
		}
		return 1
	}
	if x.lo < y.lo {
		return -1
	}
	return 1
}

// int64Val returns x as an int64 if it fits.
func (x int128) int64Val() (int64, bool) {
	if x.hi != uint64(int64(x.lo)>>63) {
		return 0, false
	}
	return int64(x.lo), true
}

// addChecked returns x + y, reporting whether the sum fits in 128 bits.
func (x int128) addChecked(y int128) (int128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	z := int128{hi: hi, lo: lo}
	// The sum overflows iff the operands share a sign the result lacks.
	if (x.hi^z.hi)&(y.hi^z.hi)>>63 != 0 {
		return int128{}, false
	}
	return z, true
}

// subChecked returns x - y, reporting whether the difference fits in 128 bits.
func (x int128) subChecked(y int128) (int128, bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	z := int128{hi: hi, lo: lo}
	if (x.hi^y.hi)&(x.hi^z.hi)>>63 != 0 {
		return int128{}, false
	}
	return z, true
}

// mulChecked returns x * y, reporting whether the product fits in 128 bits.
func (x int128) mulChecked(y int128) (int128, bool) {
	p, ok := x.abs().mul(y.abs())
	if !ok {
		return int128{}, false
	}
	return p.signed(x.isNeg() != y.isNeg())
}

// quoRem returns the quotient and remainder of x / y with the quotient
// truncated toward zero. The remainder has the sign of the dividend.
// The caller guarantees y is not zero. The only overflowing case is
// int128Min / -1.
func (x int128) quoRem(y int128) (q, r int128, ok bool) {
	qm, rm := x.abs().quoRem(y.abs())
	q, ok = qm.signed(x.isNeg() != y.isNeg())
	if !ok {
		return int128{}, int128{}, false
	}
	r, _ = rm.signed(x.isNeg()) // |r| < |y|, always fits
	return q, r, true
}

// divRound returns x / y rounded half away from zero.
// The caller guarantees y is not zero.
func (x int128) divRound(y int128) (int128, bool) {
	q, r, ok := x.quoRem(y)
	if !ok {
		return int128{}, false
	}
	// Round away from zero when |r|*2 >= |y|. |r| < |y| <= 2^127, so the
	// doubling cannot wrap.
	if r.abs().lsh(1).cmp(y.abs()) >= 0 {
		one := int128FromInt64(1)
		if x.isNeg() != y.isNeg() {
			one = one.neg()
		}
		return q.addChecked(one)
	}
	return q, true
}

// String returns the decimal representation of x.
func (x int128) String() string {
	u := x.abs()
	if u.hi == 0 && !x.isNeg() {
		return strconv.FormatUint(u.lo, 10)
	}
	var buf [40]byte
	pos := len(buf)
	for {
		var r uint64
		u, r = u.quoRem64(10)
		pos--
		buf[pos] = byte(r) + '0'
		if u.isZero() {
			break
		}
	}
	if x.isNeg() {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// parseInt128 converts a decimal integer string to an int128.
func parseInt128(s string) (int128, error) {
	orig := s
	neg := false
	if len(s) > 0 {
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			neg = true
			s = s[1:]
		}
	}
	if len(s) == 0 {
		return int128{}, fmt.Errorf("parsing %q: missing digits", orig)
	}
	var u uint128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return int128{}, fmt.Errorf("parsing %q: invalid character %q", orig, c)
		}
		p, ok := u.mul(uint128{lo: 10})
		if !ok {
			return int128{}, fmt.Errorf("parsing %q: %w", orig, ErrOverflow)
		}
		u, ok = p.add(uint128{lo: uint64(c - '0')})
		if !ok {
			return int128{}, fmt.Errorf("parsing %q: %w", orig, ErrOverflow)
		}
	}
	z, ok := u.signed(neg)
	if !ok {
		return int128{}, fmt.Errorf("parsing %q: %w", orig, ErrOverflow)
	}
	return z, nil
}

// pow10Int128 returns 10^n, reporting whether it is representable in
// 128 bits (n <= 38).
func pow10Int128(n int) (int128, bool) {
	if n < 0 || n > 38 {
		return int128{}, false
	}
	z := int128FromInt64(1)
	ten := int128FromInt64(10)
	for i := 0; i < n; i++ {
		z, _ = z.mulChecked(ten)
	}
	return z, true
}

// uint128 is an unsigned 128-bit integer used for magnitude arithmetic.
type uint128 struct {
	hi uint64
	lo uint64
}

func (u uint128) isZero() bool {
	return u.hi == 0 && u.lo == 0
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}
		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}
		return 1
	}
	return 0
}

// signed reinterprets the magnitude u as an int128 with the given sign,
// reporting whether it fits. Among magnitudes with the top bit set only
// 2^127 is representable, and only as the negative int128Min.
func (u uint128) signed(neg bool) (int128, bool) {
	if u.hi>>63 != 0 {
		if neg && u.hi == 1<<63 && u.lo == 0 {
			return int128Min, true
		}
		return int128{}, false
	}
	z := int128{hi: u.hi, lo: u.lo}
	if neg {
		z = z.neg()
	}
	return z, true
}

// add returns u + v, reporting whether the sum fits in 128 bits.
func (u uint128) add(v uint128) (uint128, bool) {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, carry := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi: hi, lo: lo}, carry == 0
}

// sub returns u - v, wrapping on underflow.
func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi: hi, lo: lo}
}

// mul returns u * v, reporting whether the product fits in 128 bits.
func (u uint128) mul(v uint128) (uint128, bool) {
	if u.hi != 0 && v.hi != 0 {
		return uint128{}, false
	}
	c1, m1 := bits.Mul64(u.hi, v.lo)
	c2, m2 := bits.Mul64(u.lo, v.hi)
	if c1 != 0 || c2 != 0 {
		return uint128{}, false
	}
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi, carry := bits.Add64(hi, m1, 0)
	if carry != 0 {
		return uint128{}, false
	}
	hi, carry = bits.Add64(hi, m2, 0)
	if carry != 0 {
		return uint128{}, false
	}
	return uint128{hi: hi, lo: lo}, true
}

// mul64wrap returns the low 128 bits of u * v.
func (u uint128) mul64wrap(v uint64) uint128 {
	hi, lo := bits.Mul64(u.lo, v)
	return uint128{hi: hi + u.hi*v, lo: lo}
}

func (u uint128) lsh(n uint) uint128 {
	if n >= 64 {
		return uint128{hi: u.lo << (n - 64)}
	}
	return uint128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

func (u uint128) rsh(n uint) uint128 {
	if n >= 64 {
		return uint128{lo: u.hi >> (n - 64)}
	}
	return uint128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

// quoRem returns the quotient and remainder of u / v.
// The caller guarantees v is not zero.
func (u uint128) quoRem(v uint128) (q, r uint128) {
	if v.hi == 0 {
		var r64 uint64
		q, r64 = u.quoRem64(v.lo)
		return q, uint128{lo: r64}
	}
	// The quotient fits in 64 bits since v >= 2^64. Generate a trial
	// quotient guaranteed to be within 1 of the actual quotient, then
	// correct against the remainder.
	n := uint(bits.LeadingZeros64(v.hi))
	v1 := v.lsh(n)
	u1 := u.rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = uint128{lo: tq}
	r = u.sub(v.mul64wrap(tq))
	if r.cmp(v) >= 0 {
		q.lo++
		r = r.sub(v)
	}
	return q, r
}

// quoRem64 returns the quotient and remainder of u / v for a 64-bit divisor.
// The caller guarantees v is not zero.
func (u uint128) quoRem64(v uint64) (q uint128, r uint64) {
	if u.hi < v {
		lo, r := bits.Div64(u.hi, u.lo, v)
		return uint128{lo: lo}, r
	}
	hi, r := bits.Div64(0, u.hi, v)
	lo, r := bits.Div64(r, u.lo, v)
	return uint128{hi: hi, lo: lo}, r
}
