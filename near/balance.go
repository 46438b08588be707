package near

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Balance is an unsigned 128-bit amount of yoctoNEAR.
type Balance struct {
	hi, lo uint64
}

// NewBalance returns a balance that fits in 64 bits.
func NewBalance(v uint64) Balance {
	return Balance{lo: v}
}

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// BalanceFromBig converts v, rejecting negatives and values above 2^128-1.
func BalanceFromBig(v *big.Int) (Balance, error) {
	if v.Sign() < 0 {
		return Balance{}, fmt.Errorf("balance %s is negative", v)
	}
	if v.Cmp(maxU128) > 0 {
		return Balance{}, fmt.Errorf("balance %s overflows u128", v)
	}

	var buf [16]byte
	v.FillBytes(buf[:])
	return Balance{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}, nil
}

// ParseBalance parses a base-10 yoctoNEAR amount.
func ParseBalance(s string) (Balance, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Balance{}, fmt.Errorf("invalid balance %q", s)
	}
	return BalanceFromBig(v)
}

// Big returns the balance as a big.Int.
func (b Balance) Big() *big.Int {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], b.hi)
	binary.BigEndian.PutUint64(buf[8:], b.lo)
	return new(big.Int).SetBytes(buf[:])
}

func (b Balance) String() string {
	return b.Big().String()
}

// putLE writes the 16 little-endian bytes of b.
func (b Balance) putLE(dst []byte) {
	binary.LittleEndian.PutUint64(dst[:8], b.lo)
	binary.LittleEndian.PutUint64(dst[8:16], b.hi)
}
