package cuuid

import "math/big"

// FromData packs up to 15 bytes of caller-supplied payload into a v1,
// RFC-4122, multicast-bit UUID's variable bits. The payload is
// interpreted as a big-endian unsigned integer; if it does not fit in the
// UUID's variable bits, FromData fails with ErrUUIDTooLarge.
func FromData(data []byte) (UUID, error) {
	n := new(big.Int).SetBytes(data)

	shifted := new(big.Int).Lsh(n, 1)
	top7 := shifted.And(shifted, big.NewInt(0xfe0000000000))
	low40 := new(big.Int).And(n, big.NewInt(0x00ffffffffff))
	node := new(big.Int).Or(top7, low40)
	node.Or(node, big.NewInt(multicastBit))

	n.Rsh(n, 47)

	clockLow := new(big.Int).And(n, big.NewInt(0xff)).Uint64()
	n.Rsh(n, 8)
	clockHi := new(big.Int).And(n, big.NewInt(0x3f)).Uint64()
	n.Rsh(n, 6)
	timeLow := new(big.Int).And(n, big.NewInt(0xffffffff)).Uint64()
	n.Rsh(n, 32)
	timeMid := new(big.Int).And(n, big.NewInt(0xffff)).Uint64()
	n.Rsh(n, 16)
	timeHi := new(big.Int).And(n, big.NewInt(0xfff)).Uint64()
	n.Rsh(n, 12)

	if n.Sign() != 0 {
		return UUID{}, ErrUUIDTooLarge
	}

	var u UUID
	u[0] = byte(timeLow >> 24)
	u[1] = byte(timeLow >> 16)
	u[2] = byte(timeLow >> 8)
	u[3] = byte(timeLow)
	u[4] = byte(timeMid >> 8)
	u[5] = byte(timeMid)
	u[6] = byte(timeHi>>8) | 0x10
	u[7] = byte(timeHi)
	u[8] = byte(clockHi) | 0x80
	u[9] = byte(clockLow)
	nodeVal := node.Uint64()
	for i := 0; i < 6; i++ {
		u[15-i] = byte(nodeVal >> (8 * uint(i)))
	}
	return u, nil
}

// Data is the inverse of FromData: it recovers the payload bytes when u is
// a v1, RFC-4122, multicast-bit UUID; for any other UUID it returns nil.
func (u UUID) Data() []byte {
	if !u.Variant() || u.Version() != 1 || u.node()&multicastBit == 0 {
		return nil
	}

	clockLow := uint64(u[9])
	clockHi := uint64(u[8] & 0x3f)
	timeLow := uint64(u[0])<<24 | uint64(u[1])<<16 | uint64(u[2])<<8 | uint64(u[3])
	timeMid := uint64(u[4])<<8 | uint64(u[5])
	timeHi := uint64(u[6]&0x0f)<<8 | uint64(u[7])
	node := u.node()

	n := new(big.Int).SetUint64(timeHi)
	n.Lsh(n, 16)
	n.Or(n, new(big.Int).SetUint64(timeMid))
	n.Lsh(n, 32)
	n.Or(n, new(big.Int).SetUint64(timeLow))
	n.Lsh(n, 6)
	n.Or(n, new(big.Int).SetUint64(clockHi))
	n.Lsh(n, 8)
	n.Or(n, new(big.Int).SetUint64(clockLow))
	n.Lsh(n, 47)

	low40 := node & 0x00ffffffffff
	top7 := (node & 0xfe0000000000) >> 1
	n.Or(n, new(big.Int).SetUint64(top7|low40))

	if n.Sign() == 0 {
		return nil
	}
	return n.Bytes()
}
