package cuuid

import (
	"math/big"
)

// tag is one (pattern, mask) row of the length-tag table: a condensed
// record's top byte satisfies (top & mask) == pattern.
type tag struct {
	pattern byte
	mask    byte
}

// vl is the 13x2 length-tag table. Row i corresponds to a payload of
// i+4 bytes; column 0 is used when the natural top byte's high nibble is
// zero, column 1 otherwise. Frozen: any change breaks wire compatibility.
var vl = [13][2]tag{
	{{0x1c, 0xfc}, {0x1c, 0xfc}},
	{{0x18, 0xfc}, {0x18, 0xfc}},
	{{0x14, 0xfc}, {0x14, 0xfc}},
	{{0x10, 0xfc}, {0x10, 0xfc}},
	{{0x04, 0xfc}, {0x40, 0xc0}},
	{{0x0a, 0xfe}, {0xa0, 0xe0}},
	{{0x08, 0xfe}, {0x80, 0xe0}},
	{{0x02, 0xff}, {0x20, 0xf0}},
	{{0x03, 0xff}, {0x30, 0xf0}},
	{{0x0c, 0xff}, {0xc0, 0xf0}},
	{{0x0d, 0xff}, {0xd0, 0xf0}},
	{{0x0e, 0xff}, {0xe0, 0xf0}},
	{{0x0f, 0xff}, {0xf0, 0xf0}},
}

// Serialise encodes u into its self-delimiting wire record: one byte 0x01
// followed by the 16 raw bytes for any non-v1 or non-RFC-4122 UUID, or a
// 4..16 byte condensed record for a v1 RFC 4122 UUID.
func (u UUID) Serialise() []byte {
	if !u.Variant() || u.Version() != 1 {
		out := make([]byte, 17)
		out[0] = 0x01
		copy(out[1:], u[:])
		return out
	}

	time := u.time()
	clock := u.clock()
	node := u.node()

	cf, compact := compactFieldsOf(time, clock, node)

	meat := new(big.Int)
	if compact {
		meat.SetUint64(cf.compactTime)
		meat.Lsh(meat, clockBits)
		meat.Or(meat, big.NewInt(int64(cf.compactClock)))
		meat.Lsh(meat, saltBits)
		meat.Or(meat, big.NewInt(int64(cf.salt)))
		meat.Lsh(meat, 1)
		meat.Or(meat, big.NewInt(1))
	} else {
		t := time
		if node&multicastBit == 0 && t != 0 {
			t = (t - timeInitial) & timeMask
		}
		meat.SetUint64(t)
		meat.Lsh(meat, clockBits)
		meat.Or(meat, big.NewInt(int64(clock)))
		meat.Lsh(meat, nodeBits)
		meat.Or(meat, new(big.Int).SetUint64(node))
		meat.Lsh(meat, 1)
	}

	payload := meat.Bytes()
	if len(payload) < 4 {
		padded := make([]byte, 4)
		copy(padded[4-len(payload):], payload)
		payload = padded
	}

	payloadLen := len(payload) - 4
	top := payload[0]
	switch {
	case top&vl[payloadLen][0].mask == 0:
		payload[0] = top | vl[payloadLen][0].pattern
	case top&vl[payloadLen][1].mask == 0:
		payload[0] = top | vl[payloadLen][1].pattern
	default:
		extended := make([]byte, len(payload)+1)
		extended[0] = vl[payloadLen+1][0].pattern
		copy(extended[1:], payload)
		payload = extended
	}
	return payload
}

// Unserialise reads one wire record from the front of data, returning the
// decoded UUID and the number of bytes consumed.
func Unserialise(data []byte) (UUID, int, error) {
	if len(data) < 2 {
		return UUID{}, 0, ErrTruncated
	}

	if data[0] == 0x01 {
		if len(data) < 17 {
			return UUID{}, 0, ErrTruncated
		}
		var u UUID
		copy(u[:], data[1:17])
		return u, 17, nil
	}

	q := 0
	if data[0]&0xf0 != 0 {
		q = 1
	}
	i := -1
	for row := 0; row < 13; row++ {
		t := vl[row][q]
		if data[0]&t.mask == t.pattern {
			i = row
			break
		}
	}
	if i < 0 {
		return UUID{}, 0, ErrBadTag
	}

	recLen := i + 4
	if len(data) < recLen {
		return UUID{}, 0, ErrTruncated
	}

	rec := make([]byte, recLen)
	copy(rec, data[:recLen])
	rec[0] &^= vl[i][q].mask

	meat := new(big.Int).SetBytes(rec)
	one := big.NewInt(1)
	compacted := new(big.Int).And(meat, one).Sign() != 0
	meat.Rsh(meat, 1)

	var timeVal, clock, node uint64
	if compacted {
		salt := new(big.Int).And(meat, big.NewInt(int64(saltMask))).Uint64()
		meat.Rsh(meat, saltBits)
		clock = new(big.Int).And(meat, big.NewInt(int64(clockMask))).Uint64()
		meat.Rsh(meat, clockBits)
		timeVal = new(big.Int).And(meat, new(big.Int).SetUint64(timeMask)).Uint64()
		node = deriveNode(timeVal, clock, salt)
	} else {
		node = new(big.Int).And(meat, new(big.Int).SetUint64(nodeMask)).Uint64()
		meat.Rsh(meat, nodeBits)
		clock = new(big.Int).And(meat, big.NewInt(int64(clockMask))).Uint64()
		meat.Rsh(meat, clockBits)
		timeVal = new(big.Int).And(meat, new(big.Int).SetUint64(timeMask)).Uint64()
	}

	if timeVal != 0 {
		if compacted {
			timeVal = ((timeVal << clockBits) + timeInitial) & timeMask
		} else if node&multicastBit == 0 {
			timeVal = (timeVal + timeInitial) & timeMask
		}
	}

	return uuidFromFields(timeVal, clock, node), recLen, nil
}

// SerialiseMany concatenates the wire records of uuids with no separator.
func SerialiseMany(uuids []UUID) []byte {
	out := make([]byte, 0, len(uuids)*17)
	for _, u := range uuids {
		out = append(out, u.Serialise()...)
	}
	return out
}

// UnserialiseMany splits data into consecutive wire records until the
// input is exhausted.
func UnserialiseMany(data []byte) ([]UUID, error) {
	var out []UUID
	for len(data) > 0 {
		u, n, err := Unserialise(data)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
		data = data[n:]
	}
	return out, nil
}
