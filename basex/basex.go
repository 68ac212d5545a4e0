// Package basex implements a parametric "base-X" textual codec: a
// big-integer encoding over an arbitrary alphabet, with a trailing
// checksum character and a translation table that maps visually
// ambiguous input characters onto the alphabet value most recently
// declared before them. Base59 is the one concrete instance CUUID uses,
// but the codec itself is alphabet-agnostic the way encoding/base64's
// Encoding type is.
package basex

import (
	"errors"
	"math/big"
)

var (
	// ErrEmptyInput is returned by DecodeString on an input with no
	// recoverable checksum character.
	ErrEmptyInput = errors.New("basex: empty or all-translate input")
	// ErrInvalidChecksum is returned by DecodeString when the trailing
	// checksum character does not match the computed digit sum.
	ErrInvalidChecksum = errors.New("basex: checksum mismatch")
	// ErrInvalidCharacter is returned when a character falls outside both
	// the alphabet and the translation set.
	ErrInvalidCharacter = errors.New("basex: character outside alphabet")
)

// Codec is an immutable alphabet plus its decode table. The zero value is
// not usable; construct one with New.
type Codec struct {
	alphabet string
	base     int
	decoder  [256]int16
}

// New builds a Codec for the given alphabet, with translate supplying
// characters that should decode as whatever alphabet value was most
// recently assigned before them when walked left to right (translate
// characters preceding any real alphabet assignment decode to nothing and
// are skipped on read).
func New(alphabet, translate string) *Codec {
	c := &Codec{alphabet: alphabet, base: len(alphabet)}
	for i := range c.decoder {
		c.decoder[i] = int16(c.base)
	}
	for i := 0; i < len(alphabet); i++ {
		c.decoder[alphabet[i]] = int16(i)
	}

	last := int16(-1)
	for i := 0; i < len(translate); i++ {
		ch := translate[i]
		if int(c.decoder[ch]) < c.base {
			last = c.decoder[ch]
		} else {
			c.decoder[ch] = last
		}
	}
	return c
}

// Base59 is the alphabet and translation table CUUID's textual form uses.
var Base59 = New(
	"zGLUAC2EwdDRrkWBatmscxyYlg6jhP7K53TibenZpMVuvoO9H4XSQq8FfJN",
	"~l1IO0",
)

// EncodeToString encodes data as a big-endian unsigned integer in base
// c.base, MSB first, followed by exactly one checksum character. The
// empty string encodes to just the checksum character for zero.
//
// Because the encoding goes through a single big-integer accumulator,
// leading 0x00 bytes contribute nothing to its value and are not
// recoverable on decode: EncodeToString([]byte{0x00}) and
// EncodeToString(nil) produce the same string, and DecodeString of
// either yields nil. This codec only round-trips byte strings whose
// first byte is nonzero, which is always true of the condensed records
// it is used to encode.
func (c *Codec) EncodeToString(data []byte) string {
	acc := new(big.Int)
	for _, b := range data {
		acc.Lsh(acc, 8)
		acc.Or(acc, big.NewInt(int64(b)))
	}
	digits, partial := c.encodeInt(acc)
	checksum := c.alphabet[(c.base-partial)%c.base]
	return digits + string(checksum)
}

func (c *Codec) encodeInt(i *big.Int) (string, int) {
	if i.Sign() == 0 {
		return "", 0
	}
	base := big.NewInt(int64(c.base))
	n := new(big.Int).Set(i)
	var mod big.Int
	digits := make([]byte, 0, 32)
	sum := 0
	for n.Sign() != 0 {
		n.DivMod(n, base, &mod)
		idx := int(mod.Int64())
		digits = append(digits, c.alphabet[idx])
		sum += idx
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return string(digits), sum % c.base
}

// DecodeString reverses EncodeToString, verifying the checksum character.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	end := len(s)
	checksum := -1
	for end > 0 {
		v := c.decoder[s[end-1]]
		end--
		if v < 0 {
			continue
		}
		if int(v) >= c.base {
			return nil, ErrInvalidCharacter
		}
		checksum = int(v)
		break
	}
	if checksum < 0 {
		return nil, ErrEmptyInput
	}

	base := big.NewInt(int64(c.base))
	acc := new(big.Int)
	sum := 0
	for i := 0; i < end; i++ {
		v := c.decoder[s[i]]
		if v < 0 {
			continue
		}
		if int(v) >= c.base {
			return nil, ErrInvalidCharacter
		}
		acc.Mul(acc, base)
		acc.Add(acc, big.NewInt(int64(v)))
		sum += int(v)
	}

	if (sum+checksum)%c.base != 0 {
		return nil, ErrInvalidChecksum
	}
	if acc.Sign() == 0 {
		return nil, nil
	}
	return acc.Bytes(), nil
}
