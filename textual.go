package cuuid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/compactid/cuuid/basex"
)

// Form selects the textual rendering Encode produces.
type Form int

const (
	// FormEncoded prefers the packed "~"-prefixed base-59 form when the
	// blob is eligible, falling back to semicolon-joined canonical hex.
	FormEncoded Form = iota
	// FormGUID always renders brace-wrapped, semicolon-joined canonical hex.
	FormGUID
	// FormURN always renders the urn:uuid: prefixed, semicolon-joined form.
	FormURN
)

// Encode renders a serialised blob as text in the requested form.
func Encode(blob []byte, form Form) (string, error) {
	switch form {
	case FormEncoded:
		if isPackable(blob) {
			return "~" + basex.Base59.EncodeToString(blob), nil
		}
		return joinHex(blob, "", "")
	case FormGUID:
		return joinHex(blob, "{", "}")
	case FormURN:
		return joinHex(blob, "urn:uuid:", "")
	default:
		return "", ErrBadVersion
	}
}

// isPackable reports whether a serialised blob is eligible for the
// "~"-prefixed base-59 form: it must contain no full-form (0x01) records,
// and must either end on a compact record or satisfy the non-compact tail
// heuristic from the condensed-form design.
func isPackable(blob []byte) bool {
	if len(blob) == 0 || blob[0] == 0x01 {
		return false
	}
	last := blob[len(blob)-1]
	if last&1 != 0 {
		return true
	}
	return len(blob) >= 6 && blob[len(blob)-6]&2 != 0
}

func joinHex(blob []byte, prefix, suffix string) (string, error) {
	uuids, err := UnserialiseMany(blob)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(uuids))
	for i, u := range uuids {
		parts[i] = u.String()
	}
	return prefix + strings.Join(parts, ";") + suffix, nil
}

// Decode accepts any of the textual forms (canonical hex, brace-wrapped
// compound, urn:uuid: prefixed, or "~"-prefixed base-59) and returns the
// underlying serialised blob.
func Decode(s string) ([]byte, error) {
	s = stripWrapping(s)
	tokens := strings.Split(s, ";")

	var out []byte
	for _, tok := range tokens {
		if tok == "" {
			return nil, ErrBadCompound
		}
		if strings.HasPrefix(tok, "~") && len(tok) >= 7 {
			data, err := basex.Base59.DecodeString(tok[1:])
			if err != nil {
				return nil, wrapBaseXError(err)
			}
			if _, err := UnserialiseMany(data); err != nil {
				return nil, ErrBadCompound
			}
			out = append(out, data...)
			continue
		}
		u, err := Parse(tok)
		if err != nil {
			return nil, ErrBadCompound
		}
		out = append(out, u.Serialise()...)
	}
	return out, nil
}

// wrapBaseXError translates a basex decode failure into the matching
// cuuid-level sentinel so callers can tell a checksum mismatch from a
// character outside the alphabet, rather than collapsing both into the
// generic ErrBadCompound.
func wrapBaseXError(err error) error {
	switch {
	case errors.Is(err, basex.ErrInvalidChecksum):
		return fmt.Errorf("%w: %w", ErrBadChecksum, err)
	case errors.Is(err, basex.ErrInvalidCharacter):
		return fmt.Errorf("%w: %w", ErrBadCharacter, err)
	default:
		return fmt.Errorf("%w: %w", ErrBadCompound, err)
	}
}

func stripWrapping(s string) string {
	switch {
	case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
		return s[1 : len(s)-1]
	case strings.HasPrefix(s, "urn:uuid:"):
		return s[len("urn:uuid:"):]
	default:
		return s
	}
}
