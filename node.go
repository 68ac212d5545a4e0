package cuuid

import (
	"github.com/compactid/cuuid/internal/fnv1a"
	"github.com/compactid/cuuid/internal/mt19937"
)

// deriveNode computes the 48-bit "synthetic" node value for a given
// (time, clock, salt) triple. It is the single source of truth for
// compaction: a v1 UUID is compact iff its actual node equals
// deriveNode(compactTime, compactClock, salt) for the triple recovered
// from that same UUID.
func deriveNode(time, clock, salt uint64) uint64 {
	if time == 0 && clock == 0 && salt == 0 {
		return multicastBit
	}

	seed := uint32(fnv1a.Hash(time) ^ fnv1a.Hash(clock) ^ fnv1a.Hash(salt))
	gen := mt19937.New(seed)
	w0 := uint64(gen.Uint32())
	w1 := uint64(gen.Uint32())
	n := w0<<32 | w1

	n &= nodeMask &^ saltMask
	n |= salt
	n |= multicastBit
	return n
}

// compactFields is the (compactTime, compactClock, salt) triple a v1 UUID
// reduces to, plus the node deriveNode would produce for that triple.
type compactFields struct {
	compactTime  uint64
	compactClock uint64
	salt         uint64
	compactNode  uint64
}

// deriveSalt recovers the 7-bit salt from a node value: the low bits of
// the node itself when the multicast bit is set, or a whitened hash of
// the node otherwise.
func deriveSalt(node uint64) uint64 {
	if node&multicastBit != 0 {
		return node & saltMask
	}
	return fnv1a.XorFold(fnv1a.Hash(node), saltBits) & saltMask
}

// compactFieldsOf computes the compact triple for a v1 UUID's raw
// (time, clock, node) fields, along with whether the UUID's actual node
// matches the derived one (i.e. whether it is compact).
func compactFieldsOf(time, clock, node uint64) (compactFields, bool) {
	compactTime := uint64(0)
	if time != 0 {
		compactTime = (time - timeInitial) & timeMask
	}
	compactTimeLow := compactTime & clockMask
	compactTime >>= clockBits
	compactClock := clock ^ compactTimeLow
	salt := deriveSalt(node)
	compactNode := deriveNode(compactTime, compactClock, salt)

	cf := compactFields{
		compactTime:  compactTime,
		compactClock: compactClock,
		salt:         salt,
		compactNode:  compactNode,
	}
	return cf, node == compactNode
}

// IsCompact reports whether u is a v1, RFC 4122 UUID whose node equals the
// node deriveNode would produce for its own compact triple.
func (u UUID) IsCompact() bool {
	if !u.Variant() || u.Version() != 1 {
		return false
	}
	_, compact := compactFieldsOf(u.time(), u.clock(), u.node())
	return compact
}

// CalculatedNode returns the node deriveNode would produce for u's own
// compact triple, regardless of whether u is actually compact.
func (u UUID) CalculatedNode() uint64 {
	cf, _ := compactFieldsOf(u.time(), u.clock(), u.node())
	return cf.compactNode
}

// Compact returns a copy of u whose node has been crushed down to the
// calculated node (u itself when it is already compact), along with whether
// u could be crushed. Only v1 RFC 4122 UUIDs can be crushed; anything else
// is returned unchanged with ok == false.
func (u UUID) Compact() (UUID, bool) {
	if !u.Variant() || u.Version() != 1 {
		return u, false
	}
	cf, compact := compactFieldsOf(u.time(), u.clock(), u.node())
	if compact {
		return u, true
	}
	crushed := uuidFromFields(u.time(), u.clock(), cf.compactNode)
	return crushed, true
}
