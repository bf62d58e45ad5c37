package byaddr

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"unsafe"

	// Addr, Compare and SeededHash expose the numeric address, which is only
	// stable while the runtime never moves heap objects.
	_ "go4.org/unsafe/assume-no-moving-gc"
)

// Identity names storage, not contents: two values have the same Identity
// exactly when their referents start at the same address and span the same
// extent. It is comparable, so it can key ordinary maps directly.
//
// An Identity carries no type information. Comparing identities taken from
// referents of different kinds is allowed but rarely meaningful.
type Identity struct {
	p unsafe.Pointer
	n int
}

// Addr returns the referent address.
func (id Identity) Addr() uintptr {
	return uintptr(id.p)
}

// Len returns the recorded extent. It is zero for referents that have none,
// such as plain pointers.
func (id Identity) Len() int {
	return id.n
}

// IsZero reports whether id is the zero Identity, as produced from nil
// pointer-like values.
func (id Identity) IsZero() bool {
	return id.p == nil && id.n == 0
}

// Equal reports whether both identities name the same storage.
func (id Identity) Equal(other Identity) bool {
	return id == other
}

// Compare orders identities by address, then by extent, returning -1, 0 or
// +1. The order is total within one program run and carries no meaning
// beyond it.
func (id Identity) Compare(other Identity) int {
	if c := cmp.Compare(uintptr(id.p), uintptr(other.p)); c != 0 {
		return c
	}
	return cmp.Compare(id.n, other.n)
}

// Hash returns a seed-stable hash of the identity. Identities that are Equal
// hash alike under the same seed.
func (id Identity) Hash(seed maphash.Seed) uint64 {
	return SeededHash(seed, id)
}

// String formats the identity as a hexadecimal address, with the extent
// appended when one is recorded.
func (id Identity) String() string {
	if id.n != 0 {
		return fmt.Sprintf("0x%x+%d", uintptr(id.p), id.n)
	}
	return fmt.Sprintf("0x%x", uintptr(id.p))
}

// SeededHash hashes an identity with the given seed. Its signature matches
// the hasher callback of xsync.NewTypedMapOf, so identities can key
// concurrent maps directly:
//
//	seen := xsync.NewTypedMapOf[byaddr.Identity, struct{}](byaddr.SeededHash)
func SeededHash(seed maphash.Seed, id Identity) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(uintptr(id.p)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(id.n))
	return maphash.Bytes(seed, buf[:])
}
