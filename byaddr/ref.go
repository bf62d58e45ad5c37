package byaddr

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"unsafe"
)

// Ref wraps a pointer-like value and compares by the identity of its
// referent instead of by contents. The wrapped value stays reachable and
// usable through Value, so reading or mutating the referent never changes
// how the wrapper compares.
//
// The == operator works for instantiations whose P is comparable; Equal,
// Compare and Hash work for all of them.
type Ref[P any] struct {
	val P
	id  Identity
}

// Pointer is implemented by handle types that expose the address they guard.
type Pointer[T any] interface {
	Deref() *T
}

// Of wraps a pointer. Two wrappers are equal exactly when they wrap the same
// pointer, whatever the pointees currently hold.
func Of[T any](p *T) Ref[*T] {
	return Ref[*T]{val: p, id: Identity{p: unsafe.Pointer(p)}}
}

// OfSlice wraps a slice. The identity is the backing-array address together
// with the length, so a prefix and a longer view of one array stay distinct.
func OfSlice[E any](s []E) Ref[[]E] {
	return Ref[[]E]{val: s, id: Identity{p: unsafe.Pointer(unsafe.SliceData(s)), n: len(s)}}
}

// OfString wraps a string by the address and length of its bytes.
func OfString(s string) Ref[string] {
	return Ref[string]{val: s, id: Identity{p: unsafe.Pointer(unsafe.StringData(s)), n: len(s)}}
}

// OfMap wraps a map by the address of its shared table, so aliases of one
// map compare equal.
func OfMap[K comparable, V any](m map[K]V) Ref[map[K]V] {
	return Ref[map[K]V]{val: m, id: Identity{p: reflect.ValueOf(m).UnsafePointer()}}
}

// OfChan wraps a channel by the address of its shared buffer structure.
func OfChan[T any](ch chan T) Ref[chan T] {
	return Ref[chan T]{val: ch, id: Identity{p: reflect.ValueOf(ch).UnsafePointer()}}
}

// OfFunc wraps a function value. The identity is the function value itself,
// not its code address, so closures produced by separate evaluations of one
// literal stay distinct. F must be a concrete func type.
func OfFunc[F any](fn F) Ref[F] {
	if t := reflect.TypeOf((*F)(nil)).Elem(); t.Kind() != reflect.Func {
		panic(fmt.Sprintf("called OfFunc with %s, not a func type", t))
	}
	return Ref[F]{val: fn, id: Identity{p: *(*unsafe.Pointer)(unsafe.Pointer(&fn))}}
}

// OfPointer wraps a handle by the address it dereferences to, so separately
// created handles over one referent compare equal. Use Equal rather than ==
// on the result: == also compares the handle values, which may differ.
//
// The referent type is not inferred from the handle's method set, so calls
// name it explicitly: byaddr.OfPointer[node](handle).
func OfPointer[T any, P Pointer[T]](h P) Ref[P] {
	return Ref[P]{val: h, id: Identity{p: unsafe.Pointer(h.Deref())}}
}

// New wraps any pointer-like value, picking the identity rule from its
// runtime kind. The typed constructors above do the same without
// reflection. New panics when v carries no referent address; IdentityOf is
// the non-panicking form.
func New[P any](v P) Ref[P] {
	id, err := IdentityOf(v)
	if err != nil {
		panic(fmt.Sprintf("called New with %T, not a pointer-like value", any(v)))
	}
	return Ref[P]{val: v, id: id}
}

// Value returns the wrapped value.
func (r Ref[P]) Value() P {
	return r.val
}

// Identity returns the identity the wrapper compares by.
func (r Ref[P]) Identity() Identity {
	return r.id
}

// Equal reports whether both wrappers name the same referent.
func (r Ref[P]) Equal(other Ref[P]) bool {
	return r.id == other.id
}

// Compare orders wrappers by referent address, then extent, returning -1, 0
// or +1.
func (r Ref[P]) Compare(other Ref[P]) int {
	return r.id.Compare(other.id)
}

// Hash returns a seed-stable hash of the wrapper's identity.
func (r Ref[P]) Hash(seed maphash.Seed) uint64 {
	return SeededHash(seed, r.id)
}

// String formats the wrapper as Ref(<identity>).
func (r Ref[P]) String() string {
	return fmt.Sprintf("Ref(%s)", r.id)
}

// SeededHashRef hashes a wrapper with the given seed. Free function rather
// than a method so it matches the hasher callback of xsync.NewTypedMapOf,
// which wants the key after the seed:
//
//	calls := xsync.NewTypedMapOf[byaddr.Ref[*node], int](byaddr.SeededHashRef)
func SeededHashRef[P any](seed maphash.Seed, r Ref[P]) uint64 {
	return SeededHash(seed, r.id)
}
