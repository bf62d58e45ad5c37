package byaddr

import (
	"reflect"
	"unsafe"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrNotPointerLike reports a value whose kind carries no referent address.
// Errors returned by IdentityOf and IdentitiesOf wrap it; match with
// errors.Cause.
var ErrNotPointerLike = errors.New("byaddr: not a pointer-like value")

// eface mirrors the runtime layout of an empty interface.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

func efaceData(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}

// IdentityOf derives the identity of an arbitrary value, picking the rule
// from its runtime kind. Typed nil pointers, maps, channels and funcs yield
// the zero Identity; untyped nil and kinds without a referent address fail
// with ErrNotPointerLike.
func IdentityOf(v any) (Identity, error) {
	if v == nil {
		return Identity{}, errors.Wrap(ErrNotPointerLike, "untyped nil")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return Identity{p: rv.UnsafePointer()}, nil
	case reflect.Func:
		// reflect reports the code address for funcs, which every closure
		// made from one literal shares. The interface data word is the
		// function value itself, which does not.
		return Identity{p: efaceData(v)}, nil
	case reflect.Slice:
		return Identity{p: rv.UnsafePointer(), n: rv.Len()}, nil
	case reflect.String:
		s := rv.String()
		return Identity{p: unsafe.Pointer(unsafe.StringData(s)), n: len(s)}, nil
	}
	return Identity{}, errors.Wrapf(ErrNotPointerLike, "%s of kind %s", rv.Type(), rv.Kind())
}

// IdentitiesOf derives identities for a batch of values. The returned slice
// always has one entry per input; entries whose value was rejected hold the
// zero Identity, and the error lists every offending position.
func IdentitiesOf(vs ...any) ([]Identity, error) {
	ids := make([]Identity, len(vs))
	var result *multierror.Error
	for i, v := range vs {
		id, err := IdentityOf(v)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "value %d", i))
			continue
		}
		ids[i] = id
	}
	return ids, result.ErrorOrNil()
}
