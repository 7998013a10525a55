package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/insts"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case uint64:
		return starlark.MakeUint64(v)

	// printed output
	case []byte:
		return starlark.Bytes(v)

	// cells are numbers so scripts can compute with them
	case *[bfvm.TapeSize]byte:
		elems := make([]starlark.Value, len(v))
		for i, b := range v {
			elems[i] = starlark.MakeInt(int(b))
		}
		return starlark.NewList(elems)

	case []uint64:
		if v == nil {
			return starlark.None
		}
		elems := make([]starlark.Value, len(v))
		for i, n := range v {
			elems[i] = starlark.MakeUint64(n)
		}
		return starlark.NewList(elems)

	case bfvm.EOFMode:
		return starlark.String(v.String())

	case insts.Instruction:
		return starlark.String(v.String())
	case insts.Program:
		elems := make([]starlark.Value, len(v))
		for i, inst := range v {
			elems[i] = toStarlarkValue(inst)
		}
		return starlark.NewList(elems)

	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		return starlarkutil.MakeFunc("", v)
	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
