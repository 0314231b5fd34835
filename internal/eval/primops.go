package eval

import "github.com/mlisp/minilisp/internal/object"

// evalPrimOp evaluates args left to right, then the apply* helpers below
// check arity and operand types before applying the operator's semantics.
// and/or are special-cased in evalPrimOp (via evalShortCircuit) for
// short-circuiting; every other operator has every argument evaluated
// unconditionally.
func asInts(vals []object.Value) ([]int64, error) {
	out := make([]int64, len(vals))
	for i, v := range vals {
		n, ok := v.(object.Int)
		if !ok {
			return nil, typeError("number", object.TypeName(v))
		}
		out[i] = int64(n)
	}
	return out, nil
}

func asBools(vals []object.Value) ([]bool, error) {
	out := make([]bool, len(vals))
	for i, v := range vals {
		b, ok := v.(object.Bool)
		if !ok {
			return nil, typeError("boolean", object.TypeName(v))
		}
		out[i] = bool(b)
	}
	return out, nil
}

func applyAdd(vals []object.Value) (object.Value, error) {
	if len(vals) < 2 {
		return nil, needAtLeast(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, n := range ns {
		sum += n
	}
	return object.Int(sum), nil
}

func applyMul(vals []object.Value) (object.Value, error) {
	if len(vals) < 2 {
		return nil, needAtLeast(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	product := int64(1)
	for _, n := range ns {
		product *= n
	}
	return object.Int(product), nil
}

func applySub(vals []object.Value) (object.Value, error) {
	if len(vals) != 2 {
		return nil, needExactly(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	return object.Int(ns[0] - ns[1]), nil
}

func applyDiv(vals []object.Value) (object.Value, error) {
	if len(vals) != 2 {
		return nil, needExactly(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	if ns[1] == 0 {
		return nil, divisionByZero()
	}
	return object.Int(ns[0] / ns[1]), nil // Go's / truncates toward zero
}

func applyMod(vals []object.Value) (object.Value, error) {
	if len(vals) != 2 {
		return nil, needExactly(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	if ns[1] == 0 {
		return nil, divisionByZero()
	}
	return object.Int(ns[0] % ns[1]), nil // Go's % carries the dividend's sign
}

func applyGt(vals []object.Value) (object.Value, error) {
	if len(vals) != 2 {
		return nil, needExactly(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	return object.Bool(ns[0] > ns[1]), nil
}

func applyLt(vals []object.Value) (object.Value, error) {
	if len(vals) != 2 {
		return nil, needExactly(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	return object.Bool(ns[0] < ns[1]), nil
}

func applyEq(vals []object.Value) (object.Value, error) {
	if len(vals) < 2 {
		return nil, needAtLeast(2, len(vals))
	}
	ns, err := asInts(vals)
	if err != nil {
		return nil, err
	}
	for _, n := range ns[1:] {
		if n != ns[0] {
			return object.Bool(false), nil
		}
	}
	return object.Bool(true), nil
}

func applyNot(vals []object.Value) (object.Value, error) {
	if len(vals) != 1 {
		return nil, needOne(len(vals))
	}
	bs, err := asBools(vals)
	if err != nil {
		return nil, err
	}
	return object.Bool(!bs[0]), nil
}
