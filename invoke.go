package portal

import (
	"context"
	"fmt"
	"reflect"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// callMethod invokes the named method on fac with the supplied arguments.
// The method may optionally take a leading context.Context; the remaining
// parameters must match args. Accepted return shapes are: nothing,
// error, T, or (T, error).
//
// A returned bare value that satisfies error is treated identically to a
// returned error (the error-as-value convention), and a panic inside the
// target is recovered and reported as a failure. Every failure is
// wrapped in a *MethodCallError so rootCause can recover the original
// cause.
func callMethod(ctx context.Context, fac any, method string, args ...any) (result any, err error) {
	m := reflect.ValueOf(fac).MethodByName(method)
	if !m.IsValid() {
		return nil, &MethodCallError{
			Method: method,
			Err:    fmt.Errorf("%w: %s on %T", ErrMethodNotFound, method, fac),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &MethodCallError{
				Method: method,
				Err:    fmt.Errorf("panic in %s: %v", method, r),
			}
		}
	}()

	mt := m.Type()
	in := make([]reflect.Value, 0, mt.NumIn())
	next := 0
	if mt.NumIn() > 0 && mt.In(0) == ctxType {
		in = append(in, reflect.ValueOf(ctx))
		next = 1
	}

	if mt.NumIn()-next != len(args) {
		return nil, &MethodCallError{
			Method: method,
			Err: fmt.Errorf("%w: %s takes %d argument(s), have %d",
				ErrBadSignature, method, mt.NumIn()-next, len(args)),
		}
	}

	for i, a := range args {
		pt := mt.In(next + i)
		if a == nil {
			in = append(in, reflect.Zero(pt))
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, &MethodCallError{
				Method: method,
				Err: fmt.Errorf("%w: %s argument %d wants %s, have %T",
					ErrBadSignature, method, i, pt, a),
			}
		}
		in = append(in, av)
	}

	out := m.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return interpretValue(method, out[0])
	case 2:
		if mt.Out(1) != errType {
			break
		}
		if e, _ := out[1].Interface().(error); e != nil {
			return nil, &MethodCallError{Method: method, Err: e}
		}
		return interpretValue(method, out[0])
	}
	return nil, &MethodCallError{
		Method: method,
		Err:    fmt.Errorf("%w: %s returns %d value(s)", ErrBadSignature, method, len(out)),
	}
}

// interpretValue applies the error-as-value convention to a single
// returned value: an error value fails the call, a nil error declared
// return means success with no value, anything else is the result.
func interpretValue(method string, v reflect.Value) (any, error) {
	raw := v.Interface()
	if e, ok := raw.(error); ok {
		if e == nil {
			return nil, nil
		}
		return nil, &MethodCallError{Method: method, Err: e}
	}
	if v.Type() == errType {
		// Declared error return holding a nil value.
		return nil, nil
	}
	return raw, nil
}
