package builtins

import (
	"strconv"

	"github.com/moose-lang/moose/internal/object"
	"github.com/moose-lang/moose/internal/types"
)

// Every Fn below receives the receiver value as args[0] — the
// evaluator's call protocol always prepends it before any declared call
// arguments.

func intToBool(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Integer)
	if r.IsNil {
		return object.NilValueOf(types.Bool{}), nil
	}
	return &object.Bool{Value: r.Value != 0}, nil
}

func intToFloat(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Integer)
	if r.IsNil {
		return object.NilValueOf(types.Float{}), nil
	}
	return &object.Float{Value: float64(r.Value)}, nil
}

func intToString(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Integer)
	if r.IsNil {
		return object.NilValueOf(types.String{}), nil
	}
	return &object.String{Value: strconv.FormatInt(r.Value, 10)}, nil
}

func intToInt(args []object.Object) (object.Object, *object.Panic) {
	return args[0], nil
}

func floatToBool(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Float)
	if r.IsNil {
		return object.NilValueOf(types.Bool{}), nil
	}
	return &object.Bool{Value: r.Value != 0}, nil
}

func floatToFloat(args []object.Object) (object.Object, *object.Panic) {
	return args[0], nil
}

func floatToString(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Float)
	if r.IsNil {
		return object.NilValueOf(types.String{}), nil
	}
	return &object.String{Value: strconv.FormatFloat(r.Value, 'g', -1, 64)}, nil
}

func floatToInt(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Float)
	if r.IsNil {
		return object.NilValueOf(types.Integer{}), nil
	}
	return &object.Integer{Value: int64(r.Value)}, nil
}

func boolToBool(args []object.Object) (object.Object, *object.Panic) {
	return args[0], nil
}

func boolToString(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Bool)
	if r.IsNil {
		return object.NilValueOf(types.String{}), nil
	}
	return &object.String{Value: strconv.FormatBool(r.Value)}, nil
}

func boolToInt(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.Bool)
	if r.IsNil {
		return object.NilValueOf(types.Integer{}), nil
	}
	if r.Value {
		return &object.Integer{Value: 1}, nil
	}
	return &object.Integer{Value: 0}, nil
}

func stringToString(args []object.Object) (object.Object, *object.Panic) {
	return args[0], nil
}

func stringLength(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.String)
	if r.IsNil {
		return object.NilValueOf(types.Integer{}), nil
	}
	return &object.Integer{Value: int64(len(r.Value))}, nil
}

// strParseInt/strParseFloat/strParseBool each return a (value, error)
// pair: a nil receiver propagates to a tuple with every component nil,
// and an unparseable string yields `(nil, "Cannot parse 'X' to an
// T.")` rather than a panic, since a malformed string is an expected
// runtime outcome, not a programmer error.

func noParseErr() *object.String { return &object.String{IsNil: true} }

func parseErr(raw, typeName string) *object.String {
	return &object.String{Value: "Cannot parse '" + raw + "' to an " + typeName + "."}
}

func strParseInt(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.String)
	tupleType := types.Tuple{Elements: []types.Type{types.Integer{}, types.String{}}}
	if r.IsNil {
		return object.NilValueOf(tupleType), nil
	}
	n, err := strconv.ParseInt(r.Value, 10, 64)
	if err != nil {
		return &object.Tuple{ElemTypes: tupleType.Elements, Elements: []object.Object{&object.Integer{IsNil: true}, parseErr(r.Value, "Int")}}, nil
	}
	return &object.Tuple{ElemTypes: tupleType.Elements, Elements: []object.Object{&object.Integer{Value: n}, noParseErr()}}, nil
}

func strParseFloat(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.String)
	tupleType := types.Tuple{Elements: []types.Type{types.Float{}, types.String{}}}
	if r.IsNil {
		return object.NilValueOf(tupleType), nil
	}
	f, err := strconv.ParseFloat(r.Value, 64)
	if err != nil {
		return &object.Tuple{ElemTypes: tupleType.Elements, Elements: []object.Object{&object.Float{IsNil: true}, parseErr(r.Value, "Float")}}, nil
	}
	return &object.Tuple{ElemTypes: tupleType.Elements, Elements: []object.Object{&object.Float{Value: f}, noParseErr()}}, nil
}

func strParseBool(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.String)
	tupleType := types.Tuple{Elements: []types.Type{types.Bool{}, types.String{}}}
	if r.IsNil {
		return object.NilValueOf(tupleType), nil
	}
	b, err := strconv.ParseBool(r.Value)
	if err != nil {
		return &object.Tuple{ElemTypes: tupleType.Elements, Elements: []object.Object{&object.Bool{IsNil: true}, parseErr(r.Value, "Bool")}}, nil
	}
	return &object.Tuple{ElemTypes: tupleType.Elements, Elements: []object.Object{&object.Bool{Value: b}, noParseErr()}}, nil
}

func listLength(args []object.Object) (object.Object, *object.Panic) {
	r := args[0].(*object.List)
	if r.IsNil {
		return object.NilValueOf(types.Integer{}), nil
	}
	return &object.Integer{Value: int64(len(r.Elements))}, nil
}
