package builtins

import "github.com/moose-lang/moose/internal/object"

// Every built-in binary operator propagates nil: if either operand is a
// nil scalar, the result is a nil of the declared return type rather than
// computing on a zero value. The equality operators (==, !=) are the
// exception: they always return a non-nil Bool, with two nils comparing
// equal and a nil against a non-nil comparing unequal.

func addInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Integer{IsNil: true}, nil
	}
	return &object.Integer{Value: a.Value + b.Value}, nil
}

func subInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Integer{IsNil: true}, nil
	}
	return &object.Integer{Value: a.Value - b.Value}, nil
}

func mulInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Integer{IsNil: true}, nil
	}
	return &object.Integer{Value: a.Value * b.Value}, nil
}

func divInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Integer{IsNil: true}, nil
	}
	if b.Value == 0 {
		return nil, object.NewPanic(object.Generic, "division by zero")
	}
	return &object.Integer{Value: a.Value / b.Value}, nil
}

func modInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Integer{IsNil: true}, nil
	}
	if b.Value == 0 {
		return nil, object.NewPanic(object.Generic, "division by zero")
	}
	return &object.Integer{Value: a.Value % b.Value}, nil
}

func ltInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value < b.Value}, nil
}

func gtInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value > b.Value}, nil
}

func leInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value <= b.Value}, nil
}

func geInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value >= b.Value}, nil
}

func eqInt(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Integer), args[1].(*object.Integer)
	if a.IsNil || b.IsNil {
		return &object.Bool{Value: a.IsNil && b.IsNil}, nil
	}
	return &object.Bool{Value: a.Value == b.Value}, nil
}

func neInt(args []object.Object) (object.Object, *object.Panic) {
	r, p := eqInt(args)
	if p != nil {
		return nil, p
	}
	b := r.(*object.Bool)
	return &object.Bool{Value: !b.Value}, nil
}

func addFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Float{IsNil: true}, nil
	}
	return &object.Float{Value: a.Value + b.Value}, nil
}

func subFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Float{IsNil: true}, nil
	}
	return &object.Float{Value: a.Value - b.Value}, nil
}

func mulFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Float{IsNil: true}, nil
	}
	return &object.Float{Value: a.Value * b.Value}, nil
}

func divFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Float{IsNil: true}, nil
	}
	return &object.Float{Value: a.Value / b.Value}, nil
}

func ltFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value < b.Value}, nil
}

func gtFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value > b.Value}, nil
}

func leFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value <= b.Value}, nil
}

func geFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value >= b.Value}, nil
}

func eqFloat(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Float), args[1].(*object.Float)
	if a.IsNil || b.IsNil {
		return &object.Bool{Value: a.IsNil && b.IsNil}, nil
	}
	return &object.Bool{Value: a.Value == b.Value}, nil
}

func neFloat(args []object.Object) (object.Object, *object.Panic) {
	r, p := eqFloat(args)
	if p != nil {
		return nil, p
	}
	b := r.(*object.Bool)
	return &object.Bool{Value: !b.Value}, nil
}

func eqBool(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Bool), args[1].(*object.Bool)
	if a.IsNil || b.IsNil {
		return &object.Bool{Value: a.IsNil && b.IsNil}, nil
	}
	return &object.Bool{Value: a.Value == b.Value}, nil
}

func neBool(args []object.Object) (object.Object, *object.Panic) {
	r, p := eqBool(args)
	if p != nil {
		return nil, p
	}
	b := r.(*object.Bool)
	return &object.Bool{Value: !b.Value}, nil
}

func andBool(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Bool), args[1].(*object.Bool)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value && b.Value}, nil
}

func orBool(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.Bool), args[1].(*object.Bool)
	if a.IsNil || b.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: a.Value || b.Value}, nil
}

func notBool(args []object.Object) (object.Object, *object.Panic) {
	a := args[0].(*object.Bool)
	if a.IsNil {
		return &object.Bool{IsNil: true}, nil
	}
	return &object.Bool{Value: !a.Value}, nil
}

func negInt(args []object.Object) (object.Object, *object.Panic) {
	a := args[0].(*object.Integer)
	if a.IsNil {
		return &object.Integer{IsNil: true}, nil
	}
	return &object.Integer{Value: -a.Value}, nil
}

func negFloat(args []object.Object) (object.Object, *object.Panic) {
	a := args[0].(*object.Float)
	if a.IsNil {
		return &object.Float{IsNil: true}, nil
	}
	return &object.Float{Value: -a.Value}, nil
}

func eqString(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.String), args[1].(*object.String)
	if a.IsNil || b.IsNil {
		return &object.Bool{Value: a.IsNil && b.IsNil}, nil
	}
	return &object.Bool{Value: a.Value == b.Value}, nil
}

func neString(args []object.Object) (object.Object, *object.Panic) {
	r, p := eqString(args)
	if p != nil {
		return nil, p
	}
	b := r.(*object.Bool)
	return &object.Bool{Value: !b.Value}, nil
}

func addString(args []object.Object) (object.Object, *object.Panic) {
	a, b := args[0].(*object.String), args[1].(*object.String)
	if a.IsNil || b.IsNil {
		return &object.String{IsNil: true}, nil
	}
	return &object.String{Value: a.Value + b.Value}, nil
}
