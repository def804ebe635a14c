package show

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"math"
	"reflect"
	"strconv"
)

var (
	// ErrNotAllowed reports an expression form outside the evaluable
	// subset.
	ErrNotAllowed = errors.New("show: expression not allowed")

	// ErrUndefined reports a name, key or field that does not resolve.
	ErrUndefined = errors.New("show: undefined name")
)

// Scope is the allow-list of names an Evaluator may resolve. Nothing
// outside the scope is reachable from an expression.
type Scope map[string]any

// Evaluator evaluates a restricted subset of Go expressions against a
// fixed scope.
type Evaluator struct {
	scope Scope
}

// NewEvaluator returns an Evaluator bound to scope. The map is read on
// every Eval, so later additions are visible.
func NewEvaluator(scope Scope) *Evaluator {
	return &Evaluator{scope: scope}
}

// Eval parses and evaluates a single expression.
func (e *Evaluator) Eval(expr string) (any, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("show: parse %q: %w", expr, err)
	}
	return e.eval(node)
}

func (e *Evaluator) eval(n ast.Expr) (any, error) {
	switch n := n.(type) {
	case *ast.ParenExpr:
		return e.eval(n.X)
	case *ast.BasicLit:
		return evalLit(n)
	case *ast.Ident:
		return e.evalIdent(n)
	case *ast.SelectorExpr:
		return e.evalSelector(n)
	case *ast.IndexExpr:
		return e.evalIndex(n)
	case *ast.UnaryExpr:
		return e.evalUnary(n)
	case *ast.BinaryExpr:
		return e.evalBinary(n)
	case *ast.CallExpr:
		return e.evalCall(n)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotAllowed, types.ExprString(n))
}

func evalLit(lit *ast.BasicLit) (any, error) {
	switch lit.Kind {
	case token.INT:
		v, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("show: integer literal %s: %w", lit.Value, err)
		}
		return v, nil
	case token.FLOAT:
		v, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("show: float literal %s: %w", lit.Value, err)
		}
		return v, nil
	case token.STRING:
		v, err := strconv.Unquote(lit.Value)
		if err != nil {
			return nil, fmt.Errorf("show: string literal %s: %w", lit.Value, err)
		}
		return v, nil
	case token.CHAR:
		v, err := strconv.Unquote(lit.Value)
		if err != nil || v == "" {
			return nil, fmt.Errorf("show: rune literal %s: %w", lit.Value, err)
		}
		return []rune(v)[0], nil
	}
	return nil, fmt.Errorf("%w: literal %s", ErrNotAllowed, lit.Value)
}

func (e *Evaluator) evalIdent(id *ast.Ident) (any, error) {
	switch id.Name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "nil":
		return nil, nil
	}
	v, ok := e.scope[id.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, id.Name)
	}
	return v, nil
}

func (e *Evaluator) evalSelector(sel *ast.SelectorExpr) (any, error) {
	x, err := e.eval(sel.X)
	if err != nil {
		return nil, err
	}
	name := sel.Sel.Name
	if !token.IsExported(name) {
		return nil, fmt.Errorf("%w: unexported field %s", ErrNotAllowed, name)
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("show: nil dereference in %s", types.ExprString(sel))
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: selector on %T", ErrNotAllowed, x)
	}
	f := rv.FieldByName(name)
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, types.ExprString(sel))
	}
	return f.Interface(), nil
}

func (e *Evaluator) evalIndex(ix *ast.IndexExpr) (any, error) {
	x, err := e.eval(ix.X)
	if err != nil {
		return nil, err
	}
	key, err := e.eval(ix.Index)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("show: nil dereference in %s", types.ExprString(ix))
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		kt := rv.Type().Key()
		if !kv.IsValid() {
			return nil, fmt.Errorf("show: nil key for %s", rv.Type())
		}
		if !kv.Type().AssignableTo(kt) {
			if !isNumericKind(kv.Kind()) || !isNumericKind(kt.Kind()) {
				return nil, fmt.Errorf("show: key type %s does not fit %s", kv.Type(), rv.Type())
			}
			kv = kv.Convert(kt)
		}
		got := rv.MapIndex(kv)
		if !got.IsValid() {
			return nil, fmt.Errorf("%w: key %v in %s", ErrUndefined, key, types.ExprString(ix.X))
		}
		return got.Interface(), nil

	case reflect.Slice, reflect.Array, reflect.String:
		i, ok := asInt(key)
		if !ok {
			return nil, fmt.Errorf("show: index %v is not an integer", key)
		}
		if i < 0 || i >= int64(rv.Len()) {
			return nil, fmt.Errorf("show: index %d out of range [0:%d]", i, rv.Len())
		}
		return rv.Index(int(i)).Interface(), nil
	}
	return nil, fmt.Errorf("%w: index on %T", ErrNotAllowed, x)
}

func (e *Evaluator) evalUnary(u *ast.UnaryExpr) (any, error) {
	x, err := e.eval(u.X)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case token.SUB:
		if i, ok := asInt(x); ok {
			return -i, nil
		}
		if f, ok := asFloat(x); ok {
			return -f, nil
		}
	case token.ADD:
		if i, ok := asInt(x); ok {
			return i, nil
		}
		if f, ok := asFloat(x); ok {
			return f, nil
		}
	case token.NOT:
		if b, ok := x.(bool); ok {
			return !b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s on %T", ErrNotAllowed, u.Op, x)
}

func (e *Evaluator) evalBinary(b *ast.BinaryExpr) (any, error) {
	if b.Op == token.LAND || b.Op == token.LOR {
		return e.evalLogic(b)
	}

	l, err := e.eval(b.X)
	if err != nil {
		return nil, err
	}
	r, err := e.eval(b.Y)
	if err != nil {
		return nil, err
	}
	switch b.Op {
	case token.ADD, token.SUB, token.MUL, token.QUO, token.REM:
		return arith(b.Op, l, r)
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return compare(b.Op, l, r)
	}
	return nil, fmt.Errorf("%w: operator %s", ErrNotAllowed, b.Op)
}

// evalLogic short-circuits like the compiled operators would.
func (e *Evaluator) evalLogic(b *ast.BinaryExpr) (any, error) {
	l, err := e.eval(b.X)
	if err != nil {
		return nil, err
	}
	lb, ok := l.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %T", ErrNotAllowed, b.Op, l)
	}
	if b.Op == token.LAND && !lb {
		return false, nil
	}
	if b.Op == token.LOR && lb {
		return true, nil
	}
	r, err := e.eval(b.Y)
	if err != nil {
		return nil, err
	}
	rb, ok := r.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %T", ErrNotAllowed, b.Op, r)
	}
	return rb, nil
}

func arith(op token.Token, l, r any) (any, error) {
	if ls, lok := l.(string); lok {
		rs, rok := r.(string)
		if rok && op == token.ADD {
			return ls + rs, nil
		}
	}

	li, lInt := asInt(l)
	ri, rInt := asInt(r)
	if lInt && rInt {
		switch op {
		case token.ADD:
			return li + ri, nil
		case token.SUB:
			return li - ri, nil
		case token.MUL:
			return li * ri, nil
		case token.QUO:
			if ri == 0 {
				return nil, errors.New("show: integer division by zero")
			}
			return li / ri, nil
		case token.REM:
			if ri == 0 {
				return nil, errors.New("show: integer division by zero")
			}
			return li % ri, nil
		}
	}

	lf, lNum := asNumber(l)
	rf, rNum := asNumber(r)
	if lNum && rNum && op != token.REM {
		switch op {
		case token.ADD:
			return lf + rf, nil
		case token.SUB:
			return lf - rf, nil
		case token.MUL:
			return lf * rf, nil
		case token.QUO:
			return lf / rf, nil
		}
	}
	return nil, fmt.Errorf("%w: %T %s %T", ErrNotAllowed, l, op, r)
}

func compare(op token.Token, l, r any) (any, error) {
	if l == nil || r == nil {
		switch op {
		case token.EQL:
			return isNil(l) == isNil(r), nil
		case token.NEQ:
			return isNil(l) != isNil(r), nil
		}
		return nil, fmt.Errorf("%w: %s on nil", ErrNotAllowed, op)
	}

	if lf, lok := asNumber(l); lok {
		if rf, rok := asNumber(r); rok {
			switch op {
			case token.EQL:
				return lf == rf, nil
			case token.NEQ:
				return lf != rf, nil
			case token.LSS:
				return lf < rf, nil
			case token.LEQ:
				return lf <= rf, nil
			case token.GTR:
				return lf > rf, nil
			case token.GEQ:
				return lf >= rf, nil
			}
		}
	}
	if ls, lok := l.(string); lok {
		if rs, rok := r.(string); rok {
			switch op {
			case token.EQL:
				return ls == rs, nil
			case token.NEQ:
				return ls != rs, nil
			case token.LSS:
				return ls < rs, nil
			case token.LEQ:
				return ls <= rs, nil
			case token.GTR:
				return ls > rs, nil
			case token.GEQ:
				return ls >= rs, nil
			}
		}
	}

	if op == token.EQL || op == token.NEQ {
		eq, err := looseEqual(l, r)
		if err != nil {
			return nil, err
		}
		return eq == (op == token.EQL), nil
	}
	return nil, fmt.Errorf("%w: %T %s %T", ErrNotAllowed, l, op, r)
}

func looseEqual(l, r any) (bool, error) {
	lv, rv := reflect.ValueOf(l), reflect.ValueOf(r)
	if lv.Type() != rv.Type() {
		return false, nil
	}
	if !lv.Comparable() {
		return false, fmt.Errorf("%w: == on %T", ErrNotAllowed, l)
	}
	return l == r, nil
}

func (e *Evaluator) evalCall(call *ast.CallExpr) (any, error) {
	id, ok := call.Fun.(*ast.Ident)
	if !ok {
		return nil, fmt.Errorf("%w: call of %s", ErrNotAllowed, types.ExprString(call.Fun))
	}
	v, ok := e.scope[id.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, id.Name)
	}
	fn := reflect.ValueOf(v)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s is not callable", ErrNotAllowed, id.Name)
	}

	ft := fn.Type()
	if err := checkSignature(id.Name, ft, len(call.Args)); err != nil {
		return nil, err
	}

	args := make([]reflect.Value, len(call.Args))
	for i, a := range call.Args {
		av, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args[i], err = argValue(ft, i, av)
		if err != nil {
			return nil, fmt.Errorf("show: call %s: %w", id.Name, err)
		}
	}

	out, err := safeCall(id.Name, fn, args)
	if err != nil {
		return nil, err
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	// checkSignature guarantees the second result is an error.
	if !out[1].IsNil() {
		return nil, fmt.Errorf("show: call %s: %w", id.Name, out[1].Interface().(error))
	}
	return out[0].Interface(), nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func checkSignature(name string, ft reflect.Type, argc int) error {
	if ft.IsVariadic() {
		if argc < ft.NumIn()-1 {
			return fmt.Errorf("show: call %s: have %d arguments, want at least %d",
				name, argc, ft.NumIn()-1)
		}
	} else if argc != ft.NumIn() {
		return fmt.Errorf("show: call %s: have %d arguments, want %d", name, argc, ft.NumIn())
	}
	switch {
	case ft.NumOut() <= 1:
		return nil
	case ft.NumOut() == 2 && ft.Out(1) == errType:
		return nil
	}
	return fmt.Errorf("%w: %s returns %d values", ErrNotAllowed, name, ft.NumOut())
}

func argValue(ft reflect.Type, i int, v any) (reflect.Value, error) {
	var pt reflect.Type
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		pt = ft.In(ft.NumIn() - 1).Elem()
	} else {
		pt = ft.In(i)
	}

	if v == nil {
		switch pt.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("argument %d: nil for %s", i+1, pt)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(pt) {
		return rv, nil
	}
	if isNumericKind(rv.Kind()) && isNumericKind(pt.Kind()) {
		return rv.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("argument %d: have %T, want %s", i+1, v, pt)
}

func safeCall(name string, fn reflect.Value, args []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("show: call %s: panic: %v", name, p)
		}
	}()
	return fn.Call(args), nil
}

func asInt(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func asNumber(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	return asFloat(v)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
