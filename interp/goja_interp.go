package interp

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/sap-lang/sap/observability"
	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
)

// GojaScriptCall is the concrete tree.ScriptExpr this package evaluates:
// a snippet of JavaScript source, standing in for the real "sap"
// expression AST that the out-of-scope frontend would otherwise produce.
type GojaScriptCall struct {
	Source string
}

func (GojaScriptCall) ScriptExprKind() string { return "goja" }

// GojaInterpreter is the default Interpreter implementation. It embeds a
// goja.Runtime exactly the way the teacher's scripting.GojaEngine does
// (scripting/goja_impl.go), extended with the style stack,
// block-context stack and phase-hook machinery the layout core needs.
type GojaInterpreter struct {
	vm     *goja.Runtime
	logger observability.Logger

	styleStack []style.Style
	blockStack []tree.BlockObject

	hooks map[Phase][]func(Interpreter) error

	dirty bool
	state GlobalState

	pendingAbsolute []AbsoluteRequest
}

// NewGojaInterpreter constructs an interpreter with the root style
// pushed as the bottom of the style stack.
func NewGojaInterpreter(root style.Style, logger observability.Logger) *GojaInterpreter {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	vm := goja.New()
	return &GojaInterpreter{
		vm:         vm,
		logger:     logger,
		styleStack: []style.Style{root},
		hooks:      make(map[Phase][]func(Interpreter) error),
	}
}

// VM exposes the underlying goja runtime so the embedding program (the
// out-of-scope frontend) can register builtins before running hooks.
func (g *GojaInterpreter) VM() *goja.Runtime { return g.vm }

func (g *GojaInterpreter) RunHooks(phase Phase) error {
	for _, fn := range g.hooks[phase] {
		if err := fn(g); err != nil {
			g.logger.Error("interp.hook.error", observability.String("phase", phase.String()), observability.Error("err", err))
			return &HookError{Phase: phase, Err: err}
		}
	}
	return nil
}

func (g *GojaInterpreter) RegisterHook(phase Phase, fn func(Interpreter) error) {
	g.hooks[phase] = append(g.hooks[phase], fn)
}

func (g *GojaInterpreter) Evaluate(call tree.ScriptExpr) (Value, error) {
	gc, ok := call.(GojaScriptCall)
	if !ok {
		return Value{}, fmt.Errorf("interp: unsupported script expression kind %T", call)
	}
	v, err := g.vm.RunString(gc.Source)
	if err != nil {
		return Value{}, fmt.Errorf("evaluate: %w", err)
	}
	return exportGojaValue(v), nil
}

func exportGojaValue(v goja.Value) Value {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return Void()
	}
	exported := v.Export()
	switch e := exported.(type) {
	case bool:
		return FromBool(e)
	case int64:
		return FromInt(e)
	case float64:
		if e == float64(int64(e)) {
			return FromInt(int64(e))
		}
		return FromFloat(e)
	case string:
		return FromString(e)
	default:
		return Value{Kind: VPointer, Pointer: exported}
	}
}

func (g *GojaInterpreter) CurrentStyle() style.Style {
	if len(g.styleStack) == 0 {
		return style.Empty()
	}
	return g.styleStack[len(g.styleStack)-1]
}

func (g *GojaInterpreter) PushStyle(s style.Style) {
	g.styleStack = append(g.styleStack, g.CurrentStyle().ExtendWith(s))
}

func (g *GojaInterpreter) PopStyle() style.Style {
	if len(g.styleStack) <= 1 {
		return g.CurrentStyle()
	}
	top := g.styleStack[len(g.styleStack)-1]
	g.styleStack = g.styleStack[:len(g.styleStack)-1]
	return top
}

func (g *GojaInterpreter) PushBlockContext(b tree.BlockObject) { g.blockStack = append(g.blockStack, b) }
func (g *GojaInterpreter) PopBlockContext() {
	if len(g.blockStack) == 0 {
		return
	}
	g.blockStack = g.blockStack[:len(g.blockStack)-1]
}
func (g *GojaInterpreter) GetBlockContext() tree.BlockObject {
	if len(g.blockStack) == 0 {
		return nil
	}
	return g.blockStack[len(g.blockStack)-1]
}

func (g *GojaInterpreter) RequestLayout()        { g.dirty = true }
func (g *GojaInterpreter) LayoutRequested() bool { return g.dirty }
func (g *GojaInterpreter) ClearLayoutRequest()   { g.dirty = false }

func (g *GojaInterpreter) State() GlobalState     { return g.state }
func (g *GojaInterpreter) SetState(s GlobalState) { g.state = s }

func (g *GojaInterpreter) AddAbsolutelyPositionedBlockObject(block tree.BlockObject, pageIndex int, x, y float64) {
	g.pendingAbsolute = append(g.pendingAbsolute, AbsoluteRequest{Block: block, PageIndex: pageIndex, X: x, Y: y})
}

func (g *GojaInterpreter) DrainAbsoluteRequests() []AbsoluteRequest {
	reqs := g.pendingAbsolute
	g.pendingAbsolute = nil
	return reqs
}

var _ Interpreter = (*GojaInterpreter)(nil)
