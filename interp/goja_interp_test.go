package interp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sap-lang/sap/style"
	"github.com/sap-lang/sap/tree"
	"github.com/sap-lang/sap/units"
)

func newTestInterp(t *testing.T) *GojaInterpreter {
	t.Helper()
	return NewGojaInterpreter(style.Empty().WithFontSize(10), nil)
}

func TestEvaluateRunsJSAndExportsValue(t *testing.T) {
	g := newTestInterp(t)
	v, err := g.Evaluate(GojaScriptCall{Source: "1 + 2"})
	require.NoError(t, err)
	assert.Equal(t, VInt, v.Kind)
	assert.Equal(t, int64(3), v.Int)
}

func TestEvaluateRejectsUnknownScriptExprKind(t *testing.T) {
	g := newTestInterp(t)
	_, err := g.Evaluate(fakeScriptExpr{})
	assert.Error(t, err)
}

type fakeScriptExpr struct{}

func (fakeScriptExpr) ScriptExprKind() string { return "fake" }

func TestEvaluatePropagatesJSError(t *testing.T) {
	g := newTestInterp(t)
	_, err := g.Evaluate(GojaScriptCall{Source: "throw new Error('boom')"})
	assert.Error(t, err)
}

func TestStyleStackPushPopExtendsAndRestores(t *testing.T) {
	g := newTestInterp(t)
	base := g.CurrentStyle()
	assert.Equal(t, units.Length(10), base.FontSize())

	g.PushStyle(style.Empty().WithFontSize(20))
	assert.Equal(t, units.Length(20), g.CurrentStyle().FontSize())

	popped := g.PopStyle()
	assert.Equal(t, units.Length(20), popped.FontSize())
	assert.Equal(t, units.Length(10), g.CurrentStyle().FontSize())
}

func TestPopStyleNeverEmptiesTheStack(t *testing.T) {
	g := newTestInterp(t)
	base := g.CurrentStyle()
	g.PopStyle()
	g.PopStyle()
	assert.Equal(t, base, g.CurrentStyle())
}

func TestBlockContextStack(t *testing.T) {
	g := newTestInterp(t)
	assert.Nil(t, g.GetBlockContext())

	p := tree.NewParagraph()
	g.PushBlockContext(p)
	assert.Same(t, p, g.GetBlockContext())
	g.PopBlockContext()
	assert.Nil(t, g.GetBlockContext())
}

func TestLayoutRequestedAndClear(t *testing.T) {
	g := newTestInterp(t)
	assert.False(t, g.LayoutRequested())
	g.RequestLayout()
	assert.True(t, g.LayoutRequested())
	g.ClearLayoutRequest()
	assert.False(t, g.LayoutRequested())
}

func TestAbsoluteRequestsDrainOnce(t *testing.T) {
	g := newTestInterp(t)
	img := tree.NewImage("a.png")
	g.AddAbsolutelyPositionedBlockObject(img, 2, 10, 20)

	reqs := g.DrainAbsoluteRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, 2, reqs[0].PageIndex)
	assert.Equal(t, 10.0, reqs[0].X)
	assert.Equal(t, 20.0, reqs[0].Y)

	assert.Empty(t, g.DrainAbsoluteRequests())
}

func TestRunHooksRunsInRegistrationOrderAndStopsOnError(t *testing.T) {
	g := newTestInterp(t)
	var order []int
	g.RegisterHook(Layout, func(Interpreter) error { order = append(order, 1); return nil })
	g.RegisterHook(Layout, func(Interpreter) error { order = append(order, 2); return errors.New("fail") })
	g.RegisterHook(Layout, func(Interpreter) error { order = append(order, 3); return nil })

	err := g.RunHooks(Layout)
	assert.Error(t, err)
	assert.Equal(t, []int{1, 2}, order)

	var hookErr *HookError
	require.ErrorAs(t, err, &hookErr)
	assert.Equal(t, Layout, hookErr.Phase)
}

func TestStateRoundTrip(t *testing.T) {
	g := newTestInterp(t)
	g.SetState(GlobalState{LayoutPass: 2, PageCount: 3})
	got := g.State()
	assert.Equal(t, 2, got.LayoutPass)
	assert.Equal(t, 3, got.PageCount)
}

func TestPhaseStringNames(t *testing.T) {
	assert.Equal(t, "preamble", Preamble.String())
	assert.Equal(t, "layout", Layout.String())
	assert.Equal(t, "position", Position.String())
	assert.Equal(t, "post_layout", PostLayout.String())
	assert.Equal(t, "finalise", Finalise.String())
}
