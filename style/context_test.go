package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var singleStates = []State{
	StateFocused, StateHovered, StatePressed, StateChecked, StatePartiallyChecked,
	StateSelected, StateDragged, StateDisabled,
}

func TestGetStyleFillsFromDefault(t *testing.T) {
	for _, s := range singleStates {
		ctx := NewContext(nil, nil)
		var d Declarations
		d.Set(StateDefault, "color: red; font-size: 20px; padding: 3px")
		d.Set(s, "color: blue; margin: 2px")
		mask := ctx.Push(d)
		require.Equal(t, PlaneMask(1)|s.Mask(), mask, s.String())

		got := ctx.GetStyle(s)
		require.Equal(t, blue, got.Foreground, s.String())
		require.InDelta(t, 2, got.Margin.Top, 1e-9)
		require.InDelta(t, 20, got.Font.Size, 1e-9)
		require.InDelta(t, 3, got.Padding.Left, 1e-9)
		require.Equal(t, PropFgColor|PropMargin, got.Specified)
		require.NotZero(t, got.Inherited&PropFontSize)
		require.NotZero(t, got.Inherited&PropUpdatedFromBase)
		require.Zero(t, got.Inherited&got.Specified)

		ctx.Pop(1, mask)
		require.Equal(t, 1, ctx.Depth(s))
		require.Equal(t, 1, ctx.Depth(StateDefault))
	}
}

func TestDefaultPushIsTransparent(t *testing.T) {
	ctx := NewContext(nil, nil)
	ctx.PushState(StateDefault, "background: red; font-size: 20px")
	ctx.PushState(StateDefault, "color: blue")

	got := ctx.GetStyle(StateDefault)
	require.Equal(t, Transparent, got.Background)
	require.Zero(t, got.Background&0xff000000)
	require.Equal(t, PropFgColor, got.Specified)
	require.NotZero(t, got.Inherited&PropFontSize)
	require.Zero(t, got.Inherited&PropBackground)
	require.InDelta(t, 20, got.Font.Size, 1e-9)
	require.Equal(t, 3, ctx.Depth(StateDefault))
}

func TestStatePlaneIsIndependent(t *testing.T) {
	ctx := NewContext(nil, nil)
	ctx.PushState(StateHovered, "color: blue; font-size: 30px")
	ctx.PushState(StateHovered, "padding: 1px")

	got := ctx.GetStyle(StateHovered)
	require.Equal(t, PropPadding, got.Specified)
	require.Equal(t, Black, got.Foreground)
	require.InDelta(t, 16, got.Font.Size, 1e-9)
}

func TestHighestPriorityPlaneWins(t *testing.T) {
	ctx := NewContext(nil, nil)
	ctx.PushState(StateHovered, "color: blue")
	ctx.PushState(StatePressed, "color: green")

	require.Equal(t, green, ctx.GetStyle(StateHovered|StatePressed).Foreground)
	require.Equal(t, blue, ctx.GetStyle(StateHovered|StateDisabled).Foreground)
	require.Equal(t, Black, ctx.GetStyle(StateDisabled).Foreground)
}

func TestPopIsClamped(t *testing.T) {
	ctx := NewContext(nil, nil)
	ctx.PushState(StateHovered, "color: blue")
	ctx.Pop(5, StateHovered.Mask())
	require.Equal(t, 1, ctx.Depth(StateHovered))

	ctx.Pop(3, StateHovered.Mask()|StatePressed.Mask())
	require.Equal(t, 1, ctx.Depth(StateHovered))
	require.Equal(t, 0, ctx.Depth(StatePressed))
}

func TestScopePopsOnEarlyReturn(t *testing.T) {
	ctx := NewContext(nil, nil)
	var d Declarations
	d.Set(StateDefault, "color: red").Set(StateFocused, "color: blue")

	draw := func(early bool) {
		scope := ctx.Enter(d)
		defer scope.Pop()
		require.Equal(t, 2, ctx.Depth(StateDefault))
		if early {
			return
		}
		require.Equal(t, blue, ctx.GetStyle(StateFocused).Foreground)
	}
	draw(true)
	draw(false)
	require.Equal(t, 1, ctx.Depth(StateDefault))
	require.Equal(t, 1, ctx.Depth(StateFocused))

	scope := ctx.Enter(d)
	require.Equal(t, PlaneMask(1)|StateFocused.Mask(), scope.Planes())
	scope.Pop()
	scope.Pop()
	require.Equal(t, 1, ctx.Depth(StateDefault))
}

func TestCopyStyleIdempotent(t *testing.T) {
	p := NewParser(nil)
	a, _ := p.Parse("color: red; padding: 4px; border: 1px solid blue")
	b, _ := p.Parse("color: green")

	CopyStyle(&a, &b)
	once := b
	CopyStyle(&a, &b)
	require.Equal(t, once, b)

	a.Padding = Sides{}
	CopyStyle(&a, &b)
	require.Equal(t, once, b)
	require.Equal(t, green, b.Foreground)
	require.InDelta(t, 4, b.Padding.Top, 1e-9)

	CopyStyle(&a, &a)
	require.Zero(t, a.Inherited&PropUpdatedFromBase)
}

func TestInheritFromModes(t *testing.T) {
	p := NewParser(nil)
	src, _ := p.Parse("color: red; padding: 4px")

	dst, _ := p.Parse("color: blue; margin: 1px")
	InheritFrom(&dst, &src, CopyOnlyDestinationUnspecified)
	require.Equal(t, blue, dst.Foreground)
	require.InDelta(t, 4, dst.Padding.Top, 1e-9)
	require.Equal(t, PropFgColor|PropMargin, dst.Specified)

	dst, _ = p.Parse("color: blue; margin: 1px")
	InheritFrom(&dst, &src, CopyOnlySourceSpecified)
	require.Equal(t, red, dst.Foreground)
	require.InDelta(t, 1, dst.Margin.Top, 1e-9)
	require.Equal(t, PropMargin, dst.Specified)
	require.Equal(t, PropFgColor|PropPadding, dst.Inherited)

	dst, _ = p.Parse("color: blue; margin: 1px")
	InheritFrom(&dst, &src, CopyEverything)
	require.Equal(t, red, dst.Foreground)
	require.Zero(t, dst.Margin.Top)
	require.Zero(t, dst.Specified)
}

func TestInheritMaskResetsOtherProperties(t *testing.T) {
	ctx := NewContext(nil, nil, WithInheritMask(PropFontSize|PropFgColor))
	ctx.PushState(StateDefault, "color: red; font-size: 20px; padding: 4px")
	ctx.PushState(StateDefault, "margin: 1px")

	got := ctx.GetStyle(StateDefault)
	require.Equal(t, red, got.Foreground)
	require.InDelta(t, 20, got.Font.Size, 1e-9)
	require.Equal(t, Sides{}, got.Padding)
	require.Zero(t, got.Inherited&PropPadding)
}

func TestOuterDefault(t *testing.T) {
	outer := NewRecord(16)
	outer.SetForeground(blue).SetPadding(2)
	ctx := NewContext(nil, nil, WithOuterDefault(outer))

	require.Equal(t, blue, ctx.GetStyle(StateDefault).Foreground)
	ctx.PushState(StateDefault, "margin: 1px")
	got := ctx.GetStyle(StateDefault)
	require.Equal(t, blue, got.Foreground)
	require.InDelta(t, 2, got.Padding.Right, 1e-9)
	require.Equal(t, PropMargin, got.Specified)
}

func TestParseState(t *testing.T) {
	cases := map[string]State{
		"default":           StateDefault,
		"Hovered":           StateHovered,
		"hover":             StateHovered,
		"active":            StatePressed,
		"partially-checked": StatePartiallyChecked,
		"disabled":          StateDisabled,
	}
	for name, want := range cases {
		got, ok := ParseState(name)
		if !ok || got != want {
			t.Fatalf("ParseState(%q) = %v %v, want %v", name, got, ok, want)
		}
	}
	if _, ok := ParseState("sideways"); ok {
		t.Fatalf("unknown state accepted")
	}
	if StateDisabled.Plane() != 8 || StateDefault.Plane() != 0 || StateFocused.Plane() != 1 {
		t.Fatalf("unexpected plane indexes")
	}
	if (StateHovered | StatePressed).String() != "pressed|hovered" {
		t.Fatalf("String() = %s", (StateHovered | StatePressed).String())
	}
}
