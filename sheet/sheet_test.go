package sheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ByLCY/quill/style"
)

var theme = map[string]any{"theme": map[string]any{"accent": "#0F62FE"}}

const sampleQSS = `
// buttons
button {
  default: "color: white; background: ${theme.accent}; padding: 4px;"
  hover, focus: "background: rgb(10, 10, 10);"
}

/* labels */
label {
  default: "font-size: 20px"
  disabled: ` + "`color: gray`" + `;
}

# repeated rules are merged
button {
  pressed: "margin: 2px"
}
`

func TestParseNativeSheet(t *testing.T) {
	doc, err := ParseString("sample.qss", sampleQSS)
	require.NoError(t, err)
	require.Len(t, doc.Rules, 3)
	require.Equal(t, "button", doc.Rules[0].ID)
	require.Equal(t, []string{"hover", "focus"}, doc.Rules[0].Entries[1].States)
	require.Equal(t, StringLiteral("color: gray"), doc.Rules[1].Entries[1].CSS)

	decls, order, err := doc.Declarations()
	require.NoError(t, err)
	require.Equal(t, []string{"button", "label"}, order)
	require.Len(t, decls["button"], 4)
	require.Equal(t, "margin: 2px", decls["button"][style.StatePressed])
}

func TestParseNativeSheetErrors(t *testing.T) {
	_, err := ParseString("bad.qss", `button { default "missing colon" }`)
	require.Error(t, err)

	doc, err := ParseString("state.qss", `button { sleepy: "color: red" }`)
	require.NoError(t, err)
	_, _, err = doc.Declarations()
	require.ErrorContains(t, err, `unknown state "sleepy"`)
}

func TestRegistryLoadQSS(t *testing.T) {
	reg := NewRegistry(nil, nil, WithData(theme))
	require.NoError(t, reg.LoadQSS("sample.qss", strings.NewReader(sampleQSS)))
	require.Equal(t, []string{"button", "label"}, reg.Ids())

	def, ok := reg.Get("button", style.StateDefault)
	require.True(t, ok)
	require.Equal(t, style.White, def.Foreground)
	require.Equal(t, style.ToRGBA(0x0f, 0x62, 0xfe, 255), def.Background)

	hover, ok := reg.Get("button", style.StateHovered)
	require.True(t, ok)
	require.Equal(t, style.ToRGBA(10, 10, 10, 255), hover.Background)
	require.Equal(t, style.White, hover.Foreground)
	require.InDelta(t, 4, hover.Padding.Left, 1e-9)
	require.Equal(t, style.PropBackground, hover.Specified&style.PropBackground)
	require.NotZero(t, hover.Inherited&style.PropFgColor)

	// 组合状态取最高的已声明状态
	both, _ := reg.Get("button", style.StateHovered|style.StatePressed)
	require.InDelta(t, 2, both.Margin.Top, 1e-9)
	require.Equal(t, def.Background, both.Background)

	// 未声明的状态退回默认记录
	checked, _ := reg.Get("button", style.StateChecked)
	require.Equal(t, def.Background, checked.Background)

	_, ok = reg.Get("missing", style.StateDefault)
	require.False(t, ok)
}

func TestRegistrySetReportsProblems(t *testing.T) {
	reg := NewRegistry(nil, nil)
	err := reg.Set("box", map[style.State]string{
		style.StateDefault: "colour: red; color: ${theme.missing}",
		style.StateHovered: "color: ${theme.missing|blue}",
	})
	require.Error(t, err)
	require.ErrorContains(t, err, "unresolved placeholder")
	require.ErrorIs(t, err, style.ErrUnknownProperty)

	hover, ok := reg.Get("box", style.StateHovered)
	require.True(t, ok)
	require.Equal(t, style.ExtractColor("blue", nil), hover.Foreground)

	require.Error(t, reg.Set("", nil))
}

func TestRegistryDeclarationsPushIntoContext(t *testing.T) {
	reg := NewRegistry(nil, nil)
	require.NoError(t, reg.Set("panel", map[style.State]string{
		style.StateDefault: "font-size: 18px",
		style.StateHovered: "color: red",
	}))
	decls, ok := reg.Declarations("panel")
	require.True(t, ok)

	ctx := style.NewContext(nil, nil)
	scope := ctx.Enter(decls)
	defer scope.Pop()
	got := ctx.GetStyle(style.StateHovered)
	require.InDelta(t, 18, got.Font.Size, 1e-9)
	require.Equal(t, style.ExtractColor("red", nil), got.Foreground)
}

const sampleCSS = `
@import url("base.css");
@media print { button { color: black } }

button { color: white; background: #0F62FE !important; padding: 4px 8px }
button:hover, label { background: rgb(10, 10, 10) }
.primary > span { color: red }
label:sleepy { color: red }
label { font-family: "Go Mono"; FONT-SIZE: 20px }
`

func TestRegistryLoadCSS(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := NewRegistry(nil, zap.New(core))
	require.NoError(t, reg.LoadCSS("sample.css", []byte(sampleCSS)))
	require.Equal(t, []string{"button", "label"}, reg.Ids())

	button, _ := reg.Get("button", style.StateDefault)
	require.Equal(t, style.White, button.Foreground)
	require.Equal(t, style.ToRGBA(0x0f, 0x62, 0xfe, 255), button.Background)
	require.InDelta(t, 8, button.Padding.Left, 1e-9)

	hover, _ := reg.Get("button", style.StateHovered)
	require.Equal(t, style.ToRGBA(10, 10, 10, 255), hover.Background)
	require.InDelta(t, 4, hover.Padding.Top, 1e-9)

	label, _ := reg.Get("label", style.StateDefault)
	require.Equal(t, "Go Mono", label.Font.Family)
	require.InDelta(t, 20, label.Font.Size, 1e-9)
	require.Equal(t, style.ToRGBA(10, 10, 10, 255), label.Background)

	skipped := logs.FilterMessage("Skipping selector").All()
	require.Len(t, skipped, 2)
	require.NotEmpty(t, logs.FilterMessage("Skipping @-rule").All())
}

func TestParseSelector(t *testing.T) {
	id, s, ok := parseSelector("button:hover")
	require.True(t, ok)
	require.Equal(t, "button", id)
	require.Equal(t, style.StateHovered, s)

	_, s, ok = parseSelector("check-box")
	require.True(t, ok)
	require.Equal(t, style.StateDefault, s)

	for _, sel := range []string{"div p", ".cls", "#id", "a::before", "x:nope", "9a"} {
		_, _, ok := parseSelector(sel)
		require.False(t, ok, sel)
	}
}
