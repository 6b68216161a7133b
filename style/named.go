package style

import "golang.org/x/text/cases"

// fold normalizes a keyword for case-insensitive lookup. A Caser keeps state,
// so each call gets its own.
func fold(s string) string { return cases.Fold().String(s) }

// CSSColor resolves the CSS named colors, ignoring case.
func CSSColor(name string) (Color, bool) {
	c, ok := cssColors[fold(name)]
	return c, ok
}

var cssColors = map[string]Color{
	"black":                ToRGBA(0, 0, 0, 255),
	"silver":               ToRGBA(192, 192, 192, 255),
	"gray":                 ToRGBA(128, 128, 128, 255),
	"grey":                 ToRGBA(128, 128, 128, 255),
	"white":                ToRGBA(255, 255, 255, 255),
	"maroon":               ToRGBA(128, 0, 0, 255),
	"red":                  ToRGBA(255, 0, 0, 255),
	"purple":               ToRGBA(128, 0, 128, 255),
	"fuchsia":              ToRGBA(255, 0, 255, 255),
	"magenta":              ToRGBA(255, 0, 255, 255),
	"green":                ToRGBA(0, 128, 0, 255),
	"lime":                 ToRGBA(0, 255, 0, 255),
	"olive":                ToRGBA(128, 128, 0, 255),
	"yellow":               ToRGBA(255, 255, 0, 255),
	"navy":                 ToRGBA(0, 0, 128, 255),
	"blue":                 ToRGBA(0, 0, 255, 255),
	"teal":                 ToRGBA(0, 128, 128, 255),
	"aqua":                 ToRGBA(0, 255, 255, 255),
	"cyan":                 ToRGBA(0, 255, 255, 255),
	"aliceblue":            ToRGBA(240, 248, 255, 255),
	"antiquewhite":         ToRGBA(250, 235, 215, 255),
	"aquamarine":           ToRGBA(127, 255, 212, 255),
	"azure":                ToRGBA(240, 255, 255, 255),
	"beige":                ToRGBA(245, 245, 220, 255),
	"bisque":               ToRGBA(255, 228, 196, 255),
	"blanchedalmond":       ToRGBA(255, 235, 205, 255),
	"blueviolet":           ToRGBA(138, 43, 226, 255),
	"brown":                ToRGBA(165, 42, 42, 255),
	"burlywood":            ToRGBA(222, 184, 135, 255),
	"cadetblue":            ToRGBA(95, 158, 160, 255),
	"chartreuse":           ToRGBA(127, 255, 0, 255),
	"chocolate":            ToRGBA(210, 105, 30, 255),
	"coral":                ToRGBA(255, 127, 80, 255),
	"cornflowerblue":       ToRGBA(100, 149, 237, 255),
	"cornsilk":             ToRGBA(255, 248, 220, 255),
	"crimson":              ToRGBA(220, 20, 60, 255),
	"darkblue":             ToRGBA(0, 0, 139, 255),
	"darkcyan":             ToRGBA(0, 139, 139, 255),
	"darkgoldenrod":        ToRGBA(184, 134, 11, 255),
	"darkgray":             ToRGBA(169, 169, 169, 255),
	"darkgreen":            ToRGBA(0, 100, 0, 255),
	"darkgrey":             ToRGBA(169, 169, 169, 255),
	"darkkhaki":            ToRGBA(189, 183, 107, 255),
	"darkmagenta":          ToRGBA(139, 0, 139, 255),
	"darkolivegreen":       ToRGBA(85, 107, 47, 255),
	"darkorange":           ToRGBA(255, 140, 0, 255),
	"darkorchid":           ToRGBA(153, 50, 204, 255),
	"darkred":              ToRGBA(139, 0, 0, 255),
	"darksalmon":           ToRGBA(233, 150, 122, 255),
	"darkseagreen":         ToRGBA(143, 188, 143, 255),
	"darkslateblue":        ToRGBA(72, 61, 139, 255),
	"darkslategray":        ToRGBA(47, 79, 79, 255),
	"darkslategrey":        ToRGBA(47, 79, 79, 255),
	"darkturquoise":        ToRGBA(0, 206, 209, 255),
	"darkviolet":           ToRGBA(148, 0, 211, 255),
	"deeppink":             ToRGBA(255, 20, 147, 255),
	"deepskyblue":          ToRGBA(0, 191, 255, 255),
	"dimgray":              ToRGBA(105, 105, 105, 255),
	"dimgrey":              ToRGBA(105, 105, 105, 255),
	"dodgerblue":           ToRGBA(30, 144, 255, 255),
	"firebrick":            ToRGBA(178, 34, 34, 255),
	"floralwhite":          ToRGBA(255, 250, 240, 255),
	"forestgreen":          ToRGBA(34, 139, 34, 255),
	"gainsboro":            ToRGBA(220, 220, 220, 255),
	"ghostwhite":           ToRGBA(248, 248, 255, 255),
	"gold":                 ToRGBA(255, 215, 0, 255),
	"goldenrod":            ToRGBA(218, 165, 32, 255),
	"greenyellow":          ToRGBA(173, 255, 47, 255),
	"honeydew":             ToRGBA(240, 255, 240, 255),
	"hotpink":              ToRGBA(255, 105, 180, 255),
	"indianred":            ToRGBA(205, 92, 92, 255),
	"indigo":               ToRGBA(75, 0, 130, 255),
	"ivory":                ToRGBA(255, 255, 240, 255),
	"khaki":                ToRGBA(240, 230, 140, 255),
	"lavender":             ToRGBA(230, 230, 250, 255),
	"lavenderblush":        ToRGBA(255, 240, 245, 255),
	"lawngreen":            ToRGBA(124, 252, 0, 255),
	"lemonchiffon":         ToRGBA(255, 250, 205, 255),
	"lightblue":            ToRGBA(173, 216, 230, 255),
	"lightcoral":           ToRGBA(240, 128, 128, 255),
	"lightcyan":            ToRGBA(224, 255, 255, 255),
	"lightgoldenrodyellow": ToRGBA(250, 250, 210, 255),
	"lightgray":            ToRGBA(211, 211, 211, 255),
	"lightgreen":           ToRGBA(144, 238, 144, 255),
	"lightgrey":            ToRGBA(211, 211, 211, 255),
	"lightpink":            ToRGBA(255, 182, 193, 255),
	"lightsalmon":          ToRGBA(255, 160, 122, 255),
	"lightseagreen":        ToRGBA(32, 178, 170, 255),
	"lightskyblue":         ToRGBA(135, 206, 250, 255),
	"lightslategray":       ToRGBA(119, 136, 153, 255),
	"lightslategrey":       ToRGBA(119, 136, 153, 255),
	"lightsteelblue":       ToRGBA(176, 196, 222, 255),
	"lightyellow":          ToRGBA(255, 255, 224, 255),
	"limegreen":            ToRGBA(50, 205, 50, 255),
	"linen":                ToRGBA(250, 240, 230, 255),
	"mediumaquamarine":     ToRGBA(102, 205, 170, 255),
	"mediumblue":           ToRGBA(0, 0, 205, 255),
	"mediumorchid":         ToRGBA(186, 85, 211, 255),
	"mediumpurple":         ToRGBA(147, 112, 219, 255),
	"mediumseagreen":       ToRGBA(60, 179, 113, 255),
	"mediumslateblue":      ToRGBA(123, 104, 238, 255),
	"mediumspringgreen":    ToRGBA(0, 250, 154, 255),
	"mediumturquoise":      ToRGBA(72, 209, 204, 255),
	"mediumvioletred":      ToRGBA(199, 21, 133, 255),
	"midnightblue":         ToRGBA(25, 25, 112, 255),
	"mintcream":            ToRGBA(245, 255, 250, 255),
	"mistyrose":            ToRGBA(255, 228, 225, 255),
	"moccasin":             ToRGBA(255, 228, 181, 255),
	"navajowhite":          ToRGBA(255, 222, 173, 255),
	"oldlace":              ToRGBA(253, 245, 230, 255),
	"olivedrab":            ToRGBA(107, 142, 35, 255),
	"orange":               ToRGBA(255, 165, 0, 255),
	"orangered":            ToRGBA(255, 69, 0, 255),
	"orchid":               ToRGBA(218, 112, 214, 255),
	"palegoldenrod":        ToRGBA(238, 232, 170, 255),
	"palegreen":            ToRGBA(152, 251, 152, 255),
	"paleturquoise":        ToRGBA(175, 238, 238, 255),
	"palevioletred":        ToRGBA(219, 112, 147, 255),
	"papayawhip":           ToRGBA(255, 239, 213, 255),
	"peachpuff":            ToRGBA(255, 218, 185, 255),
	"peru":                 ToRGBA(205, 133, 63, 255),
	"pink":                 ToRGBA(255, 192, 203, 255),
	"plum":                 ToRGBA(221, 160, 221, 255),
	"powderblue":           ToRGBA(176, 224, 230, 255),
	"rebeccapurple":        ToRGBA(102, 51, 153, 255),
	"rosybrown":            ToRGBA(188, 143, 143, 255),
	"royalblue":            ToRGBA(65, 105, 225, 255),
	"saddlebrown":          ToRGBA(139, 69, 19, 255),
	"salmon":               ToRGBA(250, 128, 114, 255),
	"sandybrown":           ToRGBA(244, 164, 96, 255),
	"seagreen":             ToRGBA(46, 139, 87, 255),
	"seashell":             ToRGBA(255, 245, 238, 255),
	"sienna":               ToRGBA(160, 82, 45, 255),
	"skyblue":              ToRGBA(135, 206, 235, 255),
	"slateblue":            ToRGBA(106, 90, 205, 255),
	"slategray":            ToRGBA(112, 128, 144, 255),
	"slategrey":            ToRGBA(112, 128, 144, 255),
	"snow":                 ToRGBA(255, 250, 250, 255),
	"springgreen":          ToRGBA(0, 255, 127, 255),
	"steelblue":            ToRGBA(70, 130, 180, 255),
	"tan":                  ToRGBA(210, 180, 140, 255),
	"thistle":              ToRGBA(216, 191, 216, 255),
	"tomato":               ToRGBA(255, 99, 71, 255),
	"turquoise":            ToRGBA(64, 224, 208, 255),
	"violet":               ToRGBA(238, 130, 238, 255),
	"wheat":                ToRGBA(245, 222, 179, 255),
	"whitesmoke":           ToRGBA(245, 245, 245, 255),
	"yellowgreen":          ToRGBA(154, 205, 50, 255),
}
