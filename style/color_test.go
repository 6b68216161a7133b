package style

import (
	"errors"
	"testing"
)

func TestExtractColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"rgb(255,0,0)", ToRGBA(255, 0, 0, 255)},
		{"rgba(0,0,0,0.5)", ToRGBA(0, 0, 0, 127)},
		{"rgba(0, 0, 255, 128)", ToRGBA(0, 0, 255, 128)},
		{"rgb(1.0, 0.5, 0.0)", ToRGBA(255, 127, 0, 255)},
		{"#00ff00", ToRGBA(0, 255, 0, 255)},
		{"#fff", White},
		{"#11223344", ToRGBA(0x11, 0x22, 0x33, 0x44)},
		{"hsl(0, 1, 0.5)", ToRGBA(255, 0, 0, 255)},
		{"hsv(0, 0, 1)", White},
		{"transparent", Transparent},
		{"Red", ToRGBA(255, 0, 0, 255)},
		{"  navy ", ToRGBA(0, 0, 128, 255)},
		{"bogus", Black},
	}
	for _, c := range cases {
		if got := ExtractColor(c.in, nil); got != c.want {
			t.Fatalf("ExtractColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	if _, err := ParseColor("bogus", nil); !errors.Is(err, ErrMalformedValue) {
		t.Fatalf("unknown name: got %v", err)
	}
	if _, err := ParseColor("#12345", nil); !errors.Is(err, ErrMalformedValue) {
		t.Fatalf("bad hex length: got %v", err)
	}
	c, err := ParseColor("rgb(10, 20 30)", nil)
	if !errors.Is(err, ErrGrammar) {
		t.Fatalf("missing comma: got %v", err)
	}
	if r, _, _, _ := c.Channels(); r != 10 {
		t.Fatalf("partial parse should keep the first channel, got %v", c)
	}
}

func TestNamedColorResolver(t *testing.T) {
	accent := ToRGBA(1, 2, 3, 255)
	named := func(name string) (Color, bool) {
		if name == "accent" {
			return accent, true
		}
		return 0, false
	}
	if got := ExtractColor("accent", named); got != accent {
		t.Fatalf("resolver color: got %v", got)
	}
	if got := ExtractColor("red", named); got != Black {
		t.Fatalf("a custom resolver replaces the CSS table, got %v", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := White.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatalf("white: %x %x %x %x", r, g, b, a)
	}
	_, _, _, a = Transparent.RGBA()
	if a != 0 {
		t.Fatalf("transparent alpha %x", a)
	}
	if s := ToRGBA(255, 0, 16, 255).String(); s != "#ff0010ff" {
		t.Fatalf("String() = %s", s)
	}
}
