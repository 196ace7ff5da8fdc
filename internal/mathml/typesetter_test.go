package mathml

import (
	"errors"
	"strings"
	"testing"
)

func TestTypesetProducesMathML(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want []string
	}{
		{"superscript", "x^2", []string{"<msup", ">x</mi>", ">2</mn>"}},
		{"subscript", "y_1", []string{"<msub", ">y</mi>"}},
		{"fraction", `\frac{a}{b}`, []string{"<mfrac"}},
		{"square root", `\sqrt{x}`, []string{"<msqrt"}},
		{"escaped braces", `\{x\}`, []string{"<math"}},
	}
	ts := NewTypesetter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := ts.Typeset(tc.expr)
			if err != nil {
				t.Fatalf("Typeset(%q) returned error: %v", tc.expr, err)
			}
			if !strings.HasPrefix(out, "<math") {
				t.Fatalf("expected math root, got %q", out)
			}
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Fatalf("Typeset(%q) = %q, want it to contain %q", tc.expr, out, w)
				}
			}
		})
	}
}

func TestTypesetEmptyExpression(t *testing.T) {
	out, err := NewTypesetter().Typeset("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `<math xmlns="http://www.w3.org/1998/Math/MathML" display="inline"></math>` {
		t.Fatalf("unexpected empty output %q", out)
	}
	ts := &Typesetter{Display: true}
	if out, _ := ts.Typeset(""); !strings.Contains(out, `display="block"`) {
		t.Fatalf("expected block display, got %q", out)
	}
}

func TestTypesetRejectsMalformedExpressions(t *testing.T) {
	cases := []struct {
		expr    string
		message string
		pos     int
	}{
		{"x^", "expected argument for '^'", 1},
		{"x_ ", "expected argument for '_'", 1},
		{"x^_2", "expected argument for '^'", 1},
		{"{x", "missing closing brace", 0},
		{"x}", "unexpected '}'", 1},
		{`\frac{1}{`, "missing closing brace", 8},
		{`\left( x`, `missing \right`, 0},
		{`x \right)`, `unexpected \right`, 2},
		{`x\`, `unexpected end of input after '\'`, 1},
		{"a\xffb", "invalid UTF-8 in expression", 1},
	}
	ts := NewTypesetter()
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := ts.Typeset(tc.expr)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError for %q, got %v", tc.expr, err)
			}
			if !strings.Contains(perr.Msg, tc.message) {
				t.Fatalf("error %q does not mention %q", perr.Msg, tc.message)
			}
			if perr.Pos != tc.pos {
				t.Fatalf("position %d, want %d", perr.Pos, tc.pos)
			}
		})
	}
}

func TestTypesetRejectsOversizedExpression(t *testing.T) {
	_, err := NewTypesetter().Typeset(strings.Repeat("x", MaxExpressionLength+1))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected length error, got %v", err)
	}
}

func TestMathErrorDetectsMerror(t *testing.T) {
	msg, ok := mathError(`<math><mrow><mi>x</mi><merror><mtext>undefined control sequence \foo</mtext></merror></mrow></math>`)
	if !ok || msg != `undefined control sequence \foo` {
		t.Fatalf("mathError = %q, %v", msg, ok)
	}
	if _, ok := mathError(`<math><msup><mi>x</mi><mn>2</mn></msup></math>`); ok {
		t.Fatalf("clean output reported as error")
	}
	if msg, ok := mathError(`<math><merror/></math>`); !ok || msg != "invalid expression" {
		t.Fatalf("empty merror = %q, %v", msg, ok)
	}
}

func TestParseErrorWithoutPosition(t *testing.T) {
	err := &ParseError{Pos: -1, Msg: "bad input"}
	if err.Error() != "bad input" {
		t.Fatalf("Error() = %q", err.Error())
	}
	err.Pos = 3
	if err.Error() != "bad input at position 3" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
