// Package mathml typesets TeX math expressions as presentation MathML on top
// of treeblood.
//
// treeblood renders what it can and marks the rest with <merror>. Typeset
// turns both that and structurally broken input into a *ParseError so
// callers can show their own placeholder.
package mathml

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wyatt915/treeblood"
	"golang.org/x/net/html"
)

const (
	namespace = "http://www.w3.org/1998/Math/MathML"

	// MaxExpressionLength bounds the source accepted by Typeset.
	MaxExpressionLength = 4096
)

// ParseError reports an expression that could not be typeset. Pos is the
// byte offset of the problem, or -1 when treeblood did not say.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

type Typesetter struct {
	// Display renders in display style (block) rather than inline.
	Display bool
	// Macros are extra \name definitions passed to treeblood.
	Macros map[string]string
}

func NewTypesetter() *Typesetter {
	return &Typesetter{}
}

// Typeset converts expr to a <math> element.
func (t *Typesetter) Typeset(expr string) (out string, err error) {
	if len(expr) > MaxExpressionLength {
		return "", &ParseError{Pos: MaxExpressionLength, Msg: fmt.Sprintf("expression longer than %d bytes", MaxExpressionLength)}
	}
	if !utf8.ValidString(expr) {
		return "", &ParseError{Pos: invalidUTF8Offset(expr), Msg: "invalid UTF-8 in expression"}
	}
	if strings.TrimSpace(expr) == "" {
		return fmt.Sprintf(`<math xmlns="%s" display="%s"></math>`, namespace, t.display()), nil
	}
	if err := checkStructure(expr); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = "", &ParseError{Pos: -1, Msg: fmt.Sprintf("typesetter failed: %v", r)}
		}
	}()
	render := treeblood.InlineStyle
	if t.Display {
		render = treeblood.DisplayStyle
	}
	mml, err := render(expr, t.Macros)
	if err != nil {
		return "", &ParseError{Pos: -1, Msg: err.Error()}
	}
	if msg, ok := mathError(mml); ok {
		return "", &ParseError{Pos: -1, Msg: msg}
	}
	return mml, nil
}

func (t *Typesetter) display() string {
	if t.Display {
		return "block"
	}
	return "inline"
}

// mathError reports whether mml contains an <merror> element, and its text.
func mathError(mml string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(mml))
	found := false
	depth := 0
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if !found {
				return "", false
			}
			msg := strings.Join(strings.Fields(b.String()), " ")
			if msg == "" {
				msg = "invalid expression"
			}
			return msg, true
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "merror" {
				found = true
				depth++
			}
		case html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "merror" {
				found = true
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "merror" && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth > 0 {
				b.WriteString(" ")
				b.Write(z.Text())
			}
		}
	}
}

func invalidUTF8Offset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(s)
}
