// Package render turns editor payloads into display HTML with typeset
// formulas.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
	"github.com/lshigami/QuizDraft/internal/richtext"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	ErrorClass = "formula-error"

	DefaultCacheSize = 512

	// Expressions longer than this are cut in log lines.
	maxLoggedExpression = 200
)

// Typesetter converts one formula expression to MathML markup.
type Typesetter interface {
	Typeset(expr string) (string, error)
}

type Renderer struct {
	typesetter Typesetter
	policy     *bluemonday.Policy
	cache      *lru.Cache
}

// NewRenderer builds a renderer that memoizes up to cacheSize payloads.
// A non-positive size falls back to DefaultCacheSize.
func NewRenderer(ts Typesetter, cacheSize int) (*Renderer, error) {
	if ts == nil {
		return nil, fmt.Errorf("render: typesetter is required")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("render: create cache: %w", err)
	}
	return &Renderer{typesetter: ts, policy: newPolicy(), cache: cache}, nil
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-z][a-z0-9 _-]*$`)).OnElements("span", "p", "li", "pre")
	p.AllowAttrs(richtext.FormulaAttr, "contenteditable").OnElements("span")
	return p
}

// Render sanitizes payload and replaces the content of every formula marker
// with typeset math. A marker that fails to typeset carries an inline error
// placeholder instead; the rest of the payload is unaffected.
func (r *Renderer) Render(payload string) (string, error) {
	if cached, ok := r.cache.Get(payload); ok {
		return cached.(string), nil
	}

	root, err := richtext.Parse(r.policy.Sanitize(payload))
	if err != nil {
		return "", err
	}
	var markers []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if richtext.IsFormula(n) {
			markers = append(markers, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, m := range markers {
		if err := r.typesetMarker(m); err != nil {
			return "", err
		}
	}

	out, err := richtext.Render(root)
	if err != nil {
		return "", err
	}
	r.cache.Add(payload, out)
	return out, nil
}

func (r *Renderer) typesetMarker(marker *html.Node) error {
	expr := richtext.Attr(marker, richtext.FormulaAttr)
	for c := marker.FirstChild; c != nil; {
		next := c.NextSibling
		marker.RemoveChild(c)
		c = next
	}

	mathML, err := r.typesetter.Typeset(expr)
	if err != nil {
		log.Debug().Err(err).Str("expression", logExpression(expr)).Int("length", len(expr)).Msg("Formula failed to typeset")
		marker.AppendChild(ErrorNode(expr, err))
		return nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(mathML), marker)
	if err != nil {
		return fmt.Errorf("render: parse typeset output: %w", err)
	}
	for _, n := range nodes {
		marker.AppendChild(n)
	}
	return nil
}

// Preview typesets a single expression. It never fails: an invalid
// expression yields the error placeholder and the parser message.
func (r *Renderer) Preview(expr string) (string, string) {
	mathML, err := r.typesetter.Typeset(expr)
	if err == nil {
		return mathML, ""
	}
	var b strings.Builder
	if rerr := html.Render(&b, ErrorNode(expr, err)); rerr != nil {
		return html.EscapeString("Invalid formula: " + strings.ToValidUTF8(expr, "\uFFFD")), err.Error()
	}
	return b.String(), err.Error()
}

// ErrorNode is the placeholder shown in place of a formula that did not
// typeset. Invalid UTF-8 in expr or the message is replaced.
func ErrorNode(expr string, cause error) *html.Node {
	expr = strings.ToValidUTF8(expr, "\uFFFD")
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr: []html.Attribute{
			{Key: "class", Val: ErrorClass},
			{Key: "title", Val: strings.ToValidUTF8(cause.Error(), "\uFFFD")},
		},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: "Invalid formula: " + expr})
	return n
}

func logExpression(expr string) string {
	expr = strings.ToValidUTF8(expr, "\uFFFD")
	if len(expr) <= maxLoggedExpression {
		return expr
	}
	cut := maxLoggedExpression
	for cut > 0 && !utf8.RuneStart(expr[cut]) {
		cut--
	}
	return expr[:cut] + "…"
}
