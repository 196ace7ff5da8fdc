// Package richtext works on the markup produced by the question editor:
// paragraphs of inline text plus atomic embeds (formula markers and images).
package richtext

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// EmptyParagraph is what the editor serializes when the user typed nothing.
	EmptyParagraph = "<p><br></p>"

	FormulaClass = "ql-formula"
	FormulaAttr  = "data-value"
)

var (
	ErrEmptyFormula    = errors.New("formula expression is empty")
	ErrInvalidImageURL = errors.New("image url must be an absolute http(s) url")
	ErrInvalidIndex    = errors.New("cursor index must not be negative")
)

var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Li: true, atom.Blockquote: true,
	atom.Pre: true,
}

// Parse parses a payload as body content. The returned root is a detached
// container whose children are the payload's top-level nodes.
func Parse(payload string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(payload), context)
	if err != nil {
		return nil, fmt.Errorf("parse rich text: %w", err)
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// Render serializes the children of a root returned by Parse.
func Render(root *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render rich text: %w", err)
		}
	}
	return buf.String(), nil
}

// IsFormula reports whether n is a formula marker.
func IsFormula(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Span {
		return false
	}
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == FormulaClass {
			return true
		}
	}
	return false
}

func isEmbed(n *html.Node) bool {
	return IsFormula(n) || (n.Type == html.ElementNode && n.DataAtom == atom.Img)
}

// Attr returns the value of attribute key on n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// IsBlank reports whether a payload carries no text and no embeds. The empty
// paragraph sentinel and whitespace-only markup are blank.
func IsBlank(payload string) bool {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" || trimmed == EmptyParagraph {
		return true
	}
	root, err := Parse(payload)
	if err != nil {
		return false
	}
	return !hasContent(root)
}

func hasContent(n *html.Node) bool {
	if n.Type == html.TextNode {
		return strings.TrimFunc(n.Data, isBlankRune) != ""
	}
	if isEmbed(n) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasContent(c) {
			return true
		}
	}
	return false
}

func isBlankRune(r rune) bool { return unicode.IsSpace(r) || r == '\u00a0' || r == '\ufeff' }

// Formulas lists the raw expressions of every formula marker, in document order.
func Formulas(payload string) ([]string, error) {
	root, err := Parse(payload)
	if err != nil {
		return nil, err
	}
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if IsFormula(n) {
			out = append(out, Attr(n, FormulaAttr))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out, nil
}

// PlainText flattens a payload: formulas become $expr$, images [image: src]
// and blocks are separated by newlines.
func PlainText(payload string) string {
	root, err := Parse(payload)
	if err != nil {
		return payload
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
			return
		case IsFormula(n):
			b.WriteString("$" + Attr(n, FormulaAttr) + "$")
			return
		case n.Type == html.ElementNode && n.DataAtom == atom.Img:
			b.WriteString("[image: " + Attr(n, "src") + "]")
			return
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteString("\n")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.DataAtom] {
			b.WriteString("\n")
		}
	}
	walk(root)
	return strings.TrimSpace(b.String())
}

// Length is the editor length of a payload: one per rune of text, one per
// embed and one for the line break closing each block.
func Length(payload string) (int, error) {
	root, err := Parse(payload)
	if err != nil {
		return 0, err
	}
	total := 0
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		total += length(c)
	}
	return total, nil
}

func length(n *html.Node) int {
	switch {
	case n.Type == html.TextNode:
		return utf8.RuneCountInString(n.Data)
	case isEmbed(n):
		return 1
	}
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += length(c)
	}
	if n.Type == html.ElementNode && blockElements[n.DataAtom] {
		total++
	}
	return total
}

// FormulaNode builds a formula marker for expr. The expression doubles as
// fallback text for readers that do not typeset.
func FormulaNode(expr string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr: []html.Attribute{
			{Key: "class", Val: FormulaClass},
			{Key: FormulaAttr, Val: expr},
			{Key: "contenteditable", Val: "false"},
		},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: expr})
	return n
}

func ImageNode(src string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "img",
		DataAtom: atom.Img,
		Attr:     []html.Attribute{{Key: "src", Val: src}},
	}
}

// InsertFormula places a formula marker for expr at the editor cursor index.
func InsertFormula(payload string, index int, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", ErrEmptyFormula
	}
	return insertEmbed(payload, index, FormulaNode(expr))
}

// InsertImage places an image embed pointing at src at the editor cursor index.
func InsertImage(payload string, index int, src string) (string, error) {
	src = strings.TrimSpace(src)
	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidImageURL
	}
	return insertEmbed(payload, index, ImageNode(src))
}

func insertEmbed(payload string, index int, embed *html.Node) (string, error) {
	if index < 0 {
		return "", ErrInvalidIndex
	}
	if IsBlank(payload) {
		root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
		p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
		p.AppendChild(embed)
		root.AppendChild(p)
		return Render(root)
	}
	root, err := Parse(payload)
	if err != nil {
		return "", err
	}
	if !insertAt(root, index, embed) {
		appendToLastBlock(root, embed)
	}
	return Render(root)
}

// insertAt walks root in editor order and splices embed in at index. It
// reports false when index lies past the end of the document.
func insertAt(root *html.Node, index int, embed *html.Node) bool {
	pos := 0
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				l := utf8.RuneCountInString(c.Data)
				if index <= pos+l {
					spliceText(n, c, index-pos, embed)
					return true
				}
				pos += l
			case isEmbed(c):
				if index == pos {
					n.InsertBefore(embed, c)
					return true
				}
				pos++
			case c.Type == html.ElementNode:
				if walk(c) {
					return true
				}
			}
		}
		if n != root && n.Type == html.ElementNode && blockElements[n.DataAtom] {
			if index == pos {
				appendToBlock(n, embed)
				return true
			}
			pos++
		}
		return false
	}
	return walk(root)
}

// spliceText inserts embed into text node t of parent at rune offset off.
func spliceText(parent, t *html.Node, off int, embed *html.Node) {
	runes := []rune(t.Data)
	switch {
	case off <= 0:
		parent.InsertBefore(embed, t)
	case off >= len(runes):
		parent.InsertBefore(embed, t.NextSibling)
	default:
		t.Data = string(runes[:off])
		rest := &html.Node{Type: html.TextNode, Data: string(runes[off:])}
		parent.InsertBefore(embed, t.NextSibling)
		parent.InsertBefore(rest, embed.NextSibling)
	}
}

// appendToBlock appends embed at the end of block. A block that only holds
// the placeholder <br> has it replaced.
func appendToBlock(block, embed *html.Node) {
	if !hasContent(block) {
		for c := block.FirstChild; c != nil; {
			next := c.NextSibling
			block.RemoveChild(c)
			c = next
		}
	}
	block.AppendChild(embed)
}

func appendToLastBlock(root, embed *html.Node) {
	for c := root.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode && blockElements[c.DataAtom] {
			appendToBlock(c, embed)
			return
		}
	}
	root.AppendChild(embed)
}

// FromPlainText converts plain text into editor markup. Each line becomes a
// paragraph. $$expr$$ (which may span lines) and $expr$ become formula
// markers, \$ is a literal dollar sign and an unmatched $ is kept as text.
func FromPlainText(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	p := newParagraph()
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			p.AppendChild(&html.Node{Type: html.TextNode, Data: buf.String()})
			buf.Reset()
		}
	}
	formula := func(expr string) {
		flush()
		if expr = strings.TrimSpace(strings.ReplaceAll(expr, "\n", " ")); expr != "" {
			p.AppendChild(FormulaNode(expr))
		}
	}
	endParagraph := func() {
		flush()
		trimParagraph(p)
		if p.FirstChild != nil {
			root.AppendChild(p)
		}
		p = newParagraph()
	}

	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], `\$`):
			buf.WriteByte('$')
			i += 2
		case text[i] == '\n':
			endParagraph()
			i++
		case strings.HasPrefix(text[i:], "$$"):
			end := closingDelimiter(text, i+2, "$$")
			if end < 0 {
				buf.WriteString("$$")
				i += 2
				continue
			}
			formula(text[i+2 : end])
			i = end + 2
		case text[i] == '$':
			end := closingDelimiter(text, i+1, "$")
			if end < 0 {
				buf.WriteByte('$')
				i++
				continue
			}
			formula(text[i+1 : end])
			i = end + 1
		default:
			buf.WriteByte(text[i])
			i++
		}
	}
	endParagraph()

	if root.FirstChild == nil {
		return EmptyParagraph, nil
	}
	return Render(root)
}

// closingDelimiter finds the delim closing a formula opened before from,
// skipping backslash escapes. Inline $ formulas do not cross lines.
func closingDelimiter(text string, from int, delim string) int {
	for j := from; j < len(text); j++ {
		switch {
		case text[j] == '\\':
			j++
		case text[j] == '\n' && delim == "$":
			return -1
		case strings.HasPrefix(text[j:], delim):
			return j
		}
	}
	return -1
}

func newParagraph() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
}

// trimParagraph strips the whitespace around a paragraph's content.
func trimParagraph(p *html.Node) {
	if c := p.FirstChild; c != nil && c.Type == html.TextNode {
		if c.Data = strings.TrimLeftFunc(c.Data, unicode.IsSpace); c.Data == "" {
			p.RemoveChild(c)
		}
	}
	if c := p.LastChild; c != nil && c.Type == html.TextNode {
		if c.Data = strings.TrimRightFunc(c.Data, unicode.IsSpace); c.Data == "" {
			p.RemoveChild(c)
		}
	}
}
