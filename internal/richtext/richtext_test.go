package richtext

import (
	"errors"
	"reflect"
	"testing"
)

const formulaX2 = `<span class="ql-formula" data-value="x^2" contenteditable="false">x^2</span>`

func TestIsBlank(t *testing.T) {
	cases := map[string]bool{
		"":                         true,
		"   ":                      true,
		EmptyParagraph:             true,
		"<p> </p>":                 true,
		"<p>&nbsp;</p><p><br></p>": true,
		"<p>a</p>":                 false,
		"<p>" + formulaX2 + "</p>": false,

		`<p><img src="https://a.test/x.png"></p>`: false,
	}
	for payload, want := range cases {
		if got := IsBlank(payload); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", payload, got, want)
		}
	}
}

func TestLength(t *testing.T) {
	cases := map[string]int{
		"<p>ab</p>":                 3,
		"<p>ab</p><p>c</p>":         5,
		"<p>a" + formulaX2 + "</p>": 3,
		EmptyParagraph:              1,
	}
	for payload, want := range cases {
		got, err := Length(payload)
		if err != nil {
			t.Fatalf("Length(%q): %v", payload, err)
		}
		if got != want {
			t.Errorf("Length(%q) = %d, want %d", payload, got, want)
		}
	}
}

func TestInsertFormula(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		index   int
		want    string
	}{
		{"into blank document", EmptyParagraph, 0, "<p>" + formulaX2 + "</p>"},
		{"into empty string", "", 5, "<p>" + formulaX2 + "</p>"},
		{"middle of text", "<p>abcd</p>", 2, "<p>ab" + formulaX2 + "cd</p>"},
		{"start of text", "<p>abcd</p>", 0, "<p>" + formulaX2 + "abcd</p>"},
		{"end of paragraph", "<p>ab</p><p>cd</p>", 2, "<p>ab" + formulaX2 + "</p><p>cd</p>"},
		{"start of second paragraph", "<p>ab</p><p>cd</p>", 3, "<p>ab</p><p>" + formulaX2 + "cd</p>"},
		{"past the end", "<p>ab</p>", 99, "<p>ab" + formulaX2 + "</p>"},
		{"replaces placeholder break", "<p>ab</p><p><br></p>", 3, "<p>ab</p><p>" + formulaX2 + "</p>"},
		{"inside inline markup", "<p><strong>abc</strong></p>", 1, "<p><strong>a" + formulaX2 + "bc</strong></p>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := InsertFormula(tc.payload, tc.index, "x^2")
			if err != nil {
				t.Fatalf("InsertFormula: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got  %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestInsertFormulaErrors(t *testing.T) {
	if _, err := InsertFormula("<p>a</p>", 0, "  "); !errors.Is(err, ErrEmptyFormula) {
		t.Fatalf("expected ErrEmptyFormula, got %v", err)
	}
	if _, err := InsertFormula("<p>a</p>", -1, "x"); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestInsertImage(t *testing.T) {
	got, err := InsertImage("<p>ab</p>", 1, "https://cdn.test/fig.png")
	if err != nil {
		t.Fatalf("InsertImage: %v", err)
	}
	want := `<p>a<img src="https://cdn.test/fig.png"/>b</p>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	for _, bad := range []string{"", "/fig.png", "javascript:alert(1)", "ftp://host/fig.png", "https://"} {
		if _, err := InsertImage("<p>ab</p>", 0, bad); !errors.Is(err, ErrInvalidImageURL) {
			t.Errorf("InsertImage(%q) error = %v, want ErrInvalidImageURL", bad, err)
		}
	}
}

func TestInsertedEmbedCountsOnce(t *testing.T) {
	out, err := InsertFormula("<p>ab</p>", 1, `\frac{a}{b}`)
	if err != nil {
		t.Fatalf("InsertFormula: %v", err)
	}
	n, err := Length(out)
	if err != nil {
		t.Fatalf("Length: %v", err)
	}
	if n != 4 {
		t.Fatalf("Length after insert = %d, want 4", n)
	}
}

func TestFormulas(t *testing.T) {
	payload := `<p>Let ` + formulaX2 + ` and <span class="ql-formula" data-value="\sqrt{y}">y</span></p>`
	got, err := Formulas(payload)
	if err != nil {
		t.Fatalf("Formulas: %v", err)
	}
	want := []string{"x^2", `\sqrt{y}`}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Formulas = %v, want %v", got, want)
	}
}

func TestPlainText(t *testing.T) {
	payload := `<p>Solve ` + formulaX2 + `</p><p>see<br><img src="https://a.test/g.png"></p>`
	want := "Solve $x^2$\nsee\n[image: https://a.test/g.png]"
	if got := PlainText(payload); got != want {
		t.Fatalf("PlainText = %q, want %q", got, want)
	}
}

func TestFromPlainText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", EmptyParagraph},
		{"Since $x^2$ grows.", "<p>Since " + formulaX2 + " grows.</p>"},
		{"a < b\n\nsecond line", "<p>a &lt; b</p><p>second line</p>"},
		{"costs $5", "<p>costs $5</p>"},
		{"$x^2$", "<p>" + formulaX2 + "</p>"},
		{"Since $$x^2 = 4$$ we get $x = 2$.", "<p>Since " + formulaMarkup("x^2 = 4") + " we get " + formulaMarkup("x = 2") + ".</p>"},
		{`$$\frac{a}{b}$$`, "<p>" + formulaMarkup(`\frac{a}{b}`) + "</p>"},
		{"$$\nx^2\n$$", "<p>" + formulaX2 + "</p>"},
		{`Cost is \$5 and $y$`, "<p>Cost is $5 and " + formulaMarkup("y") + "</p>"},
		{`$\$5$`, "<p>" + formulaMarkup(`\$5`) + "</p>"},
		{"open $$x^2 only", "<p>open $$x^2 only</p>"},
		{"$a\nb$", "<p>$a</p><p>b$</p>"},
		{"  padded  ", "<p>padded</p>"},
	}
	for _, tc := range cases {
		got, err := FromPlainText(tc.in)
		if err != nil {
			t.Fatalf("FromPlainText(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("FromPlainText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func formulaMarkup(expr string) string {
	return `<span class="ql-formula" data-value="` + expr + `" contenteditable="false">` + expr + `</span>`
}
