package langs

import (
	"reflect"
	"testing"

	"github.com/alecthomas/chroma"

	srchilite "github.com/seanpm2001/go-source-highlight"
	"github.com/seanpm2001/go-source-highlight/grammar"
	"github.com/seanpm2001/go-source-highlight/translate"
)

func fakeInvoker(ref, text string) ([]chroma.Token, error) {
	return []chroma.Token{{Type: chroma.NameBuiltin, Value: text}}, nil
}

func TestBuiltinNames(t *testing.T) {
	want := []string{"C", "Console", "Diff", "INI", "PkgConfig"}
	if got := Default.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuiltinsTranslate(t *testing.T) {
	opts := translate.Options{Invoker: fakeInvoker}
	for _, name := range Default.Names() {
		g, e := Default.Get(name)
		if e != nil {
			t.Fatalf("%s: %s", name, e.Error())
		}
		lines, e := translate.Translate(g, opts)
		if e != nil {
			t.Errorf("%s: %s", name, e.Error())
			continue
		}
		if len(lines) == 0 {
			t.Errorf("%s: translated to nothing", name)
		}
	}
}

func TestIniTranslation(t *testing.T) {
	lines, e := translate.Translate(Ini, translate.Options{})
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	want := []string{
		`Text = '\s+'`,
		`CommentSingle start '[;#]'`,
		`Keyword = '\[[^\]]+\]'`,
		"(NameAttribute,Text,Operator,Text,LiteralString) = `(\\w[\\w.-]*)([ \\t]*)(=)([ \\t]*)([^\\n]*)`",
		`NameAttribute = '[^\s\[]+'`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("expected %#v, got %#v", want, lines)
	}
}

func TestConsoleUsesSubLexer(t *testing.T) {
	var gotRef string
	invoker := func(ref, text string) ([]chroma.Token, error) {
		gotRef = ref
		return fakeInvoker(ref, text)
	}
	if _, e := translate.Translate(Console, translate.Options{Invoker: invoker}); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if gotRef != "bash" {
		t.Fatalf("expected the bash sub-lexer, got %q", gotRef)
	}
}

func TestUnknownLanguage(t *testing.T) {
	_, e := Default.Get("Klingon")
	if e == nil {
		t.Fatal("error expected, got success")
	}
	pe, is := e.(*srchilite.Error)
	if !is || pe.Code != UnknownLanguageError {
		t.Fatalf("expected UnknownLanguageError, got %q", e.Error())
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	g := &grammar.Graph{
		Config: &grammar.Config{Name: "Toy"},
		States: map[string][]grammar.Rule{
			"root": {grammar.LiteralRule{Pattern: `x`, Token: grammar.Tok(chroma.Text)}},
		},
	}
	r.Register(g)
	replacement := &grammar.Graph{
		Config: &grammar.Config{Name: "Toy"},
		States: map[string][]grammar.Rule{
			"root": {grammar.LiteralRule{Pattern: `y`, Token: grammar.Tok(chroma.Text)}},
		},
	}
	r.Register(replacement)
	got, e := r.Get("Toy")
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if got != replacement {
		t.Fatal("expected the replacement grammar")
	}
	if names := r.Names(); len(names) != 1 || names[0] != "Toy" {
		t.Fatalf("unexpected names %v", names)
	}
}
