package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/chroma"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	srchilite "github.com/seanpm2001/go-source-highlight"
	"github.com/seanpm2001/go-source-highlight/grammar"
	"github.com/seanpm2001/go-source-highlight/langs"
	"github.com/seanpm2001/go-source-highlight/translate"
)

func redirectTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	return gotestingadapter.RedirectTracing(t)
}

func testDB() *langs.Registry {
	r := langs.NewRegistry()
	r.Register(&grammar.Graph{
		Config: &grammar.Config{Name: "Toy", Aliases: []string{"toy"}, Filenames: []string{"*.toy"}},
		States: map[string][]grammar.Rule{
			"root": {grammar.LiteralRule{Pattern: `\w+`, Token: grammar.Tok(chroma.Name)}},
		},
	})
	r.Register(&grammar.Graph{
		Config: &grammar.Config{Name: "Mini Lang", Aliases: []string{"mini lang"}, Filenames: []string{"*.mini"}},
		States: map[string][]grammar.Rule{
			"root": {grammar.LiteralRule{Pattern: `\d+`, Token: grammar.Tok(chroma.LiteralNumber)}},
		},
	})
	return r
}

func failingDB() *langs.Registry {
	r := langs.NewRegistry()
	r.Register(&grammar.Graph{
		Config: &grammar.Config{Name: "Bad", Aliases: []string{"bad"}},
		States: map[string][]grammar.Rule{
			"root": {grammar.LiteralRule{Pattern: `foo(?=bar)`, Token: grammar.Tok(chroma.Keyword)}},
		},
	})
	return r
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, e := os.ReadFile(filepath.Join(dir, name))
	if e != nil {
		t.Fatalf("cannot read %s: %v", name, e)
	}
	return string(content)
}

func TestFileBase(t *testing.T) {
	samples := []struct{ in, want string }{
		{"C", "c.lang"},
		{"PkgConfig", "pkgconfig.lang"},
		{"Bash Session", "bash-session.lang"},
	}
	for _, s := range samples {
		if got := FileBase(s.in); got != s.want {
			t.Errorf("%q: expected %q, got %q", s.in, s.want, got)
		}
	}
}

func TestLanguagesWritesFilesAndMap(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	e := Languages(Options{OutDir: dir, DB: testDB()})
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}

	toy := readFile(t, dir, "toy.lang")
	if !strings.HasPrefix(toy, "# highlight definitions generated from the Toy grammar\n") {
		t.Fatalf("missing header in %q", toy)
	}
	if !strings.Contains(toy, `Name = '\w+'`) {
		t.Fatalf("missing rule in %q", toy)
	}

	want := "Mini Lang = mini-lang.lang\n" +
		"Toy = toy.lang\n" +
		"mini = mini-lang.lang\n" +
		"mini lang = mini-lang.lang\n" +
		"toy = toy.lang\n"
	if got := readFile(t, dir, LangMapName); got != want {
		t.Fatalf("expected map %q, got %q", want, got)
	}
}

func TestEveryMapTargetExists(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	if e := Languages(Options{OutDir: dir, DB: testDB()}); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	for _, line := range strings.Split(strings.TrimSpace(readFile(t, dir, LangMapName)), "\n") {
		i := strings.LastIndex(line, " = ")
		if i < 0 {
			t.Fatalf("malformed map line %q", line)
		}
		target := line[i+3:]
		if _, e := os.Stat(filepath.Join(dir, target)); e != nil {
			t.Errorf("map target %s missing: %v", target, e)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	first, second := t.TempDir(), t.TempDir()
	if e := Languages(Options{OutDir: first, DB: testDB()}); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if e := Languages(Options{OutDir: second, DB: testDB()}); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	for _, name := range []string{"toy.lang", "mini-lang.lang", LangMapName} {
		if readFile(t, first, name) != readFile(t, second, name) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestFailingLanguageStopsBatch(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	e := Languages(Options{OutDir: dir, DB: failingDB()})
	if e == nil {
		t.Fatal("error expected, got success")
	}
	pe, is := e.(*srchilite.Error)
	if !is || pe.Code != translate.UnsupportedConstructError {
		t.Fatalf("expected UnsupportedConstructError, got %q", e.Error())
	}
	if _, e := os.Stat(filepath.Join(dir, "bad.lang")); !os.IsNotExist(e) {
		t.Fatal("failed language must not leave a file behind")
	}
	if _, e := os.Stat(filepath.Join(dir, LangMapName)); !os.IsNotExist(e) {
		t.Fatal("aborted batch must not write the map")
	}
}

func TestContinueOnErrorSkipsLanguage(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	db := failingDB()
	db.Register(&grammar.Graph{
		Config: &grammar.Config{Name: "Good"},
		States: map[string][]grammar.Rule{
			"root": {grammar.LiteralRule{Pattern: `x`, Token: grammar.Tok(chroma.Text)}},
		},
	})
	dir := t.TempDir()
	e := Languages(Options{OutDir: dir, DB: db, ContinueOnError: true})
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if _, e := os.Stat(filepath.Join(dir, "bad.lang")); !os.IsNotExist(e) {
		t.Fatal("failed language must not leave a file behind")
	}
	want := "Good = good.lang\ngood = good.lang\n"
	if got := readFile(t, dir, LangMapName); got != want {
		t.Fatalf("expected map %q, got %q", want, got)
	}
}

func TestInvoker(t *testing.T) {
	invoke := Invoker()
	tokens, e := invoke("bash", "ls -l")
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens from the bash lexer")
	}

	_, e = invoke("no-such-lexer", "x")
	if e == nil {
		t.Fatal("error expected, got success")
	}
	pe, is := e.(*srchilite.Error)
	if !is || pe.Code != UnknownSubLexerError {
		t.Fatalf("expected UnknownSubLexerError, got %q", e.Error())
	}
}

func TestStyles(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	e := Styles(Options{OutDir: dir, Styles: []string{"monokai"}})
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if s := readFile(t, dir, "monokai.style"); !strings.Contains(s, ";") {
		t.Fatalf("unexpected style contents %q", s)
	}
	if s := readFile(t, dir, "monokai_esc256.outlang"); !strings.Contains(s, "colormap") {
		t.Fatalf("unexpected outlang contents %q", s)
	}
	want := "monokai_esc256 = monokai_esc256.outlang\n"
	if got := readFile(t, dir, OutLangMapName); got != want {
		t.Fatalf("expected map %q, got %q", want, got)
	}
}

func TestUnknownStyle(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	e := Styles(Options{OutDir: t.TempDir(), Styles: []string{"no-such-style"}})
	if e == nil {
		t.Fatal("error expected, got success")
	}
	pe, is := e.(*srchilite.Error)
	if !is || pe.Code != UnknownStyleError {
		t.Fatalf("expected UnknownStyleError, got %q", e.Error())
	}
}
