// Package gen drives batch generation: one .lang file per language, one
// .style and _esc256.outlang file per style, plus the lang.map and
// outlang.map lookup tables.
package gen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/seanpm2001/go-source-highlight/grammar"
	"github.com/seanpm2001/go-source-highlight/langs"
	"github.com/seanpm2001/go-source-highlight/translate"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

const (
	// LangMapName is the fixed name of the language lookup table.
	LangMapName = "lang.map"

	// OutLangMapName is the fixed name of the output-definition lookup table.
	OutLangMapName = "outlang.map"

	langExt = ".lang"
)

// Options configures a generation run.
type Options struct {
	// OutDir receives all generated files.
	OutDir string

	// DB is the lexer-grammar database; langs.Default if nil.
	DB langs.Database

	// Languages restricts language generation to the given display names;
	// empty means every language in the database.
	Languages []string

	// Styles restricts style generation to the given names; empty means
	// every chroma style.
	Styles []string

	// ContinueOnError keeps a batch running after a language fails to
	// translate. A failed language produces no file and no map entries.
	ContinueOnError bool

	// Translate is passed through to the translator. Its Invoker defaults
	// to the chroma-backed sub-lexer capability.
	Translate translate.Options
}

// FileBase returns the grammar file base name for a display name: lowercased,
// spaces replaced with hyphens, with the .lang extension.
func FileBase(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-") + langExt
}

// Invoker returns the chroma-backed sub-lexer capability used for dynamic
// token resolution.
func Invoker() translate.Invoker {
	return func(ref, text string) ([]chroma.Token, error) {
		lx := lexers.Get(ref)
		if lx == nil {
			return nil, unknownSubLexerError(ref)
		}
		it, err := lx.Tokenise(nil, text)
		if err != nil {
			return nil, err
		}
		var out []chroma.Token
		for tok := it(); tok != chroma.EOF; tok = it() {
			out = append(out, tok)
		}
		return out, nil
	}
}

// Languages translates every selected language and writes its grammar file
// plus the lang.map lookup table. A grammar file is written only after the
// whole language translated; on failure the batch stops unless
// ContinueOnError is set, in which case the language is skipped whole.
func Languages(opts Options) error {
	db := opts.DB
	if db == nil {
		db = langs.Default
	}
	names := opts.Languages
	if len(names) == 0 {
		names = db.Names()
	}
	topts := opts.Translate
	if topts.Invoker == nil {
		topts.Invoker = Invoker()
	}

	langMap := map[string]string{}
	for _, name := range names {
		g, err := db.Get(name)
		if err == nil {
			tracer().Infof("generating language %s", name)
			var content string
			content, err = RenderLang(g, topts)
			if err == nil {
				base := FileBase(g.Config.Name)
				err = os.WriteFile(filepath.Join(opts.OutDir, base), []byte(content), 0o666)
				if err == nil {
					addMapEntries(langMap, g.Config, base)
				}
			}
		}
		if err != nil {
			tracer().Errorf("language %s: %s", name, err.Error())
			if !opts.ContinueOnError {
				return err
			}
		}
	}
	return writeMap(filepath.Join(opts.OutDir, LangMapName), langMap)
}

// RenderLang translates one grammar into the full .lang file contents.
func RenderLang(g *grammar.Graph, topts translate.Options) (string, error) {
	lines, err := translate.Translate(g, topts)
	if err != nil {
		return "", err
	}
	all := make([]string, 0, len(lines)+1)
	all = append(all, "# highlight definitions generated from the "+g.Config.Name+" grammar")
	all = append(all, lines...)
	return strings.Join(all, "\n") + "\n", nil
}

// addMapEntries maps the display name, every alias, and every filename
// extension (plus their lowercased forms) to the generated file base name.
func addMapEntries(m map[string]string, cfg *grammar.Config, base string) {
	m[cfg.Name] = base
	m[strings.ToLower(cfg.Name)] = base
	for _, alias := range cfg.Aliases {
		m[alias] = base
		m[strings.ToLower(alias)] = base
	}
	globs := make([]string, 0, len(cfg.Filenames)+len(cfg.AliasFilenames))
	globs = append(globs, cfg.Filenames...)
	globs = append(globs, cfg.AliasFilenames...)
	for _, glob := range globs {
		ext := glob
		if i := strings.LastIndex(glob, "."); i >= 0 {
			ext = glob[i+1:]
		}
		m[ext] = base
		m[strings.ToLower(ext)] = base
	}
}

// writeMap writes sorted "key = value" lines.
func writeMap(path string, m map[string]string) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k + " = " + m[k] + "\n")
	}
	tracer().Infof("writing %s", filepath.Base(path))
	return os.WriteFile(path, []byte(b.String()), 0o666)
}
