package srchilite

import (
	"testing"
)

type fakeContext struct {
	lang, state, pattern string
}

func (c fakeContext) LangName() string    { return c.lang }
func (c fakeContext) StateName() string   { return c.state }
func (c fakeContext) RulePattern() string { return c.pattern }

func TestNewError(t *testing.T) {
	e := NewError(1, "broken", "", "", "")
	if e.Error() != "broken" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	e = NewError(1, "broken", "INI", "root", `\w+`)
	want := `broken in INI state "root" for pattern "\\w+"`
	if e.Error() != want {
		t.Fatalf("expected %q, got %q", want, e.Error())
	}
	if e.Lang != "INI" || e.State != "root" || e.Pattern != `\w+` {
		t.Fatalf("context not retained: %#v", e)
	}
}

func TestFormatError(t *testing.T) {
	e := FormatError(TranslateErrors, "bad %q at %d", "x", 7)
	if e.Error() != `bad "x" at 7` {
		t.Fatalf("unexpected message %q", e.Error())
	}
	if e.Code != TranslateErrors {
		t.Fatalf("unexpected code %d", e.Code)
	}
}

func TestFormatErrorCtx(t *testing.T) {
	ctx := fakeContext{lang: "C", state: "comment", pattern: `\*/`}
	e := FormatErrorCtx(ctx, GrammarErrors, "broken")
	if e.Lang != "C" || e.State != "comment" || e.Pattern != `\*/` {
		t.Fatalf("context not retained: %#v", e)
	}
	want := `broken in C state "comment" for pattern "\\*/"`
	if e.Error() != want {
		t.Fatalf("expected %q, got %q", want, e.Error())
	}
}
