package gen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/styles"

	"github.com/seanpm2001/go-source-highlight/style"
)

// Styles writes one .style and one _esc256.outlang file per selected chroma
// style plus the outlang.map lookup table.
func Styles(opts Options) error {
	names := opts.Styles
	if len(names) == 0 {
		names = styles.Names()
	}
	outMap := map[string]string{}
	for _, name := range names {
		sty, ok := styles.Registry[name]
		if !ok {
			err := unknownStyleError(name)
			tracer().Errorf("style %s: %s", name, err.Error())
			if !opts.ContinueOnError {
				return err
			}
			continue
		}
		tracer().Infof("generating style %s", name)
		p := style.NewPalette(sty)
		lower := strings.ToLower(name)

		path := filepath.Join(opts.OutDir, lower+".style")
		if err := os.WriteFile(path, []byte(style.Render(sty, p)), 0o666); err != nil {
			return err
		}

		outBase := lower + "_esc256.outlang"
		path = filepath.Join(opts.OutDir, outBase)
		if err := os.WriteFile(path, []byte(style.RenderEsc256(name, p)), 0o666); err != nil {
			return err
		}
		outMap[lower+"_esc256"] = outBase
	}
	return writeMap(filepath.Join(opts.OutDir, OutLangMapName), outMap)
}

// All generates languages and styles in one run.
func All(opts Options) error {
	if err := Languages(opts); err != nil {
		return err
	}
	return Styles(opts)
}
