package analyzer

import (
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// languageFuncs maps dialects to their tree-sitter GetLanguage functions.
var languageFuncs = map[Dialect]func() unsafe.Pointer{
	DialectJavaScript: javascript.GetLanguage,
	DialectTypeScript: typescript.GetLanguage,
	DialectTSX:        tsx.GetLanguage,
}

var languageCache sync.Map

// languageFor returns the tree-sitter Language for the given dialect, or
// nil if the dialect has no registered grammar.
func languageFor(dialect Dialect) *sitter.Language {
	if cached, ok := languageCache.Load(dialect); ok {
		lang, castOK := cached.(*sitter.Language)
		if castOK {
			return lang
		}
	}

	fn, ok := languageFuncs[dialect]
	if !ok {
		return nil
	}

	lang := sitter.NewLanguage(fn())
	languageCache.Store(dialect, lang)

	return lang
}
