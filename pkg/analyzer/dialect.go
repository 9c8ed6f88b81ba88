package analyzer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"
)

// ErrUnsupportedDialect indicates the file's syntax dialect could not be
// determined from its path or content.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// Dialect selects the grammar used to parse a file.
type Dialect string

// Supported dialects.
const (
	DialectJavaScript Dialect = "javascript"
	DialectTypeScript Dialect = "typescript"
	DialectTSX        Dialect = "tsx"
)

// dialectByExtension maps lowercase file extensions to dialects. JSX shares
// the javascript grammar; .mts/.cts are module/commonjs TypeScript variants
// that parse identically to .ts for fact extraction.
var dialectByExtension = map[string]Dialect{
	".js":  DialectJavaScript,
	".jsx": DialectJavaScript,
	".mjs": DialectJavaScript,
	".cjs": DialectJavaScript,
	".ts":  DialectTypeScript,
	".mts": DialectTypeScript,
	".cts": DialectTypeScript,
	".tsx": DialectTSX,
}

// enryDialects maps enry language names to dialects for the content-sniff
// fallback used when the extension is unknown or missing.
var enryDialects = map[string]Dialect{
	"JavaScript": DialectJavaScript,
	"JSX":        DialectJavaScript,
	"TypeScript": DialectTypeScript,
	"TSX":        DialectTSX,
}

// DetectDialect determines the syntax dialect for a file. The extension is
// authoritative; for unknown extensions the content is sniffed. Returns
// ErrUnsupportedDialect when neither identifies a JS/TS family dialect.
func DetectDialect(path string, content []byte) (Dialect, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if dialect, ok := dialectByExtension[ext]; ok {
		return dialect, nil
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	if dialect, ok := enryDialects[lang]; ok {
		return dialect, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedDialect, path)
}
