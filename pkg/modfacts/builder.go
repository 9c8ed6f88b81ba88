package modfacts

import (
	"errors"
	"fmt"
)

// Sentinel errors for fact-building invariants.
var (
	// ErrNoOpenImport indicates a specifier arrived before any import
	// declaration in the same file's scan.
	ErrNoOpenImport = errors.New("specifier with no open import record")
	// ErrDuplicateDefaultExport indicates a file declares more than one
	// default export, which is rejected as malformed input.
	ErrDuplicateDefaultExport = errors.New("duplicate default export")
)

// noOpenImport marks the cursor state before the first import declaration.
const noOpenImport = -1

// RecordBuilder accumulates one file's facts during a single scan. The
// builder keeps an explicit cursor into the import list so that the
// "specifier follows its owning declaration" invariant is checkable
// instead of depending on sequence order alone.
type RecordBuilder struct {
	fact   FileFact
	cursor int
}

// NewRecordBuilder creates a builder for the file at path.
func NewRecordBuilder(path string) *RecordBuilder {
	return &RecordBuilder{
		fact: FileFact{
			Path:    path,
			Imports: []ImportRecord{},
			Exports: []string{},
		},
		cursor: noOpenImport,
	}
}

// OpenImport appends a new ImportRecord with an empty specifier list and
// moves the cursor to it. Records preserve declaration order.
func (b *RecordBuilder) OpenImport(source string) {
	b.fact.Imports = append(b.fact.Imports, ImportRecord{
		Source:     source,
		Specifiers: []Specifier{},
	})
	b.cursor = len(b.fact.Imports) - 1
}

// AddSpecifier appends a specifier to the import record under the cursor.
func (b *RecordBuilder) AddSpecifier(sourceName, localName string) error {
	if b.cursor == noOpenImport {
		return fmt.Errorf("%w: %s", ErrNoOpenImport, localName)
	}

	rec := &b.fact.Imports[b.cursor]
	rec.Specifiers = append(rec.Specifiers, Specifier{
		SourceName: sourceName,
		LocalName:  localName,
	})

	return nil
}

// AddExport appends an exported name. Uniqueness is not enforced; the
// output preserves whatever the source declares.
func (b *RecordBuilder) AddExport(name string) {
	b.fact.Exports = append(b.fact.Exports, name)
}

// SetDefaultExport records the default export name. A second default
// export in the same file fails with ErrDuplicateDefaultExport.
func (b *RecordBuilder) SetDefaultExport(name string) error {
	if b.fact.DefaultExport != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateDefaultExport, name)
	}

	b.fact.DefaultExport = &name

	return nil
}

// Fact returns the accumulated FileFact.
func (b *RecordBuilder) Fact() FileFact {
	return b.fact
}
