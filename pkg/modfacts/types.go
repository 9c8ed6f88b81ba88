// Package modfacts defines the module-fact data model: the import and
// export declarations extracted from one source file, and the project-wide
// collection built by the graph traversal.
package modfacts

import "errors"

// SourceNameDefault is the sentinel source name for default-import bindings.
const SourceNameDefault = "default"

// SourceNameNamespace is the sentinel source name for namespace-import bindings.
const SourceNameNamespace = "*"

// ErrDuplicatePath is returned when a FileFact with the same path is appended twice.
var ErrDuplicatePath = errors.New("file fact with this path already present")

// Specifier is a single binding introduced by an import declaration.
// SourceName is the name as known to the origin module, or one of the
// "default" / "*" sentinels; LocalName is the identifier bound in the
// importing file's scope.
type Specifier struct {
	SourceName string `json:"source_name" yaml:"source_name"`
	LocalName  string `json:"local_name"  yaml:"local_name"`
}

// ImportRecord is one import declaration: the literal module-reference
// string plus its specifiers in declaration order. The specifier list is
// empty for side-effect-only imports.
type ImportRecord struct {
	Source     string      `json:"source"     yaml:"source"`
	Specifiers []Specifier `json:"specifiers" yaml:"specifiers"`
}

// FileFact holds the import/export facts extracted from one analyzed file.
// DefaultExport is nil when the file has no default export; it serializes
// as null so consumers see the field either way.
type FileFact struct {
	Path          string         `json:"path"           yaml:"path"`
	Imports       []ImportRecord `json:"imports"        yaml:"imports"`
	Exports       []string       `json:"exports"        yaml:"exports"`
	DefaultExport *string        `json:"default_export" yaml:"default_export"`
}

// ImportSources returns the literal module-reference strings of every
// import record, in declaration order.
func (f *FileFact) ImportSources() []string {
	sources := make([]string, len(f.Imports))

	for i, rec := range f.Imports {
		sources[i] = rec.Source
	}

	return sources
}

// Project is the whole run's output: an ordered collection of FileFacts,
// keyed implicitly by path. A path appears at most once regardless of how
// many other files import it.
type Project struct {
	Files []FileFact `json:"files" yaml:"files"`

	paths map[string]struct{}
}

// NewProject creates an empty Project.
func NewProject() *Project {
	return &Project{
		paths: make(map[string]struct{}),
	}
}

// Contains reports whether a FileFact with the given path has been appended.
// Paths are compared by literal string equality; no normalization is applied.
func (p *Project) Contains(path string) bool {
	_, ok := p.paths[path]

	return ok
}

// Append adds a FileFact to the project. Appending a second fact with the
// same path fails with ErrDuplicatePath.
func (p *Project) Append(fact FileFact) error {
	if p.paths == nil {
		p.paths = make(map[string]struct{})
	}

	if _, exists := p.paths[fact.Path]; exists {
		return ErrDuplicatePath
	}

	p.paths[fact.Path] = struct{}{}
	p.Files = append(p.Files, fact)

	return nil
}

// Len returns the number of appended FileFacts.
func (p *Project) Len() int {
	return len(p.Files)
}
