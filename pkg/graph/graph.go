// Package graph builds a project-wide module dependency graph by reading
// entry files, extracting their import/export facts, and following each
// import source until the reachable file set is exhausted.
//
// Import sources are treated as literal file paths relative to the
// process's working directory. There is no module-resolution algorithm:
// no extension inference, no package-manifest lookup, no node_modules
// search. Paths are compared by literal string equality.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/depscan/depscan/pkg/analyzer"
	"github.com/depscan/depscan/pkg/modfacts"
)

// ErrFileTooLarge indicates a file exceeded the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// Analyzer extracts one file's facts from its source text.
type Analyzer interface {
	Analyze(ctx context.Context, path string, source []byte) (modfacts.FileFact, []analyzer.Diagnostic, error)
}

// Options tune traversal behavior.
type Options struct {
	// SkipUnknownDialects downgrades undeterminable-dialect errors to a
	// logged warning; the file is skipped and the traversal continues.
	SkipUnknownDialects bool

	// MaxFileSize is the largest file, in bytes, the builder will read.
	// Zero means no limit.
	MaxFileSize int64
}

// Builder expands entry files into a Project.
type Builder struct {
	fs       afero.Fs
	analyzer Analyzer
	logger   *slog.Logger
	opts     Options
}

// NewBuilder creates a Builder reading from fs. A nil fs uses the real
// filesystem; a nil logger discards nothing and defaults to slog's.
func NewBuilder(fs afero.Fs, az Analyzer, logger *slog.Logger, opts Options) *Builder {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{fs: fs, analyzer: az, logger: logger, opts: opts}
}

// frame is one file whose imports are still being expanded. A file's fact
// is appended to the Project only after every import listed in it has been
// fully expanded, so leaves appear before the files that import them.
type frame struct {
	fact    modfacts.FileFact
	imports []string
	next    int
}

// Build traverses the graph reachable from entries and returns the
// resulting Project. Missing files produce a notice and are skipped; read
// failures and analysis failures abort the build.
//
// Cycle safety is explicit: a path is scheduled at most once, tracked
// through disjoint in-progress and completed states. A file participating
// in an import cycle is appended once, with its facts intact.
func (b *Builder) Build(ctx context.Context, entries []string) (*modfacts.Project, error) {
	project := modfacts.NewProject()

	inProgress := make(map[string]struct{})
	skipped := make(map[string]struct{})

	var stack []*frame

	for _, entry := range entries {
		err := b.open(ctx, entry, project, inProgress, skipped, &stack)
		if err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			top := stack[len(stack)-1]

			if top.next < len(top.imports) {
				source := top.imports[top.next]
				top.next++

				err = b.open(ctx, source, project, inProgress, skipped, &stack)
				if err != nil {
					return nil, err
				}

				continue
			}

			// Every import expanded: the file is complete.
			stack = stack[:len(stack)-1]
			delete(inProgress, top.fact.Path)

			err = project.Append(top.fact)
			if err != nil {
				return nil, err
			}
		}
	}

	return project, nil
}

// open schedules one path: already-seen and missing paths are skipped,
// otherwise the file is read, analyzed, and pushed onto the work stack.
func (b *Builder) open(
	ctx context.Context,
	path string,
	project *modfacts.Project,
	inProgress, skipped map[string]struct{},
	stack *[]*frame,
) error {
	if project.Contains(path) {
		return nil
	}

	if _, busy := inProgress[path]; busy {
		return nil
	}

	if _, skip := skipped[path]; skip {
		return nil
	}

	info, statErr := b.fs.Stat(path)
	if statErr != nil {
		// Unresolvable sources (bare package names, typos) are expected;
		// they are reported and left out of the graph.
		b.logger.Info("file not found", slog.String("path", path))

		return nil
	}

	if b.opts.MaxFileSize > 0 && info.Size() > b.opts.MaxFileSize {
		return fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, path, info.Size())
	}

	source, readErr := afero.ReadFile(b.fs, path)
	if readErr != nil {
		return fmt.Errorf("read %s: %w", path, readErr)
	}

	fact, diags, analyzeErr := b.analyzer.Analyze(ctx, path, source)
	if analyzeErr != nil {
		if b.opts.SkipUnknownDialects && errors.Is(analyzeErr, analyzer.ErrUnsupportedDialect) {
			b.logger.Warn("skipping file", slog.String("path", path), slog.Any("error", analyzeErr))

			skipped[path] = struct{}{}

			return nil
		}

		return analyzeErr
	}

	for _, diag := range diags {
		b.logger.Warn("parse issue", slog.String("diagnostic", diag.String()))
	}

	inProgress[path] = struct{}{}

	*stack = append(*stack, &frame{
		fact:    fact,
		imports: fact.ImportSources(),
	})

	return nil
}
