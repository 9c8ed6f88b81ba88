package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscan/depscan/pkg/analyzer"
)

func TestDetectDialect_ByExtension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want analyzer.Dialect
	}{
		{path: "src/app.js", want: analyzer.DialectJavaScript},
		{path: "src/App.jsx", want: analyzer.DialectJavaScript},
		{path: "src/mod.mjs", want: analyzer.DialectJavaScript},
		{path: "src/legacy.cjs", want: analyzer.DialectJavaScript},
		{path: "src/index.ts", want: analyzer.DialectTypeScript},
		{path: "src/index.mts", want: analyzer.DialectTypeScript},
		{path: "src/index.cts", want: analyzer.DialectTypeScript},
		{path: "src/View.tsx", want: analyzer.DialectTSX},
		{path: "SRC/UPPER.TS", want: analyzer.DialectTypeScript},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			got, err := analyzer.DetectDialect(tc.path, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectDialect_UnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := analyzer.DetectDialect("notes.txt", []byte("plain text, nothing else"))
	require.Error(t, err)
	assert.ErrorIs(t, err, analyzer.ErrUnsupportedDialect)
}
