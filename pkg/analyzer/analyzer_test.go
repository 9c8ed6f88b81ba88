package analyzer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscan/depscan/pkg/analyzer"
	"github.com/depscan/depscan/pkg/modfacts"
)

func analyze(t *testing.T, path, source string) modfacts.FileFact {
	t.Helper()

	fact, diags, err := analyzer.New().Analyze(context.Background(), path, []byte(source))
	require.NoError(t, err)
	assert.Empty(t, diags)

	return fact
}

func TestAnalyze_ImportForms(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "entry.ts", `
import A, { b as c, d } from "m";
import * as ns from "n";
`)

	require.Len(t, fact.Imports, 2)

	assert.Equal(t, "m", fact.Imports[0].Source)
	assert.Equal(t, []modfacts.Specifier{
		{SourceName: "default", LocalName: "A"},
		{SourceName: "b", LocalName: "c"},
		{SourceName: "d", LocalName: "d"},
	}, fact.Imports[0].Specifiers)

	assert.Equal(t, "n", fact.Imports[1].Source)
	assert.Equal(t, []modfacts.Specifier{
		{SourceName: "*", LocalName: "ns"},
	}, fact.Imports[1].Specifiers)
}

func TestAnalyze_SideEffectImport(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "entry.js", `import "./setup.js";`)

	require.Len(t, fact.Imports, 1)
	assert.Equal(t, "./setup.js", fact.Imports[0].Source)
	assert.Empty(t, fact.Imports[0].Specifiers)
}

func TestAnalyze_QuoteStyles(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "entry.js", `
import a from "dq";
import b from 'sq';
`)

	require.Len(t, fact.Imports, 2)
	assert.Equal(t, "dq", fact.Imports[0].Source)
	assert.Equal(t, "sq", fact.Imports[1].Source)
}

func TestAnalyze_NamedExports(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "lib.ts", `
export const one = 1, two = 2;
export function run() {}
export class Engine {}
export interface Shape {}
export type Alias = string;
export enum Mode { A, B }
const hidden = 3;
export { hidden as visible };
`)

	assert.Equal(t, []string{"one", "two", "run", "Engine", "Shape", "Alias", "Mode", "visible"}, fact.Exports)
	assert.Nil(t, fact.DefaultExport)
}

func TestAnalyze_DestructuredExport(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "lib.js", `export const { a, b } = pair; export const [x, y] = coords;`)

	assert.Equal(t, []string{"a", "b", "x", "y"}, fact.Exports)
}

func TestAnalyze_DefaultExportForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		source string
		want   string
	}{
		{name: "named function", source: `export default function main() {}`, want: "main"},
		{name: "named class", source: `export default class App {}`, want: "App"},
		{name: "identifier", source: `const impl = 1; export default impl;`, want: "impl"},
		{name: "anonymous value", source: `export default { key: 1 };`, want: "default"},
		{name: "clause form", source: `const impl = 1; export { impl as default };`, want: "impl"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fact := analyze(t, "mod.js", tc.source)
			require.NotNil(t, fact.DefaultExport)
			assert.Equal(t, tc.want, *fact.DefaultExport)
		})
	}
}

func TestAnalyze_DuplicateDefaultExport(t *testing.T) {
	t.Parallel()

	source := `
const a = 1;
const b = 2;
export { a as default };
export { b as default };
`

	_, _, err := analyzer.New().Analyze(context.Background(), "dup.js", []byte(source))
	require.Error(t, err)
	assert.ErrorIs(t, err, modfacts.ErrDuplicateDefaultExport)
}

func TestAnalyze_ReExports(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "barrel.ts", `
export { helper, other as renamed } from "./util.ts";
export * from "./star.ts";
export * as group from "./group.ts";
`)

	require.Len(t, fact.Imports, 3)
	assert.Equal(t, "./util.ts", fact.Imports[0].Source)
	assert.Equal(t, "./star.ts", fact.Imports[1].Source)
	assert.Equal(t, "./group.ts", fact.Imports[2].Source)

	assert.Equal(t, []string{"helper", "renamed", "group"}, fact.Exports)
}

func TestAnalyze_DeclarationOrderPreserved(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "ordered.js", `
import "./a.js";
export const mid = 1;
import "./b.js";
`)

	require.Len(t, fact.Imports, 2)
	assert.Equal(t, "./a.js", fact.Imports[0].Source)
	assert.Equal(t, "./b.js", fact.Imports[1].Source)
	assert.Equal(t, []string{"mid"}, fact.Exports)
}

func TestAnalyze_DynamicImportIgnored(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "lazy.js", `
async function load() {
	const mod = await import("./heavy.js");
	return mod;
}
const dep = require("./cjs.js");
`)

	assert.Empty(t, fact.Imports)
	assert.Empty(t, fact.Exports)
	assert.Nil(t, fact.DefaultExport)
}

func TestAnalyze_TSXComponent(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "View.tsx", `
import React from "react";

export default function View() {
	return <div>hi</div>;
}
`)

	require.Len(t, fact.Imports, 1)
	assert.Equal(t, "react", fact.Imports[0].Source)
	require.NotNil(t, fact.DefaultExport)
	assert.Equal(t, "View", *fact.DefaultExport)
}

func TestAnalyze_MalformedSourceYieldsDiagnostics(t *testing.T) {
	t.Parallel()

	source := `import { broken from "./x.js";
function ok() {}`

	fact, diags, err := analyzer.New().Analyze(context.Background(), "broken.js", []byte(source))
	require.NoError(t, err)
	assert.NotEmpty(t, diags)
	assert.Equal(t, "broken.js", fact.Path)
}

func TestAnalyze_EmptyFile(t *testing.T) {
	t.Parallel()

	fact := analyze(t, "empty.ts", "")

	assert.Equal(t, "empty.ts", fact.Path)
	assert.Empty(t, fact.Imports)
	assert.Empty(t, fact.Exports)
	assert.Nil(t, fact.DefaultExport)
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	d := analyzer.Diagnostic{Path: "a.js", Message: "missing }", Line: 4, Col: 2}
	assert.Equal(t, "a.js:5:3: missing }", d.String())
}
