package modfacts_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscan/depscan/pkg/modfacts"
)

func TestValidateDocument_AcceptsSerializedProject(t *testing.T) {
	t.Parallel()

	builder := modfacts.NewRecordBuilder("entry.ts")
	builder.OpenImport("./util.ts")
	require.NoError(t, builder.AddSpecifier("helper", "helper"))
	builder.AddExport("main")
	require.NoError(t, builder.SetDefaultExport("main"))

	project := modfacts.NewProject()
	require.NoError(t, project.Append(builder.Fact()))

	data, err := json.Marshal(project)
	require.NoError(t, err)

	violations, err := modfacts.ValidateDocument(data)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateDocument_ReportsMissingFields(t *testing.T) {
	t.Parallel()

	violations, err := modfacts.ValidateDocument([]byte(`{"files":[{"path":"a.ts"}]}`))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestValidateDocument_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	violations, err := modfacts.ValidateDocument([]byte(`{"files":[],"extra":1}`))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}
