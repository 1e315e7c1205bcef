package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddInfo("blank_text", "source is blank", "", "")
	d.AddWarning("unaligned_token", "no partner", "seg-1", "quick")
	d.AddError("invalid_policy", "bad gap", "", "max_gap_size")

	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Equal(t, "max_gap_size: [invalid_policy] bad gap", d.Error().Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	assert.Equal(t, "[seg-1] quick: [unaligned_token] no partner", all[1].String())
	assert.Equal(t, "[blank_text] source is blank", all[2].String())
}

func TestDiagnostics_EmptyAll(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.Empty(t, d.All())

	d.AddWarning("loose_similarity", "threshold is low", "", "")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error(), "warnings alone are not an error")
}

func TestSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
