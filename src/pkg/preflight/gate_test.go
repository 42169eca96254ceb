package preflight

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
)

const revision = "0123456789abcdef0123456789ABCDEF01234567"

func TestGateCheck(t *testing.T) {
	tests := []struct {
		name        string
		reported    string
		branchAlias string
		wantStatus  Status
		wantVersion string
		wantWarn    bool
		wantErro    bool
	}{
		{"below minimum", "0.9.9", "", Fail, "0.9.9", false, true},
		{"equal to minimum", "1.0.0", "", Pass, "1.0.0", false, false},
		{"above minimum", "1.0.1", "", Pass, "1.0.1", false, false},
		{"major above", "2.7.2", "", Pass, "2.7.2", false, false},
		{"numeric not lexicographic", "1.10.0", "", Pass, "1.10.0", false, false},
		{"prerelease of minimum", "1.0.0-alpha11", "", Fail, "1.0.0-alpha11", false, true},
		{"placeholder version", PlaceholderVersion, "", PassWithWarning, PlaceholderVersion, true, false},
		{"placeholder alias", PlaceholderBranchAlias, "0.1.0", PassWithWarning, PlaceholderBranchAlias, true, false},
		{"revision uses alias", revision, "1.2.0", Pass, "1.2.0", false, false},
		{"revision old alias", revision, "0.5.0", Fail, "0.5.0", false, true},
		{"revision placeholder alias", revision, PlaceholderBranchAlias, PassWithWarning, PlaceholderBranchAlias, true, false},
		{"revision without alias", revision, "", Fail, "", false, true},
		{"empty version", "", "9.9.9", Fail, "", false, true},
		{"garbage version", "dev-main", "", Fail, "dev-main", false, true},
		{"39 hex chars is not a revision", revision[:39], "9.9.9", Fail, revision[:39], false, true},
	}

	gate, err := NewGate("1.0.0", "", "")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &print.Recorder{}
			result := gate.Check(tt.reported, tt.branchAlias, out)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantVersion, result.Version)
			assert.Equal(t, tt.reported, result.Reported)
			assert.Equal(t, "1.0.0", result.Minimum)
			assert.Equal(t, tt.wantWarn, len(out.Warnings) == 1, "warnings: %v", out.Warnings)
			assert.Equal(t, tt.wantErro, len(out.Errors) == 1, "errors: %v", out.Errors)

			if tt.wantStatus == Fail {
				require.Error(t, result.Err)
				assert.True(t, IsIncompatible(result.Err))
			} else {
				assert.NoError(t, result.Err)
			}
		})
	}
}

func TestGateRevisionNeverCompared(t *testing.T) {
	gate, err := NewGate("1.0.0", "", "")
	require.NoError(t, err)

	// the revision itself would not parse, so a pass proves the alias was used
	result := gate.Check(revision, "1.0.0", &print.Recorder{})
	assert.Equal(t, Pass, result.Status)
	assert.NotEqual(t, revision, result.Version)
}

func TestGatePlaceholderIgnoresMinimum(t *testing.T) {
	gate, err := NewGate("99.0.0", "", "")
	require.NoError(t, err)

	out := &print.Recorder{}
	result := gate.Check(PlaceholderVersion, "", out)

	assert.Equal(t, PassWithWarning, result.Status)
	assert.Empty(t, out.Errors)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "development version of Composer")
}

func TestGateDiagnostics(t *testing.T) {
	gate, err := NewGate("2.0.0", "pkgtool", "Acme")
	require.NoError(t, err)

	out := &print.Recorder{}
	result := gate.Check("1.9.3", "", out)

	require.Equal(t, Fail, result.Status)
	require.Len(t, out.Errors, 1)
	assert.Equal(t,
		"Acme requires pkgtool version 2.0.0 or higher, found 1.9.3. Please update your pkgtool before continuing.",
		out.Errors[0])
	assert.Equal(t, "pkgtool version 1.9.3 is older than the required 2.0.0", result.Err.Error())
}

func TestNewGateInvalidMinimum(t *testing.T) {
	_, err := NewGate("not-a-version", "", "")
	assert.Error(t, err)
}

func TestCheckToolVersion(t *testing.T) {
	result, err := CheckToolVersion("0.9.9", "", "1.0.0", &print.Recorder{})
	require.NoError(t, err)
	assert.Equal(t, Fail, result.Status)

	_, err = CheckToolVersion("1.0.0", "", "", &print.Recorder{})
	assert.Error(t, err)
}

func TestIsIncompatible(t *testing.T) {
	inner := &IncompatibleError{Tool: "Composer", Version: "0.1.0", Minimum: "1.0.0"}
	assert.True(t, IsIncompatible(inner))
	assert.True(t, IsIncompatible(errors.Wrap(inner, "pre-install")))
	assert.False(t, IsIncompatible(errors.New("other")))
	assert.False(t, IsIncompatible(nil))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "pass-with-warning", PassWithWarning.String())
	assert.Equal(t, "fail", Fail.String())
	assert.Equal(t, "unknown", Status(42).String())
}
