package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
	"github.com/sierkje/letsorganize/src/pkg/preflight"
	"github.com/sierkje/letsorganize/src/pkg/scaffold"
)

func TestPreInstall(t *testing.T) {
	tests := []struct {
		name       string
		host       Host
		wantStatus preflight.Status
		wantErr    bool
	}{
		{"new enough", Host{Name: "Composer", Version: "2.7.1"}, preflight.Pass, false},
		{"too old", Host{Name: "Composer", Version: "1.0.0-beta2"}, preflight.Fail, true},
		{"dev build", Host{Name: "Composer", Version: "f3e2d1c0b9a8f3e2d1c0b9a8f3e2d1c0b9a8f3e2", BranchAlias: preflight.PlaceholderBranchAlias}, preflight.PassWithWarning, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &print.Recorder{}
			result, err := PreInstall(Event{Host: tt.host, IO: out}, Gate{Minimum: "1.0.0"})

			assert.Equal(t, tt.wantStatus, result.Status)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, preflight.IsIncompatible(err))
				require.Len(t, out.Errors, 1)
				assert.Contains(t, out.Errors[0], "Let's Organize requires Composer version 1.0.0 or higher")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPreInstallInvalidMinimum(t *testing.T) {
	_, err := PreInstall(Event{Host: Host{Version: "1.0.0"}, IO: &print.Recorder{}}, Gate{Minimum: "latest"})
	require.Error(t, err)
	assert.False(t, preflight.IsIncompatible(err))
}

func TestPostInstall(t *testing.T) {
	root := t.TempDir()
	t.Cleanup(func() {
		_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if info != nil && info.IsDir() {
				_ = os.Chmod(path, fs.PermDirShared)
			}
			return nil
		})
	})

	out := &print.Recorder{}
	result, err := PostInstall(Event{IO: out, FS: fs.OS{}}, Scaffold{Root: root, Layout: scaffold.DefaultLayout()})
	require.NoError(t, err)
	assert.Empty(t, result.Failures())
	assert.True(t, fs.Exists(filepath.Join(root, "web", "themes")))
	assert.Empty(t, out.Warnings)
}

// failingFS refuses every mutation.
type failingFS struct{ fs.OS }

func (failingFS) Exists(string) bool { return false }
func (failingFS) CreateDirectory(path string, _ os.FileMode) error {
	return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrPermission}
}
func (failingFS) SetPermissions(path string, _ os.FileMode) error {
	return &os.PathError{Op: "chmod", Path: path, Err: os.ErrPermission}
}

func TestPostInstallFailuresAreReportedNotFatal(t *testing.T) {
	out := &print.Recorder{}
	result, err := PostInstall(Event{IO: out, FS: failingFS{}}, Scaffold{Root: "/srv/site", Layout: scaffold.DefaultLayout()})

	require.NoError(t, err)
	assert.Len(t, result.Failures(), 10, "site folder, lock and eight required folders")
	assert.Len(t, out.Errors, 10)
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "10 scaffolding step(s) failed, continuing", out.Warnings[0])
}

func TestPostInstallStrict(t *testing.T) {
	out := &print.Recorder{}
	result, err := PostInstall(Event{IO: out, FS: failingFS{}}, Scaffold{Root: "/srv/site", Layout: scaffold.DefaultLayout(), Strict: true})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Contains(t, err.Error(), "post-install scaffolding failed")
	assert.Empty(t, out.Warnings)
}

func TestPostInstallInvalidLayout(t *testing.T) {
	layout := scaffold.DefaultLayout()
	layout.Marker = ""

	_, err := PostInstall(Event{IO: &print.Recorder{}, FS: fs.OS{}}, Scaffold{Root: "/srv/site", Layout: layout})
	assert.Error(t, err)
}

func TestPostInstallNegativeRetries(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, err = PostInstall(Event{IO: &print.Recorder{}, FS: failingFS{}}, Scaffold{
			Root:    "/srv/site",
			Layout:  scaffold.DefaultLayout(),
			Options: scaffold.Options{Retries: -1},
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries must not be negative")
}
