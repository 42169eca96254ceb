package fs

import (
	"github.com/kirsle/configdir"
)

const configFolderName = "letsorganize"

// ConfigDir returns the directory of the user's letsorganize configuration. It is
// not created here: a missing directory just means there is no user file.
func ConfigDir() string {
	return configdir.LocalConfig(configFolderName)
}
