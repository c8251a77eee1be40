// Package file stores the user's config and history as small text files
// under one base directory.
package file

import "path/filepath"

const (
	dirPerm  = 0o755
	filePerm = 0o644

	configDirName   = "config"
	configFileName  = "qb.cfg"
	historyDirName  = "user"
	historyFileName = "history.qb"
)

// ConfigPath returns the config file location under baseDir.
func ConfigPath(baseDir string) string {
	return filepath.Join(baseDir, configDirName, configFileName)
}

// HistoryPath returns the history log location under baseDir.
func HistoryPath(baseDir string) string {
	return filepath.Join(baseDir, historyDirName, historyFileName)
}
