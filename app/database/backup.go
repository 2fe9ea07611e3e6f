package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Backup copies the whole store file into the backups directory and returns
// the path of the copy. Backups are full point-in-time copies, timestamped
// by the copy's wall-clock time.
func Backup(dataDir string) (string, error) {
	src := DBPath(dataDir)

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer in.Close()

	ts := time.Now().Format("20060102_150405")
	dest := filepath.Join(BackupsDir(dataDir), fmt.Sprintf("salon_backup_%s.db", ts))

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	return dest, nil
}
