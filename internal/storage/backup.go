package storage

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pennywise-finance/pennywise/internal/common"
)

const backupsDir = "backups"

// CreateBackup zips the ledger files under dataDir into
// dataDir/backups/backup_<timestamp>.zip and returns the archive path.
// Subdirectories (including earlier backups) are not included.
func CreateBackup(dataDir string, now time.Time) (string, error) {
	if err := validateString(dataDir, "dataDir"); err != nil {
		return "", err
	}
	dir := filepath.Join(dataDir, backupsDir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("backup_%s.zip", now.Format("20060102150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create backup archive: %w", err)
	}

	zw := zip.NewWriter(f)
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to read ledger directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := addFileToZip(zw, filepath.Join(dataDir, entry.Name()), entry.Name()); err != nil {
			_ = f.Close()
			return "", err
		}
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to finalize backup archive: %w", err)
	}
	return path, f.Close()
}

// ListBackups returns the available backup archive paths, newest first.
func ListBackups(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dataDir, backupsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "backup_") && strings.HasSuffix(name, ".zip") {
			backups = append(backups, filepath.Join(dataDir, backupsDir, name))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// RestoreBackup replaces the ledger files under dataDir with the
// contents of the given archive.
func RestoreBackup(archivePath, dataDir string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open backup archive: %w", err)
	}
	defer func() { _ = zr.Close() }()

	if len(zr.File) == 0 {
		return common.NewUserError("backup archive is empty", common.ErrNoBackups)
	}

	for _, zf := range zr.File {
		// Archives only ever contain flat file names; reject anything
		// that would escape the ledger directory.
		if zf.Name != filepath.Base(zf.Name) {
			return fmt.Errorf("backup archive contains unsafe path %q", zf.Name)
		}
		if err := extractFile(zf, filepath.Join(dataDir, zf.Name)); err != nil {
			return err
		}
	}
	return nil
}

func addFileToZip(zw *zip.Writer, srcPath, name string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open %s for backup: %w", name, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s to backup: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy %s into backup: %w", name, err)
	}
	return nil
}

func extractFile(zf *zip.File, dstPath string) error {
	src, err := zf.Open()
	if err != nil {
		return fmt.Errorf("failed to read %s from backup: %w", zf.Name, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to restore %s: %w", zf.Name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to restore %s: %w", zf.Name, err)
	}
	return dst.Close()
}
