package translations

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const defaultFileMode os.FileMode = 0o644

// writeFileAtomic replaces targetPath with data through a sibling temp file so a failed
// write never leaves a truncated translation file behind.
func writeFileAtomic(fs afero.Fs, targetPath string, data []byte, mode os.FileMode) error {
	tempPath, err := freeSiblingPath(fs, targetPath, ".tmp")
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fs, tempPath, data, mode); err != nil {
		return discardTemp(fs, tempPath, err)
	}

	exists, err := afero.Exists(fs, targetPath)
	if err != nil {
		return discardTemp(fs, tempPath, err)
	}
	if !exists {
		if err := fs.Rename(tempPath, targetPath); err != nil {
			return discardTemp(fs, tempPath, err)
		}
		return nil
	}

	return swapIntoPlace(fs, tempPath, targetPath)
}

func freeSiblingPath(fs afero.Fs, targetPath string, suffix string) (string, error) {
	base := targetPath + ".greetsync" + suffix

	candidate := base
	for i := 0; i < 100; i++ {
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s.%d", base, i+1)
	}

	return "", fmt.Errorf("cannot allocate a free sibling path for %s", targetPath)
}

func removeIfExists(fs afero.Fs, path string) error {
	err := fs.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func discardTemp(fs afero.Fs, tempPath string, cause error) error {
	if err := removeIfExists(fs, tempPath); err != nil {
		return errors.Join(cause, fmt.Errorf("failed to remove temp file %s: %w", tempPath, err))
	}
	return cause
}

func swapIntoPlace(fs afero.Fs, tempPath string, targetPath string) error {
	// Overwrite-rename works on most Unix filesystems and never leaves the target missing.
	if err := fs.Rename(tempPath, targetPath); err == nil {
		return nil
	}

	backupPath, err := freeSiblingPath(fs, targetPath, ".bak")
	if err != nil {
		return discardTemp(fs, tempPath, err)
	}

	if err := fs.Rename(targetPath, backupPath); err != nil {
		return discardTemp(fs, tempPath, err)
	}

	if err := fs.Rename(tempPath, targetPath); err != nil {
		return rollback(fs, tempPath, targetPath, backupPath, err)
	}

	if err := removeIfExists(fs, backupPath); err != nil {
		return fmt.Errorf("failed to remove backup file %s: %w", backupPath, err)
	}
	return nil
}

func rollback(fs afero.Fs, tempPath string, targetPath string, backupPath string, cause error) error {
	err := discardTemp(fs, tempPath, cause)
	if restoreErr := fs.Rename(backupPath, targetPath); restoreErr != nil {
		err = errors.Join(err, fmt.Errorf("failed to restore backup %s: %w", backupPath, restoreErr))
	}
	return err
}
