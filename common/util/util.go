package util

import (
	"os"
	"path/filepath"
	"strings"
)

const outputSuffix = "-print"

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DoesParentDirectoryExist tells if the directory a path would be
// created in exists.
func DoesParentDirectoryExist(path string) bool {
	return IsDirectory(filepath.Dir(filepath.Clean(path)))
}

func MakeDirectoriesIfNotExist(dir string) error {
	if IsDirectory(dir) {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// OutputFileName turns "photo.jpg" into "photo-print.jpg".
func OutputFileName(inputPath string) string {
	name := filepath.Base(inputPath)
	extension := filepath.Ext(name)
	return strings.TrimSuffix(name, extension) + outputSuffix + extension
}
