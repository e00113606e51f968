package scanner

import (
	"os"
	"path/filepath"
)

// FileInfo describes one file found during a scan.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a directory tree collecting files with the configured
// extensions.
type Scanner struct {
	rootDir    string
	extensions []string
}

func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan returns every matching file under the root directory.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if s.isTargetFile(path) {
			files = append(files, FileInfo{Path: path, Size: info.Size()})
		}
		return nil
	})

	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range s.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
