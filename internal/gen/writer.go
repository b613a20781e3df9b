package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files below outputDir and returns the
// written paths. Filenames may contain subdirectories; missing directories
// are created.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		if filepath.IsAbs(file.Filename) || !filepath.IsLocal(file.Filename) {
			return paths, fmt.Errorf("writing file %s: path escapes output directory", file.Filename)
		}

		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return paths, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return paths, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		paths = append(paths, outputPath)
	}

	return paths, nil
}
