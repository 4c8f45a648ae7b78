package site

import (
	"os"
	"path/filepath"

	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
)

// OutputFilename is the name of the generated page inside the output directory.
const OutputFilename = "index.html"

// WriteOutput writes the rendered document into outputDir, creating the
// directory if needed, and returns the path of the written file.
func WriteOutput(outputDir, document string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", siteerrors.OutputWriteFailed(outputDir, err)
	}
	path := filepath.Join(outputDir, OutputFilename)
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return "", siteerrors.OutputWriteFailed(path, err)
	}
	return path, nil
}
