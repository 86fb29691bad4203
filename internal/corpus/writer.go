// internal/corpus/writer.go
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile serializes one corpus file into dir, creating dir if needed. The
// output uses the same schema and indentation as collected run files, so a
// reconciled directory is loadable as an ordinary experiment run.
func WriteFile(dir string, file RunFile) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(file.Records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding corpus file %s: %w", file.Name, err)
	}
	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing corpus file %s: %w", path, err)
	}
	return nil
}
