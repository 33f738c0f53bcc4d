package batch

import (
	"encoding/json"
	"os"
)

// WriteSummary writes the per-job results next to the rendered output so
// a batch run leaves a machine-readable record of what succeeded.
func WriteSummary(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
