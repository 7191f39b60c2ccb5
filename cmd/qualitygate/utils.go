package qualitygate

import (
	"encoding/json"
	"fmt"

	"github.com/quality-insights/quality-insights/pkg/shared/files"
)

// emitReport prints the result as indented JSON, or writes it to outputPath
// when one was given.
func emitReport(result interface{}, outputPath string) error {
	if outputPath != "" {
		return files.WriteReport(outputPath, result)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
