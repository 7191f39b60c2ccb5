package bugs

import (
	"encoding/json"
	"fmt"

	"github.com/quality-insights/quality-insights/pkg/shared/files"
)

// emitReport prints the report as indented JSON, or writes it to outputPath
// when one was given.
func emitReport(report interface{}, outputPath string) error {
	if outputPath != "" {
		return files.WriteReport(outputPath, report)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
