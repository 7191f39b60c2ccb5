package vulnerabilities

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quality-insights/quality-insights/internal/sarif"
	"github.com/quality-insights/quality-insights/internal/sonar"
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

// emitSarifReport writes the findings as SARIF to outputPath, or to stdout
// when no path was given.
func emitSarifReport(report *sonar.VulnerabilityReport, outputPath string) error {
	if outputPath == "" {
		return sarif.WriteVulnerabilityReport(os.Stdout, report)
	}

	expanded, err := files.ExpandPath(outputPath)
	if err != nil {
		return err
	}
	if err := files.ValidateOutputPath(expanded); err != nil {
		return err
	}

	f, err := os.Create(expanded)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", expanded, err)
	}
	defer f.Close()

	return sarif.WriteVulnerabilityReport(f, report)
}
