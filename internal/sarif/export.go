package sarif

import (
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/quality-insights/quality-insights/internal/sonar"
)

const (
	toolName       = "quality-insights"
	informationURI = "https://github.com/quality-insights/quality-insights"
)

// FromVulnerabilityReport converts a merged vulnerability report into a
// single-run SARIF 2.1.0 report. Finding order is preserved.
func FromVulnerabilityReport(report *sonar.VulnerabilityReport) (*sarif.Report, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}

	run := sarif.NewRunWithInformationURI(toolName, informationURI)
	for _, finding := range report.Vulnerabilities {
		run.AddRule(finding.Rule).
			WithDescription(finding.Message)

		location := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(finding.ComponentPath))
		if finding.Line != nil {
			location.WithRegion(sarif.NewSimpleRegion(*finding.Line, *finding.Line))
		}

		run.CreateResultForRule(finding.Rule).
			WithLevel(levelForSeverity(finding.Severity)).
			WithMessage(sarif.NewTextMessage(finding.Message)).
			WithLocations([]*sarif.Location{
				sarif.NewLocationWithPhysicalLocation(location),
			})
	}

	doc.AddRun(run)
	return doc, nil
}

// WriteVulnerabilityReport writes the report to w as pretty-printed SARIF.
func WriteVulnerabilityReport(w io.Writer, report *sonar.VulnerabilityReport) error {
	doc, err := FromVulnerabilityReport(report)
	if err != nil {
		return err
	}
	return doc.PrettyWrite(w)
}

// levelForSeverity maps Sonar severities, and the probability labels carried
// by hotspot findings, to SARIF result levels.
func levelForSeverity(severity string) string {
	switch severity {
	case "BLOCKER", "CRITICAL", "HIGH":
		return "error"
	case "MAJOR", "MEDIUM":
		return "warning"
	case "MINOR", "LOW", "INFO":
		return "note"
	default:
		return "warning"
	}
}
