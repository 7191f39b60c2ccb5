package sonar

// TypeSecurityHotspot tags findings that come from the hotspot search API
// rather than the issue search API.
const TypeSecurityHotspot = "SECURITY_HOTSPOT"

// Issue is a single defect record (bug or vulnerability) normalized from
// the issue search API.
type Issue struct {
	IssueKey      string `json:"issueKey"`
	Rule          string `json:"rule"`
	Severity      string `json:"severity"`
	Message       string `json:"message"`
	ComponentPath string `json:"componentPath"`
	Line          *int   `json:"line,omitempty"`
	Status        string `json:"status"`
}

// Finding is an Issue tagged with its upstream type. Vulnerability findings
// carry the type reported by the issue search API; hotspot findings are
// tagged with TypeSecurityHotspot.
type Finding struct {
	Issue
	Type string `json:"type"`
}

// BugReport holds all BUG issues returned for a project, in upstream order.
type BugReport struct {
	ProjectKey string  `json:"projectKey"`
	BugCount   int     `json:"bugCount"`
	Bugs       []Issue `json:"bugs"`
}

// VulnerabilityReport merges vulnerability issues and security hotspots
// into one sequence, vulnerabilities first.
type VulnerabilityReport struct {
	ProjectKey         string    `json:"projectKey"`
	VulnerabilityCount int       `json:"vulnerabilityCount"`
	Vulnerabilities    []Finding `json:"vulnerabilities"`
}

// QualityGateResult carries the upstream quality gate verdict for a project.
// Status is passed through verbatim; no enumeration is enforced.
type QualityGateResult struct {
	ProjectKey string `json:"projectKey"`
	Status     string `json:"status"`
}

// issueRecord is the raw shape of one entry from /api/issues/search.
type issueRecord struct {
	Key       string `json:"key"`
	Rule      string `json:"rule"`
	Severity  string `json:"severity"`
	Type      string `json:"type"`
	Component string `json:"component"`
	Line      *int   `json:"line"`
	Message   string `json:"message"`
	Status    string `json:"status"`
}

// normalize validates the record's required fields and maps it to an Issue.
// A missing field aborts the whole operation; records are never skipped.
func (r issueRecord) normalize() (Issue, error) {
	required := []struct {
		name  string
		value string
	}{
		{"key", r.Key},
		{"rule", r.Rule},
		{"severity", r.Severity},
		{"message", r.Message},
		{"component", r.Component},
		{"status", r.Status},
	}
	for _, f := range required {
		if f.value == "" {
			return Issue{}, &SchemaError{Field: f.name}
		}
	}
	return Issue{
		IssueKey:      r.Key,
		Rule:          r.Rule,
		Severity:      r.Severity,
		Message:       r.Message,
		ComponentPath: r.Component,
		Line:          r.Line,
		Status:        r.Status,
	}, nil
}

// hotspotRecord is the raw shape of one entry from /api/hotspots/search.
type hotspotRecord struct {
	Key                      string `json:"key"`
	RuleKey                  string `json:"ruleKey"`
	VulnerabilityProbability string `json:"vulnerabilityProbability"`
	Component                string `json:"component"`
	Line                     *int   `json:"line"`
	Message                  string `json:"message"`
	Status                   string `json:"status"`
}

// normalize maps a hotspot into the finding family. Upstream reports a
// probability label instead of a severity for hotspots; the label is carried
// in the severity column unchanged.
func (r hotspotRecord) normalize() (Finding, error) {
	required := []struct {
		name  string
		value string
	}{
		{"key", r.Key},
		{"ruleKey", r.RuleKey},
		{"vulnerabilityProbability", r.VulnerabilityProbability},
		{"message", r.Message},
		{"component", r.Component},
		{"status", r.Status},
	}
	for _, f := range required {
		if f.value == "" {
			return Finding{}, &SchemaError{Field: f.name}
		}
	}
	return Finding{
		Issue: Issue{
			IssueKey:      r.Key,
			Rule:          r.RuleKey,
			Severity:      r.VulnerabilityProbability,
			Message:       r.Message,
			ComponentPath: r.Component,
			Line:          r.Line,
			Status:        r.Status,
		},
		Type: TypeSecurityHotspot,
	}, nil
}

// issueSearchResponse is the envelope returned by /api/issues/search.
type issueSearchResponse struct {
	Issues []issueRecord `json:"issues"`
}

// hotspotSearchResponse is the envelope returned by /api/hotspots/search.
type hotspotSearchResponse struct {
	Hotspots []hotspotRecord `json:"hotspots"`
}

// qualityGateResponse is the envelope returned by
// /api/qualitygates/project_status.
type qualityGateResponse struct {
	ProjectStatus *struct {
		Status string `json:"status"`
	} `json:"projectStatus"`
}
