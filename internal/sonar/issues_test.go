package sonar

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bugSearchBody = `{
	"total": 2,
	"issues": [
		{
			"key": "AYg1",
			"rule": "go:S1234",
			"severity": "MAJOR",
			"type": "BUG",
			"component": "my_project:internal/app/app.go",
			"line": 42,
			"message": "Fix this nil dereference.",
			"status": "OPEN"
		},
		{
			"key": "AYg2",
			"rule": "go:S5678",
			"severity": "MINOR",
			"type": "BUG",
			"component": "my_project:cmd/main.go",
			"message": "Remove this unused variable.",
			"status": "CONFIRMED"
		}
	]
}`

func TestBugDetailsMapsIssues(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"componentKeys": r.URL.Query().Get("componentKeys"),
			"types":         r.URL.Query().Get("types"),
			"ps":            r.URL.Query().Get("ps"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bugSearchBody))
	}))

	report, err := client.BugDetails("my_project")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"componentKeys": "my_project",
		"types":         "BUG",
		"ps":            "100",
	}, gotQuery)

	assert.Equal(t, "my_project", report.ProjectKey)
	assert.Equal(t, 2, report.BugCount)
	require.Len(t, report.Bugs, 2)

	first := report.Bugs[0]
	assert.Equal(t, "AYg1", first.IssueKey)
	assert.Equal(t, "go:S1234", first.Rule)
	assert.Equal(t, "MAJOR", first.Severity)
	assert.Equal(t, "Fix this nil dereference.", first.Message)
	assert.Equal(t, "my_project:internal/app/app.go", first.ComponentPath)
	require.NotNil(t, first.Line)
	assert.Equal(t, 42, *first.Line)
	assert.Equal(t, "OPEN", first.Status)

	// line is optional upstream and stays absent when not reported
	assert.Equal(t, "AYg2", report.Bugs[1].IssueKey)
	assert.Nil(t, report.Bugs[1].Line)
}

func TestBugDetailsEmptyResult(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, `{"total": 0, "issues": []}`))

	report, err := client.BugDetails("my_project")

	require.NoError(t, err)
	assert.Equal(t, 0, report.BugCount)
	assert.Empty(t, report.Bugs)
}

func TestBugDetailsSchemaErrorOnMissingField(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		missingField string
	}{
		{
			name:         "missing key",
			body:         `{"issues": [{"rule": "go:S1", "severity": "MAJOR", "component": "p:f.go", "message": "m", "status": "OPEN"}]}`,
			missingField: "key",
		},
		{
			name:         "missing severity",
			body:         `{"issues": [{"key": "AYg1", "rule": "go:S1", "component": "p:f.go", "message": "m", "status": "OPEN"}]}`,
			missingField: "severity",
		},
		{
			name:         "missing status",
			body:         `{"issues": [{"key": "AYg1", "rule": "go:S1", "severity": "MAJOR", "component": "p:f.go", "message": "m"}]}`,
			missingField: "status",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, jsonHandler(t, tc.body))

			report, err := client.BugDetails("my_project")

			assert.Nil(t, report, "a malformed record must not yield a partial list")
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tc.missingField, schemaErr.Field)
		})
	}
}

const vulnSearchBody = `{
	"issues": [
		{
			"key": "VULN-1",
			"rule": "go:S2083",
			"severity": "CRITICAL",
			"type": "VULNERABILITY",
			"component": "my_project:internal/server/handler.go",
			"line": 10,
			"message": "Sanitize this path.",
			"status": "OPEN"
		}
	]
}`

const hotspotSearchBody = `{
	"hotspots": [
		{
			"key": "HOT-1",
			"ruleKey": "go:S4790",
			"vulnerabilityProbability": "HIGH",
			"component": "my_project:internal/crypto/hash.go",
			"line": 7,
			"message": "Make sure this weak hash is safe here.",
			"status": "TO_REVIEW"
		},
		{
			"key": "HOT-2",
			"ruleKey": "go:S2245",
			"vulnerabilityProbability": "MEDIUM",
			"component": "my_project:internal/token/token.go",
			"message": "Make sure this PRNG is safe here.",
			"status": "TO_REVIEW"
		}
	]
}`

func vulnerabilityUpstream(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(issueSearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(vulnSearchBody))
	})
	mux.HandleFunc(hotspotSearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hotspotSearchBody))
	})
	return mux
}

func TestVulnerabilityDetailsMergesBothSources(t *testing.T) {
	client := newTestClient(t, vulnerabilityUpstream(t))

	report, err := client.VulnerabilityDetails("my_project")

	require.NoError(t, err)
	assert.Equal(t, "my_project", report.ProjectKey)
	assert.Equal(t, 3, report.VulnerabilityCount)
	require.Len(t, report.Vulnerabilities, 3)

	// vulnerabilities first, then hotspots, each in upstream order
	vuln := report.Vulnerabilities[0]
	assert.Equal(t, "VULN-1", vuln.IssueKey)
	assert.Equal(t, "VULNERABILITY", vuln.Type)
	assert.Equal(t, "CRITICAL", vuln.Severity)

	hotspot := report.Vulnerabilities[1]
	assert.Equal(t, "HOT-1", hotspot.IssueKey)
	assert.Equal(t, TypeSecurityHotspot, hotspot.Type)
	assert.Equal(t, "go:S4790", hotspot.Rule)
	// the probability label is carried in the severity column unchanged
	assert.Equal(t, "HIGH", hotspot.Severity)
	require.NotNil(t, hotspot.Line)
	assert.Equal(t, 7, *hotspot.Line)

	assert.Equal(t, "HOT-2", report.Vulnerabilities[2].IssueKey)
	assert.Equal(t, "MEDIUM", report.Vulnerabilities[2].Severity)
	assert.Nil(t, report.Vulnerabilities[2].Line)
}

func TestVulnerabilityDetailsNoPartialResultOnHotspotFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(issueSearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(vulnSearchBody))
	})
	mux.HandleFunc(hotspotSearchPath, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})
	client := newTestClient(t, mux)

	report, err := client.VulnerabilityDetails("my_project")

	assert.Nil(t, report, "the merge is all-or-nothing")
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
}

func TestVulnerabilityDetailsSchemaErrorOnMalformedHotspot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(issueSearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issues": []}`))
	})
	mux.HandleFunc(hotspotSearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hotspots": [{"key": "HOT-1", "ruleKey": "go:S4790", "component": "p:f.go", "message": "m", "status": "TO_REVIEW"}]}`))
	})
	client := newTestClient(t, mux)

	report, err := client.VulnerabilityDetails("my_project")

	assert.Nil(t, report)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "vulnerabilityProbability", schemaErr.Field)
}

func TestVulnerabilityDetailsIsIdempotent(t *testing.T) {
	client := newTestClient(t, vulnerabilityUpstream(t))

	first, err := client.VulnerabilityDetails("my_project")
	require.NoError(t, err)
	second, err := client.VulnerabilityDetails("my_project")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
