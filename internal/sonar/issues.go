package sonar

// BugDetails fetches the project's BUG issues, one page of up to 100 results
// in upstream response order.
func (c *Client) BugDetails(projectKey string) (*BugReport, error) {
	c.logger.Debug("fetching bug issues", "project", projectKey)

	var resp issueSearchResponse
	err := c.get(issueSearchPath, map[string]string{
		"componentKeys": projectKey,
		"types":         "BUG",
		"ps":            pageSize,
	}, &resp)
	if err != nil {
		return nil, err
	}

	bugs := make([]Issue, 0, len(resp.Issues))
	for _, rec := range resp.Issues {
		issue, err := rec.normalize()
		if err != nil {
			return nil, err
		}
		bugs = append(bugs, issue)
	}

	c.logger.Debug("fetched bug issues", "project", projectKey, "count", len(bugs))
	return &BugReport{
		ProjectKey: projectKey,
		BugCount:   len(bugs),
		Bugs:       bugs,
	}, nil
}

// VulnerabilityDetails merges the project's VULNERABILITY issues and its
// security hotspots into one report, vulnerabilities first, each source in
// upstream order. The two endpoints are disjoint upstream, so two sequential
// requests are issued; if either fails the whole operation fails and no
// partial result is returned.
func (c *Client) VulnerabilityDetails(projectKey string) (*VulnerabilityReport, error) {
	c.logger.Debug("fetching vulnerability issues", "project", projectKey)

	var issuesResp issueSearchResponse
	err := c.get(issueSearchPath, map[string]string{
		"componentKeys": projectKey,
		"types":         "VULNERABILITY",
		"ps":            pageSize,
	}, &issuesResp)
	if err != nil {
		return nil, err
	}

	findings := make([]Finding, 0, len(issuesResp.Issues))
	for _, rec := range issuesResp.Issues {
		issue, err := rec.normalize()
		if err != nil {
			return nil, err
		}
		findings = append(findings, Finding{Issue: issue, Type: rec.Type})
	}

	c.logger.Debug("fetching security hotspots", "project", projectKey)

	var hotspotsResp hotspotSearchResponse
	err = c.get(hotspotSearchPath, map[string]string{
		"projectKey": projectKey,
		"ps":         pageSize,
	}, &hotspotsResp)
	if err != nil {
		return nil, err
	}

	for _, rec := range hotspotsResp.Hotspots {
		finding, err := rec.normalize()
		if err != nil {
			return nil, err
		}
		findings = append(findings, finding)
	}

	c.logger.Debug("merged vulnerability findings", "project", projectKey, "count", len(findings))
	return &VulnerabilityReport{
		ProjectKey:         projectKey,
		VulnerabilityCount: len(findings),
		Vulnerabilities:    findings,
	}, nil
}
