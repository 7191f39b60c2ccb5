package sonar

// QualityGateStatus fetches the project's quality gate verdict. The status
// string is passed through exactly as the upstream reports it ("OK",
// "ERROR", "WARN", "NONE", or anything else the service may emit).
func (c *Client) QualityGateStatus(projectKey string) (*QualityGateResult, error) {
	c.logger.Debug("fetching quality gate status", "project", projectKey)

	var resp qualityGateResponse
	err := c.get(qualityGatePath, map[string]string{
		"projectKey": projectKey,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.ProjectStatus == nil || resp.ProjectStatus.Status == "" {
		return nil, &SchemaError{Field: "projectStatus.status"}
	}

	return &QualityGateResult{
		ProjectKey: projectKey,
		Status:     resp.ProjectStatus.Status,
	}, nil
}
