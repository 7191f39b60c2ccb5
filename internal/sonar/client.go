package sonar

import (
	"encoding/base64"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/quality-insights/quality-insights/pkg/shared/config"
	"github.com/quality-insights/quality-insights/pkg/shared/httpclient"
)

const (
	// DefaultBaseURL is used when no host is configured.
	DefaultBaseURL = "https://sonarcloud.io"

	// pageSize caps every search request to a single page of results.
	// Follow-up pages are never fetched.
	pageSize = "100"

	requestTimeout = 30 * time.Second

	issueSearchPath   = "/api/issues/search"
	hotspotSearchPath = "/api/hotspots/search"
	qualityGatePath   = "/api/qualitygates/project_status"
)

// ClientConfig carries the connection settings for a Client.
type ClientConfig struct {
	BaseURL string // defaults to DefaultBaseURL when empty
	Token   string // required
}

// Client is an authenticated SonarQube/SonarCloud REST API client. It holds
// no state beyond its connection configuration; every operation returns
// fresh data owned by the caller.
type Client struct {
	httpc   *resty.Client
	baseURL string
	logger  hclog.Logger
}

// New builds a Client. The authorization header is derived once here and
// reused for the client's lifetime; construction performs no network access.
// An absent token is a fatal configuration error.
func New(cfg ClientConfig, logger hclog.Logger, httpc *resty.Client) (*Client, error) {
	if cfg.Token == "" {
		return nil, NewConfigurationError("token")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if httpc == nil {
		httpc = resty.New().SetTimeout(requestTimeout)
		httpclient.SetLoggerForResty(httpc, logger)
	}
	httpc.
		SetBaseURL(baseURL).
		SetHeader("Authorization", basicAuth(cfg.Token))

	return &Client{
		httpc:   httpc,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// NewFromConfig builds a Client wired with the application-wide HTTP client
// settings.
func NewFromConfig(cfg *config.Config, logger hclog.Logger) (*Client, error) {
	httpc := httpclient.InitializeRestyClient(logger, cfg)
	return New(ClientConfig{
		BaseURL: cfg.Sonar.BaseURL,
		Token:   cfg.Sonar.Token,
	}, logger, httpc)
}

// basicAuth encodes the token as a Basic authorization header value. Sonar
// expects the token as username with an empty password.
func basicAuth(token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(token+":"))
}

// get performs an authenticated GET against path and decodes the JSON body
// into out. It is the single point where network failures are observed:
// transport failures and non-2xx responses are classified here and callers
// never retry.
func (c *Client) get(path string, query map[string]string, out interface{}) error {
	resp, err := c.httpc.R().
		SetQueryParams(query).
		SetResult(out).
		ForceContentType("application/json").
		Get(path)
	if err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}
	if !resp.IsSuccess() {
		return &UpstreamError{
			Endpoint:   path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}
