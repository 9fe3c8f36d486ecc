package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the transport every Tidepool resource client shares: it throttles
// outbound calls, attaches the server session token and maps error statuses.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client

	// StreamHTTPClient only bounds the wait for response headers, so large
	// bodies can be copied for as long as the caller's context allows.
	StreamHTTPClient *http.Client
	Limiter          *rate.Limiter
	Tokens           contracts.TidepoolTokenProvider
	Log              *zap.Logger
}

type Config struct {
	BaseUrl              string
	Timeout              time.Duration
	MaxRequestsPerSecond int
}

func NewClient(cfg Config, tokens contracts.TidepoolTokenProvider, logger *zap.Logger) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(cfg.MaxRequestsPerSecond)
		burst = cfg.MaxRequestsPerSecond
	}
	streamTransport := http.DefaultTransport.(*http.Transport).Clone()
	streamTransport.ResponseHeaderTimeout = cfg.Timeout
	return &Client{
		BaseUrl:          strings.TrimRight(cfg.BaseUrl, "/"),
		HTTPClient:       &http.Client{Timeout: cfg.Timeout},
		StreamHTTPClient: &http.Client{Transport: streamTransport},
		Limiter:          rate.NewLimiter(limit, burst),
		Tokens:           tokens,
		Log:              logger,
	}
}

type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Body     interface{}
	Accept   string
	Resource string
	// Stream sends the request through StreamHTTPClient.
	Stream   bool
}

// Do sends the request and hands back responses below 400. The caller closes
// the body.
func (c *Client) Do(ctx context.Context, request *Request) (*http.Response, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("tidepoolClient.Do error waiting for throttle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTidepoolThrottled(err)
	}

	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if request.Body != nil {
		requestJSON, err := json.Marshal(request.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	endpoint := c.BaseUrl + request.Path
	if len(request.Query) > 0 {
		endpoint += "?" + request.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		c.Log.Error("tidepoolClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.TidepoolHeaderSessionToken, token)
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if request.Body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	accept := request.Accept
	if accept == "" {
		accept = constvars.MIMEApplicationJSON
	}
	req.Header.Set(constvars.HeaderAccept, accept)

	httpClient := c.HTTPClient
	if request.Stream {
		httpClient = c.StreamHTTPClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		c.Log.Error("tidepoolClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, request.Path),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		defer resp.Body.Close()
		return nil, c.statusError(ctx, requestID, request, resp)
	}
	return resp, nil
}

// Get decodes the JSON answer into dst and validates it.
func (c *Client) Get(ctx context.Context, path string, query url.Values, resource string, dst interface{}) error {
	return c.exchange(ctx, &Request{
		Method:   constvars.MethodGet,
		Path:     path,
		Query:    query,
		Resource: resource,
	}, dst)
}

func (c *Client) Send(ctx context.Context, method, path string, body interface{}, resource string, dst interface{}) error {
	return c.exchange(ctx, &Request{
		Method:   method,
		Path:     path,
		Body:     body,
		Resource: resource,
	}, dst)
}

func (c *Client) exchange(ctx context.Context, request *Request, dst interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	resp, err := c.Do(ctx, request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dst == nil || resp.StatusCode == constvars.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		c.Log.Error("tidepoolClient.exchange error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.Error(err),
		)
		return exceptions.ErrTidepoolDecodeResponse(err, request.Resource)
	}

	if err := utils.ValidateResponse(dst); err != nil {
		c.Log.Error("tidepoolClient.exchange response failed validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.Error(err),
		)
		return exceptions.ErrTidepoolInvalidResponse(err, request.Resource)
	}
	return nil
}

func (c *Client) statusError(ctx context.Context, requestID string, request *Request, resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, constvars.TidepoolErrorBodyLimit))
	upstreamErr := errors.New(upstreamMessage(bodyBytes, resp.Status))

	c.Log.Error("tidepoolClient.Do upstream error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, request.Path),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		zap.Error(upstreamErr),
	)

	if resp.StatusCode == constvars.StatusUnauthorized {
		if err := c.Tokens.Invalidate(ctx); err != nil {
			c.Log.Warn("tidepoolClient.Do error invalidating server token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	switch {
	case resp.StatusCode == constvars.StatusNotFound:
		return exceptions.ErrTidepoolNotFound(upstreamErr, request.Resource)
	case request.Method == constvars.MethodGet:
		return exceptions.ErrTidepoolGetResource(upstreamErr, request.Resource, resp.StatusCode)
	default:
		return exceptions.ErrTidepoolUpdateResource(upstreamErr, request.Resource, resp.StatusCode)
	}
}

// upstreamMessage picks the human readable part of an API error body.
func upstreamMessage(body []byte, fallback string) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "reason", "error"} {
			if value := gjson.GetBytes(body, path); value.Type == gjson.String && value.String() != "" {
				return value.String()
			}
		}
		return fallback
	}

	text := strings.TrimSpace(string(body))
	if text == "" || len(text) > 200 {
		return fallback
	}
	return text
}

// EncodeListQuery encodes search and paging the way list endpoints expect
// them.
func EncodeListQuery(listQuery *requests.ListQuery) url.Values {
	query := url.Values{}
	if listQuery == nil {
		return query
	}
	if listQuery.Search != "" {
		query.Set("search", listQuery.Search)
	}
	if listQuery.Offset > 0 {
		query.Set("offset", strconv.Itoa(listQuery.Offset))
	}
	if listQuery.Limit > 0 {
		query.Set("limit", strconv.Itoa(listQuery.Limit))
	}
	return query
}
