package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type serverTokenProvider struct {
	BaseUrl      string
	ServerName   string
	ServerSecret string
	TokenTTL     time.Duration
	HTTPClient   *http.Client
	Redis        contracts.RedisRepository
	Log          *zap.Logger
	logins       singleflight.Group
}

type ServerTokenConfig struct {
	BaseUrl      string
	ServerName   string
	ServerSecret string
	TokenTTL     time.Duration
	HTTPTimeout  time.Duration
}

// NewServerTokenProvider logs in to the API as a server and keeps the session
// token in redis so every instance shares one login.
func NewServerTokenProvider(cfg ServerTokenConfig, redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.TidepoolTokenProvider {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = constvars.TidepoolDefaultTokenTTL * time.Minute
	}
	return &serverTokenProvider{
		BaseUrl:      strings.TrimRight(cfg.BaseUrl, "/"),
		ServerName:   cfg.ServerName,
		ServerSecret: cfg.ServerSecret,
		TokenTTL:     cfg.TokenTTL,
		HTTPClient:   &http.Client{Timeout: cfg.HTTPTimeout},
		Redis:        redisRepository,
		Log:          logger,
	}
}

func (p *serverTokenProvider) Token(ctx context.Context) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := p.Redis.Get(ctx, constvars.TidepoolServerTokenRedisKey)
	if err != nil {
		p.Log.Warn("serverTokenProvider.Token error reading cached token, logging in",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var token string
		if err := json.Unmarshal([]byte(cached), &token); err == nil && token != "" {
			return token, nil
		}
	}

	token, err, _ := p.logins.Do(constvars.TidepoolServerTokenRedisKey, func() (interface{}, error) {
		return p.login(ctx, requestID)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// Invalidate drops the cached token. The next call logs in again.
func (p *serverTokenProvider) Invalidate(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("serverTokenProvider.Invalidate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return p.Redis.Delete(ctx, constvars.TidepoolServerTokenRedisKey)
}

func (p *serverTokenProvider) login(ctx context.Context, requestID string) (string, error) {
	p.Log.Info("serverTokenProvider.login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.BaseUrl+constvars.TidepoolPathServerLogin, nil)
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.TidepoolHeaderServerName, p.ServerName)
	req.Header.Set(constvars.TidepoolHeaderServerSecret, p.ServerSecret)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		p.Log.Error("serverTokenProvider.login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, constvars.TidepoolErrorBodyLimit))

	if resp.StatusCode != constvars.StatusOK {
		err := fmt.Errorf("server login answered %s", resp.Status)
		p.Log.Error("serverTokenProvider.login error unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		return "", exceptions.ErrTidepoolServerLogin(err)
	}

	token := resp.Header.Get(constvars.TidepoolHeaderSessionToken)
	if token == "" {
		return "", exceptions.ErrTidepoolServerLogin(fmt.Errorf("response carries no %s header", constvars.TidepoolHeaderSessionToken))
	}

	if err := p.Redis.Set(ctx, constvars.TidepoolServerTokenRedisKey, token, p.TokenTTL); err != nil {
		p.Log.Warn("serverTokenProvider.login error caching token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	p.Log.Info("serverTokenProvider.login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return token, nil
}
