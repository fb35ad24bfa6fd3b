package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/models"
)

const userProfilePath = "/api/users/{userID}"

type httpUserServiceAdapter struct {
	client *resty.Client

	// staticURL takes precedence over the resolver when set.
	staticURL   string
	serviceName string
	resolver    Resolver

	logger *logger.Logger
}

// userProfileResponse is the envelope the user service answers with.
type userProfileResponse struct {
	Status  string             `json:"status"`
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Result  models.UserProfile `json:"result"`
}

// NewHTTPUserServiceAdapter constructs an HTTP implementation of
// [UserServiceAdapter]. resolver may be nil when cfg.UserServiceURL is set.
func NewHTTPUserServiceAdapter(cfg config.Adapter, resolver Resolver, logger *logger.Logger) (UserServiceAdapter, error) {
	adapter := &httpUserServiceAdapter{
		client:      resty.New().SetTimeout(cfg.RequestTimeout),
		serviceName: cfg.UserServiceName,
		resolver:    resolver,
		logger:      logger,
	}

	if cfg.UserServiceURL != "" {
		baseURL, err := normalizeBaseURL(cfg.UserServiceURL)
		if err != nil {
			return nil, fmt.Errorf("invalid user service url: %w", err)
		}
		adapter.staticURL = baseURL
	} else if resolver == nil || cfg.UserServiceName == "" {
		return nil, ErrNoUserServiceAddress
	}

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// baseURL returns the static URL or the address of an instance picked by
// the resolver.
func (h *httpUserServiceAdapter) baseURL(ctx context.Context) (string, error) {
	if h.staticURL != "" {
		return h.staticURL, nil
	}

	instance, err := h.resolver.Resolve(ctx, h.serviceName)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", h.serviceName, err)
	}
	return normalizeBaseURL(instance.Address)
}

// GetUserProfile implements [UserServiceAdapter]. It calls
// GET /api/users/{userID} with the bearer token found in ctx.
func (h *httpUserServiceAdapter) GetUserProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	log := h.logger.Ctx(ctx)

	baseURL, err := h.baseURL(ctx)
	if err != nil {
		log.Err(err).Str("func", "httpUserServiceAdapter.GetUserProfile").Msg("user service address is unknown")
		return models.UserProfile{}, apperror.Wrap(err, apperror.UserServiceUnavailable)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("userID", userID)
	if token, ok := utils.GetBearerTokenFromContext(ctx); ok {
		req.SetAuthToken(token)
	}

	resp, err := req.Get(baseURL + userProfilePath)
	if err != nil {
		log.Err(err).
			Str("func", "httpUserServiceAdapter.GetUserProfile").
			Str("base_url", baseURL).
			Msg("user service request failed")
		return models.UserProfile{}, apperror.Wrap(fmt.Errorf("get user profile request: %w", err), apperror.UserServiceUnavailable)
	}
	if err = mapHTTPError(resp, userID); err != nil {
		log.Warn().Err(err).
			Str("func", "httpUserServiceAdapter.GetUserProfile").
			Int("status", resp.StatusCode()).
			Str("user_id", userID).
			Msg("user service rejected profile request")
		return models.UserProfile{}, err
	}

	var envelope userProfileResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.UserProfile{}, apperror.Wrap(fmt.Errorf("%w: %w", ErrMalformedResponse, err), apperror.UserServiceUnavailable)
	}
	if envelope.Result.UserID == "" {
		envelope.Result.UserID = userID
	}

	return envelope.Result, nil
}
