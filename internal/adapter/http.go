package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stats-sync/internal/config"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/utils"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDHeader = "X-Trace-ID"
	tracerName    = "github.com/MKhiriev/go-stats-sync/internal/adapter"
)

var counterPaths = map[models.CounterKind]string{
	models.CounterEnemiesEliminated: "/usuario/{id}/incrementar-enemigos-eliminados",
	models.CounterDefeats:           "/usuario/{id}/incrementar-derrotas",
	models.CounterWins:              "/usuario/{id}/incrementar-veces-ganadas",
}

type httpAccountAdapter struct {
	client *utils.HTTPClient
	tracer trace.Tracer

	logger *logger.Logger
}

// Option customises the adapter built by [NewHTTPAccountAdapter].
type Option func(*httpAccountAdapter)

// WithTracerProvider makes the adapter create its spans from tp instead of
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *httpAccountAdapter) {
		h.tracer = tp.Tracer(tracerName)
	}
}

// NewHTTPAccountAdapter constructs an HTTP/REST implementation of
// [AccountAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAccountAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...Option) (AccountAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	h := &httpAccountAdapter{
		client: client,
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
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

// Register implements [AccountAdapter]. It POSTs creds to /registro and
// decodes the returned profile.
func (h *httpAccountAdapter) Register(ctx context.Context, creds models.Credentials) (models.UserProfile, error) {
	resp, err := h.do(ctx, "register", http.MethodPost, "/registro", 0, creds)
	if err != nil {
		return models.UserProfile{}, err
	}

	return decodeProfile(resp)
}

// Login implements [AccountAdapter]. It POSTs creds to /login and decodes
// the returned profile.
func (h *httpAccountAdapter) Login(ctx context.Context, creds models.Credentials) (models.UserProfile, error) {
	resp, err := h.do(ctx, "login", http.MethodPost, "/login", 0, creds)
	if err != nil {
		return models.UserProfile{}, err
	}

	return decodeProfile(resp)
}

// FetchUser implements [AccountAdapter]. It GETs /usuario/{id}.
func (h *httpAccountAdapter) FetchUser(ctx context.Context, userID int64) (models.UserProfile, error) {
	resp, err := h.do(ctx, "fetch_user", http.MethodGet, "/usuario/{id}", userID, nil)
	if err != nil {
		return models.UserProfile{}, err
	}

	return decodeProfile(resp)
}

// IncrementCounter implements [AccountAdapter]. It POSTs to the counter's
// increment resource without a body.
func (h *httpAccountAdapter) IncrementCounter(ctx context.Context, userID int64, kind models.CounterKind) error {
	path, ok := counterPaths[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedCounter, kind)
	}

	_, err := h.do(ctx, "increment_"+kind.String(), http.MethodPost, path, userID, nil)
	return err
}

// AddPlayedSeconds implements [AccountAdapter]. It POSTs
// {"tiempo_jugado": seconds} to /usuario/{id}/incrementar-tiempo-jugado.
func (h *httpAccountAdapter) AddPlayedSeconds(ctx context.Context, userID int64, seconds int64) error {
	_, err := h.do(ctx, "add_played_seconds", http.MethodPost, "/usuario/{id}/incrementar-tiempo-jugado", userID,
		models.PlayedTimeRequest{Seconds: seconds})
	return err
}

// SetLastPlayed implements [AccountAdapter]. It PUTs
// {"ultima_partida": timestamp} to /usuario/{id}/ultima-conexion.
func (h *httpAccountAdapter) SetLastPlayed(ctx context.Context, userID int64, timestamp string) error {
	_, err := h.do(ctx, "set_last_played", http.MethodPut, "/usuario/{id}/ultima-conexion", userID,
		models.LastPlayedRequest{LastPlayed: timestamp})
	return err
}

// do sends one request inside a client span and classifies transport and
// status failures. userID fills the {id} path parameter when the path has
// one.
func (h *httpAccountAdapter) do(ctx context.Context, op, method, path string, userID int64, body any) (*resty.Response, error) {
	ctx, span := h.tracer.Start(ctx, "account."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.template", path),
		),
	)
	defer span.End()

	log := h.logger
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
		log = log.WithTraceID(traceID)
	}
	if strings.Contains(path, "{id}") {
		req.SetPathParam("id", strconv.FormatInt(userID, 10))
		span.SetAttributes(attribute.Int64("user.id", userID))
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		err = fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		log.Err(err).
			Str("func", "httpAccountAdapter.do").
			Str("method", method).
			Str("path", path).
			Msg("request did not complete")
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	if err = mapHTTPError(resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "non-2xx status")
		log.Warn().
			Str("func", "httpAccountAdapter.do").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("account service rejected request")
		return nil, err
	}

	log.Debug().
		Str("func", "httpAccountAdapter.do").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("request completed")

	return resp, nil
}

// decodeProfile turns a 2xx body into a profile, rejecting bodies that are
// empty, not JSON, carry no positive id or contain negative counters.
func decodeProfile(resp *resty.Response) (models.UserProfile, error) {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrSchema, ErrEmptyResponse)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w: %v", ErrSchema, ErrMalformedResponse, err)
	}

	if profile.IsZero() {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrSchema, ErrMissingUserID)
	}

	for _, kind := range []models.CounterKind{
		models.CounterEnemiesEliminated, models.CounterDefeats, models.CounterWins, models.CounterSecondsPlayed,
	} {
		if profile.Counter(kind) < 0 {
			return models.UserProfile{}, fmt.Errorf("%w: %w: %s", ErrSchema, ErrNegativeCounter, kind)
		}
	}

	return profile, nil
}
