package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out ../test/client_mock.go . Client

// Client is the authenticated fetch client that entities bind to. It
// returns raw payloads; deserialization into typed entities is the
// model layer's responsibility.
type Client interface {
	types.Fetcher

	GetAthlete(ctx context.Context, athleteID int64) (map[string]any, error)
	GetActivity(ctx context.Context, activityID int64) (map[string]any, error)
	GetActivityZones(ctx context.Context, activityID int64) ([]map[string]any, error)
	GetSegment(ctx context.Context, segmentID int64) (map[string]any, error)
	GetSegmentLeaderboard(ctx context.Context, segmentID int64) (map[string]any, error)
	GetClub(ctx context.Context, clubID int64) (map[string]any, error)
}

const DefaultBaseURL string = "https://www.strava.com/api/v3"

func BaseURL(url string) func(*apiClient) {
	return func(c *apiClient) {
		c.baseURL = url
	}
}

func AccessToken(token string) func(*apiClient) {
	return func(c *apiClient) {
		c.accessToken = token
	}
}

func Debug(enabled bool) func(*apiClient) {
	return func(c *apiClient) {
		c.debug = enabled
	}
}

func New(options ...func(*apiClient)) Client {
	c := &apiClient{
		baseURL: DefaultBaseURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeActivityID string = "activity-id"
	TraceAttributeAthleteID  string = "athlete-id"
	TraceAttributeClubID     string = "club-id"
	TraceAttributeGearID     string = "gear-id"
	TraceAttributeSegmentID  string = "segment-id"
)

var tracer = otel.Tracer("strava-client")

type apiClient struct {
	baseURL     string
	accessToken string
	debug       bool

	httpClient http.Client
}

func (c *apiClient) GetAthlete(ctx context.Context, athleteID int64) (m map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-athlete",
		trace.WithAttributes(attribute.Int64(TraceAttributeAthleteID, athleteID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getObject(ctx, fmt.Sprintf("/athletes/%d", athleteID))
}

func (c *apiClient) GetActivity(ctx context.Context, activityID int64) (m map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-activity",
		trace.WithAttributes(attribute.Int64(TraceAttributeActivityID, activityID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getObject(ctx, fmt.Sprintf("/activities/%d", activityID))
}

func (c *apiClient) GetActivityZones(ctx context.Context, activityID int64) (s []map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-activity-zones",
		trace.WithAttributes(attribute.Int64(TraceAttributeActivityID, activityID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getSlice(ctx, fmt.Sprintf("/activities/%d/zones", activityID))
}

func (c *apiClient) GetSegment(ctx context.Context, segmentID int64) (m map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-segment",
		trace.WithAttributes(attribute.Int64(TraceAttributeSegmentID, segmentID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getObject(ctx, fmt.Sprintf("/segments/%d", segmentID))
}

func (c *apiClient) GetSegmentLeaderboard(ctx context.Context, segmentID int64) (m map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-segment-leaderboard",
		trace.WithAttributes(attribute.Int64(TraceAttributeSegmentID, segmentID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getObject(ctx, fmt.Sprintf("/segments/%d/leaderboard", segmentID))
}

func (c *apiClient) GetClub(ctx context.Context, clubID int64) (m map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-club",
		trace.WithAttributes(attribute.Int64(TraceAttributeClubID, clubID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getObject(ctx, fmt.Sprintf("/clubs/%d", clubID))
}

func (c *apiClient) GetClubMembers(ctx context.Context, clubID int64) (s []map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-club-members",
		trace.WithAttributes(attribute.Int64(TraceAttributeClubID, clubID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getSlice(ctx, fmt.Sprintf("/clubs/%d/members", clubID))
}

func (c *apiClient) GetClubActivities(ctx context.Context, clubID int64) (s []map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-club-activities",
		trace.WithAttributes(attribute.Int64(TraceAttributeClubID, clubID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getSlice(ctx, fmt.Sprintf("/clubs/%d/activities", clubID))
}

func (c *apiClient) GetGear(ctx context.Context, gearID string) (m map[string]any, err error) {
	ctx, span := tracer.Start(ctx, "get-gear",
		trace.WithAttributes(attribute.String(TraceAttributeGearID, gearID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	return c.getObject(ctx, "/gear/"+gearID)
}

func (c *apiClient) getObject(ctx context.Context, path string) (map[string]any, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{}

	err = json.Unmarshal(body, &payload)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return payload, nil
}

func (c *apiClient) getSlice(ctx context.Context, path string) ([]map[string]any, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	payloads := []map[string]any{}

	err = json.Unmarshal(body, &payloads)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return payloads, nil
}

func (c *apiClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("X-Request-ID", uuid.NewString())

	if c.accessToken != "" {
		req.Header.Add("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug {
		log := logging.GetFromContext(ctx)
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)
		log.Debug("api roundtrip", "request", string(reqbytes), "response", string(respbytes))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.NewErrorFromFault(resp.StatusCode, respBody)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrBadResponse)
	}

	return respBody, nil
}
