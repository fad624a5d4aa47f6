package client

import (
	"context"

	"github.com/openstride/strava-model/pkg/strava/model"
	"github.com/openstride/strava-model/pkg/strava/types"
)

// Typed convenience fetchers. Each retrieves a raw payload and hands
// it to the model layer, binding the client so that lazy relations on
// the result can fetch further.

func Athlete(ctx context.Context, c Client, athleteID int64) (*model.Athlete, error) {
	payload, err := c.GetAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	return model.DeserializeAthlete(ctx, payload, c)
}

func Activity(ctx context.Context, c Client, activityID int64) (*model.Activity, error) {
	payload, err := c.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	return model.DeserializeActivity(ctx, payload, c)
}

func ActivityZones(ctx context.Context, c Client, activityID int64) ([]types.Entity, error) {
	payloads, err := c.GetActivityZones(ctx, activityID)
	if err != nil {
		return nil, err
	}

	zones := make([]types.Entity, 0, len(payloads))

	for _, payload := range payloads {
		zone, err := model.DeserializeActivityZone(ctx, payload, c)
		if err != nil {
			return nil, err
		}

		zones = append(zones, zone)
	}

	return zones, nil
}

func Segment(ctx context.Context, c Client, segmentID int64) (*model.Segment, error) {
	payload, err := c.GetSegment(ctx, segmentID)
	if err != nil {
		return nil, err
	}

	return model.DeserializeSegment(ctx, payload, c)
}

func SegmentLeaderboard(ctx context.Context, c Client, segmentID int64) (*model.SegmentLeaderboard, error) {
	payload, err := c.GetSegmentLeaderboard(ctx, segmentID)
	if err != nil {
		return nil, err
	}

	return model.DeserializeSegmentLeaderboard(ctx, payload, c)
}

func Club(ctx context.Context, c Client, clubID int64) (*model.Club, error) {
	payload, err := c.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	return model.DeserializeClub(ctx, payload, c)
}

func Gear(ctx context.Context, c Client, gearID string) (model.Gear, error) {
	payload, err := c.GetGear(ctx, gearID)
	if err != nil {
		return nil, err
	}

	return model.DeserializeGear(ctx, payload, c)
}
