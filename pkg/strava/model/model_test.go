package model_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	stravaerrors "github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/model"
	"github.com/openstride/strava-model/pkg/strava/test"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

func TestDeserializeAthlete(t *testing.T) {
	is := is.New(t)

	athlete, err := model.DeserializeAthlete(context.Background(), map[string]any{
		"id":             float64(227615),
		"resource_state": float64(3),
		"firstname":      "John",
		"lastname":       "Applestrava",
		"city":           "San Francisco",
		"sex":            "M",
		"premium":        true,
		"created_at":     "2009-08-26T13:04:29Z",
		"follower_count": float64(5),
	}, nil)

	is.NoErr(err)
	is.Equal(athlete.ID(), int64(227615))
	is.Equal(athlete.ResourceState(), types.StateDetailed)
	is.Equal(athlete.Firstname(), "John")
	is.Equal(athlete.Lastname(), "Applestrava")
	is.Equal(athlete.City(), "San Francisco")
	is.True(athlete.Premium())
	is.Equal(athlete.CreatedAt(), time.Date(2009, 8, 26, 13, 4, 29, 0, time.UTC))
	is.Equal(athlete.FollowerCount(), int64(5))
}

func TestDeserializeSucceedsOnUnknownKeys(t *testing.T) {
	is := is.New(t)

	athlete, err := model.DeserializeAthlete(context.Background(), map[string]any{
		"id":            float64(1),
		"badge_type_id": float64(4),
		"summit":        true,
	}, nil)

	is.NoErr(err)
	is.Equal(athlete.ID(), int64(1))
}

func TestDeserializeAthleteWithNestedGearAndClubs(t *testing.T) {
	is := is.New(t)

	athlete, err := model.DeserializeAthlete(context.Background(), map[string]any{
		"id": float64(227615),
		"clubs": []any{
			map[string]any{"id": float64(1), "name": "Team Strava Cycling"},
			map[string]any{"id": float64(2), "name": "Team Strava Running"},
		},
		"bikes": []any{
			map[string]any{"id": "b105763", "name": "Cannondale TT", "distance": 476612.9, "primary": true},
		},
		"shoes": []any{
			map[string]any{"id": "g1", "name": "Runners", "distance": 19173.2, "primary": true},
		},
	}, nil)

	is.NoErr(err)

	clubs := athlete.Clubs()
	is.Equal(len(clubs), 2)
	is.Equal(clubs[0].Name(), "Team Strava Cycling")
	is.Equal(clubs[1].Name(), "Team Strava Running")

	bikes := athlete.Bikes()
	is.Equal(len(bikes), 1)
	is.Equal(bikes[0].ID(), "b105763")
	is.True(bikes[0].Primary())

	is.Equal(len(athlete.Shoes()), 1)
}

func TestDeserializeActivity(t *testing.T) {
	is := is.New(t)

	activity, err := model.DeserializeActivity(context.Background(), map[string]any{
		"id":             float64(46320211),
		"resource_state": float64(3),
		"name":           "Lunch Run",
		"type":           "Run",
		"distance":       2659.89,
		"moving_time":    float64(360),
		"elapsed_time":   float64(374),
		"start_date":     "2013-03-29T13:49:35Z",
		"timezone":       "-08:00 America/Los_Angeles",
		"start_latlng":   []any{37.8, -122.27},
		"end_latlng":     nil,
		"map": map[string]any{
			"id":               "a46320211",
			"summary_polyline": "eiq~F|dsuO~iAnsB",
		},
		"trainer": false,
		"manual":  false,
	}, nil)

	is.NoErr(err)
	is.Equal(activity.ID(), int64(46320211))
	is.Equal(activity.Name(), "Lunch Run")
	is.Equal(activity.Distance(), units.Meters(2659.89))
	is.Equal(activity.MovingTime(), units.Seconds(360))
	is.Equal(activity.MovingTime().Duration(), 6*time.Minute)

	tz := activity.Timezone()
	is.True(tz != nil)
	is.Equal(tz.UTCOffset, "-08:00")
	is.Equal(tz.Name, "America/Los_Angeles")

	start := activity.StartLatLng()
	is.True(start != nil)
	is.Equal(start.Lat, 37.8)
	is.Equal(activity.EndLatLng(), nil)

	m := activity.Map()
	is.True(m != nil)
	is.Equal(m.ID(), "a46320211")
}

func TestSegmentEffortResolvesForwardReferencedActivity(t *testing.T) {
	is := is.New(t)

	effort, err := model.DeserializeSegmentEffort(context.Background(), map[string]any{
		"id":   float64(801006623),
		"name": "Hawk Hill",
		"activity": map[string]any{
			"id":   float64(46320211),
			"name": "Lunch Run",
		},
		"segment": map[string]any{
			"id":   float64(229781),
			"name": "Hawk Hill",
		},
		"start_index": float64(1),
	}, nil)

	is.NoErr(err)

	activity := effort.Activity()
	is.True(activity != nil)
	is.Equal(activity.ID(), int64(46320211))
	is.Equal(activity.Name(), "Lunch Run")

	segment := effort.Segment()
	is.True(segment != nil)
	is.Equal(segment.Name(), "Hawk Hill")
}

func TestSplitsPreserveInputOrdering(t *testing.T) {
	is := is.New(t)

	activity, err := model.DeserializeActivity(context.Background(), map[string]any{
		"id": float64(1),
		"splits_metric": []any{
			map[string]any{"split": float64(1), "distance": float64(1000), "elapsed_time": float64(300)},
			map[string]any{"split": float64(2), "distance": float64(1000), "elapsed_time": float64(290)},
			map[string]any{"split": float64(3), "distance": float64(1000), "elapsed_time": float64(310)},
		},
	}, nil)

	is.NoErr(err)

	splits := activity.SplitsMetric()
	is.Equal(len(splits), 3)
	is.Equal(splits[0].Split(), int64(1))
	is.Equal(splits[1].Split(), int64(2))
	is.Equal(splits[2].Split(), int64(3))
	is.Equal(splits[1].ElapsedTime(), units.Seconds(290))
	is.Equal(splits[0].Distance(), units.Meters(1000))
}

func TestClubMembersFailsWhenUnbound(t *testing.T) {
	is := is.New(t)

	club, err := model.DeserializeClub(context.Background(), map[string]any{
		"id":   float64(23),
		"name": "Synthetic Cycling",
	}, nil)
	is.NoErr(err)

	_, err = club.Members(context.Background())

	is.True(err != nil)
	is.True(errors.Is(err, stravaerrors.ErrUnboundEntity))
}

func TestClubMembersFetchesOnceAndCaches(t *testing.T) {
	is := is.New(t)

	fetcher := &test.FetcherMock{
		GetClubMembersFunc: func(ctx context.Context, clubID int64) ([]map[string]any, error) {
			return []map[string]any{
				{"id": float64(1), "firstname": "Alice"},
			}, nil
		},
	}

	club, err := model.DeserializeClub(context.Background(), map[string]any{
		"id":   float64(23),
		"name": "Synthetic Cycling",
	}, fetcher)
	is.NoErr(err)

	members, err := club.Members(context.Background())
	is.NoErr(err)
	is.Equal(len(members), 1)
	is.Equal(members[0].ID(), int64(1))
	is.Equal(members[0].Firstname(), "Alice")

	_, err = club.Members(context.Background())
	is.NoErr(err)
	is.Equal(len(fetcher.GetClubMembersCalls()), 1)
}

func TestClubMembersCachesEmptyResults(t *testing.T) {
	is := is.New(t)

	fetcher := &test.FetcherMock{
		GetClubMembersFunc: func(ctx context.Context, clubID int64) ([]map[string]any, error) {
			return []map[string]any{}, nil
		},
	}

	club, err := model.DeserializeClub(context.Background(), map[string]any{"id": float64(23)}, fetcher)
	is.NoErr(err)

	members, err := club.Members(context.Background())
	is.NoErr(err)
	is.Equal(len(members), 0)

	_, err = club.Members(context.Background())
	is.NoErr(err)
	is.Equal(len(fetcher.GetClubMembersCalls()), 1)
}

func TestClubActivitiesPropagateTheBindClient(t *testing.T) {
	is := is.New(t)

	fetcher := &test.FetcherMock{
		GetClubActivitiesFunc: func(ctx context.Context, clubID int64) ([]map[string]any, error) {
			return []map[string]any{
				{"id": float64(42), "name": "Evening Ride", "gear_id": "b105763"},
			}, nil
		},
		GetGearFunc: func(ctx context.Context, gearID string) (map[string]any, error) {
			return map[string]any{"id": gearID, "name": "Cannondale TT"}, nil
		},
	}

	club, err := model.DeserializeClub(context.Background(), map[string]any{"id": float64(23)}, fetcher)
	is.NoErr(err)

	activities, err := club.Activities(context.Background())
	is.NoErr(err)
	is.Equal(len(activities), 1)

	gear, err := activities[0].Gear(context.Background())
	is.NoErr(err)

	bike, ok := gear.(*model.Bike)
	is.True(ok)
	is.Equal(bike.Name(), "Cannondale TT")
}

func TestActivityGearResolvesShoesByIDPrefix(t *testing.T) {
	is := is.New(t)

	fetcher := &test.FetcherMock{
		GetGearFunc: func(ctx context.Context, gearID string) (map[string]any, error) {
			return map[string]any{"id": "g12345", "name": "Runners"}, nil
		},
	}

	activity, err := model.DeserializeActivity(context.Background(), map[string]any{
		"id":      float64(1),
		"gear_id": "g12345",
	}, fetcher)
	is.NoErr(err)

	gear, err := activity.Gear(context.Background())
	is.NoErr(err)

	_, isShoe := gear.(*model.Shoe)
	is.True(isShoe)
}

func TestActivityGearIsNilWithoutGearID(t *testing.T) {
	is := is.New(t)

	activity, err := model.DeserializeActivity(context.Background(), map[string]any{
		"id": float64(1),
	}, &test.FetcherMock{})
	is.NoErr(err)

	gear, err := activity.Gear(context.Background())

	is.NoErr(err)
	is.Equal(gear, nil)
}

func TestDeserializeSegmentLeaderboard(t *testing.T) {
	is := is.New(t)

	board, err := model.DeserializeSegmentLeaderboard(context.Background(), map[string]any{
		"effort_count": float64(7037),
		"entry_count":  float64(7037),
		"entries": []any{
			map[string]any{
				"athlete_name": "Jim Whimpey",
				"athlete_id":   float64(123529),
				"elapsed_time": float64(360),
				"rank":         float64(1),
				"start_date":   "2013-03-29T13:49:35Z",
			},
			map[string]any{
				"athlete_name": "Chris Zappala",
				"athlete_id":   float64(11673),
				"elapsed_time": float64(374),
				"rank":         float64(2),
			},
		},
	}, nil)

	is.NoErr(err)
	is.Equal(board.EffortCount(), int64(7037))

	entries := board.Entries()
	is.Equal(len(entries), 2)
	is.Equal(entries[0].AthleteName(), "Jim Whimpey")
	is.Equal(entries[0].Rank(), int64(1))
	is.Equal(entries[1].AthleteName(), "Chris Zappala")
	is.Equal(entries[1].ElapsedTime(), units.Seconds(374))
}

func TestDeserializeActivityZoneDispatchesOnType(t *testing.T) {
	is := is.New(t)

	zone, err := model.DeserializeActivityZone(context.Background(), map[string]any{
		"type":         "heartrate",
		"score":        float64(215),
		"sensor_based": true,
		"distribution_buckets": []any{
			map[string]any{"min": float64(0), "max": float64(115), "time": float64(1735)},
			map[string]any{"min": float64(115), "max": float64(152), "time": float64(5966)},
		},
	}, nil)

	is.NoErr(err)

	hr, ok := zone.(*model.HeartrateActivityZone)
	is.True(ok)
	is.Equal(hr.Score(), int64(215))

	buckets := hr.DistributionBuckets()
	is.Equal(len(buckets), 2)
	is.Equal(buckets[0].Time(), units.Seconds(1735))
	is.Equal(buckets[1].Max(), int64(152))

	_, err = model.DeserializeActivityZone(context.Background(), map[string]any{"type": "suffering"}, nil)
	is.True(errors.Is(err, stravaerrors.ErrDeserialization))
}

func TestDeserializeWebhookEvent(t *testing.T) {
	is := is.New(t)

	event, err := model.DeserializeWebhookEvent(context.Background(), map[string]any{
		"object_type":     "activity",
		"object_id":       float64(1360128428),
		"aspect_type":     "update",
		"owner_id":        float64(134815),
		"subscription_id": float64(120475),
		"event_time":      float64(1516126040),
		"updates":         map[string]any{"title": "Messy"},
	}, nil)

	is.NoErr(err)
	is.Equal(event.ObjectType(), "activity")
	is.Equal(event.ObjectID(), int64(1360128428))
	is.Equal(event.AspectType(), "update")
	is.Equal(event.EventTime(), time.Unix(1516126040, 0).UTC())
	is.Equal(event.Updates()["title"], "Messy")
}

func TestDeserializationErrorsPropagateFromNestedEntities(t *testing.T) {
	is := is.New(t)

	_, err := model.DeserializeActivity(context.Background(), map[string]any{
		"id": float64(1),
		"segment_efforts": []any{
			map[string]any{"id": float64(2), "elapsed_time": "not a number"},
		},
	}, nil)

	is.True(err != nil)
	is.True(errors.Is(err, stravaerrors.ErrDeserialization))
}
