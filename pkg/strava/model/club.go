package model

import (
	"context"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
)

var clubSchema = identifiableSchema.Extend(map[string]types.Attribute{
	"name": attributes.Text(summary, detailed),
})

// Club represents a club. Summary and detail resource states currently
// expose the same attributes; members and activities are loaded lazily
// through the bound client.
type Club struct {
	entities.Base

	members           []*Athlete
	membersFetched    bool
	activities        []*Activity
	activitiesFetched bool
}

func NewClub() *Club {
	return &Club{Base: entities.NewBase(clubSchema)}
}

func DeserializeClub(ctx context.Context, raw map[string]any, bind types.Fetcher) (*Club, error) {
	return entities.Deserialize(ctx, NewClub(), raw, bind)
}

func (c *Club) ID() int64 {
	return c.Int("id")
}

func (c *Club) Name() string {
	return c.Text("name")
}

// Members fetches the club's member list through the bound client on
// first access and caches the result. A fetched but empty list is
// cached as well and does not trigger a refetch.
func (c *Club) Members(ctx context.Context) ([]*Athlete, error) {
	if c.membersFetched {
		return c.members, nil
	}

	if err := c.AssertBindClient(); err != nil {
		return nil, err
	}

	payloads, err := c.BindClient().GetClubMembers(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	members := make([]*Athlete, 0, len(payloads))

	for _, payload := range payloads {
		member, err := DeserializeAthlete(ctx, payload, c.BindClient())
		if err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	c.members = members
	c.membersFetched = true

	return c.members, nil
}

// Activities fetches the club's recent activities on first access and
// caches the result.
func (c *Club) Activities(ctx context.Context) ([]*Activity, error) {
	if c.activitiesFetched {
		return c.activities, nil
	}

	if err := c.AssertBindClient(); err != nil {
		return nil, err
	}

	payloads, err := c.BindClient().GetClubActivities(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	activities := make([]*Activity, 0, len(payloads))

	for _, payload := range payloads {
		activity, err := DeserializeActivity(ctx, payload, c.BindClient())
		if err != nil {
			return nil, err
		}

		activities = append(activities, activity)
	}

	c.activities = activities
	c.activitiesFetched = true

	return c.activities, nil
}
