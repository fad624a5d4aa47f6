package model

import (
	"context"
	"time"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

// Leaderboard payloads carry neither id nor resource state, only the
// entry counts and the denormalized entry rows.
var leaderboardSchema = attributes.NewSchema(map[string]types.Attribute{
	"effort_count": attributes.Int(),
	"entry_count":  attributes.Int(),
	"entries":      attributes.Collection("LeaderboardEntry"),
})

type SegmentLeaderboard struct {
	entities.Base
}

func NewSegmentLeaderboard() *SegmentLeaderboard {
	return &SegmentLeaderboard{Base: entities.NewBase(leaderboardSchema)}
}

func DeserializeSegmentLeaderboard(ctx context.Context, raw map[string]any, bind types.Fetcher) (*SegmentLeaderboard, error) {
	return entities.Deserialize(ctx, NewSegmentLeaderboard(), raw, bind)
}

func (l *SegmentLeaderboard) EffortCount() int64 {
	return l.Int("effort_count")
}

func (l *SegmentLeaderboard) EntryCount() int64 {
	return l.Int("entry_count")
}

func (l *SegmentLeaderboard) Entries() []*LeaderboardEntry {
	return collectionOf[*LeaderboardEntry](l.Collection("entries"))
}

var leaderboardEntrySchema = attributes.NewSchema(map[string]types.Attribute{
	"athlete_name":     attributes.Text(),
	"athlete_id":       attributes.Int(),
	"athlete_gender":   attributes.Text(),
	"athlete_profile":  attributes.Text(),
	"average_hr":       attributes.Float(),
	"average_watts":    attributes.Float(),
	"distance":         attributes.Float().Unit(units.Meter),
	"elapsed_time":     attributes.TimeInterval(),
	"moving_time":      attributes.TimeInterval(),
	"start_date":       attributes.Timestamp(),
	"start_date_local": attributes.Timestamp(),
	"activity_id":      attributes.Int(),
	"effort_id":        attributes.Int(),
	"rank":             attributes.Int(),
})

type LeaderboardEntry struct {
	entities.Base
}

func NewLeaderboardEntry() *LeaderboardEntry {
	return &LeaderboardEntry{Base: entities.NewBase(leaderboardEntrySchema)}
}

func DeserializeLeaderboardEntry(ctx context.Context, raw map[string]any, bind types.Fetcher) (*LeaderboardEntry, error) {
	return entities.Deserialize(ctx, NewLeaderboardEntry(), raw, bind)
}

func (e *LeaderboardEntry) AthleteName() string {
	return e.Text("athlete_name")
}

func (e *LeaderboardEntry) AthleteID() int64 {
	return e.Int("athlete_id")
}

func (e *LeaderboardEntry) AthleteGender() string {
	return e.Text("athlete_gender")
}

func (e *LeaderboardEntry) AthleteProfile() string {
	return e.Text("athlete_profile")
}

func (e *LeaderboardEntry) AverageHeartrate() float64 {
	return e.Float("average_hr")
}

func (e *LeaderboardEntry) AverageWatts() float64 {
	return e.Float("average_watts")
}

func (e *LeaderboardEntry) Distance() units.Quantity {
	return e.Quantity("distance")
}

func (e *LeaderboardEntry) ElapsedTime() units.Quantity {
	return e.Quantity("elapsed_time")
}

func (e *LeaderboardEntry) MovingTime() units.Quantity {
	return e.Quantity("moving_time")
}

func (e *LeaderboardEntry) StartDate() time.Time {
	return e.Time("start_date")
}

func (e *LeaderboardEntry) StartDateLocal() time.Time {
	return e.Time("start_date_local")
}

func (e *LeaderboardEntry) ActivityID() int64 {
	return e.Int("activity_id")
}

func (e *LeaderboardEntry) EffortID() int64 {
	return e.Int("effort_id")
}

func (e *LeaderboardEntry) Rank() int64 {
	return e.Int("rank")
}
