package model

import (
	"context"
	"time"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
)

var athleteSchema = identifiableSchema.Extend(map[string]types.Attribute{
	"firstname":      attributes.Text(summary, detailed),
	"lastname":       attributes.Text(summary, detailed),
	"profile_medium": attributes.Text(summary, detailed),
	"profile":        attributes.Text(summary, detailed),
	"city":           attributes.Text(summary, detailed),
	"state":          attributes.Text(summary, detailed),
	"sex":            attributes.Text(summary, detailed),
	// pending, accepted, blocked or empty; following status in both directions
	"friend":   attributes.Text(summary, detailed),
	"follower": attributes.Text(summary, detailed),
	"premium":  attributes.Bool(summary, detailed),

	"created_at": attributes.Timestamp(summary, detailed),
	"updated_at": attributes.Timestamp(summary, detailed),

	"follower_count":         attributes.Int(detailed),
	"friend_count":           attributes.Int(detailed),
	"mutual_friend_count":    attributes.Int(detailed),
	"date_preference":        attributes.Text(detailed),
	"measurement_preference": attributes.Text(detailed),

	"clubs": attributes.Collection("Club", detailed),
	"bikes": attributes.Collection("Bike", detailed),
	"shoes": attributes.Collection("Shoe", detailed),
})

type Athlete struct {
	entities.Base
}

func NewAthlete() *Athlete {
	return &Athlete{Base: entities.NewBase(athleteSchema)}
}

func DeserializeAthlete(ctx context.Context, raw map[string]any, bind types.Fetcher) (*Athlete, error) {
	return entities.Deserialize(ctx, NewAthlete(), raw, bind)
}

func (a *Athlete) ID() int64 {
	return a.Int("id")
}

func (a *Athlete) Firstname() string {
	return a.Text("firstname")
}

func (a *Athlete) Lastname() string {
	return a.Text("lastname")
}

func (a *Athlete) ProfileMedium() string {
	return a.Text("profile_medium")
}

func (a *Athlete) Profile() string {
	return a.Text("profile")
}

func (a *Athlete) City() string {
	return a.Text("city")
}

func (a *Athlete) State() string {
	return a.Text("state")
}

func (a *Athlete) Sex() string {
	return a.Text("sex")
}

func (a *Athlete) Friend() string {
	return a.Text("friend")
}

func (a *Athlete) Follower() string {
	return a.Text("follower")
}

func (a *Athlete) Premium() bool {
	return a.Bool("premium")
}

func (a *Athlete) CreatedAt() time.Time {
	return a.Time("created_at")
}

func (a *Athlete) UpdatedAt() time.Time {
	return a.Time("updated_at")
}

func (a *Athlete) FollowerCount() int64 {
	return a.Int("follower_count")
}

func (a *Athlete) FriendCount() int64 {
	return a.Int("friend_count")
}

func (a *Athlete) MutualFriendCount() int64 {
	return a.Int("mutual_friend_count")
}

func (a *Athlete) DatePreference() string {
	return a.Text("date_preference")
}

func (a *Athlete) MeasurementPreference() string {
	return a.Text("measurement_preference")
}

func (a *Athlete) Clubs() []*Club {
	return collectionOf[*Club](a.Collection("clubs"))
}

func (a *Athlete) Bikes() []*Bike {
	return collectionOf[*Bike](a.Collection("bikes"))
}

func (a *Athlete) Shoes() []*Shoe {
	return collectionOf[*Shoe](a.Collection("shoes"))
}
