package model

import (
	"context"
	"time"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

var activitySchema = identifiableSchema.Extend(map[string]types.Attribute{
	"guid": attributes.Text(summary, detailed),

	"external_id":          attributes.Text(summary, detailed),
	"upload_id":            attributes.Text(summary, detailed),
	"athlete":              attributes.Entity("Athlete", meta, summary, detailed),
	"name":                 attributes.Text(summary, detailed),
	"distance":             attributes.Float(summary, detailed).Unit(units.Meter),
	"moving_time":          attributes.TimeInterval(summary, detailed),
	"elapsed_time":         attributes.TimeInterval(summary, detailed),
	"total_elevation_gain": attributes.Float(summary, detailed).Unit(units.Meter),
	"type":                 attributes.Text(summary, detailed),
	"start_date":           attributes.Timestamp(summary, detailed),
	"start_date_local":     attributes.Timestamp(summary, detailed),
	"timezone":             attributes.TimezoneField(summary, detailed),
	"start_latlng":         attributes.Location(summary, detailed),
	"end_latlng":           attributes.Location(summary, detailed),

	"location_city":   attributes.Text(summary, detailed),
	"location_state":  attributes.Text(summary, detailed),
	"start_latitude":  attributes.Float(summary, detailed),
	"start_longitude": attributes.Float(summary, detailed),

	"achievement_count": attributes.Int(summary, detailed),
	"kudos_count":       attributes.Int(summary, detailed),
	"comment_count":     attributes.Int(summary, detailed),
	"athlete_count":     attributes.Int(summary, detailed),
	"photo_count":       attributes.Int(summary, detailed),
	"map":               attributes.Entity("Map", summary, detailed),

	"trainer": attributes.Bool(summary, detailed),
	"commute": attributes.Bool(summary, detailed),
	"manual":  attributes.Bool(summary, detailed),
	"private": attributes.Bool(summary, detailed),
	"flagged": attributes.Bool(summary, detailed),

	"gear_id": attributes.Text(summary, detailed),

	// meters/sec
	"average_speed": attributes.Float(summary, detailed),
	"max_speed":     attributes.Float(summary, detailed),
	"calories":      attributes.Float(summary, detailed),
	"truncated":     attributes.Int(summary, detailed),
	"has_kudoed":    attributes.Bool(summary, detailed),

	"segment_efforts": attributes.Collection("SegmentEffort", detailed),
	"splits_metric":   attributes.Collection("MetricSplit", detailed),
	"splits_standard": attributes.Collection("StandardSplit", detailed),
	"best_efforts":    attributes.Collection("BestEffort", detailed),
})

type Activity struct {
	entities.Base

	gear        Gear
	gearFetched bool
}

func NewActivity() *Activity {
	return &Activity{Base: entities.NewBase(activitySchema)}
}

func DeserializeActivity(ctx context.Context, raw map[string]any, bind types.Fetcher) (*Activity, error) {
	return entities.Deserialize(ctx, NewActivity(), raw, bind)
}

func (a *Activity) ID() int64 {
	return a.Int("id")
}

func (a *Activity) GUID() string {
	return a.Text("guid")
}

func (a *Activity) ExternalID() string {
	return a.Text("external_id")
}

func (a *Activity) UploadID() string {
	return a.Text("upload_id")
}

func (a *Activity) Athlete() *Athlete {
	athlete, _ := a.Entity("athlete").(*Athlete)
	return athlete
}

func (a *Activity) Name() string {
	return a.Text("name")
}

func (a *Activity) Distance() units.Quantity {
	return a.Quantity("distance")
}

func (a *Activity) MovingTime() units.Quantity {
	return a.Quantity("moving_time")
}

func (a *Activity) ElapsedTime() units.Quantity {
	return a.Quantity("elapsed_time")
}

func (a *Activity) TotalElevationGain() units.Quantity {
	return a.Quantity("total_elevation_gain")
}

func (a *Activity) Type() string {
	return a.Text("type")
}

func (a *Activity) StartDate() time.Time {
	return a.Time("start_date")
}

func (a *Activity) StartDateLocal() time.Time {
	return a.Time("start_date_local")
}

func (a *Activity) Timezone() *attributes.Timezone {
	return a.Base.Timezone("timezone")
}

func (a *Activity) StartLatLng() *attributes.LatLng {
	return a.LatLng("start_latlng")
}

func (a *Activity) EndLatLng() *attributes.LatLng {
	return a.LatLng("end_latlng")
}

func (a *Activity) LocationCity() string {
	return a.Text("location_city")
}

func (a *Activity) LocationState() string {
	return a.Text("location_state")
}

func (a *Activity) StartLatitude() float64 {
	return a.Float("start_latitude")
}

func (a *Activity) StartLongitude() float64 {
	return a.Float("start_longitude")
}

func (a *Activity) AchievementCount() int64 {
	return a.Int("achievement_count")
}

func (a *Activity) KudosCount() int64 {
	return a.Int("kudos_count")
}

func (a *Activity) CommentCount() int64 {
	return a.Int("comment_count")
}

func (a *Activity) AthleteCount() int64 {
	return a.Int("athlete_count")
}

func (a *Activity) PhotoCount() int64 {
	return a.Int("photo_count")
}

func (a *Activity) Map() *Map {
	m, _ := a.Entity("map").(*Map)
	return m
}

func (a *Activity) Trainer() bool {
	return a.Bool("trainer")
}

func (a *Activity) Commute() bool {
	return a.Bool("commute")
}

func (a *Activity) Manual() bool {
	return a.Bool("manual")
}

func (a *Activity) Private() bool {
	return a.Bool("private")
}

func (a *Activity) Flagged() bool {
	return a.Bool("flagged")
}

func (a *Activity) GearID() string {
	return a.Text("gear_id")
}

func (a *Activity) AverageSpeed() float64 {
	return a.Float("average_speed")
}

func (a *Activity) MaxSpeed() float64 {
	return a.Float("max_speed")
}

func (a *Activity) Calories() float64 {
	return a.Float("calories")
}

func (a *Activity) Truncated() int64 {
	return a.Int("truncated")
}

func (a *Activity) HasKudoed() bool {
	return a.Bool("has_kudoed")
}

func (a *Activity) SegmentEfforts() []*SegmentEffort {
	return collectionOf[*SegmentEffort](a.Collection("segment_efforts"))
}

func (a *Activity) SplitsMetric() []*MetricSplit {
	return collectionOf[*MetricSplit](a.Collection("splits_metric"))
}

func (a *Activity) SplitsStandard() []*StandardSplit {
	return collectionOf[*StandardSplit](a.Collection("splits_standard"))
}

func (a *Activity) BestEfforts() []*BestEffort {
	return collectionOf[*BestEffort](a.Collection("best_efforts"))
}

// Gear fetches the bike or shoes used for this activity on first
// access and caches the result. Activities without a gear_id resolve
// to nil without calling the client.
func (a *Activity) Gear(ctx context.Context) (Gear, error) {
	if a.gearFetched {
		return a.gear, nil
	}

	if err := a.AssertBindClient(); err != nil {
		return nil, err
	}

	if a.GearID() == "" {
		a.gearFetched = true
		return nil, nil
	}

	payload, err := a.BindClient().GetGear(ctx, a.GearID())
	if err != nil {
		return nil, err
	}

	gear, err := DeserializeGear(ctx, payload, a.BindClient())
	if err != nil {
		return nil, err
	}

	a.gear = gear
	a.gearFetched = true

	return a.gear, nil
}

var activityCommentSchema = identifiableSchema.Extend(map[string]types.Attribute{
	"activity_id": attributes.Int(meta, summary, detailed),
	"text":        attributes.Text(meta, summary, detailed),
	"created_at":  attributes.Timestamp(summary, detailed),
	// summary level representation of the commenter
	"athlete": attributes.Entity("Athlete", summary, detailed),
})

type ActivityComment struct {
	entities.Base
}

func NewActivityComment() *ActivityComment {
	return &ActivityComment{Base: entities.NewBase(activityCommentSchema)}
}

func DeserializeActivityComment(ctx context.Context, raw map[string]any, bind types.Fetcher) (*ActivityComment, error) {
	return entities.Deserialize(ctx, NewActivityComment(), raw, bind)
}

func (c *ActivityComment) ID() int64 {
	return c.Int("id")
}

func (c *ActivityComment) ActivityID() int64 {
	return c.Int("activity_id")
}

func (c *ActivityComment) Text() string {
	return c.Base.Text("text")
}

func (c *ActivityComment) CreatedAt() time.Time {
	return c.Time("created_at")
}

func (c *ActivityComment) Athlete() *Athlete {
	a, _ := c.Entity("athlete").(*Athlete)
	return a
}
