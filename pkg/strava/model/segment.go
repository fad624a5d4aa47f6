package model

import (
	"context"
	"time"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

var segmentSchema = identifiableSchema.Extend(map[string]types.Attribute{
	"name":            attributes.Text(summary, detailed),
	"activity_type":   attributes.Text(summary, detailed),
	"distance":        attributes.Float(summary, detailed).Unit(units.Meter),
	"average_grade":   attributes.Float(summary, detailed),
	"maximum_grade":   attributes.Float(summary, detailed),
	"elevation_high":  attributes.Float(summary, detailed).Unit(units.Meter),
	"elevation_low":   attributes.Float(summary, detailed).Unit(units.Meter),
	"start_latlng":    attributes.Location(summary, detailed),
	"end_latlng":      attributes.Location(summary, detailed),
	"start_latitude":  attributes.Float(summary, detailed),
	"end_latitude":    attributes.Float(summary, detailed),
	"start_longitude": attributes.Float(summary, detailed),
	"end_longitude":   attributes.Float(summary, detailed),
	// 0-5, lower is harder
	"climb_category": attributes.Int(summary, detailed),
	"city":           attributes.Text(summary, detailed),
	"state":          attributes.Text(summary, detailed),
	"private":        attributes.Bool(summary, detailed),

	"created_at":           attributes.Timestamp(detailed),
	"updated_at":           attributes.Timestamp(detailed),
	"total_elevation_gain": attributes.Float(detailed).Unit(units.Meter),
	"map":                  attributes.Entity("Map", detailed),
	"effort_count":         attributes.Int(detailed),
	"athlete_count":        attributes.Int(detailed),
	"hazardous":            attributes.Bool(detailed),
	"pr_time":              attributes.Int(detailed).Unit(units.Second),
	"pr_distance":          attributes.Float(detailed).Unit(units.Meter),
	"starred":              attributes.Bool(detailed),
})

type Segment struct {
	entities.Base
}

func NewSegment() *Segment {
	return &Segment{Base: entities.NewBase(segmentSchema)}
}

func DeserializeSegment(ctx context.Context, raw map[string]any, bind types.Fetcher) (*Segment, error) {
	return entities.Deserialize(ctx, NewSegment(), raw, bind)
}

func (s *Segment) ID() int64 {
	return s.Int("id")
}

func (s *Segment) Name() string {
	return s.Text("name")
}

func (s *Segment) ActivityType() string {
	return s.Text("activity_type")
}

func (s *Segment) Distance() units.Quantity {
	return s.Quantity("distance")
}

func (s *Segment) AverageGrade() float64 {
	return s.Float("average_grade")
}

func (s *Segment) MaximumGrade() float64 {
	return s.Float("maximum_grade")
}

func (s *Segment) ElevationHigh() units.Quantity {
	return s.Quantity("elevation_high")
}

func (s *Segment) ElevationLow() units.Quantity {
	return s.Quantity("elevation_low")
}

func (s *Segment) StartLatLng() *attributes.LatLng {
	return s.LatLng("start_latlng")
}

func (s *Segment) EndLatLng() *attributes.LatLng {
	return s.LatLng("end_latlng")
}

func (s *Segment) ClimbCategory() int64 {
	return s.Int("climb_category")
}

func (s *Segment) City() string {
	return s.Text("city")
}

func (s *Segment) State() string {
	return s.Text("state")
}

func (s *Segment) Private() bool {
	return s.Bool("private")
}

func (s *Segment) CreatedAt() time.Time {
	return s.Time("created_at")
}

func (s *Segment) UpdatedAt() time.Time {
	return s.Time("updated_at")
}

func (s *Segment) TotalElevationGain() units.Quantity {
	return s.Quantity("total_elevation_gain")
}

func (s *Segment) Map() *Map {
	m, _ := s.Entity("map").(*Map)
	return m
}

func (s *Segment) EffortCount() int64 {
	return s.Int("effort_count")
}

func (s *Segment) AthleteCount() int64 {
	return s.Int("athlete_count")
}

func (s *Segment) Hazardous() bool {
	return s.Bool("hazardous")
}

func (s *Segment) PRTime() units.Quantity {
	return s.Quantity("pr_time")
}

func (s *Segment) PRDistance() units.Quantity {
	return s.Quantity("pr_distance")
}

func (s *Segment) Starred() bool {
	return s.Bool("starred")
}
