package model

import (
	"context"
	"time"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

// Efforts reference both their segment and their activity, and the
// activity in turn contains efforts, so the nested types are declared
// by name and resolved through the registry at first deserialization.
var baseEffortSchema = identifiableSchema.Extend(map[string]types.Attribute{
	"name":             attributes.Text(summary, detailed),
	"segment":          attributes.Entity("Segment", summary, detailed),
	"activity":         attributes.Entity("Activity", summary, detailed),
	"athlete":          attributes.Entity("Athlete", summary, detailed),
	"kom_rank":         attributes.Int(summary, detailed),
	"pr_rank":          attributes.Int(summary, detailed),
	"moving_time":      attributes.TimeInterval(summary, detailed),
	"elapsed_time":     attributes.TimeInterval(summary, detailed),
	"start_date":       attributes.Timestamp(summary, detailed),
	"start_date_local": attributes.Timestamp(summary, detailed),
	"distance":         attributes.Float(summary, detailed).Unit(units.Meter),
})

var segmentEffortSchema = baseEffortSchema.Extend(map[string]types.Attribute{
	// activity stream indexes delimiting this effort
	"start_index": attributes.Int(summary, detailed),
	"end_index":   attributes.Int(summary, detailed),
})

type baseEffort struct {
	entities.Base
}

func (e *baseEffort) ID() int64 {
	return e.Int("id")
}

func (e *baseEffort) Name() string {
	return e.Text("name")
}

func (e *baseEffort) Segment() *Segment {
	s, _ := e.Entity("segment").(*Segment)
	return s
}

func (e *baseEffort) Activity() *Activity {
	a, _ := e.Entity("activity").(*Activity)
	return a
}

func (e *baseEffort) Athlete() *Athlete {
	a, _ := e.Entity("athlete").(*Athlete)
	return a
}

func (e *baseEffort) KOMRank() int64 {
	return e.Int("kom_rank")
}

func (e *baseEffort) PRRank() int64 {
	return e.Int("pr_rank")
}

func (e *baseEffort) MovingTime() units.Quantity {
	return e.Quantity("moving_time")
}

func (e *baseEffort) ElapsedTime() units.Quantity {
	return e.Quantity("elapsed_time")
}

func (e *baseEffort) StartDate() time.Time {
	return e.Time("start_date")
}

func (e *baseEffort) StartDateLocal() time.Time {
	return e.Time("start_date_local")
}

func (e *baseEffort) Distance() units.Quantity {
	return e.Quantity("distance")
}

// BestEffort is a best effort over a standard distance within an
// activity.
type BestEffort struct {
	baseEffort
}

func NewBestEffort() *BestEffort {
	return &BestEffort{baseEffort{Base: entities.NewBase(baseEffortSchema)}}
}

func DeserializeBestEffort(ctx context.Context, raw map[string]any, bind types.Fetcher) (*BestEffort, error) {
	return entities.Deserialize(ctx, NewBestEffort(), raw, bind)
}

// SegmentEffort is an attempt on a segment within an activity.
type SegmentEffort struct {
	baseEffort
}

func NewSegmentEffort() *SegmentEffort {
	return &SegmentEffort{baseEffort{Base: entities.NewBase(segmentEffortSchema)}}
}

func DeserializeSegmentEffort(ctx context.Context, raw map[string]any, bind types.Fetcher) (*SegmentEffort, error) {
	return entities.Deserialize(ctx, NewSegmentEffort(), raw, bind)
}

func (e *SegmentEffort) StartIndex() int64 {
	return e.Int("start_index")
}

func (e *SegmentEffort) EndIndex() int64 {
	return e.Int("end_index")
}
