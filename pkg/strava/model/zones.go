package model

import (
	"context"
	"fmt"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

var distributionBucketSchema = attributes.NewSchema(map[string]types.Attribute{
	"max":  attributes.Int(),
	"min":  attributes.Int(),
	"time": attributes.Int().Unit(units.Second),
})

// DistributionBucket is one bucket of an activity zone distribution.
type DistributionBucket struct {
	entities.Base
}

func NewDistributionBucket() *DistributionBucket {
	return &DistributionBucket{Base: entities.NewBase(distributionBucketSchema)}
}

func DeserializeDistributionBucket(ctx context.Context, raw map[string]any, bind types.Fetcher) (*DistributionBucket, error) {
	return entities.Deserialize(ctx, NewDistributionBucket(), raw, bind)
}

func (b *DistributionBucket) Max() int64 {
	return b.Int("max")
}

func (b *DistributionBucket) Min() int64 {
	return b.Int("min")
}

func (b *DistributionBucket) Time() units.Quantity {
	return b.Quantity("time")
}

var activityZoneSchema = identifiableSchema.Extend(map[string]types.Attribute{
	"distribution_buckets": attributes.Collection("DistributionBucket", summary, detailed),
	"type":                 attributes.Text(summary, detailed),
	"sensor_based":         attributes.Bool(summary, detailed),
})

var heartrateZoneSchema = activityZoneSchema.Extend(map[string]types.Attribute{
	"score":        attributes.Int(summary, detailed),
	"points":       attributes.Int(summary, detailed),
	"custom_zones": attributes.Bool(summary, detailed),
	"max":          attributes.Int(summary, detailed),
})

var powerZoneSchema = activityZoneSchema.Extend(map[string]types.Attribute{
	"bike_weight":    attributes.Float(summary, detailed).Unit(units.Kilogram),
	"athlete_weight": attributes.Float(summary, detailed).Unit(units.Kilogram),
})

type activityZone struct {
	entities.Base
}

func (z *activityZone) DistributionBuckets() []*DistributionBucket {
	return collectionOf[*DistributionBucket](z.Collection("distribution_buckets"))
}

func (z *activityZone) Type() string {
	return z.Text("type")
}

func (z *activityZone) SensorBased() bool {
	return z.Bool("sensor_based")
}

// HeartrateActivityZone is the heartrate distribution of an activity.
type HeartrateActivityZone struct {
	activityZone
}

func NewHeartrateActivityZone() *HeartrateActivityZone {
	return &HeartrateActivityZone{activityZone{Base: entities.NewBase(heartrateZoneSchema)}}
}

func DeserializeHeartrateActivityZone(ctx context.Context, raw map[string]any, bind types.Fetcher) (*HeartrateActivityZone, error) {
	return entities.Deserialize(ctx, NewHeartrateActivityZone(), raw, bind)
}

func (z *HeartrateActivityZone) Score() int64 {
	return z.Int("score")
}

func (z *HeartrateActivityZone) Points() int64 {
	return z.Int("points")
}

func (z *HeartrateActivityZone) CustomZones() bool {
	return z.Bool("custom_zones")
}

func (z *HeartrateActivityZone) Max() int64 {
	return z.Int("max")
}

// PowerActivityZone is the power distribution of an activity.
type PowerActivityZone struct {
	activityZone
}

func NewPowerActivityZone() *PowerActivityZone {
	return &PowerActivityZone{activityZone{Base: entities.NewBase(powerZoneSchema)}}
}

func DeserializePowerActivityZone(ctx context.Context, raw map[string]any, bind types.Fetcher) (*PowerActivityZone, error) {
	return entities.Deserialize(ctx, NewPowerActivityZone(), raw, bind)
}

func (z *PowerActivityZone) BikeWeight() units.Quantity {
	return z.Quantity("bike_weight")
}

func (z *PowerActivityZone) AthleteWeight() units.Quantity {
	return z.Quantity("athlete_weight")
}

// DeserializeActivityZone dispatches a zone payload on its type field.
func DeserializeActivityZone(ctx context.Context, raw map[string]any, bind types.Fetcher) (types.Entity, error) {
	switch raw["type"] {
	case "heartrate":
		return DeserializeHeartrateActivityZone(ctx, raw, bind)
	case "power":
		return DeserializePowerActivityZone(ctx, raw, bind)
	}

	return nil, errors.NewDeserializationError(fmt.Sprintf("unknown activity zone type %v", raw["type"]))
}
