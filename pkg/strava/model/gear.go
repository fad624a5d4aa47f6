package model

import (
	"context"
	"strings"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
)

// Gear ids are strings with a type prefix ("b" for bikes, "g" for
// shoes), so gear types extend the resource state base directly.
var gearSchema = resourceStateSchema.Extend(map[string]types.Attribute{
	"id":       attributes.Text(meta, summary, detailed),
	"name":     attributes.Text(summary, detailed),
	"distance": attributes.Float(summary, detailed),
	"primary":  attributes.Bool(summary, detailed),
})

// Gear is either a bike or a pair of shoes.
type Gear interface {
	types.Entity

	ID() string
	Name() string
	Distance() float64
	Primary() bool
}

type gearBase struct {
	entities.Base
}

func (g *gearBase) ID() string {
	return g.Text("id")
}

func (g *gearBase) Name() string {
	return g.Text("name")
}

func (g *gearBase) Distance() float64 {
	return g.Float("distance")
}

func (g *gearBase) Primary() bool {
	return g.Bool("primary")
}

type Bike struct {
	gearBase
}

func NewBike() *Bike {
	return &Bike{gearBase{Base: entities.NewBase(gearSchema)}}
}

func DeserializeBike(ctx context.Context, raw map[string]any, bind types.Fetcher) (*Bike, error) {
	return entities.Deserialize(ctx, NewBike(), raw, bind)
}

type Shoe struct {
	gearBase
}

func NewShoe() *Shoe {
	return &Shoe{gearBase{Base: entities.NewBase(gearSchema)}}
}

func DeserializeShoe(ctx context.Context, raw map[string]any, bind types.Fetcher) (*Shoe, error) {
	return entities.Deserialize(ctx, NewShoe(), raw, bind)
}

// DeserializeGear resolves a gear payload to a bike or a shoe by the
// id prefix the API uses.
func DeserializeGear(ctx context.Context, raw map[string]any, bind types.Fetcher) (Gear, error) {
	if id, ok := raw["id"].(string); ok && strings.HasPrefix(id, "b") {
		return DeserializeBike(ctx, raw, bind)
	}

	return DeserializeShoe(ctx, raw, bind)
}
