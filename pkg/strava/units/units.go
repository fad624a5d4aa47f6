package units

import "time"

// Unit codes for the quantities the API reports. This layer only tags
// values with their unit; conversion arithmetic is left to the caller.
const (
	Meter    string = "m"
	Foot     string = "ft"
	Second   string = "s"
	Kilogram string = "kg"
)

// Quantity is a number tagged with a unit code.
type Quantity struct {
	Value float64
	Unit  string
}

func NewQuantity(value float64, unit string) Quantity {
	return Quantity{Value: value, Unit: unit}
}

func Meters(value float64) Quantity {
	return NewQuantity(value, Meter)
}

func Feet(value float64) Quantity {
	return NewQuantity(value, Foot)
}

func Seconds(value float64) Quantity {
	return NewQuantity(value, Second)
}

func Kilograms(value float64) Quantity {
	return NewQuantity(value, Kilogram)
}

// Duration converts a seconds quantity to a time.Duration. Quantities
// carrying any other unit return zero.
func (q Quantity) Duration() time.Duration {
	if q.Unit != Second {
		return 0
	}
	return time.Duration(q.Value * float64(time.Second))
}
