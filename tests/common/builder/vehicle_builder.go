package builder

import (
	"fmt"

	"rentacar/internal/domain/vehicle"
)

// VehicleBuilder assembles catalog vehicles for tests with sensible
// defaults, mirroring the shape the cars source produces after
// normalization.
type VehicleBuilder struct {
	v vehicle.Vehicle
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		v: vehicle.Vehicle{
			ID:           1,
			Name:         "Corolla",
			Make:         "Toyota",
			Description:  "Toyota Corolla 2020",
			Color:        "Blue",
			Year:         2020,
			VIN:          "JT2AE09W1P0038539",
			Availability: true,
			DailyRate:    50,
			Seats:        5,
			Doors:        4,
			Fuel:         "Diesel",
		},
	}
}

func (b *VehicleBuilder) WithID(id int) *VehicleBuilder {
	b.v.ID = id
	return b
}

func (b *VehicleBuilder) WithName(name string) *VehicleBuilder {
	b.v.Name = name
	return b
}

func (b *VehicleBuilder) WithMake(mk string) *VehicleBuilder {
	b.v.Make = mk
	return b
}

func (b *VehicleBuilder) WithColor(color string) *VehicleBuilder {
	b.v.Color = color
	return b
}

func (b *VehicleBuilder) WithYear(year int) *VehicleBuilder {
	b.v.Year = year
	return b
}

func (b *VehicleBuilder) WithDailyRate(rate float64) *VehicleBuilder {
	b.v.DailyRate = rate
	return b
}

func (b *VehicleBuilder) WithFuel(fuel string) *VehicleBuilder {
	b.v.Fuel = fuel
	return b
}

func (b *VehicleBuilder) WithDoors(doors int) *VehicleBuilder {
	b.v.Doors = doors
	return b
}

func (b *VehicleBuilder) WithAvailability(available bool) *VehicleBuilder {
	b.v.Availability = available
	return b
}

func (b *VehicleBuilder) Build() vehicle.Vehicle {
	return b.v
}

// BuildMany produces n vehicles with sequential ids starting at the
// builder's id, each carrying a distinct model name.
func (b *VehicleBuilder) BuildMany(n int) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		v := b.v
		v.ID = b.v.ID + i
		v.Name = fmt.Sprintf("%s-%d", b.v.Name, v.ID)
		out = append(out, v)
	}
	return out
}
