package composition

import "strconv"

// Engine is a component a vehicle is composed with, not something a
// vehicle inherits from.
type Engine interface {
	Start() string
	Stop() string

	// Boost asks the engine for full power and narrates the result.
	Boost() string

	Type() string
	Horsepower() int
}

// Petrol is a conventional combustion engine.
type Petrol struct {
	HP           int
	Displacement float64 // liters
}

// Start implements Engine.
func (p Petrol) Start() string {
	return "petrol engine starting, " + strconv.FormatFloat(p.Displacement, 'f', 1, 64) + "L roaring to life"
}

// Stop implements Engine.
func (Petrol) Stop() string { return "petrol engine stopped" }

// Boost implements Engine.
func (p Petrol) Boost() string {
	return "petrol engine raising RPM, " + strconv.Itoa(p.HP) + " HP"
}

// Type implements Engine.
func (Petrol) Type() string { return "petrol" }

// Horsepower implements Engine.
func (p Petrol) Horsepower() int { return p.HP }

// Diesel trades top-end power for torque.
type Diesel struct {
	HP     int
	Torque int // Nm
}

// Start implements Engine.
func (d Diesel) Start() string {
	return "diesel engine starting, " + strconv.Itoa(d.Torque) + " Nm of torque"
}

// Stop implements Engine.
func (Diesel) Stop() string { return "diesel engine stopped" }

// Boost implements Engine.
func (d Diesel) Boost() string {
	return "diesel engine surging, " + strconv.Itoa(d.HP) + " HP at " + strconv.Itoa(d.Torque) + " Nm"
}

// Type implements Engine.
func (Diesel) Type() string { return "diesel" }

// Horsepower implements Engine.
func (d Diesel) Horsepower() int { return d.HP }

// Electric is a battery-backed motor.
type Electric struct {
	HP         int
	BatteryKWh int
}

// Start implements Engine.
func (e Electric) Start() string {
	return "electric motor on, " + strconv.Itoa(e.BatteryKWh) + " kWh battery, silent power"
}

// Stop implements Engine.
func (Electric) Stop() string { return "electric motor off, regenerative braking active" }

// Boost implements Engine.
func (e Electric) Boost() string {
	return "electric motor delivering instant torque, " + strconv.Itoa(e.HP) + " HP"
}

// Type implements Engine.
func (Electric) Type() string { return "electric" }

// Horsepower implements Engine.
func (e Electric) Horsepower() int { return e.HP }
