package composition

import "strconv"

// Vehicle is the composition root: a brand and model plus whatever
// components it currently holds. Behavior delegates to the components;
// a missing component is skipped, not an error, so a bare chassis still
// "works" in the demo sense.
type Vehicle struct {
	Brand string
	Model string

	engine       Engine
	transmission Transmission
}

// Option configures a Vehicle at construction time.
type Option func(*Vehicle)

// WithEngine installs an engine.
func WithEngine(e Engine) Option {
	return func(v *Vehicle) { v.engine = e }
}

// WithTransmission installs a transmission.
func WithTransmission(t Transmission) Option {
	return func(v *Vehicle) { v.transmission = t }
}

// SetEngine replaces the engine at runtime. Swapping components on a live
// object is the flexibility inheritance can't offer.
func (v *Vehicle) SetEngine(e Engine) { v.engine = e }

// SetTransmission replaces the transmission at runtime.
func (v *Vehicle) SetTransmission(t Transmission) { v.transmission = t }

// Engine returns the installed engine, nil if none.
func (v *Vehicle) Engine() Engine { return v.engine }

// Transmission returns the installed transmission, nil if none.
func (v *Vehicle) Transmission() Transmission { return v.transmission }

// Start narrates starting the vehicle, delegating to each installed
// component in turn.
func (v *Vehicle) Start() []string {
	lines := []string{"starting " + v.Brand + " " + v.Model}
	if v.engine != nil {
		lines = append(lines, v.engine.Start())
	}
	if v.transmission != nil {
		lines = append(lines, v.transmission.Engage())
	}
	return lines
}

// Accelerate narrates acceleration through the engine.
func (v *Vehicle) Accelerate() []string {
	lines := []string{"accelerating"}
	if v.engine != nil {
		lines = append(lines, v.engine.Boost())
	}
	return lines
}

// Stop narrates shutting the vehicle down.
func (v *Vehicle) Stop() []string {
	lines := []string{"stopping " + v.Brand + " " + v.Model}
	if v.engine != nil {
		lines = append(lines, v.engine.Stop())
	}
	return lines
}

// specLines renders the component part of a spec sheet.
func (v *Vehicle) specLines() []string {
	var lines []string
	if v.engine != nil {
		lines = append(lines, "engine: "+v.engine.Type()+" ("+strconv.Itoa(v.engine.Horsepower())+" HP)")
	}
	if v.transmission != nil {
		lines = append(lines, "transmission: "+v.transmission.Type())
	}
	return lines
}

// Car composes a Vehicle with car-specific details.
type Car struct {
	Vehicle
	Doors int
}

// NewCar assembles a car from components.
func NewCar(brand, model string, doors int, opts ...Option) *Car {
	c := &Car{Vehicle: Vehicle{Brand: brand, Model: model}, Doors: doors}
	for _, opt := range opts {
		opt(&c.Vehicle)
	}
	return c
}

// Describe renders the car's spec sheet.
func (c *Car) Describe() []string {
	lines := []string{
		"car: " + c.Brand + " " + c.Model,
		"doors: " + strconv.Itoa(c.Doors),
	}
	return append(lines, c.specLines()...)
}

// OpenTrunk is behavior only cars have.
func (c *Car) OpenTrunk() string { return "trunk opened" }

// Truck composes a Vehicle with a cargo limit.
type Truck struct {
	Vehicle
	CargoTons float64
}

// OverCapacityError reports a load the truck cannot carry.
type OverCapacityError struct {
	Tons     float64
	Capacity float64
}

// Error implements the error interface.
func (e OverCapacityError) Error() string {
	// Example: composition: 45.0 tons exceeds capacity 40.0
	return "composition: " + strconv.FormatFloat(e.Tons, 'f', 1, 64) +
		" tons exceeds capacity " + strconv.FormatFloat(e.Capacity, 'f', 1, 64)
}

// NewTruck assembles a truck from components.
func NewTruck(brand, model string, cargoTons float64, opts ...Option) *Truck {
	t := &Truck{Vehicle: Vehicle{Brand: brand, Model: model}, CargoTons: cargoTons}
	for _, opt := range opts {
		opt(&t.Vehicle)
	}
	return t
}

// Describe renders the truck's spec sheet.
func (t *Truck) Describe() []string {
	lines := []string{
		"truck: " + t.Brand + " " + t.Model,
		"cargo capacity: " + strconv.FormatFloat(t.CargoTons, 'f', 1, 64) + " tons",
	}
	return append(lines, t.specLines()...)
}

// LoadCargo narrates loading, rejecting loads over capacity.
func (t *Truck) LoadCargo(tons float64) (string, error) {
	if tons > t.CargoTons {
		return "", OverCapacityError{Tons: tons, Capacity: t.CargoTons}
	}
	return "loading " + strconv.FormatFloat(tons, 'f', 1, 64) + " tons of cargo", nil
}

// Motorcycle composes a Vehicle with a riding style.
type Motorcycle struct {
	Vehicle
	Style string // "sport", "cruiser", "touring"
}

// NewMotorcycle assembles a motorcycle from components.
func NewMotorcycle(brand, model, style string, opts ...Option) *Motorcycle {
	m := &Motorcycle{Vehicle: Vehicle{Brand: brand, Model: model}, Style: style}
	for _, opt := range opts {
		opt(&m.Vehicle)
	}
	return m
}

// Describe renders the motorcycle's spec sheet.
func (m *Motorcycle) Describe() []string {
	lines := []string{
		"motorcycle: " + m.Brand + " " + m.Model,
		"style: " + m.Style,
	}
	return append(lines, m.specLines()...)
}

// Wheelie is behavior only motorcycles have.
func (m *Motorcycle) Wheelie() string { return "performing a wheelie" }
