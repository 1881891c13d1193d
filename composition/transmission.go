package composition

import "strconv"

// Transmission is the second component vehicles are composed with.
type Transmission interface {
	Engage() string

	// Shift changes to the requested gear. Implementations with a fixed
	// gear count reject requests outside their range.
	Shift(gear int) (string, error)

	Type() string
}

// GearError reports a shift outside the transmission's gear range.
type GearError struct {
	Gear int
	Max  int
}

// Error implements the error interface.
func (e GearError) Error() string {
	// Example: composition: gear 13 out of range (max 12)
	return "composition: gear " + strconv.Itoa(e.Gear) + " out of range (max " + strconv.Itoa(e.Max) + ")"
}

// Manual is a driver-shifted gearbox with a fixed gear count.
type Manual struct {
	Gears   int
	current int
}

// Engage implements Transmission.
func (m *Manual) Engage() string {
	return "manual transmission engaged, " + strconv.Itoa(m.Gears) + " gears, driver control"
}

// Shift implements Transmission. Gear 0 is neutral.
func (m *Manual) Shift(gear int) (string, error) {
	if gear < 0 || gear > m.Gears {
		return "", GearError{Gear: gear, Max: m.Gears}
	}
	m.current = gear
	if gear == 0 {
		return "shifted to neutral", nil
	}
	return "shifted to gear " + strconv.Itoa(gear), nil
}

// Current returns the currently selected gear.
func (m *Manual) Current() int { return m.current }

// Type implements Transmission.
func (*Manual) Type() string { return "manual" }

// Automatic shifts by itself within a drive mode.
type Automatic struct {
	Mode string // "sport", "eco", "comfort"
}

// Engage implements Transmission.
func (a *Automatic) Engage() string {
	return "automatic transmission engaged, " + a.Mode + " mode"
}

// Shift implements Transmission. The box accepts any forward gear and
// blends into it on its own schedule.
func (a *Automatic) Shift(gear int) (string, error) {
	if gear < 0 {
		return "", GearError{Gear: gear, Max: 0}
	}
	return "auto-shifting smoothly into gear " + strconv.Itoa(gear), nil
}

// ChangeMode switches the drive mode at runtime.
func (a *Automatic) ChangeMode(mode string) string {
	a.Mode = mode
	return "drive mode changed to " + mode
}

// Type implements Transmission.
func (*Automatic) Type() string { return "automatic" }
