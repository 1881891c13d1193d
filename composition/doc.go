// Package composition demonstrates composition over inheritance with a
// vehicle fleet: instead of a class tree where CarWithDieselEngine is a
// type, a Vehicle has an Engine and has a Transmission, and either
// component can be swapped at runtime.
//
// Components are plain interfaces with small concrete implementations.
// Vehicles are assembled with functional options and delegate their
// behavior to whatever components are present; a vehicle with no engine
// still starts, it just has nothing to say about it.
//
// All behavior methods return narration strings rather than printing, so
// the packages stay testable and the demo drivers own the console.
package composition
