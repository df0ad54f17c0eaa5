// Package units provides dimensionally-safe physical quantities over a
// generic numeric storage type.
//
// # Overview
//
// The package is built from three layers:
//
//  1. Vectors: the exponent-tuple algebra over the seven SI base dimensions
//  2. Units: named affine transforms into each dimension's canonical SI unit
//  3. Quantities: generic values stored in canonical units, tagged at the
//     type level with their dimension
//
// A Length cannot be added to a Duration, and dividing a Length by a
// Duration produces a Velocity — all resolved at compile time, with no
// dimension checks left on the arithmetic path.
//
// # Basic Usage
//
// Construct quantities through the catalog factories, combine them, and
// extract them in any unit of the same dimension:
//
//	distance := units.Kilometers(100.0)
//	elapsed := units.Minutes(75.0)
//
//	speed := units.DivLengthDuration(distance, elapsed)
//
//	kmh, err := speed.In(units.KilometerPerHour)   // 80
//	mph, err := speed.In(units.MilePerHour)        // ≈ 49.7
//
// Values are always stored in the canonical SI unit (meters, kilograms,
// seconds, newtons, …); units only exist at the construction and extraction
// boundaries.
//
// # Storage Types
//
// Every quantity is generic over its numeric storage:
//
//	units.Meters(1.5)              // Length[float64]
//	units.Meters(float32(1.5))     // Length[float32]
//	units.Meters(int64(1500))      // Length[int64], exact canonical meters
//
// Storage admits the signed integer and floating kinds, including defined
// types over them, so fixed-point storage is a defined integer type with a
// caller-chosen scaling. Conversion arithmetic runs in float64 and narrows
// back with the storage type's own conversion: integer storage truncates
// toward zero, a documented lossy step.
//
// # Derived Operators
//
// Cross-type multiplication and division cannot be synthesized by Go
// generics alone, so they are generated: codegen/main.go holds a declarative
// table of product triples (Mass × Acceleration = Force, Voltage × Current
// = Power, …) and emits a checked function per direction into
// ops_generated.go:
//
//	force := units.MulMassAcceleration(units.Kilograms(10.0), units.Gravities(1.0))
//	energy := units.MulForceLength(force, units.Meters(2.0))
//
// The same table is registered at runtime behind Products() for
// introspection; a test asserts every triple is dimensionally consistent
// with the Vector algebra.
//
// # Temperature and Affine Units
//
// Ratio units are pure scale factors. The civil temperature scales also
// need offsets, and are constructed as affine units with the documented
// transform canonical = (value + pre)·scale + post:
//
//	t := units.DegreesFahrenheit(212.0)
//	k := t.Canonical()              // 373.15 (kelvin)
//	c, err := t.In(units.Celsius)   // 100
//
// Affine units never take part in derived units: multiplying by one fails,
// because offsets do not compose.
//
// # Error Semantics
//
// Dimension mismatches between distinct quantity types are compile errors.
// The remaining failures are ordinary synchronous errors at the unit
// boundary: *IncompatibleDimensionsError from Convert, From and In;
// *IncompatibleUnitsError from affine unit algebra; *InvalidDimensionError
// from non-integer dimension roots; *DivideByZeroError from zero division
// on integer storage. Floating storage never errors on division — IEEE ±Inf
// and NaN are valid values and propagate silently through all arithmetic,
// keeping the hot path branch-free.
//
// # Concurrency
//
// Every type here is an immutable value. The unit catalog and the lookup
// caches are populated once during package initialization and are read-only
// afterwards, so any number of goroutines may construct, convert and
// combine quantities without synchronization.
package units
