// Package geometry measures simple shapes.
package geometry

// UnitArea is the area of the unit square.
const UnitArea = 1
