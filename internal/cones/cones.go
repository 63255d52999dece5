// Package cones provides geometry of conical frustums: half angles,
// local radii, frustum heights, and geodesic distances between points on
// the cone surface. Angles are taken and returned in degrees.
package cones

import "math"

// Distance returns the shortest path between two points on a cone
// surface. Each point is given by its height along the cone axis and its
// angle around the axis; the cone itself by its large end diameter and
// half angle.
//
// The cone is developed into the flat: each point maps to a radius (the
// slant distance from the apex) and the angle between the points scales
// by sin(halfAngle). The result is the third side of the
// side-angle-side triangle.
func Distance(heightPoint1, anglePoint1, heightPoint2, anglePoint2, largeEndDiameter, halfAngle float64) float64 {
	halfAngleRad := radians(halfAngle)
	angle1 := radians(anglePoint1)
	angle2 := radians(anglePoint2)

	apexHeight := largeEndDiameter / (2 * math.Tan(halfAngleRad))

	// Cone diameter at each point
	diameter1 := (apexHeight - heightPoint1) * largeEndDiameter / apexHeight
	diameter2 := (apexHeight - heightPoint2) * largeEndDiameter / apexHeight

	// Slant length to each point; this is the radius of the point in the flat
	side1 := diameter1 / (2 * math.Sin(halfAngleRad))
	side2 := diameter2 / (2 * math.Sin(halfAngleRad))

	// Included angle between the points in the flat
	included := math.Sin(halfAngleRad) * math.Abs(angle1-angle2)

	return math.Sqrt(side1*side1 + side2*side2 - 2*side1*side2*math.Cos(included))
}

// Angle returns the cone half-angle from the end diameters and the axial
// length.
func Angle(largeEndDiameter, smallEndDiameter, length float64) float64 {
	delta := (largeEndDiameter - smallEndDiameter) / 2
	return degrees(math.Atan(delta / length))
}

// RadiusAt returns the cone radius at an axial distance from the large
// end.
func RadiusAt(largeEndDiameter, halfApexAngle, locationFromLargeEnd float64) float64 {
	return largeEndDiameter/2 - math.Tan(radians(halfApexAngle))*locationFromLargeEnd
}

// Height returns the height of the frustum of the cone.
func Height(largeEndDiameter, smallEndDiameter, halfApexAngle float64) float64 {
	annularDistance := math.Abs((largeEndDiameter - smallEndDiameter) / 2)
	return annularDistance / math.Tan(radians(halfApexAngle))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
