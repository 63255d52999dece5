// Package section computes section properties (centroid, area, moments
// of inertia, section moduli) for common structural shapes.
package section

import (
	"fmt"
	"math"
)

// Section holds the computed properties of a cross section. CX and CY
// are the centroid distances to the extreme fibers on either side of
// each axis, so the section moduli can differ per fiber for asymmetric
// shapes.
type Section struct {
	CX   [2]float64
	CY   [2]float64
	Area float64
	Ixx  float64
	Iyy  float64
}

// Sx returns the section moduli about the X axis, one per extreme fiber.
func (s Section) Sx() [2]float64 {
	return [2]float64{s.Ixx / s.CY[0], s.Ixx / s.CY[1]}
}

// Sy returns the section moduli about the Y axis, one per extreme fiber.
func (s Section) Sy() [2]float64 {
	return [2]float64{s.Iyy / s.CX[0], s.Iyy / s.CX[1]}
}

func (s Section) String() string {
	sx := s.Sx()
	sy := s.Sy()
	return fmt.Sprintf(`CG X: %0.3f	%0.3f
CG Y: %0.3f	%0.3f
Area: %0.3f
Ixx: %0.3f
Iyy: %0.3f
Sx: %0.3f	%0.3f
Sy: %0.3f	%0.3f`,
		s.CX[0], s.CX[1],
		s.CY[0], s.CY[1],
		s.Area,
		s.Ixx,
		s.Iyy,
		sx[0], sx[1],
		sy[0], sy[1])
}

// Bar returns the properties of a rectangular bar bent about its strong
// axis.
func Bar(width, thickness float64) Section {
	y := width / 2
	x := thickness / 2
	return Section{
		CX:   [2]float64{x, x},
		CY:   [2]float64{y, y},
		Area: width * thickness,
		Ixx:  math.Pow(width, 3) * thickness / 12,
		Iyy:  math.Pow(thickness, 3) * width / 12,
	}
}

// TBeam returns the properties of a T beam. Depth includes the flange
// thickness.
func TBeam(depth, webThick, flangeWidth, flangeThick float64) Section {
	height := depth - webThick
	area := flangeWidth*flangeThick + height*webThick
	sumBDSquared := depth*depth*webThick + flangeThick*flangeThick*(flangeWidth-webThick)
	y := depth - sumBDSquared/(2*area)
	x := flangeWidth / 2
	bdCubed := webThick*math.Pow(y, 3) +
		flangeWidth*math.Pow(depth-y, 3) -
		(flangeWidth-webThick)*math.Pow(depth-y-flangeThick, 3)
	return Section{
		CX:   [2]float64{x, x},
		CY:   [2]float64{y, depth - y},
		Area: area,
		Ixx:  bdCubed / 3,
		Iyy:  math.Pow(webThick, 3)*height/12 + math.Pow(flangeWidth, 3)*flangeThick/12,
	}
}

// Angle returns the properties of an angle. Leg lengths include the
// thickness.
func Angle(longLeg, shortLeg, thick float64) Section {
	area := (longLeg + shortLeg - thick) * thick
	iXNaught := (thick / 3) * (shortLeg*thick*thick + math.Pow(longLeg, 3) - math.Pow(thick, 3))
	iYNaught := (thick / 3) * (longLeg*thick*thick + math.Pow(shortLeg, 3) - math.Pow(thick, 3))
	x := (1 / area) * ((thick / 2) * (shortLeg*shortLeg + longLeg*thick - thick*thick))
	y := (1 / area) * ((thick / 2) * (longLeg*longLeg + shortLeg*thick - thick*thick))
	return Section{
		CX:   [2]float64{x, shortLeg - x},
		CY:   [2]float64{y, longLeg - y},
		Area: area,
		Ixx:  iXNaught - area*y*y,
		Iyy:  iYNaught - area*x*x,
	}
}

// Pipe returns the properties of a pipe as the outer circle minus the
// inner circle.
func Pipe(od, thickness float64) Section {
	outer := Circle(od / 2)
	inner := Circle(od/2 - thickness)
	return Section{
		CX:   outer.CX,
		CY:   outer.CY,
		Area: outer.Area - inner.Area,
		Ixx:  outer.Ixx - inner.Ixx,
		Iyy:  outer.Iyy - inner.Iyy,
	}
}

// Circle returns the properties of a solid circle.
func Circle(radius float64) Section {
	i := math.Pi * math.Pow(radius, 4) / 64
	return Section{
		CX:   [2]float64{radius, radius},
		CY:   [2]float64{radius, radius},
		Area: math.Pi * radius * radius,
		Ixx:  i,
		Iyy:  i,
	}
}

// IBeamEqualFlange returns the properties of an I beam with equal
// flanges. Depth includes both flange thicknesses.
func IBeamEqualFlange(depth, webThick, flangeWidth, flangeThick float64) Section {
	h := depth - webThick
	y := depth / 2
	x := flangeWidth / 2
	return Section{
		CX:   [2]float64{x, x},
		CY:   [2]float64{y, y},
		Area: 2*flangeWidth*flangeThick + h*webThick,
		Ixx:  (flangeWidth*math.Pow(depth, 3) - math.Pow(h, 3)*(flangeWidth-webThick)) / 12,
		Iyy:  (2*flangeThick*math.Pow(flangeWidth, 3) + h*math.Pow(webThick, 3)) / 12,
	}
}

// ParallelAxis builds up a section from stacked slices using the
// parallel axis theorem. Each slice i spans from the previous height to
// heights[i] with width widths[i], measured from axisOffset. It returns
// the combined section and the moment of inertia about the datum axis.
func ParallelAxis(widths, heights []float64, axisOffset float64) (Section, float64) {
	prev := axisOffset
	var area, moment, iDatum float64
	for i := 0; i < len(widths) && i < len(heights); i++ {
		width, height := widths[i], heights[i]
		area += width * (height - prev)
		moment += width * (height*height - prev*prev) / 2
		iDatum += width * (math.Pow(height, 3) - math.Pow(prev, 3)) / 3
		prev = height
	}

	d := moment / area
	return Section{
		CY:   [2]float64{d, prev - d},
		Area: area,
		Ixx:  iDatum - area*d*d,
	}, iDatum
}
