package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/engmath/mathtools/internal/algebra"
	"github.com/engmath/mathtools/internal/cones"
	"github.com/engmath/mathtools/internal/section"
)

type scalarResponse struct {
	Tool   string  `json:"tool"`
	Result float64 `json:"result"`
}

type conesDistanceRequest struct {
	HeightPoint1     float64 `json:"height_point_1"`
	AnglePoint1      float64 `json:"angle_point_1"`
	HeightPoint2     float64 `json:"height_point_2"`
	AnglePoint2      float64 `json:"angle_point_2"`
	LargeEndDiameter float64 `json:"large_end_diameter"`
	HalfAngle        float64 `json:"half_angle"`
}

// ConesDistance returns the geodesic distance between two points on a
// cone.
func (s *Server) ConesDistance(w http.ResponseWriter, r *http.Request) {
	const tool = "cones.distance"
	var req conesDistanceRequest
	if !s.decode(w, r, tool, &req) {
		return
	}

	result := cones.Distance(req.HeightPoint1, req.AnglePoint1, req.HeightPoint2, req.AnglePoint2,
		req.LargeEndDiameter, req.HalfAngle)

	s.record(tool, map[string]interface{}{
		"height_point_1":     req.HeightPoint1,
		"angle_point_1":      req.AnglePoint1,
		"height_point_2":     req.HeightPoint2,
		"angle_point_2":      req.AnglePoint2,
		"large_end_diameter": req.LargeEndDiameter,
		"half_angle":         req.HalfAngle,
	}, formatFloat(result))
	s.writeJSON(w, http.StatusOK, scalarResponse{Tool: tool, Result: result})
}

type conesAngleRequest struct {
	LargeEndDiameter float64 `json:"large_end_diameter"`
	SmallEndDiameter float64 `json:"small_end_diameter"`
	Length           float64 `json:"length"`
}

// ConesAngle returns the cone half-angle.
func (s *Server) ConesAngle(w http.ResponseWriter, r *http.Request) {
	const tool = "cones.angle"
	var req conesAngleRequest
	if !s.decode(w, r, tool, &req) {
		return
	}

	result := cones.Angle(req.LargeEndDiameter, req.SmallEndDiameter, req.Length)

	s.record(tool, map[string]interface{}{
		"large_end_diameter": req.LargeEndDiameter,
		"small_end_diameter": req.SmallEndDiameter,
		"length":             req.Length,
	}, formatFloat(result))
	s.writeJSON(w, http.StatusOK, scalarResponse{Tool: tool, Result: result})
}

type conesRadiusRequest struct {
	LargeEndDiameter     float64 `json:"large_end_diameter"`
	HalfApexAngle        float64 `json:"half_apex_angle"`
	LocationFromLargeEnd float64 `json:"location_from_large_end"`
}

// ConesRadius returns the cone radius at an axial location.
func (s *Server) ConesRadius(w http.ResponseWriter, r *http.Request) {
	const tool = "cones.radius"
	var req conesRadiusRequest
	if !s.decode(w, r, tool, &req) {
		return
	}

	result := cones.RadiusAt(req.LargeEndDiameter, req.HalfApexAngle, req.LocationFromLargeEnd)

	s.record(tool, map[string]interface{}{
		"large_end_diameter":      req.LargeEndDiameter,
		"half_apex_angle":         req.HalfApexAngle,
		"location_from_large_end": req.LocationFromLargeEnd,
	}, formatFloat(result))
	s.writeJSON(w, http.StatusOK, scalarResponse{Tool: tool, Result: result})
}

type conesHeightRequest struct {
	LargeEndDiameter float64 `json:"large_end_diameter"`
	SmallEndDiameter float64 `json:"small_end_diameter"`
	HalfApexAngle    float64 `json:"half_apex_angle"`
}

// ConesHeight returns the frustum height.
func (s *Server) ConesHeight(w http.ResponseWriter, r *http.Request) {
	const tool = "cones.height"
	var req conesHeightRequest
	if !s.decode(w, r, tool, &req) {
		return
	}

	result := cones.Height(req.LargeEndDiameter, req.SmallEndDiameter, req.HalfApexAngle)

	s.record(tool, map[string]interface{}{
		"large_end_diameter": req.LargeEndDiameter,
		"small_end_diameter": req.SmallEndDiameter,
		"half_apex_angle":    req.HalfApexAngle,
	}, formatFloat(result))
	s.writeJSON(w, http.StatusOK, scalarResponse{Tool: tool, Result: result})
}

type sectionRequest struct {
	Width     float64 `json:"width,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
	Depth     float64 `json:"depth,omitempty"`
	WebThick  float64 `json:"web_thick,omitempty"`
	FlgWidth  float64 `json:"flg_width,omitempty"`
	FlgThick  float64 `json:"flg_thick,omitempty"`
	LongLeg   float64 `json:"long_leg,omitempty"`
	ShortLeg  float64 `json:"short_leg,omitempty"`
	OD        float64 `json:"od,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
}

type sectionResponse struct {
	Tool string     `json:"tool"`
	CX   [2]float64 `json:"cx"`
	CY   [2]float64 `json:"cy"`
	Area float64    `json:"area"`
	Ixx  float64    `json:"ixx"`
	Iyy  float64    `json:"iyy"`
	Sx   [2]float64 `json:"sx"`
	Sy   [2]float64 `json:"sy"`
}

// SectionProperties computes section properties for the shape named in
// the URL.
func (s *Server) SectionProperties(w http.ResponseWriter, r *http.Request) {
	shape := mux.Vars(r)["shape"]
	tool := "section." + shape

	var req sectionRequest
	if !s.decode(w, r, tool, &req) {
		return
	}

	var sec section.Section
	var inputs map[string]interface{}
	switch shape {
	case "bar":
		sec = section.Bar(req.Width, req.Thickness)
		inputs = map[string]interface{}{"width": req.Width, "thickness": req.Thickness}
	case "tbeam":
		sec = section.TBeam(req.Depth, req.WebThick, req.FlgWidth, req.FlgThick)
		inputs = map[string]interface{}{"depth": req.Depth, "web_thick": req.WebThick, "flg_width": req.FlgWidth, "flg_thick": req.FlgThick}
	case "angle":
		sec = section.Angle(req.LongLeg, req.ShortLeg, req.Thickness)
		inputs = map[string]interface{}{"long_leg": req.LongLeg, "short_leg": req.ShortLeg, "thickness": req.Thickness}
	case "pipe":
		sec = section.Pipe(req.OD, req.Thickness)
		inputs = map[string]interface{}{"od": req.OD, "thickness": req.Thickness}
	case "circle":
		sec = section.Circle(req.Radius)
		inputs = map[string]interface{}{"radius": req.Radius}
	case "ibeam":
		sec = section.IBeamEqualFlange(req.Depth, req.WebThick, req.FlgWidth, req.FlgThick)
		inputs = map[string]interface{}{"depth": req.Depth, "web_thick": req.WebThick, "flg_width": req.FlgWidth, "flg_thick": req.FlgThick}
	default:
		s.metrics.RecordFailure(tool)
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown shape %q", shape))
		return
	}

	s.record(tool, inputs, fmt.Sprintf("area=%g ixx=%g iyy=%g", sec.Area, sec.Ixx, sec.Iyy))
	s.writeJSON(w, http.StatusOK, sectionResponse{
		Tool: tool,
		CX:   sec.CX,
		CY:   sec.CY,
		Area: sec.Area,
		Ixx:  sec.Ixx,
		Iyy:  sec.Iyy,
		Sx:   sec.Sx(),
		Sy:   sec.Sy(),
	})
}

type srssRequest struct {
	Values []float64 `json:"values"`
}

// SRSS returns the square-root-sum-of-squares of the request values.
func (s *Server) SRSS(w http.ResponseWriter, r *http.Request) {
	const tool = "srss"
	var req srssRequest
	if !s.decode(w, r, tool, &req) {
		return
	}
	if len(req.Values) == 0 {
		s.metrics.RecordFailure(tool)
		s.writeError(w, http.StatusBadRequest, "values must not be empty")
		return
	}

	result := algebra.SRSS(req.Values...)

	s.record(tool, map[string]interface{}{"values": req.Values}, formatFloat(result))
	s.writeJSON(w, http.StatusOK, scalarResponse{Tool: tool, Result: result})
}

type pairRequest struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

type integerResponse struct {
	Tool   string `json:"tool"`
	Result int64  `json:"result"`
}

// GCD returns the greatest common divisor of two integers.
func (s *Server) GCD(w http.ResponseWriter, r *http.Request) {
	const tool = "gcd"
	var req pairRequest
	if !s.decode(w, r, tool, &req) {
		return
	}

	result := algebra.GCD(req.A, req.B)

	s.record(tool, map[string]interface{}{"a": req.A, "b": req.B}, strconv.FormatInt(result, 10))
	s.writeJSON(w, http.StatusOK, integerResponse{Tool: tool, Result: result})
}

// LCM returns the least common multiple of two integers.
func (s *Server) LCM(w http.ResponseWriter, r *http.Request) {
	const tool = "lcm"
	var req pairRequest
	if !s.decode(w, r, tool, &req) {
		return
	}
	if req.A == 0 && req.B == 0 {
		s.metrics.RecordFailure(tool)
		s.writeError(w, http.StatusBadRequest, "lcm of 0 and 0 is undefined")
		return
	}

	result := algebra.LCM(req.A, req.B)

	s.record(tool, map[string]interface{}{"a": req.A, "b": req.B}, strconv.FormatInt(result, 10))
	s.writeJSON(w, http.StatusOK, integerResponse{Tool: tool, Result: result})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
