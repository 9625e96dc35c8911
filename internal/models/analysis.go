package models

import (
	"database/sql"
	"time"
)

// Analysis report sources.
const (
	SourceService  = "service"  // Report came from the external analyzer
	SourceCache    = "cache"    // Report served from the Redis cache
	SourceFallback = "fallback" // Placeholder substituted in degraded mode
)

// Recommendation is a single free-text suggestion in an analysis report.
type Recommendation struct {
	Element string  `json:"element"`
	Score   float64 `json:"score"`
	Message string  `json:"message"`
}

// AnalysisReport is the normalized result shape returned by the external
// scoring service and relayed to clients.
type AnalysisReport struct {
	VastuScore         float64          `json:"vastu_score"`          // Overall normalized score
	EnergyFlowScore    float64          `json:"energy_flow_score"`    // Sub-score
	RoomPlacementScore float64          `json:"room_placement_score"` // Sub-score
	DirectionalScore   float64          `json:"directional_score"`    // Sub-score
	Recommendations    []Recommendation `json:"recommendations"`      // Free-text suggestions
}

// AnalysisOutcome pairs a report with where it came from, so callers can
// tell a genuine analysis from the degraded-mode placeholder.
type AnalysisOutcome struct {
	Source string         `json:"source"`
	Report AnalysisReport `json:"report"`
}

// Degraded reports whether the outcome carries the placeholder report.
func (o *AnalysisOutcome) Degraded() bool {
	return o.Source == SourceFallback
}

// FallbackReport returns the fixed placeholder substituted when the external
// analyzer is unreachable or returns malformed output.
func FallbackReport() AnalysisReport {
	return AnalysisReport{
		VastuScore:         78,
		EnergyFlowScore:    76,
		RoomPlacementScore: 80,
		DirectionalScore:   77,
		Recommendations: []Recommendation{
			{Element: "Air", Score: 76, Message: "Consider improving ventilation in northwest area"},
		},
	}
}

// SpaceDescription is the structured payload submitted to the analyzer.
type SpaceDescription struct {
	PlotSize    string      `json:"plot_size"`
	RoomType    string      `json:"room_type"`
	Orientation string      `json:"orientation"`
	FloorNumber int         `json:"floor_number"`
	Rooms       []RoomInput `json:"rooms"`
}

// AnalysisResultDB represents a persisted analysis row.
type AnalysisResultDB struct {
	ID                 int64         `json:"id" db:"id"`                                     // Primary key
	UserID             int64         `json:"user_id" db:"user_id"`                           // Owning user
	SpaceID            sql.NullInt64 `json:"space_id" db:"space_id"`                         // Analyzed space, when known
	OverallScore       float64       `json:"overall_score" db:"overall_score"`               // Normalized overall score
	EnergyFlowScore    float64       `json:"energy_flow_score" db:"energy_flow_score"`       // Sub-score
	RoomPlacementScore float64       `json:"room_placement_score" db:"room_placement_score"` // Sub-score
	DirectionalScore   float64       `json:"directional_score" db:"directional_score"`       // Sub-score
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`                     // Analysis timestamp
}
