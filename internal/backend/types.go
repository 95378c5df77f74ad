// File: internal/backend/types.go
// Wire shapes for the prediction service. The schema is owned by the
// backend; only the fields the client consumes are modeled here.

package backend

import (
	"time"

	"github.com/aegis-c9/aegis-cli/internal/telemetry"
)

// PredictionsResponse is the body of GET /{game}-predictions.
type PredictionsResponse struct {
	// Status may be "simulated" when the backend has no live feed. That is
	// valid data, not a failure.
	Status            string                        `json:"status,omitempty"`
	Prediction        *telemetry.Prediction         `json:"prediction,omitempty"`
	Game              *telemetry.LiveGame           `json:"game,omitempty"`
	Anomalies         []WireAnomaly                 `json:"anomalies,omitempty"`
	FeatureImportance []telemetry.FeatureImportance `json:"feature_importance,omitempty"`
	Players           []WirePlayer                  `json:"players,omitempty"`
}

// WireAnomaly is the backend's anomaly encoding.
type WireAnomaly struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Message      string  `json:"message"`
	Impact       float64 `json:"impact"`
	Timestamp    string  `json:"timestamp"`
	PlayerTarget string  `json:"playerTarget,omitempty"`
}

// ToAnomaly converts a wire anomaly into the session model. Timestamps the
// backend sends as wall-clock strings are parsed best-effort; an unparseable
// one falls back to receipt time.
func (w WireAnomaly) ToAnomaly() telemetry.Anomaly {
	ts, err := time.Parse(time.RFC3339, w.Timestamp)
	if err != nil {
		ts = time.Now()
	}
	category := telemetry.AnomalyMicro
	if w.Type == string(telemetry.AnomalyMacro) {
		category = telemetry.AnomalyMacro
	}
	return telemetry.Anomaly{
		ID:        w.ID,
		Category:  category,
		Message:   w.Message,
		Impact:    w.Impact,
		Timestamp: ts,
		Target:    w.PlayerTarget,
	}
}

// WirePlayer is one per-player record in a poll response.
type WirePlayer struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Agent       string  `json:"agent,omitempty"`
	Impact      float64 `json:"impact"`
	Kills       int     `json:"kills"`
	Deaths      int     `json:"deaths"`
	Assists     int     `json:"assists"`
	Gold        int     `json:"gold,omitempty"`
	CS          int     `json:"cs,omitempty"`
	VisionScore int     `json:"vision_score,omitempty"`
	ACS         float64 `json:"acs,omitempty"`
	ADR         float64 `json:"adr,omitempty"`
}

// StreamEvent is one newline-delimited JSON event from /stream-telemetry.
// Pointer fields distinguish "absent" from zero.
type StreamEvent struct {
	WinProb     *float64           `json:"win_prob,omitempty"`
	Predictions []StreamPrediction `json:"predictions,omitempty"`
}

// StreamPrediction is aligned by index with the session's player list.
type StreamPrediction struct {
	Name                  string  `json:"name"`
	HighAssistProbability float64 `json:"high_assist_probability"`
	Recommendation        string  `json:"recommendation"`
}

// SeriesStatsResponse is the legacy GET /api/stats?series_id= body.
type SeriesStatsResponse struct {
	Status string `json:"status,omitempty"`
	Series *struct {
		ID    string `json:"id"`
		Teams []struct {
			BaseInfo struct {
				Name string `json:"name"`
			} `json:"baseInfo"`
		} `json:"teams"`
	} `json:"series,omitempty"`
	Error string `json:"error,omitempty"`
}
