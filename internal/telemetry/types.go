// File: internal/telemetry/types.go
// Description: The session-scoped match model shared by the generator, the
// polling client and the streaming client. All mutation goes through
// MatchState so clamping and history bounds hold on every update path.

package telemetry

import "time"

// PlayerStatus is a pure function of the metric that derives it; it is never
// stored independently of that metric.
type PlayerStatus string

const (
	StatusOptimal  PlayerStatus = "optimal"
	StatusWarning  PlayerStatus = "warning"
	StatusCritical PlayerStatus = "critical"
)

// AnomalyCategory classifies a tactical event.
type AnomalyCategory string

const (
	AnomalyMicro AnomalyCategory = "micro"
	AnomalyMacro AnomalyCategory = "macro"
)

// Anomaly is a discrete, timestamped tactical event carrying a signed
// win-probability impact and an optional target player.
type Anomaly struct {
	ID        string          `json:"id"`
	Category  AnomalyCategory `json:"category"`
	Message   string          `json:"message"`
	Impact    float64         `json:"impact"`
	Timestamp time.Time       `json:"timestamp"`
	Target    string          `json:"target,omitempty"`
}

// MatchStats are the optional per-player numbers a live backend provides.
// Zero values simply render as absent on the dashboards.
type MatchStats struct {
	Kills       int     `json:"kills,omitempty"`
	Deaths      int     `json:"deaths,omitempty"`
	Assists     int     `json:"assists,omitempty"`
	Gold        int     `json:"gold,omitempty"`
	CS          int     `json:"cs,omitempty"`
	VisionScore int     `json:"vision_score,omitempty"`
	ACS         float64 `json:"acs,omitempty"`
	ADR         float64 `json:"adr,omitempty"`
}

// PlayerState holds one player's live metrics.
type PlayerState struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	Agent        string       `json:"agent,omitempty"`
	Stress       float64      `json:"stress"`
	Impact       float64      `json:"impact"`
	Status       PlayerStatus `json:"status"`
	RecentErrors int          `json:"recent_errors"`
	Stats        MatchStats   `json:"stats"`
}

// GameState aggregates the match-level metrics shown on screen.
type GameState struct {
	WinProbability float64   `json:"win_probability"`
	Tempo          float64   `json:"tempo"`
	Anomalies      []Anomaly `json:"anomalies"`
}

// LiveGame is the backend's match snapshot. It is replaced wholesale on
// every successful poll that carries one; the client never merges into it.
type LiveGame struct {
	CurrentTime     string  `json:"current_time,omitempty"`
	TeamKills       int     `json:"team_kills"`
	EnemyKills      int     `json:"enemy_kills"`
	TeamGold        int     `json:"team_gold,omitempty"`
	EnemyGold       int     `json:"enemy_gold,omitempty"`
	GoldDiff        int     `json:"gold_diff,omitempty"`
	MapName         string  `json:"map_name,omitempty"`
	TeamScore       int     `json:"team_score,omitempty"`
	EnemyScore      int     `json:"enemy_score,omitempty"`
	CurrentRound    int     `json:"current_round,omitempty"`
	EconomyRating   float64 `json:"economy_rating,omitempty"`
	TeamDragons     int     `json:"team_dragons,omitempty"`
	EnemyDragons    int     `json:"enemy_dragons,omitempty"`
	TeamBarons      int     `json:"team_barons,omitempty"`
	EnemyBarons     int     `json:"enemy_barons,omitempty"`
	TeamTowers      int     `json:"team_towers,omitempty"`
	EnemyTowers     int     `json:"enemy_towers,omitempty"`
	TeamInhibitors  int     `json:"team_inhibitors,omitempty"`
	EnemyInhibitors int     `json:"enemy_inhibitors,omitempty"`
	DragonSoul      string  `json:"dragon_soul,omitempty"`
	ElderDragon     bool    `json:"elder_dragon,omitempty"`
}

// Prediction carries the model metadata the backend attaches to a poll
// response. Retained on the snapshot for dashboards.
type Prediction struct {
	WinProbability float64 `json:"win_probability"`
	Confidence     float64 `json:"confidence"`
	Prediction     string  `json:"prediction"`
	RiskLevel      string  `json:"risk_level"`
	ModelAccuracy  float64 `json:"model_accuracy"`
	RocAuc         float64 `json:"roc_auc"`
	TotalSamples   int     `json:"total_samples"`
	ModelName      string  `json:"model_name"`
}

// FeatureImportance is one entry of the model's feature ranking.
type FeatureImportance struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

// Snapshot is a point-in-time copy of the whole session state, safe to hand
// to encoders and dashboards without further locking.
type Snapshot struct {
	Game       GameState           `json:"game"`
	LiveGame   *LiveGame           `json:"live_game,omitempty"`
	Players    []PlayerState       `json:"players"`
	Prediction *Prediction         `json:"prediction,omitempty"`
	Features   []FeatureImportance `json:"feature_importance,omitempty"`
	Connected  bool                `json:"connected"`
	Taken      time.Time           `json:"taken"`
}

// Stress thresholds. Higher stress never yields a safer status.
const (
	stressCritical = 75
	stressWarning  = 45
)

// StatusForStress maps a stress value onto a player status.
func StatusForStress(stress float64) PlayerStatus {
	switch {
	case stress > stressCritical:
		return StatusCritical
	case stress > stressWarning:
		return StatusWarning
	default:
		return StatusOptimal
	}
}

// Streamed-prediction thresholds on the assist probability.
const (
	probOptimal = 0.6
	probWarning = 0.3
)

// StatusForProbability maps a streamed high-assist probability onto a status.
func StatusForProbability(p float64) PlayerStatus {
	switch {
	case p > probOptimal:
		return StatusOptimal
	case p > probWarning:
		return StatusWarning
	default:
		return StatusCritical
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
