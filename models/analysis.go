package models

import "time"

// Analysis lifecycle. Completed and failed are terminal; a terminal
// analysis is never picked up again.
const (
	AnalysisStatusPending    = "pending"
	AnalysisStatusProcessing = "processing"
	AnalysisStatusCompleted  = "completed"
	AnalysisStatusFailed     = "failed"
)

type EstimatedValue struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type AnalysisResults struct {
	Materials      []string       `json:"materials"`
	Authenticity   string         `json:"authenticity"`
	Condition      string         `json:"condition"`
	EstimatedValue EstimatedValue `json:"estimated_value"`
	Confidence     float64        `json:"confidence"`
}

type AiAnalysis struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `json:"user_id"`
	JewelryType     string          `json:"jewelry_type"`
	EstimatedEra    string          `json:"estimated_era"`
	AdditionalInfo  string          `json:"additional_info"`
	ImageURLs       []string        `json:"image_urls" gorm:"type:text;serializer:json"`
	AnalysisResults AnalysisResults `json:"analysis_results" gorm:"type:text;serializer:json"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
