package storage

import (
	"heirloom/db"
	"heirloom/models"
)

func CreateAnalysis(analysis *models.AiAnalysis) error {
	analysis.Status = models.AnalysisStatusPending
	if analysis.ImageURLs == nil {
		analysis.ImageURLs = []string{}
	}
	return db.DB.Create(analysis).Error
}

func GetAnalysis(userID, analysisID uint) (*models.AiAnalysis, error) {
	var analysis models.AiAnalysis
	err := db.DB.Where("id = ? AND user_id = ?", analysisID, userID).
		First(&analysis).Error
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GetAnalysisByID loads an analysis without user scoping; used by the
// background worker.
func GetAnalysisByID(analysisID uint) (*models.AiAnalysis, error) {
	var analysis models.AiAnalysis
	if err := db.DB.First(&analysis, analysisID).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func GetUserAnalyses(userID uint) ([]models.AiAnalysis, error) {
	var analyses []models.AiAnalysis
	err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&analyses).Error
	return analyses, err
}

func UpdateAnalysisStatus(analysisID uint, status string) error {
	return db.DB.Model(&models.AiAnalysis{}).
		Where("id = ?", analysisID).
		Update("status", status).Error
}

// FinishAnalysis records a terminal state together with its result payload.
func FinishAnalysis(analysisID uint, status string, results models.AnalysisResults) error {
	return db.DB.Model(&models.AiAnalysis{}).
		Where("id = ?", analysisID).
		Select("Status", "AnalysisResults").
		Updates(models.AiAnalysis{Status: status, AnalysisResults: results}).Error
}

// PendingAnalysisIDs lists analyses that were accepted but never
// dispatched, oldest first. Used to requeue work after a restart.
func PendingAnalysisIDs() ([]uint, error) {
	var ids []uint
	err := db.DB.Model(&models.AiAnalysis{}).
		Where("status = ?", models.AnalysisStatusPending).
		Order("created_at, id").
		Pluck("id", &ids).Error
	return ids, err
}
