package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lcabreja/psiq/internal/models"
)

// TaskCompletion reports a patient's task completion over a date range.
// Dates are YYYY-MM-DD.
func (c *Client) TaskCompletion(ctx context.Context, patientID int, startDate, endDate string) (models.TaskReport, error) {
	var report models.TaskReport
	path := fmt.Sprintf("task/reports/tasks/%d/%s/%s", patientID, startDate, endDate)
	if err := c.get(ctx, path, &report); err != nil {
		return models.TaskReport{}, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusForbidden:    "This patient does not exist or does not belong to you.",
			http.StatusNotFound:     "No tasks found for the given criteria.",
		})
	}
	return report, nil
}

// FlashcardProgression reports a patient's flashcard review progress.
func (c *Client) FlashcardProgression(ctx context.Context, patientID int) (models.FlashcardReport, error) {
	var report models.FlashcardReport
	path := fmt.Sprintf("flashcards/reports/flashcards/%d", patientID)
	if err := c.get(ctx, path, &report); err != nil {
		return models.FlashcardReport{}, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusForbidden:    "This patient does not exist or does not belong to you.",
			http.StatusNotFound:     "No flashcards found for the given criteria.",
		})
	}
	return report, nil
}
