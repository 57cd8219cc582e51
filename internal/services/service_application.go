package services

import (
	"context"
	"time"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

type ApplicationService struct {
	apps repository.ApplicationStore
	now  func() time.Time
}

func NewApplicationService(apps repository.ApplicationStore) *ApplicationService {
	return &ApplicationService{apps: apps, now: time.Now}
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID string) ([]models.Application, error) {
	return s.apps.FindByUser(ctx, userID)
}

func (s *ApplicationService) Create(ctx context.Context, app *models.Application) error {
	if app.UserID == "" || app.JobID == "" {
		return apperror.ValidationFailed("application", "userId and jobId are required")
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	if !models.ValidApplicationStatus(app.Status) {
		return apperror.ValidationFailed("status", "invalid application status")
	}
	if app.AppliedDate.IsZero() {
		app.AppliedDate = s.now().UTC()
	}
	return s.apps.Insert(ctx, app)
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.apps.Delete(ctx, id)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperror.ValidationFailed("status", "invalid application status")
	}
	return s.apps.UpdateStatus(ctx, id, status)
}
