package services_test

import (
	"context"
	"testing"

	"jobhub_backend/internal/appErrors"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture() (services.JobService, *fakeJobRepo, *fakeApplicationRepo) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo()
	return services.NewJobService(jobRepo, appRepo), jobRepo, appRepo
}

func testUser(role models.UserRole) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Email:     uuid.NewString() + "@test.com",
		Role:      role,
		Active:    true,
	}
}

func createJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:            "Go developer",
		Description:      "Backend service development",
		Amount:           1500,
		WorkplaceType:    "remote",
		JobType:          "contract",
		ExperienceLevel:  "intermediate",
		RateType:         "monthly",
		Responsibilities: []string{"write code"},
		SkillsRequired:   []string{"go"},
	}
}

func TestJobCreate(t *testing.T) {
	t.Parallel()
	svc, _, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)

	job, err := svc.Create(context.Background(), owner, createJobRequest())

	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, owner.ID, job.CreatedBy)
	assert.Equal(t, models.WorkplaceRemote, job.WorkplaceType)
}

func TestJobGetByID_BlockedHidden(t *testing.T) {
	t.Parallel()
	svc, jobRepo, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)

	job, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)

	job.Status = models.JobStatusBlocked
	require.NoError(t, jobRepo.Update(context.Background(), job))

	// Заблокированная вакансия неотличима от несуществующей
	_, err = svc.GetByID(context.Background(), job.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}

func TestJobListAll_ExcludesBlocked(t *testing.T) {
	t.Parallel()
	svc, jobRepo, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)

	open, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)
	blocked, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)
	blocked.Status = models.JobStatusBlocked
	require.NoError(t, jobRepo.Update(context.Background(), blocked))

	jobs, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, open.ID, jobs[0].ID)
}

func TestJobUpdate_OwnerOnly(t *testing.T) {
	t.Parallel()
	svc, _, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)
	stranger := testUser(models.UserRoleUser)

	job, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)

	newTitle := "Senior Go developer"
	_, err = svc.Update(context.Background(), stranger, job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	updated, err := svc.Update(context.Background(), owner, job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

func TestJobUpdate_AdminBypass(t *testing.T) {
	t.Parallel()
	svc, _, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)
	admin := testUser(models.UserRoleAdmin)

	job, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)

	newTitle := "Edited by admin"
	updated, err := svc.Update(context.Background(), admin, job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

// Вакансию с откликами нельзя ни менять, ни удалять, даже владельцу
func TestJobUpdateDelete_WithApplications(t *testing.T) {
	t.Parallel()
	svc, _, appRepo := newJobFixture()
	owner := testUser(models.UserRoleUser)

	job, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)

	require.NoError(t, appRepo.Create(context.Background(), &models.JobApplication{
		JobID:  job.ID,
		UserID: uuid.NewString(),
		Status: models.ApplicationStatusPending,
	}))

	newTitle := "Changed"
	_, err = svc.Update(context.Background(), owner, job.ID, &dto.UpdateJobRequest{Title: &newTitle})
	assert.ErrorIs(t, err, appErrors.ErrJobHasApplications)

	err = svc.Delete(context.Background(), owner, job.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobHasApplications)
}

func TestJobDelete(t *testing.T) {
	t.Parallel()
	svc, _, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)

	job, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, job.ID))

	_, err = svc.GetByID(context.Background(), job.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}

func TestJobBlockUnblock(t *testing.T) {
	t.Parallel()
	svc, _, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)
	admin := testUser(models.UserRoleAdmin)

	job, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)

	// Блокировка доступна только админу
	_, err = svc.Block(context.Background(), owner, job.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	blocked, err := svc.Block(context.Background(), admin, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusBlocked, blocked.Status)

	// Обычное чтение ее больше не видит, но разблокировка - видит
	_, err = svc.GetByID(context.Background(), job.ID)
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)

	unblocked, err := svc.Unblock(context.Background(), admin, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, unblocked.Status)

	_, err = svc.GetByID(context.Background(), job.ID)
	assert.NoError(t, err)
}

func TestJobListOwn(t *testing.T) {
	t.Parallel()
	svc, _, _ := newJobFixture()
	owner := testUser(models.UserRoleUser)
	other := testUser(models.UserRoleUser)

	_, err := svc.Create(context.Background(), owner, createJobRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), other, createJobRequest())
	require.NoError(t, err)

	jobs, err := svc.ListOwn(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, owner.ID, jobs[0].CreatedBy)
}
