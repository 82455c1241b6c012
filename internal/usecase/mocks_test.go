package usecase_test

import (
	"context"

	"go-jobmarket-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) GetAll(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) Seed(ctx context.Context, skills []domain.Skill) error {
	return m.Called(ctx, skills).Error(0)
}

type MockSeekerProfileRepo struct {
	mock.Mock
}

func (m *MockSeekerProfileRepo) Create(ctx context.Context, profile *domain.SeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockSeekerProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerProfile), args.Error(1)
}
func (m *MockSeekerProfileRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerProfile), args.Error(1)
}
func (m *MockSeekerProfileRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.SeekerProfile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeekerProfile), args.Error(1)
}
func (m *MockSeekerProfileRepo) Update(ctx context.Context, profile *domain.SeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockSeekerProfileRepo) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockEmployerProfileRepo struct {
	mock.Mock
}

func (m *MockEmployerProfileRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockEmployerProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerProfileRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockEmployerProfileRepo) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}
func (m *MockJobRepo) FetchByProviderID(ctx context.Context, providerProfileID int64) ([]domain.Job, error) {
	args := m.Called(ctx, providerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) SearchOpen(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithEmployer), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, providerProfileID int64, job *domain.Job) error {
	return m.Called(ctx, providerProfileID, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, providerProfileID, jobID int64) error {
	return m.Called(ctx, providerProfileID, jobID).Error(0)
}
func (m *MockJobRepo) OwnedBy(ctx context.Context, providerProfileID, jobID int64) (bool, error) {
	args := m.Called(ctx, providerProfileID, jobID)
	return args.Bool(0), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	args := m.Called(ctx, jobID, seekerProfileID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchBySeekerProfileID(ctx context.Context, seekerProfileID int64) ([]domain.ApplicationWithJob, error) {
	args := m.Called(ctx, seekerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithJob), args.Error(1)
}
func (m *MockApplicationRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, seekerProfileID, applicationID int64) error {
	return m.Called(ctx, seekerProfileID, applicationID).Error(0)
}
