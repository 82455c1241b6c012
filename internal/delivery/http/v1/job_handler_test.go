package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type jobUsecaseStub struct {
	updated *domain.Job
	created *domain.Job
}

func (s *jobUsecaseStub) CreateJob(ctx context.Context, employerUserID string, job *domain.Job) error {
	s.created = job
	return nil
}

func (s *jobUsecaseStub) ListMyJobs(ctx context.Context, employerUserID string) ([]domain.Job, error) {
	return nil, nil
}

func (s *jobUsecaseStub) UpdateJob(ctx context.Context, employerUserID string, jobID int64, job *domain.Job) error {
	s.updated = job
	return nil
}

func (s *jobUsecaseStub) DeleteJob(ctx context.Context, employerUserID string, jobID int64) error {
	return nil
}

func (s *jobUsecaseStub) ListApplicantsForJob(ctx context.Context, employerUserID string, jobID int64) ([]domain.ApplicationWithSeeker, error) {
	return nil, nil
}

func updateJobCtx(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("PUT", "/api/employer/jobs/42", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	c.Set(string(domain.KeyUserID), "emp1")
	return c, rec
}

func TestJobUpdateStatusPassthrough(t *testing.T) {
	const baseFields = `"title":"Welder","description":"Pipe welding","pay":150,` +
		`"employmentType":"PER_DAY","location":"Jakarta"`

	t.Run("Omitted status stays unset", func(t *testing.T) {
		stub := &jobUsecaseStub{}
		handler := &JobHandler{jobUC: stub}

		c, rec := updateJobCtx(t, `{`+baseFields+`}`)
		handler.Update(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, stub.updated) {
			// an update without a status must not force a CLOSED job open
			assert.Equal(t, "", stub.updated.Status)
		}
	})

	t.Run("Explicit status passes through", func(t *testing.T) {
		stub := &jobUsecaseStub{}
		handler := &JobHandler{jobUC: stub}

		c, rec := updateJobCtx(t, `{`+baseFields+`,"status":"CLOSED"}`)
		handler.Update(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, stub.updated) {
			assert.Equal(t, domain.JobStatusClosed, stub.updated.Status)
		}
	})

	t.Run("Required skills decode from requiredSkills", func(t *testing.T) {
		stub := &jobUsecaseStub{}
		handler := &JobHandler{jobUC: stub}

		c, rec := updateJobCtx(t, `{`+baseFields+`,"requiredSkills":[3,5]}`)
		handler.Update(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, stub.updated) {
			assert.Len(t, stub.updated.RequiredSkills, 2)
			assert.Equal(t, int64(3), stub.updated.RequiredSkills[0].SkillID)
			assert.Equal(t, int64(5), stub.updated.RequiredSkills[1].SkillID)
		}
	})
}
