package v1

import (
	"net/http/httptest"
	"testing"

	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func filterCtx(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/jobs?"+rawQuery, nil)
	return c
}

func TestParseJobFilter(t *testing.T) {
	t.Run("Should parse all filters", func(t *testing.T) {
		c := filterCtx(t, "pay_min=100&pay_max=500.5&location=Jakarta&employment_type=PER_DAY&skills=1,2,3&sort=pay_asc")

		filter, err := parseJobFilter(c)
		assert.NoError(t, err)
		assert.Equal(t, 100.0, *filter.PayMin)
		assert.Equal(t, 500.5, *filter.PayMax)
		assert.Equal(t, "Jakarta", filter.Location)
		assert.Equal(t, domain.EmploymentPerDay, filter.EmploymentType)
		assert.Equal(t, []int64{1, 2, 3}, filter.SkillIDs)
		assert.Equal(t, domain.SortPayAsc, filter.Sort)
	})

	t.Run("Should leave absent filters unset", func(t *testing.T) {
		c := filterCtx(t, "")

		filter, err := parseJobFilter(c)
		assert.NoError(t, err)
		assert.Nil(t, filter.PayMin)
		assert.Nil(t, filter.PayMax)
		assert.Empty(t, filter.Location)
		assert.Empty(t, filter.EmploymentType)
		assert.Empty(t, filter.SkillIDs)
	})

	t.Run("Should reject non-numeric pay bounds", func(t *testing.T) {
		c := filterCtx(t, "pay_min=abc")

		_, err := parseJobFilter(c)
		assert.Error(t, err)
	})

	t.Run("Should reject unknown employment type", func(t *testing.T) {
		c := filterCtx(t, "employment_type=FULL_TIME")

		_, err := parseJobFilter(c)
		assert.Error(t, err)
	})

	t.Run("Should skip empty skill entries", func(t *testing.T) {
		c := filterCtx(t, "skills=1,,2,")

		filter, err := parseJobFilter(c)
		assert.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, filter.SkillIDs)
	})

	t.Run("Should reject non-numeric skill ids", func(t *testing.T) {
		c := filterCtx(t, "skills=1,driving")

		_, err := parseJobFilter(c)
		assert.Error(t, err)
	})
}
