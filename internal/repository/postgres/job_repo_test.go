package postgres

import (
	"strings"
	"testing"

	"go-jobmarket-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildJobSearchQuery(t *testing.T) {
	t.Run("Always restricts to OPEN jobs", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobFilter{})

		assert.Contains(t, query, "WHERE j.status = 'OPEN'")
		assert.Empty(t, args)
	})

	t.Run("OPEN restriction survives every filter", func(t *testing.T) {
		payMin, payMax := 100.0, 500.0
		query, _ := buildJobSearchQuery(domain.JobFilter{
			PayMin:         &payMin,
			PayMax:         &payMax,
			Location:       "Jakarta",
			EmploymentType: domain.EmploymentPerDay,
			SkillIDs:       []int64{1, 2},
			Sort:           domain.SortPayDesc,
		})

		assert.Contains(t, query, "WHERE j.status = 'OPEN'")
	})

	t.Run("Pay bounds bind positionally", func(t *testing.T) {
		payMin, payMax := 100.0, 500.0
		query, args := buildJobSearchQuery(domain.JobFilter{PayMin: &payMin, PayMax: &payMax})

		assert.Contains(t, query, "j.pay >= $1")
		assert.Contains(t, query, "j.pay <= $2")
		assert.Equal(t, []interface{}{100.0, 500.0}, args)
	})

	t.Run("Location matches as substring", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobFilter{Location: "Bandung"})

		assert.Contains(t, query, "j.location ILIKE $1")
		assert.Equal(t, []interface{}{"%Bandung%"}, args)
	})

	t.Run("Skill filter is any-of via EXISTS", func(t *testing.T) {
		query, args := buildJobSearchQuery(domain.JobFilter{SkillIDs: []int64{3, 5, 8}})

		assert.Contains(t, query, "EXISTS (SELECT 1 FROM job_skills js WHERE js.job_id = j.id AND js.skill_id = ANY($1))")
		assert.Equal(t, []interface{}{[]int64{3, 5, 8}}, args)
	})

	t.Run("Sorts carry the id tie-break", func(t *testing.T) {
		cases := []struct {
			sort    string
			orderBy string
		}{
			{domain.SortPayAsc, "ORDER BY j.pay ASC, j.id ASC"},
			{domain.SortPayDesc, "ORDER BY j.pay DESC, j.id DESC"},
			{domain.SortRecent, "ORDER BY j.created_at DESC, j.id DESC"},
			{"", "ORDER BY j.created_at DESC, j.id DESC"},
		}
		for _, tc := range cases {
			query, _ := buildJobSearchQuery(domain.JobFilter{Sort: tc.sort})
			assert.Contains(t, query, tc.orderBy, "sort %q", tc.sort)
			assert.True(t, strings.HasSuffix(query, tc.orderBy), "ORDER BY must close the query for sort %q", tc.sort)
		}
	})
}
