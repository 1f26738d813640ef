package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	t.Run("at", func(t *testing.T) {
		p := TypeIs(TypeEvent)
		assert.Equal(t, OpAt, p.Op)
		assert.Equal(t, PathDocumentType, p.Path)
		assert.Equal(t, []string{"event"}, p.Values)
	})

	t.Run("in", func(t *testing.T) {
		p := In(PathDocumentID, "A", "B")
		assert.Equal(t, OpIn, p.Op)
		assert.Equal(t, []string{"A", "B"}, p.Values)
	})

	t.Run("date after truncates to the day", func(t *testing.T) {
		p := DateAfter(FieldPath(TypeEvent, "event_date"), time.Date(2024, 5, 1, 17, 45, 0, 0, time.UTC))
		assert.Equal(t, OpDateAfter, p.Op)
		assert.Equal(t, "my.event.event_date", p.Path)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), p.Day)
	})
}

func TestOrderings(t *testing.T) {
	assert.False(t, Asc("my.event.event_date").Desc)
	assert.True(t, Desc("my.blog_post.release_date").Desc)
}

func TestQuery_Defaults(t *testing.T) {
	q := Query{}
	assert.Equal(t, DefaultPageSize, q.EffectivePageSize())
	assert.Equal(t, 1, q.EffectivePage())

	q = Query{PageSize: 20, Page: 3}
	assert.Equal(t, 20, q.EffectivePageSize())
	assert.Equal(t, 3, q.EffectivePage())
}
