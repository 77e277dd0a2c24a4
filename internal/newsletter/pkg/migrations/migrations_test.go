package migrations

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationIDsAreOrderedAndUnique(t *testing.T) {
	seen := map[string]bool{}
	var ids []string
	for _, m := range getMigrations() {
		assert.Len(t, m.ID, 12, "migration %s", m.ID)
		assert.False(t, seen[m.ID], "duplicate migration %s", m.ID)
		assert.NotNil(t, m.Migrate, "migration %s", m.ID)
		assert.NotNil(t, m.Rollback, "migration %s", m.ID)
		seen[m.ID] = true
		ids = append(ids, m.ID)
	}
	assert.True(t, sort.StringsAreSorted(ids))
}
