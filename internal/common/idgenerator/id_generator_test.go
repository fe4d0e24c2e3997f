package idgenerator

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	fixed := func() time.Time { return time.UnixMilli(1700000000000) }

	t.Run("with prefixes", func(t *testing.T) {
		g := &IDGenerator{now: fixed}
		id := g.Generate("job", "materialize-recurrences")
		assert.Regexp(t, regexp.MustCompile(`^job-materialize-recurrences-1700000000000[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("without prefix", func(t *testing.T) {
		g := &IDGenerator{now: fixed}
		id := g.Generate()
		assert.Regexp(t, regexp.MustCompile(`^1700000000000[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("unique", func(t *testing.T) {
		g := New()
		assert.NotEqual(t, g.Generate("run"), g.Generate("run"))
	})
}
