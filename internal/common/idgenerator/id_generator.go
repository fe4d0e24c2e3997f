// Package idgenerator builds sortable run identifiers made of a prefix,
// a millisecond timestamp and a base64 encoded uuid.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct {
	now func() time.Time
}

func New() Generator {
	return &IDGenerator{now: time.Now}
}

// Generate joins prefixes with "-" and appends the timestamp and encoded uuid.
// Without a prefix only the timestamp and uuid are returned.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	encoded := base64.RawURLEncoding.EncodeToString(newUUID())
	ts := g.now().UnixMilli()

	if prefix == "" {
		return fmt.Sprintf("%d%s", ts, encoded)
	}
	return fmt.Sprintf("%s-%d%s", prefix, ts, encoded)
}

func newUUID() []byte {
	id := uuid.New()
	return id[:]
}
