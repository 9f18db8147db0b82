package services

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderID returns a registration order identifier, REG- followed by ten
// hex characters drawn from a v4 uuid. Unique by construction; the database
// unique index on registrations.order_id is the backstop.
func NewOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "REG-" + strings.ToUpper(raw[:10])
}
