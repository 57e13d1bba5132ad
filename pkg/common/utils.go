package common

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateAccountID produces a human-facing account code in the portal's
// BT-prefixed format: "BT" followed by six digits. Uniqueness is enforced
// by the database; callers retry on collision.
func GenerateAccountID() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("BT%06d", 100000+r.Intn(900000))
}
