package sale

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateSaleNo builds the business sale number: globally unique
// enough for a POS installation, time-ordered, not guessable from the
// previous one.
//
// Format: SAL + unix seconds + 6 random digits.
func GenerateSaleNo() string {
	timestamp := time.Now().Unix()
	random := rand.Intn(1000000)
	return fmt.Sprintf("SAL%d%06d", timestamp, random)
}
