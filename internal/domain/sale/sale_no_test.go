package sale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSaleNo(t *testing.T) {
	no := GenerateSaleNo()

	assert.True(t, strings.HasPrefix(no, "SAL"))
	assert.Len(t, no, 3+10+6)

	// collisions within one second are possible but should be rare
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateSaleNo()] = true
	}
	assert.Greater(t, len(seen), 90)
}
