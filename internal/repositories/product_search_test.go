package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCondition(t *testing.T) {
	condition, pattern := searchCondition("postgres", "Éclair_50%")
	assert.Contains(t, condition, "name ILIKE ?")
	assert.NotContains(t, condition, "LOWER(")
	assert.Equal(t, `%Éclair\_50\%%`, pattern)

	condition, pattern = searchCondition("sqlite", "iPhone")
	assert.Contains(t, condition, "LOWER(name) LIKE ?")
	assert.Equal(t, "%iphone%", pattern)
}
