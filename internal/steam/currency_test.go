package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyByID(t *testing.T) {
	c, ok := CurrencyByID(1)
	require.True(t, ok)
	assert.Equal(t, "USD", c.Code)

	c, ok = CurrencyByID(5)
	require.True(t, ok)
	assert.Equal(t, "RUB", c.Code)

	_, ok = CurrencyByID(0)
	assert.False(t, ok)

	_, ok = CurrencyByID(99)
	assert.False(t, ok)
}

func TestCurrencyByCode(t *testing.T) {
	c, ok := CurrencyByCode("EUR")
	require.True(t, ok)
	assert.Equal(t, 3, c.ID)

	_, ok = CurrencyByCode("XYZ")
	assert.False(t, ok)

	// Codes are matched exactly, not case-folded.
	_, ok = CurrencyByCode("eur")
	assert.False(t, ok)
}

func TestValidCurrencyID(t *testing.T) {
	assert.True(t, ValidCurrencyID(1))
	assert.True(t, ValidCurrencyID(32))
	assert.False(t, ValidCurrencyID(0))
	assert.False(t, ValidCurrencyID(33))
	assert.False(t, ValidCurrencyID(-1))
}

func TestCurrencies_UniqueIDs(t *testing.T) {
	seen := make(map[int]bool, len(Currencies))
	for _, c := range Currencies {
		assert.False(t, seen[c.ID], "duplicate currency id %d", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name)
	}
}
