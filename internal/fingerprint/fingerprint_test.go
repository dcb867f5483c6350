package fingerprint

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testDate = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

func TestCompute_StableAcrossCosmeticChanges(t *testing.T) {
	amount := decimal.RequireFromString("-3.50")

	base := Compute(1, testDate, amount, "Coffee Shop")

	assert.Equal(t, base, Compute(1, testDate, amount, "coffee shop"))
	assert.Equal(t, base, Compute(1, testDate, amount, "  Coffee   Shop  "))
	assert.Equal(t, base, Compute(1, testDate, amount, "COFFEE\tSHOP"))
	// Re-exported amount formatting must not change the hash.
	assert.Equal(t, base, Compute(1, testDate, decimal.RequireFromString("-3.5"), "Coffee Shop"))
	assert.Equal(t, base, Compute(1, testDate, decimal.RequireFromString("-3.500"), "Coffee Shop"))
}

func TestCompute_DistinguishesIdentifyingFields(t *testing.T) {
	amount := decimal.RequireFromString("-3.50")
	base := Compute(1, testDate, amount, "Coffee Shop")

	assert.NotEqual(t, base, Compute(1, testDate, decimal.RequireFromString("-3.51"), "Coffee Shop"))
	// Sub-cent differences identify distinct records; hashing must not round.
	assert.NotEqual(t, base, Compute(1, testDate, decimal.RequireFromString("-3.504"), "Coffee Shop"))
	assert.NotEqual(t, base, Compute(2, testDate, amount, "Coffee Shop"))
	assert.NotEqual(t, base, Compute(1, testDate.AddDate(0, 0, 1), amount, "Coffee Shop"))
	assert.NotEqual(t, base, Compute(1, testDate, amount, "Coffee Shoppe"))
}

func TestCompute_IsAFixedLengthHexDigest(t *testing.T) {
	h := Compute(1, testDate, decimal.RequireFromString("10.00"), "x")
	assert.Len(t, h, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", h)
}

func TestComputeChild_NeverCollides(t *testing.T) {
	amount := decimal.RequireFromString("-90.00")
	parent := Compute(1, testDate, amount, "Rent")

	half := decimal.RequireFromString("-45.00")
	childA := ComputeChild(parent, 0, half, "rent share")
	childB := ComputeChild(parent, 1, half, "rent share")

	// Identical chunk payloads are disambiguated by their ordinal.
	assert.NotEqual(t, childA, childB)
	assert.NotEqual(t, parent, childA)

	// A single chunk covering the whole parent must not collide with it.
	whole := ComputeChild(parent, 0, amount, "Rent")
	assert.NotEqual(t, parent, whole)

	// Chunk amounts are hashed at full precision, same as imported rows.
	subCent := ComputeChild(parent, 0, decimal.RequireFromString("-45.001"), "rent share")
	assert.NotEqual(t, childA, subCent)
	assert.Equal(t, childA, ComputeChild(parent, 0, decimal.RequireFromString("-45.0"), "rent share"))
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "coffee shop", NormalizeDescription("  Coffee \t Shop\n"))
	assert.Equal(t, "", NormalizeDescription("   "))
}
