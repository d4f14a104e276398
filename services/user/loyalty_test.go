package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsForAmount(t *testing.T) {
	assert.Equal(t, int64(0), PointsForAmount(0))
	assert.Equal(t, int64(0), PointsForAmount(-500))
	assert.Equal(t, int64(0), PointsForAmount(9999))
	assert.Equal(t, int64(1), PointsForAmount(10000))
	assert.Equal(t, int64(15), PointsForAmount(150000))
	assert.Equal(t, int64(15), PointsForAmount(159999))
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierBronze, TierFor(0))
	assert.Equal(t, TierBronze, TierFor(999))
	assert.Equal(t, TierSilver, TierFor(1000))
	assert.Equal(t, TierSilver, TierFor(4999))
	assert.Equal(t, TierGold, TierFor(5000))
	assert.Equal(t, TierGold, TierFor(14999))
	assert.Equal(t, TierDiamond, TierFor(15000))
}

func TestRedeemDiscount(t *testing.T) {
	// Plenty of headroom: all points consumed.
	discount, consumed := RedeemDiscount(100, 200000)
	assert.Equal(t, float64(10000), discount)
	assert.Equal(t, int64(100), consumed)

	// Capped at half the subtotal.
	discount, consumed = RedeemDiscount(5000, 200000)
	assert.Equal(t, float64(100000), discount)
	assert.Equal(t, int64(1000), consumed)

	// Nothing to redeem.
	discount, consumed = RedeemDiscount(0, 200000)
	assert.Zero(t, discount)
	assert.Zero(t, consumed)

	discount, consumed = RedeemDiscount(100, 0)
	assert.Zero(t, discount)
	assert.Zero(t, consumed)
}
