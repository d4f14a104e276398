package user

import (
	"fmt"

	"github.com/Vic-Sports/Vic-Sports-BE-sub001/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Loyalty tiers, by ascending points threshold.
const (
	TierBronze  = "bronze"
	TierSilver  = "silver"
	TierGold    = "gold"
	TierDiamond = "diamond"
)

// pointsPerVND: 1 point per 10,000 VND of completed booking value.
const earnDivisor = 10000

// redeemValueVND: each redeemed point is worth 100 VND off a booking.
const redeemValueVND = 100

// maxRedeemShare caps the discount at half the booking subtotal.
const maxRedeemShare = 0.5

// PointsForAmount converts a completed booking total into earned points.
func PointsForAmount(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(amount) / earnDivisor
}

// TierFor maps a points balance to a loyalty tier.
func TierFor(points int64) string {
	switch {
	case points >= 15000:
		return TierDiamond
	case points >= 5000:
		return TierGold
	case points >= 1000:
		return TierSilver
	default:
		return TierBronze
	}
}

// RedeemDiscount returns the VND discount for redeeming the given points
// against a booking subtotal, and the number of points actually consumed.
// Redemption is capped at half the subtotal.
func RedeemDiscount(points int64, subTotal float64) (discount float64, consumed int64) {
	if points <= 0 || subTotal <= 0 {
		return 0, 0
	}
	maxPoints := int64(subTotal*maxRedeemShare) / redeemValueVND
	if points > maxPoints {
		points = maxPoints
	}
	return float64(points * redeemValueVND), points
}

// AwardLoyaltyPoints credits points for a completed booking and refreshes the
// tier. It returns the new balance.
func (s *DefaultUserService) AwardLoyaltyPoints(userID string, amount float64) (int64, error) {
	points := PointsForAmount(amount)
	if points == 0 {
		return 0, nil
	}

	updated, err := s.Repo.IncrementLoyaltyPoints(userID, points)
	if err != nil {
		return 0, fmt.Errorf("failed to award loyalty points: %w", err)
	}

	if tier := TierFor(updated.LoyaltyPoints); tier != updated.LoyaltyTier {
		if err := s.Repo.UpdateSetDocument(userID, bson.M{"loyaltyTier": tier}); err != nil {
			utils.GetLogger().Error("AwardLoyaltyPoints: failed to update tier",
				zap.String("userID", userID), zap.Error(err))
		}
	}

	return updated.LoyaltyPoints, nil
}

// RedeemLoyaltyPoints deducts points from the balance. The caller computes
// the corresponding discount via RedeemDiscount before calling this.
func (s *DefaultUserService) RedeemLoyaltyPoints(userID string, points int64) error {
	if points <= 0 {
		return fmt.Errorf("points to redeem must be positive")
	}

	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "loyaltyPoints": 1})
	if err != nil || usr == nil {
		return fmt.Errorf("user %s not found", userID)
	}
	if usr.LoyaltyPoints < points {
		return fmt.Errorf("insufficient loyalty points: have %d, need %d", usr.LoyaltyPoints, points)
	}

	updated, err := s.Repo.IncrementLoyaltyPoints(userID, -points)
	if err != nil {
		return fmt.Errorf("failed to redeem loyalty points: %w", err)
	}

	if tier := TierFor(updated.LoyaltyPoints); tier != updated.LoyaltyTier {
		if err := s.Repo.UpdateSetDocument(userID, bson.M{"loyaltyTier": tier}); err != nil {
			utils.GetLogger().Error("RedeemLoyaltyPoints: failed to update tier",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return nil
}

// RefundLoyaltyPoints returns previously redeemed points to the balance,
// for example when a paid booking is cancelled.
func (s *DefaultUserService) RefundLoyaltyPoints(userID string, points int64) error {
	if points <= 0 {
		return nil
	}

	updated, err := s.Repo.IncrementLoyaltyPoints(userID, points)
	if err != nil {
		return fmt.Errorf("failed to refund loyalty points: %w", err)
	}

	if tier := TierFor(updated.LoyaltyPoints); tier != updated.LoyaltyTier {
		if err := s.Repo.UpdateSetDocument(userID, bson.M{"loyaltyTier": tier}); err != nil {
			utils.GetLogger().Error("RefundLoyaltyPoints: failed to update tier",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return nil
}
