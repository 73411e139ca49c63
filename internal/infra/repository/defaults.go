package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// clearDefault unsets is_default on every row of model owned by userID except keepID.
func clearDefault(tx *gorm.DB, model any, userID, keepID uuid.UUID) error {
	err := tx.Model(model).
		Where("user_id = ? AND is_default = ? AND id <> ?", userID, true, keepID).
		Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("clear default: %w", err)
	}
	return nil
}

// promoteNewest marks the most recently created row of model owned by userID
// as default. No-op when the user has none left.
func promoteNewest(tx *gorm.DB, model any, userID uuid.UUID) error {
	var ids []uuid.UUID
	if err := tx.Model(model).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("find newest: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Model(model).Where("id = ?", ids[0]).Update("is_default", true).Error; err != nil {
		return fmt.Errorf("promote default: %w", err)
	}
	return nil
}
