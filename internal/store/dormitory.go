package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"dorm-records-backend/internal/model"
)

// AddDormitory inserts a dormitory under a caller-assigned id.
func (s *gormStore) AddDormitory(ctx context.Context, id int64, name, actingUser string) OpResult {
	name = strings.TrimSpace(name)
	if id == 0 || name == "" {
		return OpResult{Code: CodeDormitoryEmptyInput, Message: "dormitory id and name must not be empty"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Dormitory{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			res = OpResult{Code: CodeDormitoryIDTaken, Message: fmt.Sprintf("dormitory with id %d already exists", id)}
			return errRule
		}
		if err := tx.Model(&model.Dormitory{}).Where("name = ?", name).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			res = OpResult{Code: CodeDormitoryNameTaken, Message: fmt.Sprintf("dormitory name %q is already used", name)}
			return errRule
		}

		dorm := model.Dormitory{ID: id, Name: name}
		if err := tx.Create(&dorm).Error; err != nil {
			return err
		}
		if err := logDormitoryInsert(tx, dorm, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "dormitory added"}
		return nil
	})
}

// UpdateDormitory renames a dormitory. Renaming to the current name is an
// informational success.
func (s *gormStore) UpdateDormitory(ctx context.Context, id int64, newName, actingUser string) OpResult {
	newName = strings.TrimSpace(newName)
	if id == 0 || newName == "" {
		return OpResult{Code: CodeDormitoryEmptyInput, Message: "dormitory id and new name must not be empty"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var dorm model.Dormitory
		if err := tx.First(&dorm, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res = OpResult{Code: CodeDormitoryNotFound, Message: fmt.Sprintf("dormitory with id %d not found", id)}
				return errRule
			}
			return err
		}

		var n int64
		if err := tx.Model(&model.Dormitory{}).Where("name = ? AND id <> ?", newName, id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			res = OpResult{Code: CodeDormitoryNameConflict, Message: fmt.Sprintf("dormitory name %q is already used by another dormitory", newName)}
			return errRule
		}

		if dorm.Name == newName {
			res = OpResult{Code: CodeOK, Message: MsgDormitoryNameUnchanged}
			return errRule // nothing changed, no mutation and no audit row
		}

		old := dorm
		dorm.Name = newName
		if err := tx.Model(&model.Dormitory{}).Where("id = ?", id).Update("name", newName).Error; err != nil {
			return err
		}
		if err := logDormitoryUpdate(tx, old, dorm, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "dormitory renamed"}
		return nil
	})
}

// DeleteDormitory removes a dormitory. Blocked while it still owns rooms.
func (s *gormStore) DeleteDormitory(ctx context.Context, id int64, actingUser string) OpResult {
	if id == 0 {
		return OpResult{Code: CodeDormitoryEmptyInput, Message: "dormitory id must not be empty"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Room{}).Where("dormitory_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			res = OpResult{Code: CodeDormitoryHasRooms, Message: "dormitory still has rooms; delete its rooms first"}
			return errRule
		}

		var dorm model.Dormitory
		if err := tx.First(&dorm, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res = OpResult{Code: CodeDormitoryGone, Message: fmt.Sprintf("dormitory with id %d not found", id)}
				return errRule
			}
			return err
		}

		if err := tx.Delete(&model.Dormitory{}, id).Error; err != nil {
			return err
		}
		if err := logDormitoryDelete(tx, dorm, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "dormitory deleted"}
		return nil
	})
}
