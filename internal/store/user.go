package store

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dorm-records-backend/internal/model"
)

// RegisterUser creates an application account. The password is stored as a
// bcrypt hash.
func (s *gormStore) RegisterUser(ctx context.Context, username, password string) OpResult {
	if username == "" || password == "" {
		return OpResult{Code: CodeUserEmptyInput, Message: "username and password must not be empty"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.AppUser{}).Where("username = ?", username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			res = OpResult{Code: CodeUsernameTaken, Message: "username is already registered"}
			return errRule
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.AppUser{Username: username, PasswordHash: string(hash)}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "registration successful"}
		return nil
	})
}

// Login validates a username/password pair. An unknown username and a wrong
// password fail with distinct codes.
func (s *gormStore) Login(ctx context.Context, username, password string) LoginResult {
	if username == "" || password == "" {
		return LoginResult{OpResult: OpResult{Code: CodeUserEmptyInput, Message: "username and password must not be empty"}}
	}

	var user model.AppUser
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoginResult{OpResult: OpResult{Code: CodeUserNotFound, Message: "username not found"}}
	}
	if err != nil {
		return LoginResult{OpResult: OpResult{Code: CodeDBError, Message: "database error: " + err.Error()}}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{OpResult: OpResult{Code: CodeWrongPassword, Message: "wrong password"}}
	}

	return LoginResult{
		OpResult: OpResult{Code: CodeOK, Message: "login successful"},
		UserID:   user.ID,
		Username: user.Username,
	}
}
