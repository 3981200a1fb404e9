package repository

import (
	"context"
	"errors"

	constant "github.com/SakadaKry/CertVault/internal/constant"
	"github.com/SakadaKry/CertVault/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where(model.User{
		BaseModel: model.BaseModel{ID: userId},
	}).First(&user).Error; err != nil {
		return &user, err
	}

	return &user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s", email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Email: email}).First(&user).Error; err != nil {
		return &user, err
	}

	return &user, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User) error {
	ur.logger.Debugf("Create user with email: %s", newUser.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	role := newUser.Role
	if role == "" {
		role = constant.UserRoleMember
	}

	if err := db.WithContext(ctx).Model(&model.User{}).Create(&model.User{
		Email:      newUser.Email,
		FirstName:  newUser.FirstName,
		LastName:   newUser.LastName,
		ProfileURL: newUser.ProfileURL,
		Role:       role,
	}).Error; err != nil {
		return err
	}

	return nil
}

// GetOrCreateByEmail returns the existing account for the email or
// creates one with the MEMBER role on first sign-in.
func (ur *UserRepository) GetOrCreateByEmail(ctx context.Context, tx *gorm.DB, newUser model.User) (*model.User, error) {
	ur.logger.Debugf("Get or create user with email: %s", newUser.Email)

	db := ur.getDB(tx)

	var user *model.User
	txErr := ur.withTx(db, func(tx2 *gorm.DB) error {
		existingUser, err := ur.GetByEmail(ctx, tx2, newUser.Email)
		if err == nil {
			user = existingUser
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := ur.Create(ctx, tx2, newUser); err != nil {
			return err
		}

		user, err = ur.GetByEmail(ctx, tx2, newUser.Email)
		return err
	})

	return user, txErr
}
