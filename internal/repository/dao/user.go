package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrUserUsernameExists = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type User struct {
	ID string `gorm:"primaryKey"`

	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"not null;default:cashier"` // "manager", "cashier" or "customer"
	Name     string
	Email    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var sqliteErr sqlite3.Error
		if errors.As(result.Error, &sqliteErr) &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return User{}, ErrUserUsernameExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (User, error) {
	var user User
	result := d.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// FindByCredentials matches a username/password pair as stored. Passwords
// are compared as plain text, matching the rest of the system.
func (d *UserDAO) FindByCredentials(ctx context.Context, username, password string) (User, error) {
	var user User
	result := d.db.WithContext(ctx).
		First(&user, "username = ? AND password = ?", username, password)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{ID: user.ID}).Updates(map[string]any{
		"role":  user.Role,
		"name":  user.Name,
		"email": user.Email,
	})
	if result.Error != nil {
		return User{}, result.Error
	}

	return d.FindByID(ctx, user.ID)
}

func (d *UserDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
