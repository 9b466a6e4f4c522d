package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/timada-org/todos/internal/core"
)

func (s *Store) Register(input *core.RegisterUserInput) (*core.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user := core.User{Name: input.Name}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, core.ErrDuplicateName
		}

		return nil, storeErr(err)
	}

	return &user, nil
}

func (s *Store) ListUsers() ([]core.User, error) {
	var users []core.User
	if err := s.db.Order("name").Find(&users).Error; err != nil {
		return nil, storeErr(err)
	}

	return users, nil
}

func (s *Store) UserExists(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&core.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, storeErr(err)
	}

	return count > 0, nil
}

// DeleteUser removes the user and, through the foreign key, every todo it
// owns.
func (s *Store) DeleteUser(name string) error {
	result := s.db.Where("name = ?", name).Delete(&core.User{})
	if result.Error != nil {
		return storeErr(result.Error)
	}

	if result.RowsAffected == 0 {
		return core.ErrOwnerNotFound
	}

	return nil
}
