package repository

import (
	"github.com/yourusername/kvizarena-api/internal/domain/entity"
)

// UserRepository определяет доступ к справочным данным игроков.
// Только чтение: учетные записи создает внешний коллаборатор идентичности.
type UserRepository interface {
	GetByID(id uint) (*entity.User, error)
}
