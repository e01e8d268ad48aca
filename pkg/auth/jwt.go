package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

// Claims - полезная нагрузка токена, выписанного коллаборатором идентичности
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// JWTService проверяет bearer-токены внешнего коллаборатора идентичности.
// Этот сервис ТОЛЬКО валидирует: выпуск, обновление и отзыв токенов -
// зона ответственности коллаборатора, у ядра игры таких путей нет.
type JWTService struct {
	secretKey []byte
}

// NewJWTService создает новый сервис проверки токенов
func NewJWTService(secretKey string) *JWTService {
	return &JWTService{secretKey: []byte(secretKey)}
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: token has no user_id", apperrors.ErrUnauthorized)
	}
	return claims, nil
}
