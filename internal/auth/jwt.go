package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/voluntai/voluntai-api/internal/models"
)

// TokenIssuer signs and verifies the bearer credential carried on every
// protected request. The token is an HS256 JWT holding the account id, email
// and account kind, valid for a fixed window from issuance.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewTokenIssuer(secret string, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		validity: validity,
	}
}

// Claims is the decoded content of a verified token.
type Claims struct {
	UserID uint64
	Email  string
	Kind   models.UserKind
}

func (i *TokenIssuer) Generate(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"tipo":    string(user.Kind),
		"exp":     time.Now().Add(i.validity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	userIDFloat, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid user id in token claims")
	}

	email, _ := mapClaims["email"].(string)
	kind, _ := mapClaims["tipo"].(string)

	return &Claims{
		UserID: uint64(userIDFloat),
		Email:  email,
		Kind:   models.UserKind(kind),
	}, nil
}
