package middleware

import (
	"ckb/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT issues a session token for a logged-in card holder.
// userType is "customer" or "atm"; subjectID is the customer or ATM id.
// Nothing in the API requires the token yet; the frontend carries it so
// operator screens can be gated without another login round trip.
func GenerateJWT(subjectID uint, userType, cardName string, atmID uint) (string, error) {
	claims := jwt.MapClaims{
		"subjectId": subjectID,
		"userType":  userType,
		"cardName":  cardName,
		"atmId":     atmID,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}
