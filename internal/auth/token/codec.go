// Package token signs and verifies the stateless JWTs used for sessions.
// The codec is a pure function of the signing secret; nothing here touches
// the store.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Payload is what a verified token asserts about its bearer.
type Payload struct {
	UserID    int64
	StudentID int64
}

type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(secret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

// IssueAccess signs a short-lived access token.
func (c *Codec) IssueAccess(userID, studentID int64) (string, error) {
	return c.issue(userID, studentID, c.accessTTL, false)
}

// IssueRefresh signs a long-lived refresh token. A uuid token_id claim makes
// every issued refresh token distinct even within the same second, which the
// rotation protocol depends on.
func (c *Codec) IssueRefresh(userID, studentID int64) (string, error) {
	return c.issue(userID, studentID, c.refreshTTL, true)
}

func (c *Codec) issue(userID, studentID int64, ttl time.Duration, withTokenID bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    strconv.FormatInt(userID, 10),
		"student_id": strconv.FormatInt(studentID, 10),
		"exp":        now.Add(ttl).Unix(),
		"iat":        now.Unix(),
	}
	if withTokenID {
		claims["token_id"] = uuid.New().String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry. Expired, malformed and tampered tokens
// all come back as ok=false; callers decide how to degrade.
func (c *Codec) Verify(tokenString string) (Payload, bool) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Payload{}, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, false
	}

	userID, ok1 := claimInt64(claims, "user_id")
	studentID, ok2 := claimInt64(claims, "student_id")
	if !ok1 || !ok2 {
		return Payload{}, false
	}

	return Payload{UserID: userID, StudentID: studentID}, true
}

func claimInt64(claims jwt.MapClaims, key string) (int64, bool) {
	raw, ok := claims[key].(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
