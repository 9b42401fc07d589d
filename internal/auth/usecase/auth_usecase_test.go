package usecase_test

import (
	"testing"
	"time"

	authdomain "campus-notice-backend/internal/auth/domain"
	"campus-notice-backend/internal/auth/repository"
	"campus-notice-backend/internal/auth/token"
	"campus-notice-backend/internal/auth/usecase"
	"campus-notice-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) (usecase.AuthUsecase, repository.UserRepository, *token.Codec, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}))

	repo := repository.NewUserRepository(db)
	codec := token.NewCodec("test-secret", 15*time.Minute, 7*24*time.Hour)
	return usecase.NewAuthUsecase(repo, codec), repo, codec, db
}

func seedUser(t *testing.T, db *gorm.DB, studentID int64, password string) *authdomain.User {
	t.Helper()
	hash, err := repository.HashPassword(password)
	require.NoError(t, err)

	user := &authdomain.User{StudentID: studentID, Password: hash, Name: "Kim Cheolsu"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	uc, repo, _, db := setup(t)
	seedUser(t, db, 20230001, "secret123")

	tokens, err := uc.Login("20230001", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "20230001", tokens.StudentID)

	stored, err := repo.FindRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, stored, "refresh token must be persisted on login")
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _, db := setup(t)
	seedUser(t, db, 20230001, "secret123")

	_, err := uc.Login("20230001", "wrong-password")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized), "existing user with bad password is Unauthorized, not NotFound")
}

func TestLoginUnknownUser(t *testing.T) {
	uc, _, _, _ := setup(t)

	_, err := uc.Login("99999999", "secret123")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestLoginNonNumericStudentID(t *testing.T) {
	uc, _, _, _ := setup(t)

	_, err := uc.Login("not-a-number", "secret123")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestLoginWithoutPassword(t *testing.T) {
	// The password-less path carries non-password auth flows and must keep
	// working.
	uc, _, _, db := setup(t)
	seedUser(t, db, 20230001, "secret123")

	tokens, err := uc.Login("20230001", "")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefreshRotation(t *testing.T) {
	uc, repo, _, db := setup(t)
	seedUser(t, db, 20230001, "secret123")

	first, err := uc.Login("20230001", "secret123")
	require.NoError(t, err)

	second, err := uc.Refresh(first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The old token is single-use: replaying it fails even though its
	// signature has not expired.
	_, err = uc.Refresh(first.RefreshToken)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))

	// The rotated token still works.
	third, err := uc.Refresh(second.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, second.RefreshToken, third.RefreshToken)

	stored, err := repo.FindRefreshToken(first.RefreshToken)
	require.NoError(t, err)
	assert.Nil(t, stored, "rotated-out token must be gone from the store")
}

func TestRefreshGarbageToken(t *testing.T) {
	uc, _, _, _ := setup(t)

	_, err := uc.Refresh("garbage")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestRefreshStaleStoredRowIsDeleted(t *testing.T) {
	uc, repo, codec, db := setup(t)
	user := seedUser(t, db, 20230001, "secret123")

	// Cryptographically valid token whose stored row is past its expiry.
	stale, err := codec.IssueRefresh(user.ID, user.StudentID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&authdomain.RefreshToken{
		Token:     stale,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	_, err = uc.Refresh(stale)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))

	row, err := repo.FindRefreshToken(stale)
	require.NoError(t, err)
	assert.Nil(t, row, "stale row must be cleaned up on failed refresh")
}

func TestRefreshSubjectMismatch(t *testing.T) {
	uc, _, codec, db := setup(t)
	user := seedUser(t, db, 20230001, "secret123")
	other := seedUser(t, db, 20230002, "secret123")

	tok, err := codec.IssueRefresh(user.ID, user.StudentID)
	require.NoError(t, err)
	// Stored row claims a different owner than the verified payload.
	require.NoError(t, db.Create(&authdomain.RefreshToken{
		Token:     tok,
		UserID:    other.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	_, err = uc.Refresh(tok)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestLogoutIsIdempotent(t *testing.T) {
	uc, repo, _, db := setup(t)
	seedUser(t, db, 20230001, "secret123")

	tokens, err := uc.Login("20230001", "secret123")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(tokens.RefreshToken))

	stored, err := repo.FindRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Logging out again, or with no token at all, is not an error.
	require.NoError(t, uc.Logout(tokens.RefreshToken))
	require.NoError(t, uc.Logout(""))
}

func TestLogoutAll(t *testing.T) {
	uc, _, _, db := setup(t)
	user := seedUser(t, db, 20230001, "secret123")

	first, err := uc.Login("20230001", "secret123")
	require.NoError(t, err)
	second, err := uc.Login("20230001", "secret123")
	require.NoError(t, err)

	require.NoError(t, uc.LogoutAll(user.ID))

	_, err = uc.Refresh(first.RefreshToken)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
	_, err = uc.Refresh(second.RefreshToken)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestCleanupExpiredTokens(t *testing.T) {
	uc, repo, codec, db := setup(t)
	user := seedUser(t, db, 20230001, "secret123")

	valid, err := codec.IssueRefresh(user.ID, user.StudentID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&authdomain.RefreshToken{Token: valid, UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}).Error)

	expired, err := codec.IssueRefresh(user.ID, user.StudentID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&authdomain.RefreshToken{Token: expired, UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour)}).Error)

	count, err := uc.CleanupExpiredTokens()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	row, err := repo.FindRefreshToken(valid)
	require.NoError(t, err)
	assert.NotNil(t, row, "unexpired token must survive cleanup")
}

func TestValidateAccess(t *testing.T) {
	uc, _, codec, db := setup(t)
	user := seedUser(t, db, 20230001, "secret123")

	tok, err := codec.IssueAccess(user.ID, user.StudentID)
	require.NoError(t, err)

	got, err := uc.ValidateAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = uc.ValidateAccess("garbage")
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))

	// Valid signature but deleted user.
	orphan, err := codec.IssueAccess(user.ID+100, 20239999)
	require.NoError(t, err)
	_, err = uc.ValidateAccess(orphan)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}
