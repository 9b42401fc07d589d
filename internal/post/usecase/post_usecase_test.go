package usecase

import (
	"testing"
	"time"

	authdomain "campus-notice-backend/internal/auth/domain"
	notifdomain "campus-notice-backend/internal/notification/domain"
	postdomain "campus-notice-backend/internal/post/domain"
	"campus-notice-backend/internal/post/repository"
	userdomain "campus-notice-backend/internal/user/domain"
	userrepo "campus-notice-backend/internal/user/repository"
	"campus-notice-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) (*postUsecase, userrepo.UserRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &userdomain.Category{}, &userdomain.UserCategory{}, &postdomain.Post{}))

	users := userrepo.NewUserRepository(db)
	uc := &postUsecase{
		postRepo: repository.NewPostRepository(db),
		userRepo: users,
		now:      time.Now,
	}
	return uc, users, db
}

func seedPost(t *testing.T, db *gorm.DB, id int64, category string, endDate *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&postdomain.Post{
		ID:       id,
		Title:    "공지",
		Category: category,
		EndDate:  endDate,
	}).Error)
}

func TestDDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC)

	sameDay := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DDay(sameDay, now), "deadline later today is D-0")

	tomorrow := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DDay(tomorrow, now), "partial days never round up past the calendar difference")

	yesterday := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, -1, DDay(yesterday, now))
}

func TestUrgent(t *testing.T) {
	uc, _, db := setup(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	day := func(offset int) *time.Time {
		d := time.Date(2026, 3, 10+offset, 0, 0, 0, 0, time.UTC)
		return &d
	}
	seedPost(t, db, 1, "학사", day(-1)) // already closed, excluded
	seedPost(t, db, 2, "학사", day(5))
	seedPost(t, db, 3, "학사", day(0))
	seedPost(t, db, 4, "학사", day(2))
	seedPost(t, db, 5, "학사", day(9)) // beyond the cap of 3
	seedPost(t, db, 6, "학사", nil)    // no deadline, excluded

	result, err := uc.Urgent()
	require.NoError(t, err)
	require.Len(t, result.Posts, 3)

	// Soonest deadline first, D-day counted in calendar days.
	assert.Equal(t, []string{"3", "4", "2"}, []string{result.Posts[0].ID, result.Posts[1].ID, result.Posts[2].ID})
	assert.Equal(t, 0, result.Posts[0].DDay)
	assert.Equal(t, 2, result.Posts[1].DDay)
	assert.Equal(t, 5, result.Posts[2].DDay)
}

func TestByCategoryCursorChaining(t *testing.T) {
	uc, _, db := setup(t)
	for id := int64(1); id <= 10; id++ {
		seedPost(t, db, id, "학사", nil)
	}

	var seen []string
	cursor := ""
	pages := 0
	for {
		page, err := uc.ByCategory("학사", cursor, 4)
		require.NoError(t, err)
		for _, p := range page.Posts {
			seen = append(seen, p.ID)
		}
		pages++
		if !page.HasMore {
			assert.Nil(t, page.NextCursor)
			break
		}
		require.NotNil(t, page.NextCursor)
		cursor = *page.NextCursor
	}

	assert.Equal(t, 3, pages)
	// Concatenated ids across pages are strictly decreasing with no
	// duplicates, newest first.
	assert.Equal(t, []string{"10", "9", "8", "7", "6", "5", "4", "3", "2", "1"}, seen)
}

func TestByCategoryExactFinalPage(t *testing.T) {
	uc, _, db := setup(t)
	for id := int64(1); id <= 4; id++ {
		seedPost(t, db, id, "학사", nil)
	}

	// The set size equals the page size: the probe row is absent, so this
	// is the last page.
	page, err := uc.ByCategory("학사", "", 4)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 4)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestByCategoryInvalidCursor(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.ByCategory("학사", "not-a-cursor", 4)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestByInterest(t *testing.T) {
	uc, users, db := setup(t)

	user := &authdomain.User{StudentID: 20230001, Name: "Kim Cheolsu"}
	require.NoError(t, db.Create(user).Error)
	_, err := users.ToggleCategory(user.ID, "CS")
	require.NoError(t, err)
	_, err = users.ToggleCategory(user.ID, "Math")
	require.NoError(t, err)

	seedPost(t, db, 10, "CS", nil)
	seedPost(t, db, 9, "Math", nil)
	seedPost(t, db, 8, "Art", nil)
	seedPost(t, db, 7, "CS", nil)

	page, err := uc.ByInterest(user.ID, "", 3)
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, []string{"10", "9", "7"}, []string{page.Posts[0].ID, page.Posts[1].ID, page.Posts[2].ID})
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestByInterestNoFollowedCategories(t *testing.T) {
	uc, _, db := setup(t)

	user := &authdomain.User{StudentID: 20230001, Name: "Kim Cheolsu"}
	require.NoError(t, db.Create(user).Error)
	seedPost(t, db, 1, "CS", nil)

	// No interests: empty page without touching the posts table.
	page, err := uc.ByInterest(user.ID, "", 3)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestByNotified(t *testing.T) {
	uc, _, db := setup(t)

	user := &authdomain.User{StudentID: 20230001, Name: "Kim Cheolsu"}
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, db.AutoMigrate(&notifdomain.Notification{}))
	for id := int64(1); id <= 4; id++ {
		seedPost(t, db, id, "학사", nil)
	}
	require.NoError(t, db.Create(&notifdomain.Notification{UserID: user.ID, PostID: 1}).Error)
	require.NoError(t, db.Create(&notifdomain.Notification{UserID: user.ID, PostID: 3}).Error)

	page, err := uc.ByNotified(user.ID, "", 5)
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, []string{"3", "1"}, []string{page.Posts[0].ID, page.Posts[1].ID})
	assert.False(t, page.HasMore)
}
