package usecase

import (
	"strconv"
	"time"

	postdomain "campus-notice-backend/internal/post/domain"
	postdto "campus-notice-backend/internal/post/dto"
	"campus-notice-backend/internal/post/repository"
	userrepo "campus-notice-backend/internal/user/repository"
	"campus-notice-backend/pkg/paging"
)

const (
	urgentPostCap        = 3
	defaultCategoryLimit = 5
	defaultNotifiedLimit = 5
	defaultInterestLimit = 3
)

type PostUsecase interface {
	Urgent() (*postdto.UrgentPostsResponse, error)
	ByCategory(category, cursor string, limit int) (*postdto.PostPageResponse, error)
	ByNotified(userID int64, cursor string, limit int) (*postdto.PostPageResponse, error)
	ByInterest(userID int64, cursor string, limit int) (*postdto.PostPageResponse, error)
}

type postUsecase struct {
	postRepo repository.PostRepository
	userRepo userrepo.UserRepository
	now      func() time.Time
}

func NewPostUsecase(postRepo repository.PostRepository, userRepo userrepo.UserRepository) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Urgent lists the notices closing soonest, with a calendar D-day for each.
func (u *postUsecase) Urgent() (*postdto.UrgentPostsResponse, error) {
	now := u.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	posts, err := u.postRepo.Urgent(todayStart, urgentPostCap)
	if err != nil {
		return nil, err
	}

	urgent := make([]postdto.UrgentPostResponse, 0, len(posts))
	for _, post := range posts {
		item := postdto.UrgentPostResponse{PostResponse: toPostResponse(post)}
		if post.EndDate != nil {
			item.DDay = DDay(*post.EndDate, now)
		}
		urgent = append(urgent, item)
	}

	return &postdto.UrgentPostsResponse{Posts: urgent, Count: len(urgent)}, nil
}

func (u *postUsecase) ByCategory(category, cursor string, limit int) (*postdto.PostPageResponse, error) {
	lastID, err := paging.ParseCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultCategoryLimit
	}

	posts, err := u.postRepo.ByCategory(category, lastID, limit)
	if err != nil {
		return nil, err
	}
	return toPageResponse(posts, limit), nil
}

func (u *postUsecase) ByNotified(userID int64, cursor string, limit int) (*postdto.PostPageResponse, error) {
	lastID, err := paging.ParseCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultNotifiedLimit
	}

	posts, err := u.postRepo.ByNotified(userID, lastID, limit)
	if err != nil {
		return nil, err
	}
	return toPageResponse(posts, limit), nil
}

// ByInterest lists posts in the caller's followed categories. A user who
// follows nothing gets an empty page without a post query at all.
func (u *postUsecase) ByInterest(userID int64, cursor string, limit int) (*postdto.PostPageResponse, error) {
	lastID, err := paging.ParseCursor(cursor)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultInterestLimit
	}

	names, err := u.userRepo.CategoryNames(userID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return &postdto.PostPageResponse{Posts: []postdto.PostResponse{}, HasMore: false}, nil
	}

	posts, err := u.postRepo.ByCategories(names, lastID, limit)
	if err != nil {
		return nil, err
	}
	return toPageResponse(posts, limit), nil
}

// DDay counts calendar days until end, today included as zero. Both sides are
// truncated to their date boundary before subtracting so partial days never
// round the count.
func DDay(end, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(today) / (24 * time.Hour))
}

func toPageResponse(posts []postdomain.Post, limit int) *postdto.PostPageResponse {
	page := paging.Window(posts, limit, func(p postdomain.Post) int64 { return p.ID })

	items := make([]postdto.PostResponse, 0, len(page.Items))
	for _, post := range page.Items {
		items = append(items, toPostResponse(post))
	}

	return &postdto.PostPageResponse{
		Posts:      items,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
		Count:      len(items),
	}
}

func toPostResponse(post postdomain.Post) postdto.PostResponse {
	return postdto.PostResponse{
		ID:        strconv.FormatInt(post.ID, 10),
		Title:     post.Title,
		Content:   post.Content,
		Summary:   post.Summary,
		Link:      post.Link,
		Image:     post.Image,
		Category:  post.Category,
		StartDate: isoTime(post.StartDate),
		EndDate:   isoTime(post.EndDate),
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.Format(time.RFC3339),
	}
}

func isoTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
