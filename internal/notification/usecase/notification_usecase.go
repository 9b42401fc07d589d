package usecase

import (
	"strconv"

	notifdto "campus-notice-backend/internal/notification/dto"
	"campus-notice-backend/internal/notification/repository"
	postrepo "campus-notice-backend/internal/post/repository"
	"campus-notice-backend/pkg/apperr"
)

type NotificationUsecase interface {
	Toggle(userID, postID int64) (*notifdto.ToggleResponse, error)
	Status(userID, postID int64) (*notifdto.StatusResponse, error)
	SubscribersByPost(postID int64) (*notifdto.SubscribersResponse, error)
}

type notificationUsecase struct {
	notifRepo repository.NotificationRepository
	postRepo  postrepo.PostRepository
}

func NewNotificationUsecase(notifRepo repository.NotificationRepository, postRepo postrepo.PostRepository) NotificationUsecase {
	return &notificationUsecase{
		notifRepo: notifRepo,
		postRepo:  postRepo,
	}
}

// Toggle flips the caller's subscription on a post. The post must exist; the
// flip itself is atomic and reports which direction it went.
func (u *notificationUsecase) Toggle(userID, postID int64) (*notifdto.ToggleResponse, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}

	action, err := u.notifRepo.Toggle(userID, postID)
	if err != nil {
		return nil, err
	}

	return &notifdto.ToggleResponse{
		Action:    string(action),
		PostID:    strconv.FormatInt(postID, 10),
		PostTitle: post.Title,
	}, nil
}

func (u *notificationUsecase) Status(userID, postID int64) (*notifdto.StatusResponse, error) {
	exists, err := u.notifRepo.Exists(userID, postID)
	if err != nil {
		return nil, err
	}
	return &notifdto.StatusResponse{
		PostID:            strconv.FormatInt(postID, 10),
		IsNotificationSet: exists,
	}, nil
}

func (u *notificationUsecase) SubscribersByPost(postID int64) (*notifdto.SubscribersResponse, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}

	subscribers, err := u.notifRepo.SubscribersByPost(postID)
	if err != nil {
		return nil, err
	}

	items := make([]notifdto.SubscriberResponse, 0, len(subscribers))
	for _, s := range subscribers {
		items = append(items, notifdto.SubscriberResponse{
			ID:        strconv.FormatInt(s.ID, 10),
			StudentID: strconv.FormatInt(s.StudentID, 10),
			Name:      s.Name,
		})
	}

	return &notifdto.SubscribersResponse{
		PostID:      strconv.FormatInt(postID, 10),
		Subscribers: items,
		Count:       len(items),
	}, nil
}
