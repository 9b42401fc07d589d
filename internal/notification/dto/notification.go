package dto

type ToggleResponse struct {
	Action    string `json:"action"`
	PostID    string `json:"post_id"`
	PostTitle string `json:"post_title"`
}

type StatusResponse struct {
	PostID            string `json:"post_id"`
	IsNotificationSet bool   `json:"is_notification_set"`
}

type SubscriberResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

type SubscribersResponse struct {
	PostID      string               `json:"post_id"`
	Subscribers []SubscriberResponse `json:"subscribers"`
	Count       int                  `json:"count"`
}
