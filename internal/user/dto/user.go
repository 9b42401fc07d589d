package dto

type RegisterRequest struct {
	StudentID            string   `json:"student_id" binding:"required,numeric"`
	Password             string   `json:"password" binding:"required,min=6"`
	Name                 string   `json:"name" binding:"required"`
	FirstTrack           string   `json:"first_track"`
	SecondTrack          string   `json:"second_track"`
	IsNotificationAgreed bool     `json:"is_notification_agreed"`
	CategoryNames        []string `json:"category_names"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type ToggleCategoryResponse struct {
	Action       string `json:"action"`
	CategoryName string `json:"category_name"`
}

type ProfileResponse struct {
	ID                   string             `json:"id"`
	StudentID            string             `json:"student_id"`
	Name                 string             `json:"name"`
	FirstTrack           string             `json:"first_track"`
	SecondTrack          string             `json:"second_track"`
	IsNotificationAgreed bool               `json:"is_notification_agreed"`
	Categories           []CategoryResponse `json:"categories"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}
