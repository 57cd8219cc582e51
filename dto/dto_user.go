package dto

type ErrorResponse struct {
	Message string `json:"message"`
}

type FollowRequest struct {
	CurrentUserID string `json:"currentUserId"`
}

type SendMessageRequest struct {
	SenderID       string `json:"senderId"`
	MessageContent string `json:"messageContent"`
}

type CheckUsernameRequest struct {
	Username      string `json:"username"`
	CurrentUserID string `json:"currentUserId"`
}

type CheckUsernameResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	CareerHubID    string   `json:"careerHubId"`
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	AccountPrivacy string   `json:"accountPrivacy"`
	Photo          string   `json:"photo"`
	Gender         string   `json:"gender"`
	DateOfBirth    string   `json:"dateOfBirth"`
	Biography      string   `json:"biography"`
	Skills         []string `json:"skills"`
	Location       string   `json:"location"`
	State          string   `json:"state"`
	Country        string   `json:"country"`
	Phone          string   `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries a partial profile patch: nil means "leave the
// field alone". An empty Password is dropped rather than overwriting
// the stored hash.
type ProfileUpdate struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Username       *string   `json:"username"`
	Password       *string   `json:"password"`
	AccountPrivacy *string   `json:"accountPrivacy"`
	UsernameStatus *string   `json:"usernameStatus"`
	Photo          *string   `json:"photo"`
	BannerImage    *string   `json:"bannerImage"`
	Gender         *string   `json:"gender"`
	DateOfBirth    *string   `json:"dateOfBirth"`
	Biography      *string   `json:"biography"`
	Skills         *[]string `json:"skills"`
	Experience     *string   `json:"experience"`
	Education      *string   `json:"education"`
	Location       *string   `json:"location"`
	State          *string   `json:"state"`
	Country        *string   `json:"country"`
	Phone          *string   `json:"phone"`
	GithubURL      *string   `json:"githubUrl"`
	LinkedinURL    *string   `json:"linkedinUrl"`
	TelegramID     *string   `json:"telegramId"`
	InstagramID    *string   `json:"instagramId"`
	DiscordID      *string   `json:"discordId"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
