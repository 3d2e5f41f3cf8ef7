package dto

type LoginRequest struct {
	Email string `json:"email"`
}

type SignupRequest struct {
	Email          string `json:"email"`
	GrowthArea     string `json:"growth_area"`
	SuccessFeeling string `json:"success_feeling"`
}

type AvatarRequest struct {
	DataURI string `json:"data_uri"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar,omitempty"`
}

type OnboardingQuestion struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
}

// WelcomeResponse feeds the sign-in screen.
type WelcomeResponse struct {
	Affirmation string               `json:"affirmation"`
	Questions   []OnboardingQuestion `json:"questions"`
}
