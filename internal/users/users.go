package users

import "golang.org/x/crypto/bcrypt"

type UserResponse struct {
	ID              uint   `json:"id"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

func ToResponse(u *User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Username:        u.Username,
		ProfileImageURL: u.ProfileImageURL,
	}
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
