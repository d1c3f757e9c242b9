package domain

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // local auth provider only
	CreatedOn    string `json:"created_on,omitempty"`
}
