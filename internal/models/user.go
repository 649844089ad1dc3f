package models

type User struct {
	ID       int    `json:"id"`
	Login    string `json:"login"`
	Password string `json:"-"` // Never return password in JSON
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Role     string `json:"role"` // "chef" or "admin" or "ouvrier"
}

type UserResponse struct {
	ID     int    `json:"id"`
	Login  string `json:"login"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Role   string `json:"role"`
}

func (u *User) ToUserResponse() UserResponse {
	return UserResponse{
		ID:     u.ID,
		Login:  u.Login,
		Nom:    u.Nom,
		Prenom: u.Prenom,
		Role:   u.Role,
	}
}
