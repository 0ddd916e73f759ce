package model

type LoginInput struct {
	Password string `json:"password"`
}

type LoginOutput struct {
	Valid bool `json:"valid"`
}
