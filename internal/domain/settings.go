package domain

type UserProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BusinessInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
}
