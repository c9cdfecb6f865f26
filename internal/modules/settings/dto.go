package settings

type ProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

type BusinessRequest struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

type ListRequest struct {
	Items []string `json:"items" validate:"required,min=1,dive,required"`
}

type LanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en hi"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Manager Sales"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=Manager Sales"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}
