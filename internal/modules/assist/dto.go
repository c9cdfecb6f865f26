package assist

type GenerateEmailRequest struct {
	Intent   string `json:"intent" validate:"required"`
	Tone     string `json:"tone"`
	Points   string `json:"points"`
	Name     string `json:"name" validate:"required"`
	Company  string `json:"company"`
	YourName string `json:"yourName"`
}

type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

type TranslateRequest struct {
	Text       string `json:"text" validate:"required"`
	TargetLang string `json:"targetLang" validate:"required,oneof=English Hindi"`
}

type DuplicateCheckRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type ExtractLeadRequest struct {
	Text string `json:"text" validate:"required"`
}
