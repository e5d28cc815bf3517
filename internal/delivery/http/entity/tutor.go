package entity

type TutorRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type TutorResponse struct {
	Term   string `json:"term"`
	Reply  string `json:"reply"`
	Source string `json:"source"` // "llm" or "glossary"
}
