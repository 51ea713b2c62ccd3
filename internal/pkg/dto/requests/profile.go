package requests

type UpdateProfile struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	Age              *int    `json:"age" validate:"omitempty,gte=13,lte=120"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone" validate:"omitempty,phone_number"`
	PreferredContact *string `json:"preferred_contact" validate:"omitempty,oneof=Email Phone SMS"`
	ResearchConsent  *bool   `json:"research_consent"`
}

type UploadAvatar struct {
	ContentType string `json:"content_type" validate:"required,image_content_type"`
	Size        int64  `json:"size" validate:"gt=0"`
	Data        []byte `json:"-"`
}
