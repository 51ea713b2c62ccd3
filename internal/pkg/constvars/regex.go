package constvars

const (
	RegexPhoneNumber = `^\+[1-9]\d{9,14}$`
)

// AllowedImageExtensions maps accepted avatar content types to the stored extension.
var AllowedImageExtensions = map[string]string{
	MIMEImageJPEG: "jpg",
	MIMEImagePNG:  "png",
	MIMEImageWEBP: "webp",
	MIMEImageGIF:  "gif",
}
