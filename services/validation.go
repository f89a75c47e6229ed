package services

import "regexp"

// Content bounds enforced on post and comment input.
const (
	MaxPostContentLength = 1000
	MaxCommentLength     = 500
	MaxPostImages        = 10
)

// Only direct links to common image formats are accepted as post attachments.
var imageURLRegex = regexp.MustCompile(`(?i)^https?://[^\s]+\.(png|jpg|jpeg|gif|webp)$`)

func IsValidImageURL(url string) bool {
	return imageURLRegex.MatchString(url)
}
