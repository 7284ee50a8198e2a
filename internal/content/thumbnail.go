package content

import "regexp"

// imageMarkup matches markdown images with an empty alt text: ![](<url>)
var imageMarkup = regexp.MustCompile(`!\[\]\(([^)\s]+)\)`)

// ExtractThumbnail returns the URL of the first embedded image in text, or fallback.
func ExtractThumbnail(text, fallback string) string {
	match := imageMarkup.FindStringSubmatch(text)
	if len(match) < 2 {
		return fallback
	}
	return match[1]
}
