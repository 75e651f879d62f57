package compose

import "strings"

// Marker is the literal token authors insert into blog content where an
// inline image should appear.
const Marker = "[IMAGE]"

// Segment is one rendered slice of a blog body: an optional image followed by
// a text chunk. The first segment never carries an image.
type Segment struct {
	ImageURL string `json:"imageUrl,omitempty"`
	Text     string `json:"text"`
}

// Render splits content on Marker and interleaves the image URLs at the
// marker positions. Splitting on k markers yields k+1 text segments; segment
// i (1-indexed) is preceded by image i-1 only when that index exists, so a
// content body with more markers than uploaded images degrades to missing
// images rather than failing. Images past the last marker are not rendered.
func Render(content string, imageURLs []string) []Segment {
	parts := strings.Split(content, Marker)
	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		seg := Segment{Text: part}
		if i > 0 && i-1 < len(imageURLs) {
			seg.ImageURL = imageURLs[i-1]
		}
		segments = append(segments, seg)
	}
	return segments
}

// CountMarkers reports how many image insertion points content contains.
func CountMarkers(content string) int {
	return strings.Count(content, Marker)
}

// Join assembles a content body from text chunks, placing a marker between
// each pair. It is the inverse of the split Render performs.
func Join(parts []string) string {
	return strings.Join(parts, Marker)
}
