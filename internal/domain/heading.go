package domain

// Heading is a markdown heading extracted from body text. Level ranges
// 1 through 4; Line is 1-based within the full document.
type Heading struct {
	Level int
	Line  int
	Text  string
}
