package enroll

import (
	"net/url"
	"strings"
)

// Quota is the number of share actions required before submission.
const Quota = 5

// Opener opens a link in a new browsing context. Nothing is awaited.
type Opener interface {
	Open(url string)
}

type OpenerFunc func(url string)

func (f OpenerFunc) Open(url string) { f(url) }

// uriComponentMarks are left unescaped by encodeURIComponent but escaped by url.QueryEscape.
var uriComponentMarks = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ShareURL appends message to base, percent-encoded the way encodeURIComponent does.
func ShareURL(base, message string) string {
	return base + uriComponentMarks.Replace(url.QueryEscape(message))
}

type ShareCounter struct {
	count  int
	link   string
	opener Opener
}

func newShareCounter(link string, opener Opener) *ShareCounter {
	return &ShareCounter{link: link, opener: opener}
}

// Record opens the share link and counts one share while below Quota,
// including the call that reaches it. At Quota it does nothing.
func (c *ShareCounter) Record() int {
	if c.count >= Quota {
		return c.count
	}
	c.opener.Open(c.link)
	c.count++
	return c.count
}

func (c *ShareCounter) Count() int { return c.count }

func (c *ShareCounter) Link() string { return c.link }
