package enroll

import "strings"

// AcceptedTypes is the picker filter; only the picker applies it.
const AcceptedTypes = "image/*"

// Attachment references a user-selected file. Its content is never read.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// Accepts reports whether a picker filtering on AcceptedTypes would offer a.
func Accepts(a Attachment) bool {
	prefix := strings.TrimSuffix(AcceptedTypes, "*")
	return strings.HasPrefix(a.Type, prefix)
}

// AttachmentSlot holds at most one file. The picker and drag-and-drop
// both write into the same slot.
type AttachmentSlot struct {
	file       *Attachment
	dragActive bool
}

// Set replaces whatever file the slot held.
func (s *AttachmentSlot) Set(a Attachment) {
	s.file = &a
}

// Pick keeps the first of files and drops the rest. An empty selection
// leaves the slot as it was.
func (s *AttachmentSlot) Pick(files []Attachment) {
	if len(files) == 0 {
		return
	}
	s.Set(files[0])
}

func (s *AttachmentSlot) DragEnter() { s.dragActive = true }

func (s *AttachmentSlot) DragOver() { s.dragActive = true }

func (s *AttachmentSlot) DragLeave() { s.dragActive = false }

// Drop clears the drag indicator whether or not the payload carried a file.
func (s *AttachmentSlot) Drop(files []Attachment) {
	s.dragActive = false
	s.Pick(files)
}

func (s *AttachmentSlot) DragActive() bool { return s.dragActive }

// Current returns a copy of the held file, or nil.
func (s *AttachmentSlot) Current() *Attachment {
	if s.file == nil {
		return nil
	}
	a := *s.file
	return &a
}
