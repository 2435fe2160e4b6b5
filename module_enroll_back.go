//go:build !wasm

package enroll

import (
	"html"
	"strconv"
	"strings"
)

const (
	doneTitle       = "Registration Complete! 🎉"
	doneDescription = "Thank you for joining Tech for Girls! We're excited to have you."
	doneMessage     = "🎉 Your submission has been recorded. Thanks for being part of Tech for Girls!"
)

// RenderHTML renders the form for a fresh session.
func (m *enrollModule) RenderHTML() string {
	return m.renderForm(Snapshot{}, false)
}

// RenderSession renders the terminal view for a session that already
// registered and the form with the session's progress otherwise.
func (m *enrollModule) RenderSession(s *Session) string {
	if s.State() == Terminal {
		return `<section id="enroll-done"><h2>` + html.EscapeString(doneTitle) + `</h2><p>` +
			html.EscapeString(doneDescription) + `</p><p>` + html.EscapeString(doneMessage) + `</p></section>`
	}
	return m.renderForm(s.Snapshot(), s.CanSubmit())
}

func (m *enrollModule) renderForm(snap Snapshot, canSubmit bool) string {
	m.form.SetSSR(true)
	out := m.form.RenderHTML()
	out += renderColleges(snap.Fields.College)
	out += renderShare(snap.Shares)
	out += renderDropzone(snap.Attachment)
	out += `<button type="submit" id="enroll-submit"` + disabled(!canSubmit) + `>Submit Registration</button>`
	return out
}

func renderColleges(selected string) string {
	var b strings.Builder
	b.WriteString(`<label for="college">College/Department</label><select id="college" name="college">`)
	b.WriteString(`<option value="">Select your college/department</option>`)
	for _, c := range Colleges {
		b.WriteString(`<option value="` + c.ID + `"`)
		if c.ID == selected {
			b.WriteString(` selected`)
		}
		b.WriteString(`>` + html.EscapeString(c.Label) + `</option>`)
	}
	b.WriteString(`</select>`)
	return b.String()
}

func renderShare(shares int) string {
	done := shares >= Quota
	label := "Share on WhatsApp"
	if done {
		label = "Sharing Complete!"
	}
	out := `<div id="enroll-share"><h3>Share on WhatsApp</h3><span id="enroll-share-count">` +
		strconv.Itoa(shares) + `/` + strconv.Itoa(Quota) + ` clicks</span>` +
		`<button type="button" id="enroll-share-button"` + disabled(done) + `>` + label + `</button>`
	if done {
		out += `<p>✅ Sharing complete. Please continue.</p>`
	}
	return out + `</div>`
}

func renderDropzone(file *Attachment) string {
	out := `<div id="enroll-dropzone"><input type="file" id="enroll-file" accept="` + AcceptedTypes + `">`
	if file != nil {
		out += `<p id="enroll-file-name">` + html.EscapeString(file.Name) + `</p><p>Click to change file</p>`
	} else {
		out += `<p>Drag &amp; drop or click to upload</p><p>Upload your resume, photo, or any screenshot</p>`
	}
	return out + `</div>`
}

func disabled(b bool) string {
	if b {
		return ` disabled`
	}
	return ""
}
