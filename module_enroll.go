package enroll

import "github.com/tinywasm/form"

type enrollModule struct {
	form *form.Form
}

func (m *enrollModule) HandlerName() string { return "enroll" }
func (m *enrollModule) ModuleTitle() string { return "Tech for Girls Registration" }

// ValidateData runs the form's own input checks. The submission gate does not use it.
func (m *enrollModule) ValidateData(action byte, data ...any) error {
	return m.form.ValidateData(action, data...)
}
