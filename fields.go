package enroll

// FieldKey names one of the four registration fields.
type FieldKey string

const (
	FieldName    FieldKey = "name"
	FieldPhone   FieldKey = "phone"
	FieldEmail   FieldKey = "email"
	FieldCollege FieldKey = "college"
)

// FieldKeys lists the fields in form order.
var FieldKeys = []FieldKey{FieldName, FieldPhone, FieldEmail, FieldCollege}

func ParseFieldKey(s string) (FieldKey, error) {
	for _, k := range FieldKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrUnknownField
}

// Fields holds the text and selection inputs of the form. Values are stored
// as typed; email and phone syntax are never checked.
type Fields struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	College string `json:"college"`
}

// Set overwrites one field. Unknown keys are ignored.
func (f *Fields) Set(key FieldKey, value string) {
	switch key {
	case FieldName:
		f.Name = value
	case FieldPhone:
		f.Phone = value
	case FieldEmail:
		f.Email = value
	case FieldCollege:
		f.College = value
	}
}

func (f Fields) Get(key FieldKey) string {
	switch key {
	case FieldName:
		return f.Name
	case FieldPhone:
		return f.Phone
	case FieldEmail:
		return f.Email
	case FieldCollege:
		return f.College
	}
	return ""
}

func (f Fields) Complete() bool {
	return f.Name != "" && f.Phone != "" && f.Email != "" && f.College != ""
}

type College struct {
	ID    string
	Label string
}

var Colleges = []College{
	{ID: "computer-science", Label: "Computer Science"},
	{ID: "information-technology", Label: "Information Technology"},
	{ID: "electronics", Label: "Electronics & Communication"},
	{ID: "electrical", Label: "Electrical Engineering"},
	{ID: "mechanical", Label: "Mechanical Engineering"},
	{ID: "other", Label: "Other"},
}

// CollegeLabel returns the display label for id, or "" when id is not one of Colleges.
func CollegeLabel(id string) string {
	for _, c := range Colleges {
		if c.ID == id {
			return c.Label
		}
	}
	return ""
}
