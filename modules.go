package enroll

import (
	_ "github.com/tinywasm/fmt/dictionary"
	"github.com/tinywasm/form"
)

var EnrollModule *enrollModule

func init() {
	EnrollModule = &enrollModule{form: mustForm("enroll", &EnrollData{})}
}

func mustForm(parentID string, s any) *form.Form {
	f, err := form.New(parentID, s)
	if err != nil {
		panic("enroll: mustForm: " + err.Error())
	}
	return f
}
