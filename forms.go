package enroll

// EnrollData is validated by EnrollModule on both frontend and backend.
// College is chosen from Colleges through its own select, outside the form.
type EnrollData struct {
	Name  string
	Phone string
	Email string
}
