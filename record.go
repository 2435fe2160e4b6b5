package enroll

const submittedValue = "true"

// Record is the one-shot flag saying this client already registered.
type Record struct {
	store     StateStore
	key       string
	submitted bool
}

// LoadRecord reads the flag once; later writes by other clients are not seen.
func LoadRecord(store StateStore, key string) (*Record, error) {
	v, err := store.Get(key)
	if err != nil {
		return nil, err
	}
	return &Record{store: store, key: key, submitted: v == submittedValue}, nil
}

func (r *Record) HasSubmittedBefore() bool { return r.submitted }

// MarkSubmitted persists the flag. Calling it again changes nothing.
func (r *Record) MarkSubmitted() error {
	if err := r.store.Set(r.key, submittedValue); err != nil {
		return err
	}
	r.submitted = true
	return nil
}
