package enroll

// Snapshot is everything the gate reads.
type Snapshot struct {
	Fields     Fields
	Shares     int
	Attachment *Attachment
}

// CanSubmit reports whether a submit attempt on s would be accepted.
func CanSubmit(s Snapshot) bool {
	return s.Fields.Complete() && s.Attachment != nil && s.Shares >= Quota
}

// Check returns the first reason s cannot be submitted, or nil.
// Sharing is checked before fields, fields before the attachment; only the
// first failure is reported.
func Check(s Snapshot) error {
	if s.Shares < Quota {
		return ErrIncompleteSharing
	}
	if !s.Fields.Complete() {
		return ErrMissingFields
	}
	if s.Attachment == nil {
		return ErrMissingAttachment
	}
	return nil
}
