package enroll

// Notice is a transient user-facing message.
type Notice struct {
	Title       string
	Description string
	Destructive bool
}

type Notifier interface {
	Notify(n Notice)
}

type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

var (
	NoticeSharingComplete = Notice{
		Title:       "Sharing complete! 🎉",
		Description: "Please continue with your registration.",
	}
	NoticeIncompleteSharing = Notice{
		Title:       "Please complete sharing first! 📱",
		Description: "You need to share on WhatsApp 5 times before submitting.",
		Destructive: true,
	}
	NoticeMissingFields = Notice{
		Title:       "Please fill all fields! 📝",
		Description: "All fields are required for registration.",
		Destructive: true,
	}
	NoticeMissingAttachment = Notice{
		Title:       "Please upload a screenshot! 📷",
		Description: "A screenshot upload is required for registration.",
		Destructive: true,
	}
	NoticeSubmitted = Notice{
		Title:       "🎉 Registration Successful!",
		Description: "Your submission has been recorded. Thanks for being part of Tech for Girls!",
	}
)

// NoticeFor maps a gate rejection to the notice shown for it.
func NoticeFor(err error) (Notice, bool) {
	switch err {
	case ErrIncompleteSharing:
		return NoticeIncompleteSharing, true
	case ErrMissingFields:
		return NoticeMissingFields, true
	case ErrMissingAttachment:
		return NoticeMissingAttachment, true
	}
	return Notice{}, false
}
