package enroll

import (
	"github.com/tinywasm/fmt"
	"go.uber.org/zap"
)

var (
	ErrIncompleteSharing = fmt.Err("share", "incomplete")   // EN: Share Incomplete      / ES: Compartir Incompleto
	ErrMissingFields     = fmt.Err("fields", "required")    // EN: Fields Required       / ES: Campos Requeridos
	ErrMissingAttachment = fmt.Err("file", "required")      // EN: File Required         / ES: Archivo Requerido
	ErrUnknownField      = fmt.Err("field", "not", "found") // EN: Field Not Found       / ES: Campo No Encontrado
)

const (
	DefaultStorageKey   = "techForGirlsSubmitted"
	DefaultShareBaseURL = "https://wa.me/?text="
	DefaultShareMessage = "Hey Buddy, Join Tech For Girls Community! 🚀💜"
)

type Config struct {
	StorageKey   string // default: "techForGirlsSubmitted"
	ShareBaseURL string // default: "https://wa.me/?text="
	ShareMessage string // default: DefaultShareMessage
	Opener       Opener
	Notifier     Notifier
	Logger       *zap.Logger
}

func (c *Config) applyDefaults() {
	if c.StorageKey == "" {
		c.StorageKey = DefaultStorageKey
	}
	if c.ShareBaseURL == "" {
		c.ShareBaseURL = DefaultShareBaseURL
	}
	if c.ShareMessage == "" {
		c.ShareMessage = DefaultShareMessage
	}
	if c.Opener == nil {
		c.Opener = OpenerFunc(func(string) {})
	}
	if c.Notifier == nil {
		c.Notifier = NotifierFunc(func(Notice) {})
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// ShareLink is the link a share click opens under c, defaults applied.
func (c Config) ShareLink() string {
	c.applyDefaults()
	return ShareURL(c.ShareBaseURL, c.ShareMessage)
}
