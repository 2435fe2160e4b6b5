package enroll

import (
	"github.com/tinywasm/unixid"
	"go.uber.org/zap"
)

// State is the form's top-level state.
type State int

const (
	Interactive State = iota
	Terminal
)

func (s State) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "interactive"
}

// Session owns one form's state. It is driven by a single UI event loop
// and does no locking.
type Session struct {
	id     string
	state  State
	record *Record
	fields Fields
	shares *ShareCounter
	slot   AttachmentSlot
	config Config
	log    *zap.Logger
}

// NewSession reads the submission record once. A client that already
// registered gets a Terminal session whose commands do nothing.
func NewSession(store StateStore, cfg Config) (*Session, error) {
	cfg.applyDefaults()

	u, err := unixid.NewUnixID()
	if err != nil {
		return nil, err
	}
	id := u.GetNewID()

	record, err := LoadRecord(store, cfg.StorageKey)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     id,
		record: record,
		config: cfg,
		log:    cfg.Logger.With(zap.String("session", id)),
	}
	if record.HasSubmittedBefore() {
		s.state = Terminal
		s.log.Debug("already submitted")
		return s, nil
	}
	s.shares = newShareCounter(cfg.ShareLink(), cfg.Opener)
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

func (s *Session) OnFieldChange(key FieldKey, value string) {
	if s.state == Terminal {
		return
	}
	s.fields.Set(key, value)
}

// OnShareClick records one share and returns the count. The sharing complete
// notice fires only on the click that reaches Quota.
func (s *Session) OnShareClick() int {
	if s.state == Terminal {
		return 0
	}
	before := s.shares.Count()
	n := s.shares.Record()
	if n != before {
		s.log.Debug("share recorded", zap.Int("count", n))
	}
	if before < Quota && n == Quota {
		s.config.Notifier.Notify(NoticeSharingComplete)
	}
	return n
}

func (s *Session) OnDragEnter() {
	if s.state == Interactive {
		s.slot.DragEnter()
	}
}

func (s *Session) OnDragOver() {
	if s.state == Interactive {
		s.slot.DragOver()
	}
}

func (s *Session) OnDragLeave() {
	if s.state == Interactive {
		s.slot.DragLeave()
	}
}

func (s *Session) OnDrop(files []Attachment) {
	if s.state == Interactive {
		s.slot.Drop(files)
	}
}

func (s *Session) OnFilePicked(files []Attachment) {
	if s.state == Interactive {
		s.slot.Pick(files)
	}
}

func (s *Session) DragActive() bool { return s.slot.DragActive() }

// Snapshot copies the current gate inputs.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Fields: s.fields, Attachment: s.slot.Current()}
	if s.shares != nil {
		snap.Shares = s.shares.Count()
	}
	return snap
}

// CanSubmit is recomputed from the current state on every call.
func (s *Session) CanSubmit() bool {
	if s.state == Terminal {
		return false
	}
	return CanSubmit(s.Snapshot())
}

// ShareLink is the link opened by OnShareClick, "" in a Terminal session.
func (s *Session) ShareLink() string {
	if s.shares == nil {
		return ""
	}
	return s.shares.Link()
}

// OnSubmitAttempt runs the gate. A rejection is notified and returned with all
// entered data kept. On acceptance the record is persisted before the session
// turns Terminal; if persisting fails the session stays Interactive.
func (s *Session) OnSubmitAttempt() error {
	if s.state == Terminal {
		return nil
	}
	snap := s.Snapshot()
	if err := Check(snap); err != nil {
		if n, ok := NoticeFor(err); ok {
			s.config.Notifier.Notify(n)
		}
		s.log.Info("submission rejected", zap.Error(err))
		return err
	}

	if err := s.record.MarkSubmitted(); err != nil {
		s.log.Error("persist submission record", zap.Error(err))
		return err
	}
	s.state = Terminal

	s.log.Info("submission accepted",
		zap.String("name", snap.Fields.Name),
		zap.String("phone", snap.Fields.Phone),
		zap.String("email", snap.Fields.Email),
		zap.String("college", snap.Fields.College),
		zap.String("attachment", snap.Attachment.Name),
	)
	s.config.Notifier.Notify(NoticeSubmitted)
	return nil
}
