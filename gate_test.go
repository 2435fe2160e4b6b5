package enroll_test

import (
	"testing"

	"github.com/tinywasm/enroll"
)

func completeSnapshot() enroll.Snapshot {
	return enroll.Snapshot{
		Fields: enroll.Fields{
			Name:    "A",
			Phone:   "1",
			Email:   "a@b.com",
			College: "computer-science",
		},
		Shares:     enroll.Quota,
		Attachment: &enroll.Attachment{Name: "shot.png", Type: "image/png"},
	}
}

func TestGate(t *testing.T) {
	t.Run("TestAccept", testGateAccept)
	t.Run("TestSharesBelowQuota", testGateSharesBelowQuota)
	t.Run("TestPriority", testGatePriority)
	t.Run("TestLenientFormats", testGateLenientFormats)
	t.Run("TestPredicateMatchesCheck", testGatePredicateMatchesCheck)
}

func testGateAccept(t *testing.T) {
	s := completeSnapshot()
	if !enroll.CanSubmit(s) {
		t.Errorf("expected CanSubmit true for complete snapshot")
	}
	if err := enroll.Check(s); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func testGateSharesBelowQuota(t *testing.T) {
	for n := 0; n < enroll.Quota; n++ {
		s := completeSnapshot()
		s.Shares = n
		if enroll.CanSubmit(s) {
			t.Errorf("shares=%d: expected CanSubmit false", n)
		}
		if err := enroll.Check(s); err != enroll.ErrIncompleteSharing {
			t.Errorf("shares=%d: expected ErrIncompleteSharing, got %v", n, err)
		}
	}
}

func testGatePriority(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*enroll.Snapshot)
		want   error
	}{
		{"sharing before fields", func(s *enroll.Snapshot) { s.Shares = 4; s.Fields.Name = "" }, enroll.ErrIncompleteSharing},
		{"sharing before attachment", func(s *enroll.Snapshot) { s.Shares = 0; s.Attachment = nil }, enroll.ErrIncompleteSharing},
		{"fields before attachment", func(s *enroll.Snapshot) { s.Fields.Email = ""; s.Attachment = nil }, enroll.ErrMissingFields},
		{"empty email", func(s *enroll.Snapshot) { s.Fields.Email = "" }, enroll.ErrMissingFields},
		{"empty college", func(s *enroll.Snapshot) { s.Fields.College = "" }, enroll.ErrMissingFields},
		{"attachment only", func(s *enroll.Snapshot) { s.Attachment = nil }, enroll.ErrMissingAttachment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := completeSnapshot()
			tt.mutate(&s)
			if err := enroll.Check(s); err != tt.want {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func testGateLenientFormats(t *testing.T) {
	s := completeSnapshot()
	s.Fields.Email = "not-an-email"
	s.Fields.Phone = "call me"
	if err := enroll.Check(s); err != nil {
		t.Errorf("malformed email/phone should be accepted, got %v", err)
	}
}

func testGatePredicateMatchesCheck(t *testing.T) {
	for shares := 0; shares <= enroll.Quota; shares++ {
		for mask := 0; mask < 1<<5; mask++ {
			s := completeSnapshot()
			s.Shares = shares
			for i, k := range enroll.FieldKeys {
				if mask&(1<<i) != 0 {
					s.Fields.Set(k, "")
				}
			}
			if mask&(1<<4) != 0 {
				s.Attachment = nil
			}
			if got, want := enroll.CanSubmit(s), enroll.Check(s) == nil; got != want {
				t.Errorf("shares=%d mask=%b: CanSubmit=%v, Check nil=%v", shares, mask, got, want)
			}
		}
	}
}
