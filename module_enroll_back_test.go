//go:build !wasm

package enroll_test

import (
	"strings"
	"testing"

	"github.com/tinywasm/enroll"
)

func TestEnrollModule(t *testing.T) {
	if enroll.EnrollModule.HandlerName() != "enroll" {
		t.Errorf("expected handler name enroll, got %s", enroll.EnrollModule.HandlerName())
	}

	out := enroll.EnrollModule.RenderHTML()
	if !strings.Contains(out, "<form") {
		t.Errorf("RenderHTML() should contain <form")
	}
	if !strings.Contains(out, `accept="image/*"`) {
		t.Errorf("RenderHTML() should filter the picker to images")
	}
	if !strings.Contains(out, `<select id="college" name="college">`) {
		t.Errorf("RenderHTML() should offer the colleges in a select")
	}
	if !strings.Contains(out, `<option value="electronics">Electronics &amp; Communication</option>`) {
		t.Errorf("RenderHTML() should list escaped college labels")
	}
	if !strings.Contains(out, `<span id="enroll-share-count">0/5 clicks</span>`) {
		t.Errorf("fresh form should show 0/5 shares")
	}
	if !strings.Contains(out, `<button type="submit" id="enroll-submit" disabled>`) {
		t.Errorf("fresh form must disable submit")
	}
}

func TestEnrollModuleRenderSession(t *testing.T) {
	t.Run("TestProgress", testRenderProgress)
	t.Run("TestQuotaReached", testRenderQuotaReached)
	t.Run("TestSubmitEnabled", testRenderSubmitEnabled)
	t.Run("TestTerminal", testRenderTerminal)
}

func testRenderProgress(t *testing.T) {
	s, _ := newTestSession(t, enroll.NewMemoryStore())
	share(s, 3)
	s.OnFieldChange(enroll.FieldCollege, "mechanical")

	out := enroll.EnrollModule.RenderSession(s)
	if !strings.Contains(out, `<span id="enroll-share-count">3/5 clicks</span>`) {
		t.Errorf("expected 3/5 clicks, got %s", out)
	}
	if !strings.Contains(out, `<button type="button" id="enroll-share-button">Share on WhatsApp</button>`) {
		t.Errorf("share button should be enabled below quota")
	}
	if !strings.Contains(out, `<option value="mechanical" selected>`) {
		t.Errorf("chosen college should be selected")
	}
	if !strings.Contains(out, "Drag &amp; drop or click to upload") {
		t.Errorf("empty slot should show the upload hint")
	}
}

func testRenderQuotaReached(t *testing.T) {
	s, _ := newTestSession(t, enroll.NewMemoryStore())
	share(s, enroll.Quota)
	s.OnDrop([]enroll.Attachment{{Name: "shot<1>.png"}})

	out := enroll.EnrollModule.RenderSession(s)
	if !strings.Contains(out, `<span id="enroll-share-count">5/5 clicks</span>`) {
		t.Errorf("expected 5/5 clicks")
	}
	if !strings.Contains(out, `<button type="button" id="enroll-share-button" disabled>Sharing Complete!</button>`) {
		t.Errorf("share button should be disabled at quota, got %s", out)
	}
	if !strings.Contains(out, `<p id="enroll-file-name">shot&lt;1&gt;.png</p>`) {
		t.Errorf("uploaded file name should be shown escaped")
	}
	if !strings.Contains(out, `<button type="submit" id="enroll-submit" disabled>`) {
		t.Errorf("submit must stay disabled while fields are empty")
	}
}

func testRenderSubmitEnabled(t *testing.T) {
	s, _ := newTestSession(t, enroll.NewMemoryStore())
	fillFields(s)
	s.OnFilePicked([]enroll.Attachment{{Name: "shot.png"}})
	share(s, enroll.Quota)
	if !s.CanSubmit() {
		t.Fatalf("expected CanSubmit true")
	}

	out := enroll.EnrollModule.RenderSession(s)
	if !strings.Contains(out, `<button type="submit" id="enroll-submit">Submit Registration</button>`) {
		t.Errorf("submit should be enabled when the gate passes, got %s", out)
	}
}

func testRenderTerminal(t *testing.T) {
	store := enroll.NewMemoryStore()
	store.Set(enroll.DefaultStorageKey, "true")
	done, _ := newTestSession(t, store)

	out := enroll.EnrollModule.RenderSession(done)
	if strings.Contains(out, "<form") {
		t.Errorf("Terminal session must not render the form")
	}
	for _, want := range []string{
		`id="enroll-done"`,
		"Registration Complete! 🎉",
		"Thank you for joining Tech for Girls! We&#39;re excited to have you.",
		"🎉 Your submission has been recorded. Thanks for being part of Tech for Girls!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal view missing %q, got %s", want, out)
		}
	}
}
