package notification

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"creatorhub_backend/internal/email"
	"creatorhub_backend/internal/events"
	"creatorhub_backend/platform/logger"
)

type testSender struct {
	sentTo     string
	sentDigest email.MatchDigest
	sendCount  int
}

func (s *testSender) SendMatchDigestEmail(ctx context.Context, toEmail string, digest email.MatchDigest) error {
	s.sentTo = toEmail
	s.sentDigest = digest
	s.sendCount++
	return nil
}

func (s *testSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

type testContacts struct {
	contact CreatorContact
	err     error
}

func (c *testContacts) GetCreatorContact(ctx context.Context, creatorID uuid.UUID) (CreatorContact, error) {
	return c.contact, c.err
}

type testNotificationConfig struct{ baseURL string }

func (c testNotificationConfig) GetAppBaseURL() string { return c.baseURL }

func TestHandle_MatchesDiscoveredSendsDigest(t *testing.T) {
	sender := &testSender{}
	contacts := &testContacts{contact: CreatorContact{DisplayName: "Jordan", Email: "jordan@example.com"}}
	m := New(sender, contacts, testNotificationConfig{baseURL: "https://app.example.com"}, logger.New("test"))

	creatorID := uuid.New()
	err := m.Handle(context.Background(), events.MatchesDiscovered{
		BaseEvent:      events.NewBaseEvent(),
		CreatorID:      creatorID,
		TotalAnalyzed:  12,
		TotalPersisted: 4,
		ExcellentCount: 1,
		GoodCount:      3,
		TopBrandNames:  []string{"ThreadHaus", "GlowLab"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.sentTo != "jordan@example.com" {
		t.Fatalf("expected digest sent to the creator, got %q", sender.sentTo)
	}
	if sender.sentDigest.TotalMatches != 4 || sender.sentDigest.ExcellentCount != 1 {
		t.Fatalf("expected digest counts from the event, got %+v", sender.sentDigest)
	}
	if sender.sentDigest.CreatorName != "Jordan" {
		t.Fatalf("expected creator name resolved, got %q", sender.sentDigest.CreatorName)
	}
	wantURL := "https://app.example.com/creators/" + creatorID.String() + "/matches"
	if sender.sentDigest.MatchesURL != wantURL {
		t.Fatalf("expected matches URL %q, got %q", wantURL, sender.sentDigest.MatchesURL)
	}
}

func TestHandle_SkipsCreatorWithoutEmail(t *testing.T) {
	sender := &testSender{}
	contacts := &testContacts{contact: CreatorContact{DisplayName: "Jordan"}}
	m := New(sender, contacts, testNotificationConfig{}, logger.New("test"))

	err := m.Handle(context.Background(), events.MatchesDiscovered{
		BaseEvent:      events.NewBaseEvent(),
		CreatorID:      uuid.New(),
		TotalPersisted: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.sendCount != 0 {
		t.Fatalf("expected no email for a creator without an address, sent %d", sender.sendCount)
	}
}

func TestHandle_ContactLookupFailureReported(t *testing.T) {
	sender := &testSender{}
	contacts := &testContacts{err: context.DeadlineExceeded}
	m := New(sender, contacts, testNotificationConfig{}, logger.New("test"))

	err := m.Handle(context.Background(), events.MatchesDiscovered{
		BaseEvent: events.NewBaseEvent(),
		CreatorID: uuid.New(),
	})
	if err == nil || !strings.Contains(err.Error(), "resolve creator contact") {
		t.Fatalf("expected a contact resolution error, got %v", err)
	}
	if sender.sendCount != 0 {
		t.Fatalf("expected no email on lookup failure, sent %d", sender.sendCount)
	}
}

func TestHandle_IgnoresUnrelatedEvents(t *testing.T) {
	sender := &testSender{}
	m := New(sender, &testContacts{}, testNotificationConfig{}, logger.New("test"))

	err := m.Handle(context.Background(), events.BrandUpserted{
		BaseEvent: events.NewBaseEvent(),
		BrandID:   uuid.New(),
		Name:      "ThreadHaus",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.sendCount != 0 {
		t.Fatalf("expected unrelated events ignored, sent %d", sender.sendCount)
	}
}
