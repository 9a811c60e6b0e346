package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"praxis/internal/domain"
)

func TestContactCreate_NotifiesPractice(t *testing.T) {
	repo := &fakeContactRepo{}
	notif := &fakeNotifier{}
	svc := NewContactService(repo, notif, zap.NewNop())

	phone := "0172 9876543"
	msg, err := svc.Create(context.Background(), domain.CreateContactMessageDTO{
		Name:    "Erika Mustermann",
		Email:   "erika@example.org",
		Phone:   &phone,
		Message: "Bitte um Rückruf wegen eines Rezepts.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if msg.Phone == nil || *msg.Phone != "+491729876543" {
		t.Errorf("phone = %v, want normalized +49 form", msg.Phone)
	}
	if notif.contacts != 1 {
		t.Errorf("practice notified %d times, want 1", notif.contacts)
	}
}

func TestContactCreate_MailFailureDoesNotFailWrite(t *testing.T) {
	repo := &fakeContactRepo{}
	notif := &fakeNotifier{fail: true}
	svc := NewContactService(repo, notif, zap.NewNop())

	if _, err := svc.Create(context.Background(), domain.CreateContactMessageDTO{
		Name:    "Erika Mustermann",
		Email:   "erika@example.org",
		Message: "Nachricht.",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(repo.messages) != 1 {
		t.Error("message not persisted despite mail failure")
	}
}

func TestContactSetRead(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeNotifier{}, zap.NewNop())
	ctx := context.Background()

	msg, err := svc.Create(ctx, domain.CreateContactMessageDTO{
		Name:    "Erika Mustermann",
		Email:   "erika@example.org",
		Message: "Nachricht.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.SetRead(ctx, msg.ID, true); err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}
	if !repo.messages[0].Read {
		t.Error("message not marked read")
	}
}
