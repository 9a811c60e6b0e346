package service

import (
	"context"
	"fmt"
	"time"

	"praxis/internal/domain"
)

// In-memory repository fakes implementing the same conflict rules as the
// SQL layer, so the service flows can be exercised without a database.

type fakeBlockedSlotRepo struct {
	blocks []domain.BlockedSlot
	nextID int
}

func (f *fakeBlockedSlotRepo) Create(_ context.Context, block domain.BlockedSlot) (string, error) {
	for _, b := range f.blocks {
		if !b.Date.Equal(block.Date) {
			continue
		}
		if b.AllDay {
			return "", domain.ErrAlreadyBlocked
		}
		if block.TimeSlot != nil && b.TimeSlot != nil && *b.TimeSlot == *block.TimeSlot {
			return "", domain.ErrAlreadyBlocked
		}
	}
	f.nextID++
	block.ID = fmt.Sprintf("block-%d", f.nextID)
	f.blocks = append(f.blocks, block)
	return block.ID, nil
}

func (f *fakeBlockedSlotRepo) List(_ context.Context, date *time.Time) ([]domain.BlockedSlot, error) {
	if date == nil {
		return f.blocks, nil
	}
	var out []domain.BlockedSlot
	for _, b := range f.blocks {
		if b.Date.Equal(*date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockedSlotRepo) Delete(_ context.Context, id string) error {
	for i, b := range f.blocks {
		if b.ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeAppointmentRepo struct {
	appointments []domain.Appointment
	blocked      *fakeBlockedSlotRepo
	nextID       int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt domain.Appointment) (string, error) {
	for _, a := range f.appointments {
		if a.Date.Equal(appt.Date) && a.TimeSlot == appt.TimeSlot && a.Status != domain.AppointmentStatusCancelled {
			return "", domain.ErrSlotTaken
		}
	}
	if f.blocked != nil {
		for _, b := range f.blocked.blocks {
			if !b.Date.Equal(appt.Date) {
				continue
			}
			if b.AllDay || (b.TimeSlot != nil && *b.TimeSlot == appt.TimeSlot) {
				return "", domain.ErrSlotBlocked
			}
		}
	}
	f.nextID++
	appt.ID = fmt.Sprintf("appt-%d", f.nextID)
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.appointments = append(f.appointments, appt)
	return appt.ID, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			appt := f.appointments[i]
			return &appt, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAppointmentRepo) GetByCancelToken(_ context.Context, token string) (*domain.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].CancelToken == token {
			appt := f.appointments[i]
			return &appt, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appointments {
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.FromDate != nil && a.Date.Before(*filter.FromDate) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) BookedSlots(_ context.Context, date time.Time) ([]string, error) {
	var out []string
	for _, a := range f.appointments {
		if a.Date.Equal(date) && a.Status != domain.AppointmentStatusCancelled {
			out = append(out, a.TimeSlot)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Stats(_ context.Context, _ time.Time) (*domain.DashboardStats, error) {
	return &domain.DashboardStats{}, nil
}

type fakeNewsRepo struct {
	posts  []domain.NewsPost
	nextID int
}

func (f *fakeNewsRepo) Create(_ context.Context, post domain.NewsPost) (string, error) {
	for _, p := range f.posts {
		if p.Slug == post.Slug {
			return "", domain.ErrSlugTaken
		}
	}
	f.nextID++
	post.ID = fmt.Sprintf("post-%d", f.nextID)
	f.posts = append(f.posts, post)
	return post.ID, nil
}

func (f *fakeNewsRepo) GetByID(_ context.Context, id string) (*domain.NewsPost, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNewsRepo) GetBySlug(_ context.Context, slug string) (*domain.NewsPost, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNewsRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, p := range f.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNewsRepo) Update(_ context.Context, post domain.NewsPost) error {
	for i := range f.posts {
		if f.posts[i].ID == post.ID {
			f.posts[i] = post
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNewsRepo) UpdateImageURL(_ context.Context, id string, imageURL *string) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].ImageURL = imageURL
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNewsRepo) Delete(_ context.Context, id string) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNewsRepo) List(_ context.Context, publishedOnly bool) ([]domain.NewsPost, error) {
	if !publishedOnly {
		return f.posts, nil
	}
	var out []domain.NewsPost
	for _, p := range f.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeContactRepo struct {
	messages []domain.ContactMessage
	nextID   int
}

func (f *fakeContactRepo) Create(_ context.Context, msg domain.ContactMessage) (string, error) {
	f.nextID++
	msg.ID = fmt.Sprintf("msg-%d", f.nextID)
	f.messages = append(f.messages, msg)
	return msg.ID, nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]domain.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeContactRepo) SetRead(_ context.Context, id string, read bool) error {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Read = read
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeAdminRepo struct {
	admins []domain.AdminUser
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	for i := range f.admins {
		if f.admins[i].Email == email {
			admin := f.admins[i]
			return &admin, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeFileStorage struct {
	uploads int
	deleted []string
}

func (f *fakeFileStorage) UploadFile(_ context.Context, data []byte, filename string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://bucket.s3.eu-central-1.amazonaws.com/news/%d-%s", f.uploads, filename), nil
}

func (f *fakeFileStorage) DeleteFile(_ context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func (f *fakeFileStorage) GetFile(_ context.Context, _ string) ([]byte, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeFileStorage) GetPresignedURL(_ context.Context, fileURL string, _ time.Duration) (string, error) {
	return fileURL, nil
}

type fakeNotifier struct {
	bookings      []string
	cancellations []string
	statusChanges []string
	contacts      int
	fail          bool
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, appt *domain.Appointment) error {
	if f.fail {
		return fmt.Errorf("smtp unreachable")
	}
	f.bookings = append(f.bookings, appt.ID)
	return nil
}

func (f *fakeNotifier) SendCancellationConfirmation(_ context.Context, appt *domain.Appointment) error {
	if f.fail {
		return fmt.Errorf("smtp unreachable")
	}
	f.cancellations = append(f.cancellations, appt.ID)
	return nil
}

func (f *fakeNotifier) SendStatusChange(_ context.Context, appt *domain.Appointment, _ domain.AppointmentStatus) error {
	if f.fail {
		return fmt.Errorf("smtp unreachable")
	}
	f.statusChanges = append(f.statusChanges, appt.ID)
	return nil
}

func (f *fakeNotifier) SendContactNotification(_ context.Context, _ *domain.ContactMessage) error {
	if f.fail {
		return fmt.Errorf("smtp unreachable")
	}
	f.contacts++
	return nil
}
