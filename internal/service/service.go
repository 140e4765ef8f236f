package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/amocrm/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type CRMClient interface {
	Leads(ctx context.Context) (entity.LeadsPage, error)
	LeadsCreatedOn(ctx context.Context, day time.Time) (entity.LeadsPage, error)
	LeadNotes(ctx context.Context, leadID int64) (entity.NotesPage, error)
}

type Service struct {
	crm CRMClient
	l   *slog.Logger
}

func New(crm CRMClient, l *slog.Logger) *Service {
	return &Service{
		crm: crm,
		l:   l,
	}
}

func (s *Service) LoadLeads(ctx context.Context) (entity.LeadsPage, error) {
	page, err := s.crm.Leads(ctx)
	if err != nil {
		s.logFetchError(ctx, err)
		return entity.LeadsPage{}, fmt.Errorf("load leads: %w", err)
	}

	s.l.InfoContext(ctx, "Leads fetched successfully.", "count", len(page.Leads()))
	s.l.InfoContext(ctx, "Response data: "+string(page.Raw))

	return page, nil
}

// LoadLeadsCreatedOn loads leads created on day (YYYY-MM-DD, local time).
func (s *Service) LoadLeadsCreatedOn(ctx context.Context, day string) (entity.LeadsPage, error) {
	d, err := entity.ParseDay(day)
	if err != nil {
		return entity.LeadsPage{}, err
	}

	page, err := s.crm.LeadsCreatedOn(ctx, d)
	if err != nil {
		s.logFetchError(ctx, err)
		return entity.LeadsPage{}, fmt.Errorf("load leads created on %s: %w", day, err)
	}

	s.l.InfoContext(ctx, "Leads fetched successfully.", "count", len(page.Leads()), "day", day)
	s.l.InfoContext(ctx, "Response data: "+string(page.Raw))

	return page, nil
}

// LeadRecordings loads the notes of a lead and decodes the recordings they reference.
func (s *Service) LeadRecordings(ctx context.Context, leadID int64) ([]entity.Recording, error) {
	page, err := s.crm.LeadNotes(ctx, leadID)
	if err != nil {
		s.logFetchError(ctx, err)
		return nil, fmt.Errorf("load lead %d notes: %w", leadID, err)
	}

	s.l.InfoContext(ctx, "Notes fetched successfully.", "lead_id", leadID, "count", len(page.Notes()))
	s.l.InfoContext(ctx, "Response data: "+string(page.Raw))

	return s.DecodeNotes(ctx, page.Notes()), nil
}

// DecodeNotes decodes every onlinePBX recording link found in notes.
// Broken links are logged and skipped, the method never fails.
func (s *Service) DecodeNotes(ctx context.Context, notes []entity.Note) []entity.Recording {
	var recordings []entity.Recording

	for _, note := range notes {
		link, ok := note.Link()
		if !ok || !entity.IsRecordingLink(link) {
			continue
		}

		s.l.InfoContext(ctx, "*** Found onlinePBX audio recording: "+link, "note_id", note.ID)

		rec, err := entity.ParseRecordingLink(link)
		if err != nil {
			if errors.Is(err, entity.ErrLinkUnexpectedFormat) {
				s.l.ErrorContext(ctx, "Error: Unexpected format in the link.", "note_id", note.ID, "error", err)
			} else {
				s.l.ErrorContext(ctx, "Error decoding link: "+err.Error(), "note_id", note.ID)
			}

			continue
		}

		rec.NoteID = note.ID

		s.l.InfoContext(ctx, "Decoded info: "+rec.Decoded, "note_id", note.ID, "key", rec.Key)

		recordings = append(recordings, rec)
	}

	return recordings
}

func (s *Service) logFetchError(ctx context.Context, err error) {
	var statusErr *entity.UnexpectedStatusError

	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		s.l.ErrorContext(ctx, "Error: Unauthorized access. Please check your token.")
	case errors.Is(err, entity.ErrPaymentRequired):
		s.l.ErrorContext(ctx, "Error: Account not paid. Please check your account status.")
	case errors.As(err, &statusErr):
		s.l.ErrorContext(ctx, fmt.Sprintf("Error: Unexpected response status code %d.", statusErr.Code))
	}
}
