package service_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/amocrm/internal/entity"
	"github.com/samandr77/microservices/amocrm/internal/mocks"
	"github.com/samandr77/microservices/amocrm/internal/service"
	"github.com/samandr77/microservices/amocrm/pkg/logger"
)

var testNow = time.Date(2025, time.April, 17, 10, 0, 0, 0, time.Local)

// newLog returns a logger writing to an in-memory day file and a reader of its lines.
func newLog(t *testing.T) (*slog.Logger, func() []string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	h := logger.NewDailyFileHandler(fs, "/logs", "", logger.WithClock(func() time.Time { return testNow }))

	lines := func() []string {
		b, err := afero.ReadFile(fs, h.Path(testNow))
		if err != nil {
			return nil
		}

		var res []string
		for _, line := range strings.Split(strings.TrimSuffix(string(b), "\n"), "\n") {
			res = append(res, strings.TrimPrefix(line, "[2025-04-17 10:00:00] "))
		}

		return res
	}

	return slog.New(h), lines
}

func note(id int64, params map[string]any) entity.Note {
	return entity.Note{ID: id, EntityID: 1, Params: params}
}

func TestService_DecodeNotes(t *testing.T) {
	t.Parallel()

	const valid = "https://x.onpbx.ru/download_amocrm/QUJD_XYZ/rec.mp3"

	for _, tt := range []struct {
		name      string
		notes     []entity.Note
		wantLines []string
		wantRecs  int
	}{
		{
			name:  "valid link",
			notes: []entity.Note{note(1, map[string]any{"link": valid})},
			wantLines: []string{
				"*** Found onlinePBX audio recording: " + valid,
				"Decoded info: ABC",
			},
			wantRecs: 1,
		},
		{
			name: "no link and foreign link",
			notes: []entity.Note{
				note(1, nil),
				note(2, map[string]any{"text": "call me"}),
				note(3, map[string]any{"link": "https://example.com/download_amocrm/QUJD_XYZ/rec.mp3"}),
			},
			wantLines: nil,
		},
		{
			name:  "three parts",
			notes: []entity.Note{note(1, map[string]any{"link": "https://x.onpbx.ru/download_amocrm/A_B_C/rec.mp3"})},
			wantLines: []string{
				"*** Found onlinePBX audio recording: https://x.onpbx.ru/download_amocrm/A_B_C/rec.mp3",
				"Error: Unexpected format in the link.",
			},
		},
		{
			name:  "invalid base64",
			notes: []entity.Note{note(1, map[string]any{"link": "https://x.onpbx.ru/download_amocrm/!!!_XYZ/rec.mp3"})},
			wantLines: []string{
				"*** Found onlinePBX audio recording: https://x.onpbx.ru/download_amocrm/!!!_XYZ/rec.mp3",
				"Error decoding link: decode link: illegal base64 data at input byte 0",
			},
		},
		{
			name:  "missing delimiter",
			notes: []entity.Note{note(1, map[string]any{"link": "https://x.onpbx.ru/records/QUJD_XYZ.mp3"})},
			wantLines: []string{
				"*** Found onlinePBX audio recording: https://x.onpbx.ru/records/QUJD_XYZ.mp3",
				`Error decoding link: link delimiter not found: "download_amocrm/"`,
			},
		},
		{
			name: "broken link does not stop the scan",
			notes: []entity.Note{
				note(1, map[string]any{"link": "https://x.onpbx.ru/download_amocrm/A_B_C/rec.mp3"}),
				note(2, map[string]any{"link": valid}),
			},
			wantLines: []string{
				"*** Found onlinePBX audio recording: https://x.onpbx.ru/download_amocrm/A_B_C/rec.mp3",
				"Error: Unexpected format in the link.",
				"*** Found onlinePBX audio recording: " + valid,
				"Decoded info: ABC",
			},
			wantRecs: 1,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, lines := newLog(t)
			s := service.New(nil, l)

			recs := s.DecodeNotes(context.Background(), tt.notes)
			require.Len(t, recs, tt.wantRecs)
			require.Equal(t, tt.wantLines, lines())
		})
	}
}

func TestService_LeadRecordings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRMClient(ctrl)
	l, lines := newLog(t)

	raw := json.RawMessage(`{"_embedded":{"notes":[{"id":7,"params":{"link":"https://x.onpbx.ru/download_amocrm/QUJD_XYZ/rec.mp3"}}]}}`)

	var page entity.NotesPage
	require.NoError(t, json.Unmarshal(raw, &page))
	page.Raw = raw

	crm.EXPECT().LeadNotes(gomock.Any(), int64(23745341)).Return(page, nil)

	recs, err := service.New(crm, l).LeadRecordings(context.Background(), 23745341)
	require.NoError(t, err)
	require.Equal(t, []entity.Recording{{
		NoteID:  7,
		Link:    "https://x.onpbx.ru/download_amocrm/QUJD_XYZ/rec.mp3",
		Region:  "QUJD_XYZ",
		Info:    "QUJD",
		Key:     "XYZ",
		Decoded: "ABC",
	}}, recs)

	require.Equal(t, []string{
		"Notes fetched successfully.",
		"Response data: " + string(raw),
		"*** Found onlinePBX audio recording: https://x.onpbx.ru/download_amocrm/QUJD_XYZ/rec.mp3",
		"Decoded info: ABC",
	}, lines())
}

func TestService_LoadLeads(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRMClient(ctrl)
	l, lines := newLog(t)

	page := entity.LeadsPage{Raw: json.RawMessage(`{"_embedded":{"leads":[]}}`)}
	crm.EXPECT().Leads(gomock.Any()).Return(page, nil)

	got, err := service.New(crm, l).LoadLeads(context.Background())
	require.NoError(t, err)
	require.Equal(t, page, got)
	require.Equal(t, []string{
		"Leads fetched successfully.",
		`Response data: {"_embedded":{"leads":[]}}`,
	}, lines())
}

func TestService_LoadLeads_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		err      error
		wantLine string
	}{
		{
			name:     "unauthorized",
			err:      entity.ErrUnauthorized,
			wantLine: "Error: Unauthorized access. Please check your token.",
		},
		{
			name:     "payment required",
			err:      entity.ErrPaymentRequired,
			wantLine: "Error: Account not paid. Please check your account status.",
		},
		{
			name:     "unexpected status",
			err:      &entity.UnexpectedStatusError{Code: 500},
			wantLine: "Error: Unexpected response status code 500.",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			crm := mocks.NewMockCRMClient(ctrl)
			l, lines := newLog(t)

			crm.EXPECT().Leads(gomock.Any()).Return(entity.LeadsPage{}, tt.err)

			_, err := service.New(crm, l).LoadLeads(context.Background())
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, []string{tt.wantLine}, lines())
		})
	}
}

func TestService_LoadLeadsCreatedOn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRMClient(ctrl)
	l, lines := newLog(t)

	day := time.Date(2025, time.April, 17, 0, 0, 0, 0, time.Local)
	crm.EXPECT().LeadsCreatedOn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got time.Time) (entity.LeadsPage, error) {
			require.True(t, day.Equal(got))
			return entity.LeadsPage{Raw: json.RawMessage(`{}`)}, nil
		})

	_, err := service.New(crm, l).LoadLeadsCreatedOn(context.Background(), "2025-04-17")
	require.NoError(t, err)
	require.Equal(t, []string{"Leads fetched successfully.", "Response data: {}"}, lines())
}

func TestService_LoadLeadsCreatedOn_InvalidDay(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRMClient(ctrl)
	l, _ := newLog(t)

	_, err := service.New(crm, l).LoadLeadsCreatedOn(context.Background(), "17.04.2025")
	require.ErrorIs(t, err, entity.ErrInvalidDay)
}

func TestService_LeadRecordings_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRMClient(ctrl)
	l, lines := newLog(t)

	crm.EXPECT().LeadNotes(gomock.Any(), int64(1)).Return(entity.NotesPage{}, entity.ErrPaymentRequired)

	recs, err := service.New(crm, l).LeadRecordings(context.Background(), 1)
	require.ErrorIs(t, err, entity.ErrPaymentRequired)
	require.Nil(t, recs)
	require.Equal(t, []string{"Error: Account not paid. Please check your account status."}, lines())
}
