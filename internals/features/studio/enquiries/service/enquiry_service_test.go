package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitstudio_backend/internals/features/studio/enquiries/dto"
	"fitstudio_backend/internals/features/studio/enquiries/model"
	helper "fitstudio_backend/internals/helpers"
)

type memStore struct {
	rows []model.EnquiryModel
}

func (m *memStore) Create(_ context.Context, e *model.EnquiryModel) error {
	e.ID = uuid.New()
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memStore) List(_ context.Context, _ dto.ListEnquiriesQuery, _, _ int) ([]model.EnquiryModel, int64, error) {
	return m.rows, int64(len(m.rows)), nil
}

type sent struct {
	to, subject string
}

type recorder struct {
	mails []sent
	fail  bool
}

func (r *recorder) SendEmail(_ context.Context, to, subject, _ string) (string, error) {
	if r.fail {
		return "", errors.New("smtp unavailable")
	}
	r.mails = append(r.mails, sent{to: to, subject: subject})
	return "email_1", nil
}

func (r *recorder) NotifyStaff(ctx context.Context, subject, content string) (string, error) {
	return r.SendEmail(ctx, "staff@fitness.com", subject, content)
}

func validRequest() dto.CreateEnquiryRequest {
	return dto.CreateEnquiryRequest{
		Name:        "  Meera Nair ",
		Email:       "Meera@Example.com",
		Phone:       "+919812345678",
		EnquiryType: "yoga",
		Message:     "Do you have evening batches?",
	}
}

func TestCreateNotifiesEnquirerAndStaff(t *testing.T) {
	store := &memStore{}
	notify := &recorder{}
	svc := New(store, notify, zap.NewNop())

	e, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Meera Nair", e.Name)
	assert.Equal(t, "meera@example.com", e.Email)
	assert.Equal(t, model.EnquiryStatusNew, e.Status)
	assert.Equal(t, model.DefaultSource, e.Source)
	assert.Len(t, store.rows, 1)

	require.Len(t, notify.mails, 2)
	assert.Equal(t, sent{to: "meera@example.com", subject: "Thank you for your enquiry"}, notify.mails[0])
	assert.Equal(t, sent{to: "staff@fitness.com", subject: "New Client Enquiry"}, notify.mails[1])
}

func TestCreateSurvivesNotifierFailure(t *testing.T) {
	store := &memStore{}
	svc := New(store, &recorder{fail: true}, zap.NewNop())

	req := validRequest()
	source := "instagram"
	followUp := "2024-05-01"
	req.Source = &source
	req.FollowUpDate = &followUp

	e, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "instagram", e.Source)
	require.NotNil(t, e.FollowUpDate)
	assert.Equal(t, 5, int(e.FollowUpDate.Month()))
	assert.Len(t, store.rows, 1)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := New(&memStore{}, &recorder{}, zap.NewNop())

	req := validRequest()
	req.Phone = "12-34"
	req.Email = "not-an-email"
	_, err := svc.Create(context.Background(), req)

	var ae *helper.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, helper.KindValidation, ae.Kind)
	assert.Contains(t, ae.Fields, "phone")
	assert.Contains(t, ae.Fields, "email")

	req = validRequest()
	bad := "next tuesday"
	req.FollowUpDate = &bad
	_, err = svc.Create(context.Background(), req)
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "follow_up_date")
}
