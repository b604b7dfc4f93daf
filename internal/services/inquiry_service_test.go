package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

func validInquiryRequest() *dto.CreateInquiryRequest {
	return &dto.CreateInquiryRequest{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		ProjectType: "Wedding",
		DesiredDate: "2026-10-12",
		Message:     "We are getting married in October and would love a quote.",
	}
}

func TestInquiryCreate_NotifiesOwner(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := NewInquiryService(newFakeInquiryRepo(), sender, "owner@studio.com")

	inquiry, err := svc.Create(nil, validInquiryRequest())
	require.NoError(t, err)

	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "owner@studio.com", sent[0].To)
	assert.Contains(t, sent[0].Subject, "Jane Doe")
	assert.Contains(t, sent[0].Body, "Wedding")
}

func TestInquiryCreate_MailFailureDoesNotFailSubmission(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{err: errors.New("smtp unreachable")}
	repo := newFakeInquiryRepo()
	svc := NewInquiryService(repo, sender, "owner@studio.com")

	_, err := svc.Create(nil, validInquiryRequest())
	require.NoError(t, err)

	stored, err := repo.FindAll(nil)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestInquiryCreate_NoOwnerConfigured(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := NewInquiryService(newFakeInquiryRepo(), sender, "")

	_, err := svc.Create(nil, validInquiryRequest())
	require.NoError(t, err)
	assert.Empty(t, sender.Sent())
}

func TestInquiryListByEmail_Normalizes(t *testing.T) {
	t.Parallel()

	repo := newFakeInquiryRepo()
	svc := NewInquiryService(repo, nil, "")

	_, err := svc.Create(nil, validInquiryRequest())
	require.NoError(t, err)

	inquiries, err := svc.ListByEmail(nil, "  JANE@EXAMPLE.COM ")
	require.NoError(t, err)
	assert.Len(t, inquiries, 1)
}

func TestInquiryUpdateStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeInquiryRepo()
	svc := NewInquiryService(repo, nil, "")

	inquiry, err := svc.Create(nil, validInquiryRequest())
	require.NoError(t, err)

	t.Run("valid status", func(t *testing.T) {
		updated, err := svc.UpdateStatus(nil, inquiry.ID, "contacted")
		require.NoError(t, err)
		assert.Equal(t, models.InquiryStatusContacted, updated.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(nil, inquiry.ID, "archived")
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.HTTPCode)
	})

	t.Run("missing inquiry", func(t *testing.T) {
		_, err := svc.UpdateStatus(nil, "no-such-id", "closed")
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.HTTPCode)
	})
}
