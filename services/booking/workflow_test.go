package booking

import (
	"testing"

	"labtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBooking(t *testing.T, svc *DefaultBookingService, testIDs ...string) *models.Booking {
	t.Helper()
	b, err := svc.CreateBooking(patient, testIDs)
	require.NoError(t, err)
	return b
}

func TestAdvanceForward(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc", "lipid")
	itemID := b.Tests[0].ItemID

	updated, err := svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusSampleCollected)
	require.NoError(t, err)
	assert.Equal(t, models.TestStatusSampleCollected, updated.FindTest(itemID).Status)
	assert.Equal(t, models.BookingStatusSampleCollected, updated.BookingStatus)

	updated, err = svc.AdvanceTestStatus(admin, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusProcessing, updated.BookingStatus)

	// The untouched sibling item stays where it was.
	assert.Equal(t, models.TestStatusAwaitingCollection, updated.Tests[1].Status)
}

func TestAdvanceSkippingStatesIsAllowed(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc")
	itemID := b.Tests[0].ItemID

	updated, err := svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.TestStatusProcessing, updated.FindTest(itemID).Status)
	assert.Equal(t, models.BookingStatusProcessing, updated.BookingStatus)
}

func TestAdvanceIdempotentAtSameStatus(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc")
	itemID := b.Tests[0].ItemID

	_, err := svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)

	updated, err := svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.TestStatusProcessing, updated.FindTest(itemID).Status)
	assert.Equal(t, models.BookingStatusProcessing, updated.BookingStatus)
}

func TestAdvanceBackwardRejected(t *testing.T) {
	svc, repo, _ := newService()
	b := createBooking(t, svc, "cbc")
	itemID := b.Tests[0].ItemID

	_, err := svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)

	_, err = svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusAwaitingCollection)
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err))
	assert.Contains(t, UserMessage(err), models.TestStatusProcessing)
	assert.Contains(t, UserMessage(err), models.TestStatusAwaitingCollection)

	// The stored item is untouched by the rejected transition.
	stored, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TestStatusProcessing, stored.FindTest(itemID).Status)
}

func TestAdvanceValidation(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc")
	itemID := b.Tests[0].ItemID

	_, err := svc.AdvanceTestStatus(tech, b.ID, itemID, "Completed")
	assert.Equal(t, CodeInvalidInput, ErrorCode(err))

	_, err = svc.AdvanceTestStatus(tech, "nope", itemID, models.TestStatusProcessing)
	assert.Equal(t, CodeNotFound, ErrorCode(err))

	_, err = svc.AdvanceTestStatus(tech, b.ID, "nope", models.TestStatusProcessing)
	assert.Equal(t, CodeNotFound, ErrorCode(err))

	for _, caller := range []models.AuthUser{patient, doctor} {
		_, err = svc.AdvanceTestStatus(caller, b.ID, itemID, models.TestStatusProcessing)
		assert.Equal(t, CodeForbidden, ErrorCode(err), "role %s", caller.Role)
	}
}

func TestPublishRequiresProcessing(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc")
	itemID := b.Tests[0].ItemID

	_, err := svc.PublishTestResult(tech, b.ID, itemID, "Normal", "")
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err))

	_, err = svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusSampleCollected)
	require.NoError(t, err)
	_, err = svc.PublishTestResult(tech, b.ID, itemID, "Normal", "")
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err))

	_, err = svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)
	updated, err := svc.PublishTestResult(tech, b.ID, itemID, "Normal", "fasting sample")
	require.NoError(t, err)

	item := updated.FindTest(itemID)
	assert.Equal(t, models.TestStatusPublished, item.Status)
	assert.Equal(t, "Normal", item.Result)
	assert.Equal(t, "fasting sample", item.Notes)
	require.NotNil(t, item.PublishedAt)
	assert.Equal(t, models.BookingStatusPublished, updated.BookingStatus)
}

func TestPublishBlankResultRejected(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc")
	itemID := b.Tests[0].ItemID

	_, err := svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err = svc.PublishTestResult(tech, b.ID, itemID, blank, "")
		assert.Equal(t, CodeInvalidInput, ErrorCode(err))
	}
}

func TestRepublishKeepsOriginalTimestamp(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc")
	itemID := b.Tests[0].ItemID

	_, err := svc.AdvanceTestStatus(tech, b.ID, itemID, models.TestStatusProcessing)
	require.NoError(t, err)
	first, err := svc.PublishTestResult(tech, b.ID, itemID, "Normal", "")
	require.NoError(t, err)
	firstPublishedAt := *first.FindTest(itemID).PublishedAt

	second, err := svc.PublishTestResult(tech, b.ID, itemID, "Corrected: borderline", "recheck advised")
	require.NoError(t, err)

	item := second.FindTest(itemID)
	assert.Equal(t, "Corrected: borderline", item.Result)
	assert.Equal(t, "recheck advised", item.Notes)
	require.NotNil(t, item.PublishedAt)
	assert.True(t, item.PublishedAt.Equal(firstPublishedAt))
}

func TestFullPipelineAcrossTwoItems(t *testing.T) {
	svc, _, _ := newService()
	b := createBooking(t, svc, "cbc", "lipid")

	for _, item := range b.Tests {
		_, err := svc.AdvanceTestStatus(tech, b.ID, item.ItemID, models.TestStatusSampleCollected)
		require.NoError(t, err)
		_, err = svc.AdvanceTestStatus(tech, b.ID, item.ItemID, models.TestStatusProcessing)
		require.NoError(t, err)
	}

	updated, err := svc.PublishTestResult(tech, b.ID, b.Tests[0].ItemID, "Normal", "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusProcessing, updated.BookingStatus)

	updated, err = svc.PublishTestResult(tech, b.ID, b.Tests[1].ItemID, "Elevated LDL", "repeat in 3 months")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPublished, updated.BookingStatus)
}
