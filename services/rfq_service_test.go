package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureNotifications(t *testing.T) *[]models.QuoteRequest {
	t.Helper()
	var sent []models.QuoteRequest
	original := quoteNotifier
	quoteNotifier = func(q models.QuoteRequest) { sent = append(sent, q) }
	t.Cleanup(func() { quoteNotifier = original })
	return &sent
}

func TestNewQuoteReference(t *testing.T) {
	pattern := regexp.MustCompile(`^RFQ-[A-HJ-NP-Z2-9]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		ref := NewQuoteReference()
		assert.Regexp(t, pattern, ref)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestSubmitQuoteRequest_SnapshotsProduct(t *testing.T) {
	_, f := setupCatalog(t)
	sent := captureNotifications(t)

	quote, err := SubmitQuoteRequest(context.Background(), QuoteSubmission{
		Form: models.CreateQuoteRequest{
			CompanyName: "  Nordic Fresh AB ",
			ContactName: "Anna Berg",
			Email:       "Anna@NordicFresh.se",
			Country:     "Sweden",
			ProductID:   &f.orange.ID,
			ProductName: "oranges please",
			Quantity:    2,
			Unit:        "container",
			Incoterm:    "CIF",
		},
		Lang:      i18n.Arabic,
		IPAddress: "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Nordic Fresh AB", quote.CompanyName)
	assert.Equal(t, "anna@nordicfresh.se", quote.Email)
	assert.Equal(t, "Navel Orange", quote.ProductName)
	require.NotNil(t, quote.ProductID)
	assert.Equal(t, f.orange.ID, *quote.ProductID)
	assert.Equal(t, "ar", quote.Lang)
	assert.Equal(t, models.QuoteStatusNew, quote.Status)

	require.Len(t, *sent, 1)
	assert.Equal(t, quote.Reference, (*sent)[0].Reference)
}

func TestSubmitQuoteRequest_UnknownOrDraftProductKeepsFreeText(t *testing.T) {
	_, f := setupCatalog(t)
	captureNotifications(t)

	for _, id := range []uuid.UUID{uuid.New(), f.draftGrape.ID} {
		quote, err := SubmitQuoteRequest(context.Background(), QuoteSubmission{
			Form: models.CreateQuoteRequest{
				CompanyName: "Gulf Traders",
				ContactName: "Omar",
				Email:       "omar@gulftraders.ae",
				Country:     "UAE",
				ProductID:   &id,
				ProductName: "Table grapes",
			},
		})
		require.NoError(t, err)
		assert.Nil(t, quote.ProductID)
		assert.Equal(t, "Table grapes", quote.ProductName)
		assert.Equal(t, "en", quote.Lang)
	}
}

func TestUpdateQuoteStatusAndList(t *testing.T) {
	setupCatalog(t)
	captureNotifications(t)

	var ids []uuid.UUID
	for _, company := range []string{"Alpha Foods", "Beta Produce", "Gamma Imports"} {
		quote, err := SubmitQuoteRequest(context.Background(), QuoteSubmission{
			Form: models.CreateQuoteRequest{CompanyName: company, ContactName: "Buyer", Email: "buyer@example.com", Country: "Germany"},
		})
		require.NoError(t, err)
		ids = append(ids, quote.ID)
	}

	updated, err := UpdateQuoteStatus(context.Background(), ids[1], models.UpdateQuoteStatusRequest{
		Status:    models.QuoteStatusQuoted,
		AdminNote: "Sent price list",
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusQuoted, updated.Status)
	assert.Equal(t, "Sent price list", updated.AdminNote)

	quoted, total, err := ListQuoteRequests(context.Background(), QuoteFilter{Status: models.QuoteStatusQuoted})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, quoted, 1)
	assert.Equal(t, "Beta Produce", quoted[0].CompanyName)

	found, total, err := ListQuoteRequests(context.Background(), QuoteFilter{Search: "gamma"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, ids[2], found[0].ID)

	_, err = UpdateQuoteStatus(context.Background(), uuid.New(), models.UpdateQuoteStatusRequest{Status: models.QuoteStatusClosed})
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestQuoteRequestPDF(t *testing.T) {
	buf, err := QuoteRequestPDF(&models.QuoteRequest{
		Reference:   "RFQ-ABCD2345",
		CompanyName: "Nordic Fresh AB",
		ContactName: "Anna Berg",
		Email:       "anna@nordicfresh.se",
		Country:     "Sweden",
		ProductName: "Navel Orange",
		Quantity:    2,
		Unit:        "container",
		Message:     "Weekly shipments",
		Lang:        "en",
	})
	require.NoError(t, err)
	assert.True(t, len(buf.Bytes()) > 0)
	assert.Equal(t, "%PDF", string(buf.Bytes()[:4]))
}

func TestAcknowledgementUsesBuyerLanguage(t *testing.T) {
	q := &models.QuoteRequest{Reference: "RFQ-ABCD2345", ContactName: "Omar"}

	ar := acknowledgementHTML(q, i18n.Arabic)
	assert.Contains(t, ar, `dir="rtl"`)
	assert.Contains(t, ar, "RFQ-ABCD2345")

	en := acknowledgementHTML(q, i18n.English)
	assert.Contains(t, en, `dir="ltr"`)
	assert.Contains(t, en, "Thank you Omar")
}
