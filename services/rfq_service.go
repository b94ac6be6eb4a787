package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"
	"gorm.io/gorm"
)

const quoteReferencePrefix = "RFQ-"

var ErrQuoteNotFound = errors.New("rfq not found")

// unambiguous upper-case alphabet: no 0/O, 1/I
var quoteReferenceID = func() func() string {
	gen, err := nanoid.CustomASCII("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", 8)
	if err != nil {
		panic(err)
	}
	return gen
}()

// NewQuoteReference returns a fresh RFQ-XXXXXXXX reference.
func NewQuoteReference() string {
	return quoteReferencePrefix + quoteReferenceID()
}

// QuoteSubmission is a validated site form plus request metadata.
type QuoteSubmission struct {
	Form      models.CreateQuoteRequest
	Lang      i18n.Lang
	IPAddress string
	UserAgent string
}

// quoteNotifier runs after a request is stored; tests swap it out.
var quoteNotifier = func(q models.QuoteRequest) {
	go NotifyQuoteRequest(context.Background(), q)
}

// SubmitQuoteRequest stores a buyer's RFQ and triggers the e-mails.
// A product id that does not resolve to an active product is dropped and the
// free-text product name is kept.
func SubmitQuoteRequest(ctx context.Context, sub QuoteSubmission) (*models.QuoteRequest, error) {
	form := sub.Form
	quote := models.QuoteRequest{
		Reference:       NewQuoteReference(),
		CompanyName:     strings.TrimSpace(form.CompanyName),
		ContactName:     strings.TrimSpace(form.ContactName),
		Email:           normalizeEmail(form.Email),
		Phone:           strings.TrimSpace(form.Phone),
		Country:         strings.TrimSpace(form.Country),
		ProductName:     strings.TrimSpace(form.ProductName),
		Quantity:        form.Quantity,
		Unit:            form.Unit,
		Incoterm:        form.Incoterm,
		DestinationPort: strings.TrimSpace(form.DestinationPort),
		Message:         strings.TrimSpace(form.Message),
		Lang:            sub.Lang.String(),
		IPAddress:       sub.IPAddress,
		UserAgent:       sub.UserAgent,
	}
	if quote.Lang == "" {
		quote.Lang = i18n.Default.String()
	}

	if form.ProductID != nil {
		var product models.Product
		err := config.CmsGorm.WithContext(ctx).
			Select("id", "name_en", "name_ar").
			Where("id = ? AND status = ?", *form.ProductID, models.ProductStatusActive).
			First(&product).Error
		switch {
		case err == nil:
			quote.ProductID = &product.ID
			quote.ProductName = product.NameEn
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("[rfq.submit] ⚠️ unknown product %s, keeping free text", *form.ProductID)
		default:
			return nil, fmt.Errorf("load rfq product: %w", err)
		}
	}

	if err := config.CmsGorm.WithContext(ctx).Create(&quote).Error; err != nil {
		return nil, fmt.Errorf("store rfq: %w", err)
	}

	log.Printf("[rfq.submit] ✅ %s from %s (%s)", quote.Reference, quote.CompanyName, quote.Country)
	quoteNotifier(quote)
	return &quote, nil
}

// NotifyQuoteRequest e-mails the sales inbox (with the PDF summary) and sends
// the buyer an acknowledgement in the language they used.
func NotifyQuoteRequest(ctx context.Context, q models.QuoteRequest) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := NewResendClient()

	var attachments []EmailAttachment
	if buf, err := QuoteRequestPDF(&q); err != nil {
		log.Printf("[rfq.notify] ❌ pdf for %s: %v", q.Reference, err)
	} else {
		attachments = append(attachments, EmailAttachment{
			Filename: strings.ToLower(q.Reference) + ".pdf",
			Content:  buf.Bytes(),
		})
	}

	if err := client.Send(ctx, Email{
		To:          config.SalesInbox(),
		ReplyTo:     q.Email,
		Subject:     fmt.Sprintf("New RFQ %s from %s", q.Reference, q.CompanyName),
		HTML:        salesNotificationHTML(&q),
		Attachments: attachments,
	}); err != nil {
		log.Printf("[rfq.notify] ❌ sales inbox for %s: %v", q.Reference, err)
	}

	lang := i18n.Resolve(q.Lang)
	if err := client.Send(ctx, Email{
		To:      q.Email,
		Subject: lang.T("rfq_ack_subject", "ref", q.Reference),
		HTML:    acknowledgementHTML(&q, lang),
	}); err != nil {
		log.Printf("[rfq.notify] ❌ acknowledgement for %s: %v", q.Reference, err)
	}
}

func salesNotificationHTML(q *models.QuoteRequest) string {
	rows := [][2]string{
		{"Company", q.CompanyName},
		{"Contact", q.ContactName},
		{"E-mail", q.Email},
		{"Phone", q.Phone},
		{"Country", q.Country},
		{"Product", q.ProductName},
		{"Quantity", quantityLabel(q.Quantity, q.Unit)},
		{"Incoterm", q.Incoterm},
		{"Destination port", q.DestinationPort},
	}

	var b strings.Builder
	b.WriteString(`<h2 style="font-family:sans-serif;color:#212f24;">`)
	b.WriteString(html.EscapeString(q.Reference))
	b.WriteString(`</h2><table style="font-family:sans-serif;font-size:14px;">`)
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(&b, `<tr><td style="color:#707668;padding:4px 12px 4px 0;">%s</td><td style="color:#212f24;">%s</td></tr>`,
			r[0], html.EscapeString(r[1]))
	}
	b.WriteString(`</table>`)
	if q.Message != "" {
		fmt.Fprintf(&b, `<p style="font-family:sans-serif;font-size:14px;white-space:pre-wrap;">%s</p>`, html.EscapeString(q.Message))
	}
	return b.String()
}

func acknowledgementHTML(q *models.QuoteRequest, lang i18n.Lang) string {
	body := lang.T("rfq_ack_body", "name", q.ContactName, "ref", q.Reference)
	return fmt.Sprintf(`<div dir="%s" lang="%s" style="font-family:sans-serif;font-size:15px;color:#212f24;"><p>%s</p><p>Emdad Export</p></div>`,
		lang.Dir(), lang, html.EscapeString(body))
}

// ════════════════════════════════════════════════════════════
// Back office
// ════════════════════════════════════════════════════════════

// QuoteFilter narrows the RFQ inbox.
type QuoteFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ListQuoteRequests returns one page of RFQs, newest first.
func ListQuoteRequests(ctx context.Context, f QuoteFilter) ([]models.QuoteRequest, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	query := config.CmsGorm.WithContext(ctx).Model(&models.QuoteRequest{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(reference) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count rfqs: %w", err)
	}

	var quotes []models.QuoteRequest
	if err := query.
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&quotes).Error; err != nil {
		return nil, 0, fmt.Errorf("list rfqs: %w", err)
	}
	return quotes, total, nil
}

// GetQuoteRequest loads one RFQ.
func GetQuoteRequest(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error) {
	var quote models.QuoteRequest
	err := config.CmsGorm.WithContext(ctx).First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load rfq: %w", err)
	}
	return &quote, nil
}

// UpdateQuoteStatus moves an RFQ through its lifecycle.
func UpdateQuoteStatus(ctx context.Context, id uuid.UUID, req models.UpdateQuoteStatusRequest) (*models.QuoteRequest, error) {
	quote, err := GetQuoteRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"status": req.Status}
	if req.AdminNote != "" {
		updates["admin_note"] = req.AdminNote
	}
	if err := config.CmsGorm.WithContext(ctx).Model(quote).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update rfq status: %w", err)
	}

	log.Printf("[rfq.status] %s → %s", quote.Reference, req.Status)
	return GetQuoteRequest(ctx, id)
}
