package services

import (
	"context"
	"fmt"
	"time"

	catalog_cache "github.com/Emdad-Export/emdad-cms-backend/cache"
	"github.com/Emdad-Export/emdad-cms-backend/config"
	"github.com/Emdad-Export/emdad-cms-backend/i18n"
	"github.com/Emdad-Export/emdad-cms-backend/models"
	"github.com/Emdad-Export/emdad-cms-backend/seasonality"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CalendarQuery selects what the seasonality calendar shows.
type CalendarQuery struct {
	CategoryKey string
	Lang        i18n.Lang
	Now         time.Time
}

type CalendarMonth struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Short  string `json:"short"`
}

type CalendarLegend struct {
	State seasonality.State `json:"state"`
	Label string            `json:"label"`
}

// CalendarTab is one category filter above the calendar.
type CalendarTab struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// CalendarRow is one product line of the calendar.
type CalendarRow struct {
	ID           uuid.UUID             `json:"id"`
	Slug         string                `json:"slug"`
	Name         string                `json:"name"`
	CategoryKey  string                `json:"category_key"`
	CategoryName string                `json:"category_name"`
	ImageURL     string                `json:"image_url"`
	Fresh        seasonality.Bucket    `json:"fresh"`
	IQF          seasonality.IQF       `json:"iqf"`
	States       [12]seasonality.State `json:"states"`
	CurrentState seasonality.State     `json:"current_state"`
}

// CalendarPage is the whole seasonality calendar document.
type CalendarPage struct {
	Lang           string               `json:"lang"`
	Dir            string               `json:"dir"`
	Title          string               `json:"title"`
	CurrentMonth   int                  `json:"current_month"`
	Months         []CalendarMonth      `json:"months"`
	Legend         []CalendarLegend     `json:"legend"`
	Categories     []CalendarTab        `json:"categories"`
	ActiveCategory string               `json:"active_category"`
	TotalProducts  int                  `json:"total_products"`
	FilteredCount  int                  `json:"filtered_count"`
	Products       []CalendarRow        `json:"products"`
	Featured       []models.ProductCard `json:"featured"`
}

// ActiveCategories returns visible categories by sort order, cached.
func ActiveCategories(ctx context.Context) ([]models.Category, error) {
	if categories, ok := catalog_cache.GetCategories(); ok {
		return categories, nil
	}

	var categories []models.Category
	if err := config.CmsGorm.WithContext(ctx).
		Where("status = ?", models.CategoryStatusActive).
		Order("sort_order ASC, slug ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("load active categories: %w", err)
	}
	catalog_cache.SetCategories(categories)
	return categories, nil
}

// ActiveProductsQuery selects active products of active categories in
// calendar order: category sort, product sort, then name in lang.
func ActiveProductsQuery(db *gorm.DB, lang i18n.Lang) *gorm.DB {
	nameColumn := "products.name_en"
	if lang == i18n.Arabic {
		nameColumn = "products.name_ar"
	}
	return db.Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.status = ? AND categories.status = ?", models.ProductStatusActive, models.CategoryStatusActive).
		Order("categories.sort_order ASC").
		Order("products.sort_order ASC").
		Order(nameColumn + " ASC")
}

// BuildCalendarPage assembles the calendar for one language and optional
// category. An unknown category key shows every product.
func BuildCalendarPage(ctx context.Context, q CalendarQuery) (*CalendarPage, error) {
	lang := q.Lang
	if lang == "" {
		lang = i18n.Default
	}
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}

	var (
		categories []models.Category
		products   []models.Product
		featured   []models.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = ActiveCategories(gctx)
		return err
	})
	g.Go(func() error {
		if err := ActiveProductsQuery(config.CmsGorm.WithContext(gctx), lang).
			Preload("Category").
			Find(&products).Error; err != nil {
			return fmt.Errorf("load calendar products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		featured, err = LoadFeaturedProducts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	activeKey := ""
	for _, c := range categories {
		if c.Key == q.CategoryKey {
			activeKey = c.Key
			break
		}
	}

	counts := make(map[uuid.UUID]int, len(categories))
	rows := make([]CalendarRow, 0, len(products))
	for i := range products {
		p := &products[i]
		counts[p.CategoryID]++
		if activeKey != "" && (p.Category == nil || p.Category.Key != activeKey) {
			continue
		}
		rows = append(rows, calendarRow(p, lang, now))
	}

	page := &CalendarPage{
		Lang:           lang.String(),
		Dir:            lang.Dir(),
		Title:          lang.T("calendar_title"),
		CurrentMonth:   int(now.Month()),
		Months:         calendarMonths(lang),
		Legend:         calendarLegend(lang),
		Categories:     calendarTabs(categories, counts, activeKey, lang),
		ActiveCategory: activeKey,
		TotalProducts:  len(products),
		FilteredCount:  len(rows),
		Products:       rows,
		Featured:       ProductCards(featured, lang, now),
	}
	return page, nil
}

func calendarRow(p *models.Product, lang i18n.Lang, now time.Time) CalendarRow {
	result := NormalizeProduct(p, lang)
	states := result.DisplayStates()

	row := CalendarRow{
		ID:           p.ID,
		Slug:         p.Slug,
		Name:         p.Name(lang),
		ImageURL:     p.Media.Primary.URL,
		Fresh:        result.Bucket,
		IQF:          result.IQF,
		States:       states,
		CurrentState: seasonality.StateForMonth(states, int(now.Month())),
	}
	if p.Category != nil {
		row.CategoryKey = p.Category.Key
		row.CategoryName = p.Category.Name(lang)
	}
	return row
}

func calendarMonths(lang i18n.Lang) []CalendarMonth {
	names := lang.MonthNames()
	short := lang.MonthShortNames()
	months := make([]CalendarMonth, 0, seasonality.MonthsInYear)
	for i := 0; i < seasonality.MonthsInYear; i++ {
		months = append(months, CalendarMonth{Number: i + 1, Name: names[i], Short: short[i]})
	}
	return months
}

func calendarLegend(lang i18n.Lang) []CalendarLegend {
	legend := make([]CalendarLegend, 0, len(seasonality.States))
	for _, s := range seasonality.States {
		legend = append(legend, CalendarLegend{State: s, Label: lang.StateLabel(string(s))})
	}
	return legend
}

func calendarTabs(categories []models.Category, counts map[uuid.UUID]int, activeKey string, lang i18n.Lang) []CalendarTab {
	total := 0
	for _, n := range counts {
		total += n
	}

	tabs := make([]CalendarTab, 0, len(categories)+1)
	tabs = append(tabs, CalendarTab{
		Key:    "",
		Name:   lang.T("all_categories"),
		Count:  total,
		Active: activeKey == "",
	})
	for i := range categories {
		c := &categories[i]
		tabs = append(tabs, CalendarTab{
			Key:    c.Key,
			Name:   c.Name(lang),
			Count:  counts[c.ID],
			Active: c.Key == activeKey,
		})
	}
	return tabs
}

// ProductCards localizes products and stamps each with its badge for now.
func ProductCards(products []models.Product, lang i18n.Lang, now time.Time) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(products))
	for i := range products {
		cards = append(cards, ProductCard(&products[i], lang, now))
	}
	return cards
}

// ProductCard is the listing card with its current-month availability badge.
func ProductCard(p *models.Product, lang i18n.Lang, now time.Time) models.ProductCard {
	card := p.Card(lang)
	state := NormalizeProduct(p, lang).CurrentState(now)
	card.CurrentState = string(state)
	card.CurrentLabel = lang.StateLabel(string(state))
	return card
}
