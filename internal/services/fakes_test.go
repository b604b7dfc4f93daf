package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/billing"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/repositories"
)

// In-memory repository fakes. The db handle is part of the repository
// contract but the fakes never touch it, so tests pass nil.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateProviderIdentity(_ *gorm.DB, id string, provider models.AuthProvider, providerID, profilePicture string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Provider = provider
	u.ProviderID = providerID
	u.ProfilePicture = profilePicture
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*models.Session{}}
}

func (r *fakeSessionRepo) Create(_ *gorm.DB, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	cp := *session
	r.sessions[session.Token] = &cp
	return nil
}

func (r *fakeSessionRepo) FindByToken(_ *gorm.DB, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) DeleteByToken(_ *gorm.DB, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *fakeSessionRepo) DeleteByUserID(_ *gorm.DB, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, token)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var purged int64
	now := time.Now()
	for token, s := range r.sessions {
		if s.ExpiresAt.Before(now) {
			delete(r.sessions, token)
			purged++
		}
	}
	return purged, nil
}

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[string]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*models.Client{}}
}

func (r *fakeClientRepo) Create(_ *gorm.DB, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) FindByID(_ *gorm.DB, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, repositories.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) FindByEmail(_ *gorm.DB, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if strings.EqualFold(c.Email, email) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrClientNotFound
}

func (r *fakeClientRepo) UpdateStripeCustomerID(_ *gorm.DB, id, stripeCustomerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return repositories.ErrClientNotFound
	}
	c.StripeCustomerID = stripeCustomerID
	return nil
}

type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices []models.Invoice
	clients  *fakeClientRepo
}

func newFakeInvoiceRepo(clients *fakeClientRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{clients: clients}
}

func (r *fakeInvoiceRepo) Create(_ *gorm.DB, invoice *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	invoice.CreatedAt = time.Now()
	r.invoices = append(r.invoices, *invoice)
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ *gorm.DB, id string) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invoices {
		if inv.ID == id {
			cp := inv
			return &cp, nil
		}
	}
	return nil, repositories.ErrInvoiceNotFound
}

func (r *fakeInvoiceRepo) FindAll(_ *gorm.DB) ([]models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *fakeInvoiceRepo) FindByClientID(_ *gorm.DB, clientID string) ([]models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindByClientEmail(db *gorm.DB, email string) ([]models.Invoice, error) {
	client, err := r.clients.FindByEmail(db, email)
	if err != nil {
		return []models.Invoice{}, nil
	}
	return r.FindByClientID(db, client.ID)
}

func (r *fakeInvoiceRepo) UpdateStatus(_ *gorm.DB, id string, status models.InvoiceStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invoices {
		if r.invoices[i].ID == id {
			r.invoices[i].Status = status
			return nil
		}
	}
	return repositories.ErrInvoiceNotFound
}

type fakePortfolioRepo struct {
	mu    sync.Mutex
	items map[string]*models.PortfolioItem
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{items: map[string]*models.PortfolioItem{}}
}

func (r *fakePortfolioRepo) Create(_ *gorm.DB, item *models.PortfolioItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.DisplayOrder == 0 {
		maxOrder := 0
		for _, it := range r.items {
			if it.DisplayOrder > maxOrder {
				maxOrder = it.DisplayOrder
			}
		}
		item.DisplayOrder = maxOrder + 1
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakePortfolioRepo) FindByID(_ *gorm.DB, id string) (*models.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrPortfolioItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakePortfolioRepo) FindAll(_ *gorm.DB) ([]models.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.PortfolioItem
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakePortfolioRepo) FindByCategory(_ *gorm.DB, category string) ([]models.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.PortfolioItem
	for _, it := range r.items {
		if it.Category == category {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakePortfolioRepo) FindFeatured(_ *gorm.DB) ([]models.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.PortfolioItem
	for _, it := range r.items {
		if it.Featured == 1 {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakePortfolioRepo) Update(_ *gorm.DB, item *models.PortfolioItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return repositories.ErrPortfolioItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakePortfolioRepo) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repositories.ErrPortfolioItemNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries []models.ContactInquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{}
}

func (r *fakeInquiryRepo) Create(_ *gorm.DB, inquiry *models.ContactInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	inquiry.CreatedAt = time.Now()
	r.inquiries = append(r.inquiries, *inquiry)
	return nil
}

func (r *fakeInquiryRepo) FindByID(_ *gorm.DB, id string) (*models.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inq := range r.inquiries {
		if inq.ID == id {
			cp := inq
			return &cp, nil
		}
	}
	return nil, repositories.ErrInquiryNotFound
}

func (r *fakeInquiryRepo) FindAll(_ *gorm.DB) ([]models.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ContactInquiry, len(r.inquiries))
	copy(out, r.inquiries)
	return out, nil
}

func (r *fakeInquiryRepo) FindByEmail(_ *gorm.DB, email string) ([]models.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ContactInquiry
	for _, inq := range r.inquiries {
		if strings.EqualFold(inq.Email, email) {
			out = append(out, inq)
		}
	}
	return out, nil
}

func (r *fakeInquiryRepo) UpdateStatus(_ *gorm.DB, id string, status models.InquiryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.inquiries {
		if r.inquiries[i].ID == id {
			r.inquiries[i].Status = status
			return nil
		}
	}
	return repositories.ErrInquiryNotFound
}

// fakeBillingProvider records the pipeline calls in order and can be primed
// with an existing customer or a per-step failure.
type fakeBillingProvider struct {
	mu               sync.Mutex
	calls            []string
	existingCustomer *billing.Customer
	failOn           map[string]error

	lineItemAmount   int64
	lineItemCurrency string
	lineItemDesc     string
}

func newFakeBillingProvider() *fakeBillingProvider {
	return &fakeBillingProvider{failOn: map[string]error{}}
}

func (p *fakeBillingProvider) record(call string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
	return p.failOn[call]
}

func (p *fakeBillingProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.calls))
	copy(out, p.calls)
	return out
}

func (p *fakeBillingProvider) FindCustomerByEmail(_ context.Context, _ string) (*billing.Customer, error) {
	if err := p.record("FindCustomerByEmail"); err != nil {
		return nil, err
	}
	return p.existingCustomer, nil
}

func (p *fakeBillingProvider) CreateCustomer(_ context.Context, name, email string) (*billing.Customer, error) {
	if err := p.record("CreateCustomer"); err != nil {
		return nil, err
	}
	return &billing.Customer{ID: "cus_new", Name: name, Email: email}, nil
}

func (p *fakeBillingProvider) CreateDraftInvoice(_ context.Context, _ string, _ int64) (*billing.ProviderInvoice, error) {
	if err := p.record("CreateDraftInvoice"); err != nil {
		return nil, err
	}
	return &billing.ProviderInvoice{ID: "in_draft", Status: "draft"}, nil
}

func (p *fakeBillingProvider) AddLineItem(_ context.Context, _, _ string, amountCents int64, currency, description string) error {
	if err := p.record("AddLineItem"); err != nil {
		return err
	}
	p.mu.Lock()
	p.lineItemAmount = amountCents
	p.lineItemCurrency = currency
	p.lineItemDesc = description
	p.mu.Unlock()
	return nil
}

func (p *fakeBillingProvider) FinalizeInvoice(_ context.Context, invoiceID string) (*billing.ProviderInvoice, error) {
	if err := p.record("FinalizeInvoice"); err != nil {
		return nil, err
	}
	return &billing.ProviderInvoice{
		ID:               invoiceID,
		HostedInvoiceURL: "https://invoice.example.com/" + invoiceID,
		Status:           "open",
	}, nil
}

func (p *fakeBillingProvider) SendInvoice(_ context.Context, invoiceID string) (*billing.ProviderInvoice, error) {
	if err := p.record("SendInvoice"); err != nil {
		return nil, err
	}
	return &billing.ProviderInvoice{ID: invoiceID, Status: "open"}, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (s *fakeSender) Send(to, subject, htmlBody string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (s *fakeSender) Sent() []sentMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sentMail, len(s.sent))
	copy(out, s.sent)
	return out
}
