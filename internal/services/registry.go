package services

import (
	"time"

	"github.com/gadsdencode/pixprofolio/internal/billing"
	"github.com/gadsdencode/pixprofolio/internal/config"
	"github.com/gadsdencode/pixprofolio/internal/email"
	"github.com/gadsdencode/pixprofolio/internal/repositories"
)

// ServiceContainer wires repositories into services once at startup.
type ServiceContainer struct {
	Auth      AuthService
	Session   SessionService
	Invoice   InvoiceService
	Portfolio PortfolioService
	Inquiry   InquiryService
}

func NewServiceContainer(cfg *config.Config, provider billing.Provider, sender email.Sender) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	clientRepo := repositories.NewClientRepository()
	invoiceRepo := repositories.NewInvoiceRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	inquiryRepo := repositories.NewInquiryRepository()

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour

	return &ServiceContainer{
		Auth:      NewAuthService(userRepo),
		Session:   NewSessionService(sessionRepo, userRepo, sessionTTL),
		Invoice:   NewInvoiceService(invoiceRepo, clientRepo, provider),
		Portfolio: NewPortfolioService(portfolioRepo),
		Inquiry:   NewInquiryService(inquiryRepo, sender, cfg.Email.OwnerEmail),
	}
}
