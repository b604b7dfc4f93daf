package handlers

// AppHandlers holds every handler in the application. OAuthHandler is nil
// when Google credentials are not configured.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	OAuthHandler     *OAuthHandler
	InvoiceHandler   *InvoiceHandler
	PortfolioHandler *PortfolioHandler
	ContactHandler   *ContactHandler
}
