package providers

// All is a struct that contains all providers
type All struct {
	// Logger is the registered logger provider
	Logger Logger
	// Metrics is the registered metrics provider
	Metrics Metrics
	// PaymentGateway is the registered payment gateway provider
	PaymentGateway PaymentGateway
}
