package server

// Server объединяет HTTP-сервера, отвечающие за конкретные сущности.
type Server struct {
	PricingServer
	ProductServer
	QuoteServer
}

func NewServer(
	pricingServer PricingServer,
	productServer ProductServer,
	quoteServer QuoteServer,
) Server {
	return Server{
		PricingServer: pricingServer,
		ProductServer: productServer,
		QuoteServer:   quoteServer,
	}
}
