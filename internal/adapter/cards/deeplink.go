package cards

import (
	"net/url"
	"strconv"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// DeepLinkConfig holds the market parameters baked into every summary-card
// deep link.
type DeepLinkConfig struct {
	// BaseURL is the referral endpoint the summary card links to.
	BaseURL string

	// Country, Currency and Locale identify the market the link opens in.
	Country  string
	Currency string
	Locale   string
}

// BuildDeepLink builds the external search URL for a flight search. The
// query parameter set is fixed by the partner API: cabinClass, country,
// currency, locale, origin, destination, outboundDate, inboundDate, adults,
// children, infants.
func BuildDeepLink(cfg DeepLinkConfig, s domain.FlightSearch) string {
	params := url.Values{}
	params.Set("cabinClass", string(s.CabinClass))
	params.Set("country", cfg.Country)
	params.Set("currency", cfg.Currency)
	params.Set("locale", cfg.Locale)
	params.Set("origin", s.Origin)
	params.Set("destination", s.Destination)
	params.Set("outboundDate", s.TravelDate)
	params.Set("inboundDate", s.ReturnDate)
	params.Set("adults", strconv.Itoa(s.Adults))
	params.Set("children", strconv.Itoa(s.Children))
	params.Set("infants", strconv.Itoa(s.Infants))

	return cfg.BaseURL + "?" + params.Encode()
}
