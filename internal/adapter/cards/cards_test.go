package cards

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

var testDeepLink = DeepLinkConfig{
	BaseURL:  "https://partners.example.com/referral",
	Country:  "US",
	Currency: "USD",
	Locale:   "en-US",
}

func completedSearch() domain.FlightSearch {
	return domain.FlightSearch{
		Origin:          "SFO",
		OriginCity:      "San Francisco",
		Destination:     "AMS",
		DestinationCity: "Amsterdam",
		ReturnTrip:      domain.ReturnTripYes,
		TravelDate:      "2026-10-18",
		ReturnDate:      "2026-10-25",
		CabinClass:      domain.CabinBusiness,
		Adults:          2,
		Children:        1,
		Infants:         0,
	}
}

func TestWelcome(t *testing.T) {
	card := NewRenderer(testDeepLink).Welcome()

	require.Len(t, card.Actions, 1)
	assert.Equal(t, StartKeyword, card.Actions[0].Value)
}

func TestAirportChoice(t *testing.T) {
	airports := []domain.Airport{
		{IATA: "NBO", Name: "Jomo Kenyatta", City: "Nairobi"},
		{IATA: "MBA", Name: "Moi International", City: "Mombasa"},
	}

	card := NewRenderer(testDeepLink).AirportChoice("Destination Airport", airports)

	require.Len(t, card.Actions, 2)
	assert.Equal(t, "NBO", card.Actions[0].Value)
	assert.Contains(t, card.Actions[0].Label, "Jomo Kenyatta")
	assert.Contains(t, card.Actions[0].Label, "Nairobi")
	assert.Equal(t, "MBA", card.Actions[1].Value)
}

func TestReturnTrip(t *testing.T) {
	card := NewRenderer(testDeepLink).ReturnTrip()

	require.Len(t, card.Actions, 2)
	assert.Equal(t, "yes", card.Actions[0].Value)
	assert.Equal(t, "no", card.Actions[1].Value)
}

func TestCabinClass(t *testing.T) {
	card := NewRenderer(testDeepLink).CabinClass()

	require.Len(t, card.Actions, 4)
	values := make([]string, 0, 4)
	for _, a := range card.Actions {
		values = append(values, a.Value)
	}
	assert.Equal(t, []string{"Economy", "PremiumEconomy", "Business", "First"}, values)

	// Display label is spaced, submitted value is not.
	assert.Equal(t, "Premium Economy", card.Actions[1].Label)
}

func TestModifyMenu(t *testing.T) {
	card := NewRenderer(testDeepLink).ModifyMenu()

	require.Len(t, card.Actions, len(ModifiableFields))
	for i, field := range ModifiableFields {
		assert.Equal(t, field, card.Actions[i].Value)
	}
}

func TestSummary(t *testing.T) {
	card := NewRenderer(testDeepLink).Summary(completedSearch())

	assert.Equal(t, "Flight Search Summary", card.Title)
	assert.Contains(t, card.Body, "San Francisco (SFO)")
	assert.Contains(t, card.Body, "Amsterdam (AMS)")
	assert.Contains(t, card.Body, "2026-10-18")
	assert.Contains(t, card.Body, "2026-10-25")
	assert.Contains(t, card.Body, "2 adult(s)")
	assert.NotEmpty(t, card.DeepLink)
}

func TestSummary_OneWayOmitsReturnDate(t *testing.T) {
	search := completedSearch()
	search.ReturnTrip = domain.ReturnTripNo
	search.ReturnDate = ""

	card := NewRenderer(testDeepLink).Summary(search)
	assert.NotContains(t, card.Body, "Return date")
}

func TestBuildDeepLink_QueryParameters(t *testing.T) {
	link := BuildDeepLink(testDeepLink, completedSearch())

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, testDeepLink.BaseURL+"?"))

	query := parsed.Query()
	assert.Equal(t, "Business", query.Get("cabinClass"))
	assert.Equal(t, "US", query.Get("country"))
	assert.Equal(t, "USD", query.Get("currency"))
	assert.Equal(t, "en-US", query.Get("locale"))
	assert.Equal(t, "SFO", query.Get("origin"))
	assert.Equal(t, "AMS", query.Get("destination"))
	assert.Equal(t, "2026-10-18", query.Get("outboundDate"))
	assert.Equal(t, "2026-10-25", query.Get("inboundDate"))
	assert.Equal(t, "2", query.Get("adults"))
	assert.Equal(t, "1", query.Get("children"))
	assert.Equal(t, "0", query.Get("infants"))
}
