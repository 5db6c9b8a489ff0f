package domain

// Movie is a title with its current pricing policy. The policy can be
// replaced at any time, e.g. when a new release moves to the regular catalogue.
type Movie struct {
	title string
	price Price
}

// NewMovie creates a movie. A nil price falls back to Regular so a movie
// always has a policy to dispatch to.
func NewMovie(title string, price Price) *Movie {
	if price == nil {
		price = Regular
	}
	return &Movie{title: title, price: price}
}

func (m *Movie) Title() string {
	return m.title
}

func (m *Movie) Price() Price {
	return m.price
}

// SetPrice replaces the pricing policy. A nil price is ignored.
func (m *Movie) SetPrice(price Price) {
	if price == nil {
		return
	}
	m.price = price
}

// SetPriceCode re-tags the movie with the policy registered for code. On an
// unknown code the current policy is kept.
func (m *Movie) SetPriceCode(code PriceCode) error {
	price, err := PriceForCode(code)
	if err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Movie) Charge(daysRented int) Amount {
	return m.price.Charge(daysRented)
}

func (m *Movie) FrequentRenterPoints(daysRented int) int {
	return m.price.FrequentRenterPoints(daysRented)
}
