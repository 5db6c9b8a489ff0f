package domain

// Customer owns an ordered list of rentals. Rentals are only ever appended;
// statements list them in insertion order.
type Customer struct {
	name    string
	rentals []*Rental
}

func NewCustomer(name string) *Customer {
	return &Customer{name: name}
}

func (c *Customer) Name() string {
	return c.name
}

// AddRental appends a rental. Nil rentals are ignored.
func (c *Customer) AddRental(rental *Rental) {
	if rental == nil {
		return
	}
	c.rentals = append(c.rentals, rental)
}

// Rentals returns a copy of the rental list.
func (c *Customer) Rentals() []*Rental {
	rentals := make([]*Rental, len(c.rentals))
	copy(rentals, c.rentals)
	return rentals
}

// TotalCharge sums every rental charge, starting from integer zero.
func (c *Customer) TotalCharge() Amount {
	total := IntAmount(0)
	for _, rental := range c.rentals {
		total = total.Add(rental.Charge())
	}
	return total
}

func (c *Customer) TotalFrequentRenterPoints() int {
	total := 0
	for _, rental := range c.rentals {
		total += rental.FrequentRenterPoints()
	}
	return total
}
