package domain

// Rental pairs a movie with the number of days it was rented. The movie is
// referenced, not copied, so its current policy is read on every call.
// Zero and negative durations are accepted as-is.
type Rental struct {
	movie      *Movie
	daysRented int
}

func NewRental(movie *Movie, daysRented int) *Rental {
	return &Rental{movie: movie, daysRented: daysRented}
}

func (r *Rental) Movie() *Movie {
	return r.movie
}

func (r *Rental) DaysRented() int {
	return r.daysRented
}

func (r *Rental) Charge() Amount {
	return r.movie.Charge(r.daysRented)
}

func (r *Rental) FrequentRenterPoints() int {
	return r.movie.FrequentRenterPoints(r.daysRented)
}
