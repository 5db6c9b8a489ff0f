package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownPriceCode = errors.New("unknown price code")

// Price is a pricing policy: it maps a rental duration to a charge and to
// frequent renter points. Implementations are stateless and may be shared by
// any number of movies.
type Price interface {
	Charge(daysRented int) Amount
	FrequentRenterPoints(daysRented int) int
}

// DefaultPrice supplies the standard points rule. Policies embed it unless
// they award points differently.
type DefaultPrice struct{}

// FrequentRenterPoints awards a single point per rental.
func (DefaultPrice) FrequentRenterPoints(daysRented int) int {
	return 1
}

// RegularPrice charges 2 for the first two days and 1.5 for each day after.
type RegularPrice struct {
	DefaultPrice
}

func (RegularPrice) Charge(daysRented int) Amount {
	result := IntAmount(2)
	if daysRented > 2 {
		result = result.Add(FloatAmount(float64(daysRented-2) * 1.5))
	}
	return result
}

// NewReleasePrice charges 3 per day and rewards rentals longer than a day
// with a bonus point.
type NewReleasePrice struct{}

func (NewReleasePrice) Charge(daysRented int) Amount {
	return IntAmount(int64(daysRented) * 3)
}

func (NewReleasePrice) FrequentRenterPoints(daysRented int) int {
	if daysRented > 1 {
		return 2
	}
	return 1
}

// ChildrensPrice charges 1.5 for the first three days and 1.5 for each day after.
type ChildrensPrice struct {
	DefaultPrice
}

func (ChildrensPrice) Charge(daysRented int) Amount {
	result := FloatAmount(1.5)
	if daysRented > 3 {
		result = result.Add(FloatAmount(float64(daysRented-3) * 1.5))
	}
	return result
}

// Shared policy instances.
var (
	Regular    Price = RegularPrice{}
	NewRelease Price = NewReleasePrice{}
	Childrens  Price = ChildrensPrice{}
)

type PriceCode int

const (
	PriceCodeRegular    PriceCode = 0
	PriceCodeNewRelease PriceCode = 1
	PriceCodeChildrens  PriceCode = 2
)

func (c PriceCode) String() string {
	switch c {
	case PriceCodeRegular:
		return "REGULAR"
	case PriceCodeNewRelease:
		return "NEW_RELEASE"
	case PriceCodeChildrens:
		return "CHILDRENS"
	default:
		return fmt.Sprintf("PriceCode(%d)", int(c))
	}
}

// PriceForCode returns the shared policy registered for code.
func PriceForCode(code PriceCode) (Price, error) {
	switch code {
	case PriceCodeRegular:
		return Regular, nil
	case PriceCodeNewRelease:
		return NewRelease, nil
	case PriceCodeChildrens:
		return Childrens, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPriceCode, int(code))
	}
}
