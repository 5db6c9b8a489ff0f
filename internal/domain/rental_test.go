package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRental(t *testing.T) {
	t.Run("Regular ten days", func(t *testing.T) {
		rental := NewRental(NewMovie("The Mask", Regular), 10)
		assert.Equal(t, 10, rental.DaysRented())
		assert.Equal(t, "The Mask", rental.Movie().Title())
		assert.Equal(t, "14.0", rental.Charge().String())
		assert.Equal(t, 1, rental.FrequentRenterPoints())
	})

	t.Run("New release long rental", func(t *testing.T) {
		rental := NewRental(NewMovie("Avatar", NewRelease), 134)
		assert.Equal(t, "402", rental.Charge().String())
		assert.Equal(t, 2, rental.FrequentRenterPoints())
	})

	t.Run("Childrens one day", func(t *testing.T) {
		rental := NewRental(NewMovie("Encanto", Childrens), 1)
		assert.Equal(t, 1.5, rental.Charge().Float64())
		assert.Equal(t, 1, rental.FrequentRenterPoints())
	})

	t.Run("Negative duration is accepted", func(t *testing.T) {
		rental := NewRental(NewMovie("Avatar", NewRelease), -4)
		assert.Equal(t, "-12", rental.Charge().String())
		assert.Equal(t, 1, rental.FrequentRenterPoints())
	})

	t.Run("Policy is read at call time", func(t *testing.T) {
		movie := NewMovie("Avatar", NewRelease)
		rental := NewRental(movie, 3)
		assert.Equal(t, "9", rental.Charge().String())
		assert.Equal(t, 2, rental.FrequentRenterPoints())

		movie.SetPrice(Regular)
		assert.Equal(t, "3.5", rental.Charge().String())
		assert.Equal(t, 1, rental.FrequentRenterPoints())
	})
}
