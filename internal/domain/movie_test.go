package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovie(t *testing.T) {
	t.Run("Delegates to its price", func(t *testing.T) {
		movie := NewMovie("Avatar", NewRelease)
		assert.Equal(t, "Avatar", movie.Title())
		assert.Equal(t, NewRelease, movie.Price())
		assert.Equal(t, "402", movie.Charge(134).String())
		assert.Equal(t, 2, movie.FrequentRenterPoints(134))
	})

	t.Run("Nil price falls back to regular", func(t *testing.T) {
		movie := NewMovie("The Mask", nil)
		assert.Equal(t, Regular, movie.Price())
	})

	t.Run("SetPrice replaces the policy", func(t *testing.T) {
		movie := NewMovie("Avatar", NewRelease)
		movie.SetPrice(Regular)
		assert.Equal(t, Regular, movie.Price())
		assert.Equal(t, "14.0", movie.Charge(10).String())

		movie.SetPrice(nil)
		assert.Equal(t, Regular, movie.Price())
	})

	t.Run("SetPriceCode", func(t *testing.T) {
		movie := NewMovie("Encanto", Regular)
		assert.NoError(t, movie.SetPriceCode(PriceCodeChildrens))
		assert.Equal(t, Childrens, movie.Price())

		err := movie.SetPriceCode(PriceCode(-1))
		assert.ErrorIs(t, err, ErrUnknownPriceCode)
		assert.Equal(t, Childrens, movie.Price())
	})
}
