package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown statement format")

type StatementFormat string

const (
	StatementFormatText StatementFormat = "text"
	StatementFormatHTML StatementFormat = "html"
)

// ParseStatementFormat accepts "text"/"txt"/"plain" and "html", case-insensitively.
func ParseStatementFormat(s string) (StatementFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "plain":
		return StatementFormatText, nil
	case "html":
		return StatementFormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type statementLayout struct {
	header func(name string) string
	line   func(title string, charge Amount) string
	footer func(total Amount, points int) string
}

var textLayout = statementLayout{
	header: func(name string) string {
		return "Rental Record for " + name + "\n"
	},
	line: func(title string, charge Amount) string {
		return "\t" + title + "\t" + charge.String() + "\n"
	},
	footer: func(total Amount, points int) string {
		return "Amount owed is " + total.String() + "\n" +
			"You earned " + strconv.Itoa(points) + " frequent renter points"
	},
}

var htmlLayout = statementLayout{
	header: func(name string) string {
		return "<h1>Rentals for <em>" + name + "</em></h1><p>\n"
	},
	line: func(title string, charge Amount) string {
		return "\t" + title + ": " + charge.String() + "<br>\n"
	},
	footer: func(total Amount, points int) string {
		return "<p>You owe <em>" + total.String() + "</em></p>\n" +
			"On this rental you earned <em>" + strconv.Itoa(points) + "</em> frequent renter points</p>"
	},
}

// Statement renders the plain-text rental record. The last line has no
// trailing newline.
func (c *Customer) Statement() string {
	return c.render(textLayout)
}

// HTMLStatement renders the rental record as an HTML fragment. Names and
// titles are written verbatim.
func (c *Customer) HTMLStatement() string {
	return c.render(htmlLayout)
}

// StatementIn renders the rental record in the given format.
func (c *Customer) StatementIn(format StatementFormat) (string, error) {
	switch format {
	case StatementFormatText:
		return c.Statement(), nil
	case StatementFormatHTML:
		return c.HTMLStatement(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func (c *Customer) render(layout statementLayout) string {
	var b strings.Builder
	b.WriteString(layout.header(c.name))
	for _, rental := range c.rentals {
		b.WriteString(layout.line(rental.Movie().Title(), rental.Charge()))
	}
	b.WriteString(layout.footer(c.TotalCharge(), c.TotalFrequentRenterPoints()))
	return b.String()
}
