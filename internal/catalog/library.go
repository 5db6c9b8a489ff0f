package catalog

import (
	"sync"

	"video-rental-statements/internal/domain"
)

// Library is an in-memory set of customers whose movies and rentals have
// already been constructed by the caller. Customers keep insertion order.
type Library struct {
	mu        sync.RWMutex
	customers []*domain.Customer
	byName    map[string]*domain.Customer
}

func NewLibrary() *Library {
	return &Library{byName: make(map[string]*domain.Customer)}
}

// Add registers a customer. A later customer with the same name replaces the
// earlier one in Get lookups but both are listed by Customers.
func (l *Library) Add(customer *domain.Customer) {
	if customer == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.customers = append(l.customers, customer)
	l.byName[customer.Name()] = customer
}

// Get returns the customer registered under name.
func (l *Library) Get(name string) (*domain.Customer, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.byName[name]
	return c, ok
}

// Customers returns every registered customer in insertion order.
func (l *Library) Customers() []*domain.Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	customers := make([]*domain.Customer, len(l.customers))
	copy(customers, l.customers)
	return customers
}

func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.customers)
}
