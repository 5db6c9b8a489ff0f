package catalog

import "video-rental-statements/internal/domain"

// Sample builds the demo shop: three movies, one per pricing policy, and
// three customers renting each of them.
//
//	Zak: The Mask 10 days, Avatar 134 days, Encanto 1 day
//	Tom: The Mask 1 day,   Avatar 1 day,    Encanto 2 days
//	Amy: The Mask 5 days,  Avatar 0 days,   Encanto -19 days
func Sample() *Library {
	regular := domain.NewMovie("The Mask", domain.Regular)
	newRelease := domain.NewMovie("Avatar", domain.NewRelease)
	childrens := domain.NewMovie("Encanto", domain.Childrens)

	lib := NewLibrary()
	for _, s := range []struct {
		name string
		days [3]int
	}{
		{"Zak", [3]int{10, 134, 1}},
		{"Tom", [3]int{1, 1, 2}},
		{"Amy", [3]int{5, 0, -19}},
	} {
		customer := domain.NewCustomer(s.name)
		customer.AddRental(domain.NewRental(regular, s.days[0]))
		customer.AddRental(domain.NewRental(newRelease, s.days[1]))
		customer.AddRental(domain.NewRental(childrens, s.days[2]))
		lib.Add(customer)
	}
	return lib
}
