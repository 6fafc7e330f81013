package directory

import (
	"fmt"
	"strings"
)

var seedNames = []struct{ first, last string }{
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// SeedUsers returns the twelve demo users the directory starts with.
func SeedUsers() []User {
	users := make([]User, 0, len(seedNames))
	for i, n := range seedNames {
		id := i + 1
		users = append(users, User{
			ID:        id,
			Email:     strings.ToLower(fmt.Sprintf("%s.%s@reqres.in", n.first, n.last)),
			FirstName: n.first,
			LastName:  n.last,
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		})
	}
	return users
}
