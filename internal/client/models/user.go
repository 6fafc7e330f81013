// Package models defines the records the console exchanges with the
// directory API.
package models

import "strings"

// User is one directory record. ID is assigned by the server and never
// changes; Avatar is display-only and is never sent back.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// FullName returns "first last" the way search matches it.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserPatch is a partial update. A nil field is not part of the patch.
type UserPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil
}

// Apply returns u with the patch fields overwritten. ID and Avatar are kept.
func (p UserPatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// Fields lists the names of the fields present in the patch, in wire order.
func (p UserPatch) Fields() []string {
	fields := make([]string, 0, 3)
	if p.FirstName != nil {
		fields = append(fields, "first_name")
	}
	if p.LastName != nil {
		fields = append(fields, "last_name")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	return fields
}

func (p UserPatch) String() string {
	return "patch{" + strings.Join(p.Fields(), ",") + "}"
}

// Page is one server-side slice of the user collection.
type Page struct {
	Number     int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Users      []User `json:"data"`
}

// Credential is the opaque token returned by a successful login. Identifier
// is the login email, kept for display only.
type Credential struct {
	Token      string
	Identifier string
}

// IsZero reports whether c holds no token.
func (c Credential) IsZero() bool {
	return c.Token == ""
}
