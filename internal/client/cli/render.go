package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
	"github.com/dmitrijs2005/userdeck/internal/client/services"
)

type usersView struct {
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Search     string        `json:"search,omitempty"`
	Users      []models.User `json:"users"`
}

// renderUsers writes users as a table, or as one JSON document when format
// is "json".
func renderUsers(w io.Writer, format string, st services.CollectionState, users []models.User) error {
	if strings.EqualFold(format, "json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(usersView{
			Page:       st.Page,
			TotalPages: st.TotalPages,
			Search:     st.SearchTerm,
			Users:      users,
		})
	}

	var b strings.Builder
	switch {
	case len(users) > 0:
		fmt.Fprintf(&b, "%-4s  %-24s  %s\n", "ID", "NAME", "EMAIL")
		for _, u := range users {
			fmt.Fprintf(&b, "%-4d  %-24s  %s\n", u.ID, u.FullName(), u.Email)
		}
	case st.SearchTerm != "":
		fmt.Fprintf(&b, "No users match %q\n", st.SearchTerm)
	default:
		b.WriteString("No users on this page\n")
	}

	fmt.Fprintf(&b, "Page %d of %d", st.Page, st.TotalPages)
	if st.SearchTerm != "" {
		fmt.Fprintf(&b, ", showing %d of %d", len(users), len(st.Users))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
