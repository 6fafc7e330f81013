package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
	"github.com/dmitrijs2005/userdeck/internal/common"
)

// List prints the loaded page through the current search filter.
func (a *App) List(ctx context.Context) error {
	return renderUsers(a.out, a.format, a.collection.State(), a.collection.FilteredUsers())
}

func (a *App) Page(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: page N")
		return err
	}
	return a.afterFetch(ctx, a.collection.FetchPage(ctx, n))
}

func (a *App) Next(ctx context.Context) error {
	return a.afterFetch(ctx, a.collection.NextPage(ctx))
}

func (a *App) Prev(ctx context.Context) error {
	return a.afterFetch(ctx, a.collection.PrevPage(ctx))
}

func (a *App) Refresh(ctx context.Context) error {
	return a.afterFetch(ctx, a.collection.Refresh(ctx))
}

// Search sets the filter; an empty term shows the whole page again.
func (a *App) Search(ctx context.Context, term string) error {
	a.collection.SetSearchTerm(term)
	return a.List(ctx)
}

// Edit prompts for each field with the current value shown. Leaving a prompt
// empty keeps the field out of the update.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: edit ID")
		return err
	}

	u, ok := a.collection.User(id)
	if !ok {
		fmt.Fprintf(a.out, "User %d is not on the current page\n", id)
		return common.ErrorNotFound
	}

	patch, err := a.promptPatch(u)
	if err != nil {
		return err
	}

	return a.afterMutation(ctx, a.collection.UpdateUser(ctx, id, patch))
}

func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delete ID")
		return err
	}

	if _, ok := a.collection.User(id); !ok {
		fmt.Fprintf(a.out, "User %d is not on the current page\n", id)
		return common.ErrorNotFound
	}

	return a.afterMutation(ctx, a.collection.DeleteUser(ctx, id))
}

func (a *App) promptPatch(u models.User) (models.UserPatch, error) {
	var patch models.UserPatch

	fields := []struct {
		label   string
		current string
		dst     **string
	}{
		{"First name", u.FirstName, &patch.FirstName},
		{"Last name", u.LastName, &patch.LastName},
		{"Email", u.Email, &patch.Email},
	}

	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, f.current), a.out)
		if err != nil {
			return models.UserPatch{}, err
		}
		if v != "" {
			*f.dst = &v
		}
	}
	return patch, nil
}

func (a *App) afterFetch(ctx context.Context, err error) error {
	if err != nil {
		return a.report(ctx, err)
	}
	return a.List(ctx)
}

func (a *App) afterMutation(ctx context.Context, err error) error {
	if err := a.report(ctx, err); err != nil {
		return err
	}
	return a.List(ctx)
}
