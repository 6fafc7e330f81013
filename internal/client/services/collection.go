package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userdeck/internal/client/client"
	"github.com/dmitrijs2005/userdeck/internal/client/models"
	"github.com/dmitrijs2005/userdeck/internal/common"
	"github.com/dmitrijs2005/userdeck/internal/logging"
	"golang.org/x/text/cases"
)

type Status string

const (
	StatusIdle        Status = "idle"
	StatusFetching    Status = "fetching"
	StatusFetchFailed Status = "fetch_failed"
)

// CollectionState is a snapshot of the loaded page. Users holds exactly one
// page; SearchTerm only filters what is shown.
type CollectionState struct {
	Page       int
	TotalPages int
	Users      []models.User
	SearchTerm string
	Status     Status
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the last message meant for the operator. The zero value means
// there is nothing to show.
type Notice struct {
	Text string
	Kind NoticeKind
}

func (n Notice) IsZero() bool { return n.Text == "" }

// CollectionService is the paginated user collection as seen by the console.
type CollectionService interface {
	FetchPage(ctx context.Context, n int) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Refresh(ctx context.Context) error
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) error
	DeleteUser(ctx context.Context, id int) error
	SetSearchTerm(term string)
	FilteredUsers() []models.User
	User(id int) (models.User, bool)
	State() CollectionState
	Notice() Notice
	DismissNotice()
	Reset()
}

// UserCollection keeps one page of users in step with the directory API.
// Local users change only after the server has confirmed a mutation. The
// mutex guards state only and is never held across a remote call.
type UserCollection struct {
	client client.Client
	logger logging.Logger

	mu     sync.Mutex
	state  CollectionState
	notice Notice
}

func NewUserCollection(c client.Client, logger logging.Logger) *UserCollection {
	return &UserCollection{
		client: c,
		logger: logger.With("component", "collection"),
		state:  initialState(),
	}
}

func initialState() CollectionState {
	return CollectionState{
		Page:       1,
		TotalPages: 1,
		Users:      []models.User{},
		Status:     StatusIdle,
	}
}

// Reset drops the loaded page, the search term and any pending notice.
func (c *UserCollection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = initialState()
	c.notice = Notice{}
}

// FetchPage replaces the loaded users with page n. On failure the previous
// page stays loaded and the status becomes StatusFetchFailed.
func (c *UserCollection) FetchPage(ctx context.Context, n int) error {
	if n < 1 {
		fe := &FetchError{Page: n, Message: fmt.Sprintf("Invalid page %d", n), Err: common.ErrorInvalidPage}
		c.setNotice(Notice{Text: fe.Message, Kind: NoticeError})
		return fe
	}

	c.mu.Lock()
	c.state.Status = StatusFetching
	c.mu.Unlock()

	page, err := c.client.ListUsers(ctx, n)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state.Status = StatusFetchFailed
		fe := &FetchError{Page: n, Message: displayMessage(err, MsgFetchFailed), Err: err}
		c.notice = Notice{Text: fe.Message, Kind: NoticeError}
		c.logger.Warn(ctx, "fetch failed", "page", n, "error", err)
		return fe
	}

	users := make([]models.User, len(page.Users))
	copy(users, page.Users)

	totalPages := page.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}

	c.state.Users = users
	c.state.TotalPages = totalPages
	c.state.Page = n
	c.state.Status = StatusIdle

	c.logger.Debug(ctx, "page fetched", "page", n, "users", len(users), "total_pages", totalPages)
	return nil
}

func (c *UserCollection) NextPage(ctx context.Context) error {
	c.mu.Lock()
	page, total := c.state.Page, c.state.TotalPages
	c.mu.Unlock()

	if page >= total {
		return ErrNoMorePages
	}
	return c.FetchPage(ctx, page+1)
}

func (c *UserCollection) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	page := c.state.Page
	c.mu.Unlock()

	if page <= 1 {
		return ErrNoMorePages
	}
	return c.FetchPage(ctx, page-1)
}

// Refresh re-fetches the current page.
func (c *UserCollection) Refresh(ctx context.Context) error {
	c.mu.Lock()
	page := c.state.Page
	c.mu.Unlock()

	return c.FetchPage(ctx, page)
}

// UpdateUser sends patch to the server and, once it succeeds, applies the
// same fields to the local copy of user id. The server response is ignored.
func (c *UserCollection) UpdateUser(ctx context.Context, id int, patch models.UserPatch) error {
	if patch.IsEmpty() {
		me := &MutationError{Op: OpUpdate, UserID: id, Message: "Nothing to update", Err: common.ErrorEmptyPatch}
		c.setNotice(Notice{Text: me.Message, Kind: NoticeError})
		return me
	}

	if err := c.client.UpdateUser(ctx, id, patch); err != nil {
		me := &MutationError{Op: OpUpdate, UserID: id, Message: displayMessage(err, MsgUpdateFailed), Err: err}
		c.setNotice(Notice{Text: me.Message, Kind: NoticeError})
		c.logger.Warn(ctx, "update failed", "user_id", id, "error", err)
		return me
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	users := make([]models.User, len(c.state.Users))
	copy(users, c.state.Users)
	for i := range users {
		if users[i].ID == id {
			users[i] = patch.Apply(users[i])
			break
		}
	}
	c.state.Users = users
	c.notice = Notice{Text: MsgUserUpdated, Kind: NoticeSuccess}

	c.logger.Info(ctx, "user updated", "user_id", id, "fields", patch.Fields())
	return nil
}

// DeleteUser removes user id on the server and then from the loaded page.
// TotalPages is left as it was.
func (c *UserCollection) DeleteUser(ctx context.Context, id int) error {
	if err := c.client.DeleteUser(ctx, id); err != nil {
		me := &MutationError{Op: OpDelete, UserID: id, Message: displayMessage(err, MsgDeleteFailed), Err: err}
		c.setNotice(Notice{Text: me.Message, Kind: NoticeError})
		c.logger.Warn(ctx, "delete failed", "user_id", id, "error", err)
		return me
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	users := make([]models.User, 0, len(c.state.Users))
	for _, u := range c.state.Users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	c.state.Users = users
	c.notice = Notice{Text: MsgUserDeleted, Kind: NoticeSuccess}

	c.logger.Info(ctx, "user deleted", "user_id", id)
	return nil
}

func (c *UserCollection) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SearchTerm = term
}

// FilteredUsers returns the loaded users matching the search term, in server
// order. A blank term matches everyone.
func (c *UserCollection) FilteredUsers() []models.User {
	c.mu.Lock()
	users := c.state.Users
	term := c.state.SearchTerm
	c.mu.Unlock()

	return filterUsers(users, term)
}

func (c *UserCollection) User(id int) (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, u := range c.state.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (c *UserCollection) State() CollectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Users = make([]models.User, len(c.state.Users))
	copy(s.Users, c.state.Users)
	return s
}

func (c *UserCollection) Notice() Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *UserCollection) DismissNotice() {
	c.setNotice(Notice{})
}

func (c *UserCollection) setNotice(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = n
}

// filterUsers never mutates users; the slice it returns is always fresh.
func filterUsers(users []models.User, term string) []models.User {
	if common.IsBlank(term) {
		out := make([]models.User, len(users))
		copy(out, users)
		return out
	}

	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(fold.String(u.FullName()), needle) ||
			strings.Contains(fold.String(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

var _ CollectionService = (*UserCollection)(nil)
