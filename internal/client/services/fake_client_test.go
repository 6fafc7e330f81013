package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userdeck/internal/client/models"
)

// ---- fake client ----

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	mu sync.Mutex

	LoginToken string
	LoginErr   error

	// Pages is keyed by page number; a missing page yields ListErr or an empty page.
	Pages   map[int]*models.Page
	ListErr error
	// ListErrFor fails only the given pages.
	ListErrFor map[int]error

	UpdateErr error
	DeleteErr error

	// OnCall runs at the start of ListUsers, UpdateUser and DeleteUser,
	// while the remote call is still in flight.
	OnCall func()

	LastLoginEmail    string
	LastLoginPassword []byte
	LastListPage      int
	LastUpdateID      int
	LastUpdatePatch   models.UserPatch
	LastDeleteID      int

	LoginCalls  int
	ListCalls   int
	UpdateCalls int
	DeleteCalls int
}

func (f *fakeClient) Login(_ context.Context, email string, password []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginEmail = email
	f.LastLoginPassword = append([]byte(nil), password...)
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.LoginToken, nil
}

func (f *fakeClient) ListUsers(_ context.Context, page int) (*models.Page, error) {
	if f.OnCall != nil {
		f.OnCall()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	f.LastListPage = page
	if err, ok := f.ListErrFor[page]; ok {
		return nil, err
	}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if p, ok := f.Pages[page]; ok {
		cp := *p
		cp.Users = append([]models.User(nil), p.Users...)
		return &cp, nil
	}
	return &models.Page{Number: page, TotalPages: 1}, nil
}

func (f *fakeClient) UpdateUser(_ context.Context, id int, patch models.UserPatch) error {
	if f.OnCall != nil {
		f.OnCall()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastUpdateID = id
	f.LastUpdatePatch = patch
	return f.UpdateErr
}

func (f *fakeClient) DeleteUser(_ context.Context, id int) error {
	if f.OnCall != nil {
		f.OnCall()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	f.LastDeleteID = id
	return f.DeleteErr
}

// ---- fixtures ----

func strptr(s string) *string { return &s }

func page1() *models.Page {
	return &models.Page{
		Number: 1, PerPage: 6, Total: 12, TotalPages: 2,
		Users: []models.User{
			{ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth", Avatar: "https://reqres.in/img/faces/1-image.jpg"},
			{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver", Avatar: "https://reqres.in/img/faces/2-image.jpg"},
			{ID: 3, Email: "emma.wong@reqres.in", FirstName: "Emma", LastName: "Wong", Avatar: "https://reqres.in/img/faces/3-image.jpg"},
			{ID: 4, Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt", Avatar: "https://reqres.in/img/faces/4-image.jpg"},
			{ID: 5, Email: "charles.morris@reqres.in", FirstName: "Charles", LastName: "Morris", Avatar: "https://reqres.in/img/faces/5-image.jpg"},
			{ID: 6, Email: "tracey.ramos@reqres.in", FirstName: "Tracey", LastName: "Ramos", Avatar: "https://reqres.in/img/faces/6-image.jpg"},
		},
	}
}

func page2() *models.Page {
	return &models.Page{
		Number: 2, PerPage: 6, Total: 12, TotalPages: 2,
		Users: []models.User{
			{ID: 7, Email: "michael.lawson@reqres.in", FirstName: "Michael", LastName: "Lawson"},
			{ID: 8, Email: "lindsay.ferguson@reqres.in", FirstName: "Lindsay", LastName: "Ferguson"},
			{ID: 9, Email: "tobias.funke@reqres.in", FirstName: "Tobias", LastName: "Funke"},
			{ID: 10, Email: "byron.fields@reqres.in", FirstName: "Byron", LastName: "Fields"},
			{ID: 11, Email: "george.edwards@reqres.in", FirstName: "George", LastName: "Edwards"},
			{ID: 12, Email: "rachel.howell@reqres.in", FirstName: "Rachel", LastName: "Howell"},
		},
	}
}

func twoPageClient() *fakeClient {
	return &fakeClient{Pages: map[int]*models.Page{1: page1(), 2: page2()}}
}
