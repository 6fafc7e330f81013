package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdeck/internal/common"
	"github.com/dmitrijs2005/userdeck/internal/logging"
	"github.com/dmitrijs2005/userdeck/internal/server/auth"
	"github.com/dmitrijs2005/userdeck/internal/server/config"
)

type Service struct {
	repo          Repository
	hasher        auth.PasswordHasher
	logger        logging.Logger
	operatorEmail string
	operatorHash  []byte
	jwtSecret     []byte
	tokenTTL      time.Duration
	perPage       int
}

// NewService hashes the operator password once so the plain text is not kept.
func NewService(repo Repository, hasher auth.PasswordHasher, logger logging.Logger, cfg *config.Config) (*Service, error) {
	hash, err := hasher.Hash([]byte(cfg.OperatorPassword))
	if err != nil {
		return nil, fmt.Errorf("hash operator password: %w", err)
	}

	perPage := cfg.PerPage
	if perPage < 1 {
		perPage = common.DefaultPerPage
	}

	return &Service{
		repo:          repo,
		hasher:        hasher,
		logger:        logger.With("module", "directory"),
		operatorEmail: cfg.OperatorEmail,
		operatorHash:  hash,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenTTL:      cfg.TokenTTL,
		perPage:       perPage,
	}, nil
}

// Login checks the operator credentials and issues a token. Unknown emails
// and wrong passwords both yield ErrUserNotFound.
func (s *Service) Login(ctx context.Context, email string, password []byte) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", ErrMissingEmail
	}
	if len(password) == 0 {
		return "", ErrMissingPassword
	}

	if !strings.EqualFold(email, s.operatorEmail) {
		s.logger.Info(ctx, "login rejected", "email", email)
		return "", ErrUserNotFound
	}
	if err := s.hasher.Compare(s.operatorHash, password); err != nil {
		s.logger.Info(ctx, "login rejected", "email", email)
		return "", ErrUserNotFound
	}

	token, err := auth.GenerateToken(s.operatorEmail, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "login", "email", email)
	return token, nil
}

// Authenticate returns the email a token was issued for.
func (s *Service) Authenticate(token string) (string, error) {
	return auth.GetEmailFromToken(token, s.jwtSecret)
}

// List returns page n with perPage users per page. Non-positive values fall
// back to page 1 and the configured page size; perPage is capped at
// common.MaxPerPage. A page past the end is empty but still reports the totals.
func (s *Service) List(ctx context.Context, n, perPage int) (Page, error) {
	if n < 1 {
		n = 1
	}
	if perPage < 1 {
		perPage = s.perPage
	}
	perPage = min(perPage, common.MaxPerPage)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count users: %w", err)
	}

	totalPages := (total + perPage - 1) / perPage
	p := Page{
		Page:       n,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       []User{},
	}
	if n > totalPages {
		return p, nil
	}

	users, err := s.repo.List(ctx, (n-1)*perPage, perPage)
	if err != nil {
		return Page{}, fmt.Errorf("list users: %w", err)
	}
	p.Data = users
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, mapNotFound(err)
	}

	u = patch.apply(u)
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, mapNotFound(err)
	}

	s.logger.Info(ctx, "user updated", "id", id)
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	s.logger.Info(ctx, "user deleted", "id", id)
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return ErrUserNotFound
	}
	return err
}
