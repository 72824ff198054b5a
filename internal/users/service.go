package users

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chatci/chatci/internal/shared"
)

// RegistryPort defines the registry operations the service coordinates.
type RegistryPort interface {
	Add(name, email, role string) (Entry, error)
	Block(email string) (Entry, error)
	Unblock(email string) (Entry, error)
	List() ([]Entry, error)
	Len() int
}

// AuditRecorder receives an entry for every successful mutation.
type AuditRecorder interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Audit actions recorded by the service.
const (
	ActionAdd     = "user.add"
	ActionBlock   = "user.block"
	ActionUnblock = "user.unblock"
)

const auditEntity = "user"

// AddInput carries the fields of a new user.
type AddInput struct {
	Name  string
	Email string
	Role  string
}

// Service handles user business logic on top of the registry.
type Service struct {
	repo    RegistryPort
	logger  *slog.Logger
	metrics *Metrics
	audit   AuditRecorder
}

// NewService builds Service instance. Metrics and audit may be nil.
func NewService(repo RegistryPort, logger *slog.Logger, metrics *Metrics, audit AuditRecorder) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, metrics: metrics, audit: audit}
}

// Add registers a new user.
func (s *Service) Add(ctx context.Context, in AddInput) (Entry, error) {
	entry, err := s.repo.Add(in.Name, in.Email, in.Role)
	s.metrics.Observe("add", err)
	if err != nil {
		s.logger.WarnContext(ctx, "add user rejected", slog.String("email", in.Email), slog.Any("error", err))
		return Entry{}, err
	}
	s.metrics.SetRegistered(s.repo.Len())
	s.logger.InfoContext(ctx, "user added", slog.String("email", entry.Email), slog.String("role", entry.Role))
	s.record(ctx, ActionAdd, entry)
	return entry, nil
}

// Block blocks the user registered under email.
func (s *Service) Block(ctx context.Context, email string) (Entry, error) {
	return s.mutate(ctx, "block", ActionBlock, email, s.repo.Block)
}

// Unblock reactivates the user registered under email.
func (s *Service) Unblock(ctx context.Context, email string) (Entry, error) {
	return s.mutate(ctx, "unblock", ActionUnblock, email, s.repo.Unblock)
}

func (s *Service) mutate(ctx context.Context, op, action, email string, fn func(string) (Entry, error)) (Entry, error) {
	entry, err := fn(email)
	s.metrics.Observe(op, err)
	if err != nil {
		s.logger.WarnContext(ctx, op+" user rejected", slog.String("email", email), slog.Any("error", err))
		return Entry{}, err
	}
	s.logger.InfoContext(ctx, "user status changed", slog.String("email", entry.Email), slog.String("status", string(entry.Status)))
	s.record(ctx, action, entry)
	return entry, nil
}

// List returns every registered user, or ErrNoUsers.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List()
	s.metrics.Observe("list", err)
	if err != nil && !errors.Is(err, ErrNoUsers) {
		s.logger.ErrorContext(ctx, "list users failed", slog.Any("error", err))
	}
	return entries, err
}

func (s *Service) record(ctx context.Context, action string, entry Entry) {
	if s.audit == nil {
		return
	}
	err := s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   auditEntity,
		EntityID: entry.Email,
		Meta: map[string]any{
			"name":   entry.Name,
			"role":   entry.Role,
			"status": string(entry.Status),
		},
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit record failed", slog.String("action", action), slog.Any("error", err))
	}
}
