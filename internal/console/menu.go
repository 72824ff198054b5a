package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/message"

	"github.com/chatci/chatci/internal/shared"
	"github.com/chatci/chatci/internal/users"
)

// UserService is the registry surface the menu drives.
type UserService interface {
	Add(ctx context.Context, in users.AddInput) (users.Entry, error)
	Block(ctx context.Context, email string) (users.Entry, error)
	Unblock(ctx context.Context, email string) (users.Entry, error)
	List(ctx context.Context) ([]users.Entry, error)
}

// History exposes the recorded activity.
type History interface {
	Entries() []shared.AuditLog
}

// Options configures a Menu.
type Options struct {
	Service UserService
	History History
	Printer *message.Printer
	Logger  *slog.Logger
	Stdin   io.Reader
	Stdout  io.Writer
	// MaxLineBytes caps one input line; longer lines are rejected.
	// Defaults to DefaultMaxLineBytes.
	MaxLineBytes int
}

// DefaultMaxLineBytes is the default cap on one input line.
const DefaultMaxLineBytes = 1 << 20

var errLineTooLong = errors.New("console: input line too long")

// Menu is the interactive text front-end over the user registry.
type Menu struct {
	service   UserService
	history   History
	printer   *message.Printer
	logger    *slog.Logger
	in        *bufio.Reader
	out       io.Writer
	maxLine   int
	validator *validator.Validate
	readErr   error
	writeErr  error
}

// NewMenu constructs a Menu instance.
func NewMenu(opts Options) (*Menu, error) {
	if opts.Service == nil {
		return nil, errors.New("console: service not configured")
	}
	if opts.Stdin == nil || opts.Stdout == nil {
		return nil, errors.New("console: stdin and stdout are required")
	}
	printer := opts.Printer
	if printer == nil {
		p, err := NewPrinter("pt-BR")
		if err != nil {
			return nil, err
		}
		printer = p
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	return &Menu{
		service:   opts.Service,
		history:   opts.History,
		printer:   printer,
		logger:    logger,
		in:        bufio.NewReader(opts.Stdin),
		out:       opts.Stdout,
		maxLine:   maxLine,
		validator: validator.New(),
	}, nil
}

type addForm struct {
	Name  string
	Email string `validate:"required"`
	Role  string
}

type emailForm struct {
	Email string `validate:"required"`
}

// Run shows the menu until the operator exits, input ends or ctx is done.
// A failed write to stdout ends the session with that error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.writeErr != nil {
			return m.writeErr
		}
		m.showMenu()
		option, err := m.prompt(msgMenuPrompt)
		if errors.Is(err, errLineTooLong) {
			m.println(msgLineTooLong)
			continue
		}
		if err != nil {
			m.println(msgMenuBye)
			if errors.Is(err, io.EOF) {
				return m.writeErr
			}
			return err
		}
		switch strings.TrimSpace(option) {
		case "1":
			m.addUser(ctx)
		case "2":
			m.listUsers(ctx)
		case "3":
			m.blockUser(ctx)
		case "4":
			m.unblockUser(ctx)
		case "5":
			m.showHistory()
		case "6":
			m.println(msgMenuBye)
			return m.writeErr
		default:
			m.println(msgMenuInvalid)
		}
	}
}

func (m *Menu) showMenu() {
	for _, key := range []string{msgMenuTitle, msgMenuAdd, msgMenuList, msgMenuBlock, msgMenuUnblock, msgMenuHistory, msgMenuExit} {
		m.println(key)
	}
}

func (m *Menu) addUser(ctx context.Context) {
	var form addForm
	var ok bool
	if form.Name, ok = m.ask(msgPromptName); !ok {
		return
	}
	if form.Email, ok = m.ask(msgPromptEmail); !ok {
		return
	}
	if form.Role, ok = m.ask(msgPromptRole); !ok {
		return
	}
	if err := m.validator.Struct(form); err != nil {
		m.println(msgEmailRequired)
		return
	}
	entry, err := m.service.Add(ctx, users.AddInput{Name: form.Name, Email: form.Email, Role: form.Role})
	if err != nil {
		m.renderError(err)
		return
	}
	m.println(msgUserAdded, entry.Name)
}

func (m *Menu) blockUser(ctx context.Context) {
	m.changeStatus(ctx, msgPromptBlock, msgUserBlocked, m.service.Block)
}

func (m *Menu) unblockUser(ctx context.Context) {
	m.changeStatus(ctx, msgPromptUnblock, msgUserUnblocked, m.service.Unblock)
}

func (m *Menu) changeStatus(ctx context.Context, promptKey, doneKey string, fn func(context.Context, string) (users.Entry, error)) {
	email, ok := m.ask(promptKey)
	if !ok {
		return
	}
	if err := m.validator.Struct(emailForm{Email: email}); err != nil {
		m.println(msgEmailRequired)
		return
	}
	entry, err := fn(ctx, email)
	if err != nil {
		m.renderError(err)
		return
	}
	m.println(doneKey, entry.Name)
}

func (m *Menu) listUsers(ctx context.Context) {
	entries, err := m.service.List(ctx)
	if err != nil {
		m.renderError(err)
		return
	}
	for _, e := range entries {
		m.println(msgUserLine, e.Name, e.Email, m.roleLabel(e.Role), m.statusLabel(e.Status))
	}
}

func (m *Menu) showHistory() {
	var entries []shared.AuditLog
	if m.history != nil {
		entries = m.history.Entries()
	}
	if len(entries) == 0 {
		m.println(msgHistoryEmpty)
		return
	}
	for _, e := range entries {
		m.println(msgHistoryLine, e.At.Format("2006-01-02 15:04:05"), m.actionLabel(e.Action), e.EntityID)
	}
}

func (m *Menu) renderError(err error) {
	switch {
	case errors.Is(err, users.ErrDuplicateUser):
		m.println(msgUserDuplicate)
	case errors.Is(err, users.ErrUserNotFound):
		m.println(msgUserNotFound)
	case errors.Is(err, users.ErrNoUsers):
		m.println(msgUserEmpty)
	default:
		m.logger.Error("console operation failed", slog.Any("error", err))
		m.println(msgUnexpected, err)
	}
}

func (m *Menu) statusLabel(s users.Status) string {
	if s == users.StatusBlocked {
		return m.printer.Sprintf(msgStatusBlocked)
	}
	return m.printer.Sprintf(msgStatusActive)
}

// roleLabel localizes the well-known roles and keeps any other label as typed.
func (m *Menu) roleLabel(role string) string {
	switch role {
	case users.RoleStudent:
		return m.printer.Sprintf(msgRoleStudent)
	case users.RoleTeacher:
		return m.printer.Sprintf(msgRoleTeacher)
	case users.RoleAdministrator:
		return m.printer.Sprintf(msgRoleAdministrator)
	default:
		return role
	}
}

func (m *Menu) actionLabel(action string) string {
	switch action {
	case users.ActionAdd:
		return m.printer.Sprintf(msgActionAdd)
	case users.ActionBlock:
		return m.printer.Sprintf(msgActionBlock)
	case users.ActionUnblock:
		return m.printer.Sprintf(msgActionUnblock)
	default:
		return action
	}
}

// ask prompts for one field. ok is false when input ended or the line was
// rejected as too long, in which case the operator has been told.
func (m *Menu) ask(key string) (string, bool) {
	line, err := m.prompt(key)
	if errors.Is(err, errLineTooLong) {
		m.println(msgLineTooLong)
		return "", false
	}
	return line, err == nil
}

// prompt writes the prompt and reads one line without its line ending.
// Read errors other than errLineTooLong are sticky.
func (m *Menu) prompt(key string) (string, error) {
	m.write(func(w io.Writer) error {
		_, err := m.printer.Fprintf(w, key)
		return err
	})
	if m.readErr != nil {
		return "", m.readErr
	}
	line, err := m.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		m.readErr = err
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if len(line) > m.maxLine {
		return "", errLineTooLong
	}
	return line, nil
}

func (m *Menu) println(key string, args ...any) {
	m.write(func(w io.Writer) error {
		if _, err := m.printer.Fprintf(w, key, args...); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	})
}

// write runs fn against stdout and keeps the first error for Run to return.
func (m *Menu) write(fn func(io.Writer) error) {
	if m.writeErr != nil {
		return
	}
	m.writeErr = fn(m.out)
}
