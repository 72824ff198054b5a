package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatci/chatci/internal/shared"
	"github.com/chatci/chatci/internal/users"
)

type session struct {
	menu  *Menu
	out   *bytes.Buffer
	audit *shared.AuditLogger
}

func newSession(t *testing.T, lang, script string) session {
	t.Helper()
	return newSessionWithLimit(t, lang, script, 0)
}

func newSessionWithLimit(t *testing.T, lang, script string, maxLine int) session {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	audit := shared.NewAuditLogger()
	svc := users.NewService(users.NewRegistry(), logger, users.NewMetrics(prometheus.NewRegistry()), audit)
	printer, err := NewPrinter(lang)
	require.NoError(t, err)
	out := new(bytes.Buffer)
	menu, err := NewMenu(Options{
		Service: svc,
		History: audit,
		Printer: printer,
		Logger:  logger,
		Stdin:   strings.NewReader(script),
		Stdout:  out,

		MaxLineBytes: maxLine,
	})
	require.NoError(t, err)
	return session{menu: menu, out: out, audit: audit}
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestMenuAddBlockList(t *testing.T) {
	s := newSession(t, "pt-BR", lines(
		"1", "Ana", "ana@x.com", "Aluno",
		"1", "Bruno", "bruno@x.com", "Professor",
		"3", "ana@x.com",
		"2",
		"6",
	))
	require.NoError(t, s.menu.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "===== ChatCI - Menu Principal =====")
	assert.Contains(t, out, "Usuário Ana adicionado com sucesso.")
	assert.Contains(t, out, "Usuário Bruno adicionado com sucesso.")
	assert.Contains(t, out, "Usuário Ana foi bloqueado.")
	assert.Contains(t, out, "Ana (ana@x.com) - Aluno [Bloqueado]")
	assert.Contains(t, out, "Bruno (bruno@x.com) - Professor [Ativo]")
	assert.True(t, strings.HasSuffix(out, "Saindo...\n"))
	assert.Less(t, strings.Index(out, "Ana (ana@x.com)"), strings.Index(out, "Bruno (bruno@x.com)"))
}

func TestMenuRendersConditions(t *testing.T) {
	s := newSession(t, "pt-BR", lines(
		"2",
		"1", "Ana", "ana@x.com", "Aluno",
		"1", "Ana2", "ana@x.com", "Professor",
		"3", "ghost@x.com",
		"1", "Sem", "", "Aluno",
		"9",
		"6",
	))
	require.NoError(t, s.menu.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Nenhum usuário cadastrado.")
	assert.Contains(t, out, "Erro: Usuário já cadastrado!")
	assert.Contains(t, out, "Erro: Usuário não encontrado.")
	assert.Contains(t, out, "Erro: o email é obrigatório.")
	assert.Contains(t, out, "Opção inválida. Tente novamente.")
	assert.NotContains(t, out, "Ana2")
}

func TestMenuUnblockAndHistoryInEnglish(t *testing.T) {
	s := newSession(t, "en", lines(
		"5",
		"1", "Ana", "ana@x.com", "Student",
		"3", "ana@x.com",
		"4", "ana@x.com",
		"2",
		"5",
		"6",
	))
	require.NoError(t, s.menu.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "===== ChatCI - Main Menu =====")
	assert.Contains(t, out, "No activity recorded.")
	assert.Contains(t, out, "User Ana has been unblocked.")
	assert.Contains(t, out, "Ana (ana@x.com) - Student [Active]")

	entries := s.audit.Entries()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Contains(t, out, e.At.Format("2006-01-02 15:04:05"))
	}
	assert.Contains(t, out, "  blocked  ana@x.com")
	assert.Contains(t, out, "  unblocked  ana@x.com")
}

func TestMenuEndsOnEOF(t *testing.T) {
	s := newSession(t, "en", "1\nAna\n")
	require.NoError(t, s.menu.Run(context.Background()))
	assert.True(t, strings.HasSuffix(s.out.String(), "Exiting...\n"))
}

func TestMenuStopsOnCancelledContext(t *testing.T) {
	s := newSession(t, "en", lines("2", "6"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.menu.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.out.String())
}

type failingService struct{}

func (failingService) Add(context.Context, users.AddInput) (users.Entry, error) {
	return users.Entry{}, errors.New("disk on fire")
}
func (failingService) Block(context.Context, string) (users.Entry, error)   { return users.Entry{}, nil }
func (failingService) Unblock(context.Context, string) (users.Entry, error) { return users.Entry{}, nil }
func (failingService) List(context.Context) ([]users.Entry, error)          { return nil, nil }

func TestMenuRendersUnexpectedErrors(t *testing.T) {
	out := new(bytes.Buffer)
	menu, err := NewMenu(Options{
		Service: failingService{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stdin:   strings.NewReader(lines("1", "Ana", "ana@x.com", "Aluno", "6")),
		Stdout:  out,
	})
	require.NoError(t, err)
	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "Erro inesperado: disk on fire")
}

func TestNewMenuRequiresDependencies(t *testing.T) {
	_, err := NewMenu(Options{Stdin: strings.NewReader(""), Stdout: io.Discard})
	require.Error(t, err)
	_, err = NewMenu(Options{Service: failingService{}})
	require.Error(t, err)
}

type fixedHistory []shared.AuditLog

func (h fixedHistory) Entries() []shared.AuditLog { return h }

func TestMenuHistoryKeepsUnknownActions(t *testing.T) {
	out := new(bytes.Buffer)
	at := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	menu, err := NewMenu(Options{
		Service: failingService{},
		History: fixedHistory{{Action: "user.import", EntityID: "x@x.com", At: at}},
		Stdin:   strings.NewReader(lines("5", "6")),
		Stdout:  out,
	})
	require.NoError(t, err)
	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "2024-03-10 10:00:00  user.import  x@x.com")
}

func TestNewPrinterRejectsMalformedLanguage(t *testing.T) {
	_, err := NewPrinter("???")
	require.Error(t, err)
}

func TestMenuAcceptsLongLines(t *testing.T) {
	name := strings.Repeat("a", 70000)
	s := newSession(t, "en", lines("1", name, "a@x.com", "Student", "2", "6"))
	require.NoError(t, s.menu.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, name+" (a@x.com) - Student [Active]")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestMenuRejectsOverLongLinesAndContinues(t *testing.T) {
	s := newSessionWithLimit(t, "en", lines(
		strings.Repeat("9", 20),
		"1", strings.Repeat("b", 20), "b@x.com", "Student",
		"1", "Ana", "ana@x.com", "Student",
		"2",
		"6",
	), 16)
	require.NoError(t, s.menu.Run(context.Background()))

	out := s.out.String()
	assert.Equal(t, 2, strings.Count(out, "Error: input line too long."))
	assert.NotContains(t, out, "b@x.com")
	assert.Contains(t, out, "Ana (ana@x.com) - Student [Active]")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestMenuReadsFinalLineWithoutNewline(t *testing.T) {
	s := newSession(t, "en", "6")
	require.NoError(t, s.menu.Run(context.Background()))
	assert.True(t, strings.HasSuffix(s.out.String(), "Exiting...\n"))
}

func TestMenuLocalizesWellKnownRoles(t *testing.T) {
	s := newSession(t, "pt-BR", lines("2", "6"))
	_, err := users.Seed(context.Background(), s.menu.service.(*users.Service), users.DemoUsers())
	require.NoError(t, err)
	require.NoError(t, s.menu.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Ana (ana@chatci.local) - Aluno [Ativo]")
	assert.Contains(t, out, "Bruno (bruno@chatci.local) - Professor [Ativo]")
	assert.Contains(t, out, "Carla (carla@chatci.local) - Administrador [Ativo]")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestMenuReturnsWriteErrors(t *testing.T) {
	menu, err := NewMenu(Options{
		Service: failingService{},
		Stdin:   strings.NewReader(lines("2", "2", "6")),
		Stdout:  failingWriter{},
	})
	require.NoError(t, err)
	err = menu.Run(context.Background())
	require.EqualError(t, err, "stdout closed")
}
