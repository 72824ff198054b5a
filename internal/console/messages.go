package console

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys rendered by the menu.
const (
	msgMenuTitle     = "menu.title"
	msgMenuAdd       = "menu.add"
	msgMenuList      = "menu.list"
	msgMenuBlock     = "menu.block"
	msgMenuUnblock   = "menu.unblock"
	msgMenuHistory   = "menu.history"
	msgMenuExit      = "menu.exit"
	msgMenuPrompt    = "menu.prompt"
	msgMenuInvalid   = "menu.invalid"
	msgMenuBye       = "menu.bye"
	msgPromptName    = "prompt.name"
	msgPromptEmail   = "prompt.email"
	msgPromptRole    = "prompt.role"
	msgPromptBlock   = "prompt.block"
	msgPromptUnblock = "prompt.unblock"
	msgUserAdded     = "user.added"
	msgUserDuplicate = "user.duplicate"
	msgUserBlocked   = "user.blocked"
	msgUserUnblocked = "user.unblocked"
	msgUserNotFound  = "user.notfound"
	msgUserEmpty     = "user.empty"
	msgUserLine      = "user.line"
	msgStatusActive  = "status.Active"
	msgStatusBlocked = "status.Blocked"
	msgHistoryEmpty  = "history.empty"
	msgHistoryLine   = "history.line"
	msgActionAdd     = "action.user.add"
	msgActionBlock   = "action.user.block"
	msgActionUnblock = "action.user.unblock"
	msgEmailRequired = "form.email_required"
	msgUnexpected    = "error.unexpected"
	msgLineTooLong   = "form.line_too_long"

	msgRoleStudent       = "role.Student"
	msgRoleTeacher       = "role.Teacher"
	msgRoleAdministrator = "role.Administrator"
)

var translations = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		msgMenuTitle:     "\n===== ChatCI - Menu Principal =====",
		msgMenuAdd:       "1. Adicionar Usuário",
		msgMenuList:      "2. Listar Usuários",
		msgMenuBlock:     "3. Bloquear Usuário",
		msgMenuUnblock:   "4. Desbloquear Usuário",
		msgMenuHistory:   "5. Histórico de Atividades",
		msgMenuExit:      "6. Sair",
		msgMenuPrompt:    "Escolha uma opção: ",
		msgMenuInvalid:   "Opção inválida. Tente novamente.",
		msgMenuBye:       "Saindo...",
		msgPromptName:    "Nome: ",
		msgPromptEmail:   "Email: ",
		msgPromptRole:    "Tipo (Aluno, Professor, Administrador): ",
		msgPromptBlock:   "Digite o email do usuário a ser bloqueado: ",
		msgPromptUnblock: "Digite o email do usuário a ser desbloqueado: ",
		msgUserAdded:     "Usuário %s adicionado com sucesso.",
		msgUserDuplicate: "Erro: Usuário já cadastrado!",
		msgUserBlocked:   "Usuário %s foi bloqueado.",
		msgUserUnblocked: "Usuário %s foi desbloqueado.",
		msgUserNotFound:  "Erro: Usuário não encontrado.",
		msgUserEmpty:     "Nenhum usuário cadastrado.",
		msgUserLine:      "%s (%s) - %s [%s]",
		msgStatusActive:  "Ativo",
		msgStatusBlocked: "Bloqueado",
		msgHistoryEmpty:  "Nenhuma atividade registrada.",
		msgHistoryLine:   "%s  %s  %s",
		msgActionAdd:     "adicionado",
		msgActionBlock:   "bloqueado",
		msgActionUnblock: "desbloqueado",
		msgEmailRequired: "Erro: o email é obrigatório.",
		msgUnexpected:    "Erro inesperado: %v",
		msgLineTooLong:   "Erro: entrada muito longa.",

		msgRoleStudent:       "Aluno",
		msgRoleTeacher:       "Professor",
		msgRoleAdministrator: "Administrador",
	},
	language.English: {
		msgMenuTitle:     "\n===== ChatCI - Main Menu =====",
		msgMenuAdd:       "1. Add User",
		msgMenuList:      "2. List Users",
		msgMenuBlock:     "3. Block User",
		msgMenuUnblock:   "4. Unblock User",
		msgMenuHistory:   "5. Activity History",
		msgMenuExit:      "6. Exit",
		msgMenuPrompt:    "Choose an option: ",
		msgMenuInvalid:   "Invalid option. Try again.",
		msgMenuBye:       "Exiting...",
		msgPromptName:    "Name: ",
		msgPromptEmail:   "Email: ",
		msgPromptRole:    "Role (Student, Teacher, Administrator): ",
		msgPromptBlock:   "Enter the email of the user to block: ",
		msgPromptUnblock: "Enter the email of the user to unblock: ",
		msgUserAdded:     "User %s added successfully.",
		msgUserDuplicate: "Error: User already registered!",
		msgUserBlocked:   "User %s has been blocked.",
		msgUserUnblocked: "User %s has been unblocked.",
		msgUserNotFound:  "Error: User not found.",
		msgUserEmpty:     "No users registered.",
		msgUserLine:      "%s (%s) - %s [%s]",
		msgStatusActive:  "Active",
		msgStatusBlocked: "Blocked",
		msgHistoryEmpty:  "No activity recorded.",
		msgHistoryLine:   "%s  %s  %s",
		msgActionAdd:     "added",
		msgActionBlock:   "blocked",
		msgActionUnblock: "unblocked",
		msgEmailRequired: "Error: email is required.",
		msgUnexpected:    "Unexpected error: %v",
		msgLineTooLong:   "Error: input line too long.",

		msgRoleStudent:       "Student",
		msgRoleTeacher:       "Teacher",
		msgRoleAdministrator: "Administrator",
	},
}

var messages = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("console: catalog %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// NewPrinter returns a printer for the given language, falling back to
// English for anything the catalog does not carry.
func NewPrinter(lang string) (*message.Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("console: parse language %q: %w", lang, err)
	}
	return message.NewPrinter(tag, message.Catalog(messages)), nil
}
