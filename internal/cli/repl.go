package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/openfab/printctl/internal/core/domain"
)

func (a *App) prompt() string {
	if user := a.cache.Current(); user != nil {
		return fmt.Sprintf("printctl %s> ", user.Username)
	}
	return "printctl> "
}

// repl reads one line per command and dispatches it. Handler errors are
// printed, never fatal: the loop only ends on exit/quit or EOF.
func (a *App) repl(ctx context.Context) {
	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.in.ReadString('\n')
		if line != "" {
			if quit := a.dispatch(ctx, line); quit {
				return
			}
		}
		if err != nil {
			fmt.Fprintln(a.out)
			return
		}
	}
}

// dispatch runs a single command line and reports whether the loop should
// stop.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	var err error
	switch cmd {
	case "help":
		a.help()
	case "login":
		err = a.cmdLogin(ctx)
	case "register":
		err = a.cmdRegister(ctx)
	case "logout":
		a.guard.Logout(ctx)
	case "whoami":
		err = a.cmdWhoami(ctx)
	case "passwd":
		err = a.cmdPasswd(ctx)
	case "list":
		err = a.cmdList(ctx, args)
	case "mine":
		err = a.cmdMine(ctx)
	case "create":
		err = a.cmdCreate(ctx)
	case "show":
		err = a.cmdShow(ctx, args)
	case "edit":
		err = a.cmdEdit(ctx, args)
	case "status":
		err = a.cmdStatus(ctx, args)
	case "delete":
		err = a.cmdDelete(ctx, args)
	case "users":
		err = a.cmdUsers(ctx)
	case "role":
		err = a.cmdRole(ctx, args)
	case "enable":
		err = a.cmdSetEnabled(ctx, args, true)
	case "disable":
		err = a.cmdSetEnabled(ctx, args, false)
	case "stats":
		err = a.cmdStats(ctx)
	case "spools":
		err = a.cmdSpools(ctx)
	case "materials":
		err = a.cmdMaterials(ctx)
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for the command list.\n", cmd)
	}

	if err != nil {
		fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
	}
	return false
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  login, register, logout, whoami, passwd")
	fmt.Fprintln(a.out, "  list [status], mine, create, show <id>, edit <id>")
	fmt.Fprintln(a.out, "  spools, materials")
	if a.cache.HasRole(domain.RoleModerator) {
		fmt.Fprintln(a.out, "  status <id>, delete <id>  (moderation)")
		fmt.Fprintln(a.out, "  users, enable <id>, disable <id>, stats")
	}
	if a.cache.HasRole(domain.RoleAdmin) {
		fmt.Fprintln(a.out, "  role <id> <user|moderator|admin>  (admin)")
	}
	fmt.Fprintln(a.out, "  help, exit")
}
