package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

func (a *App) cmdList(ctx context.Context, args []string) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	var filter ports.RequestFilter
	if len(args) > 0 {
		status, ok := domain.ParseStatus(args[0])
		if !ok {
			return fmt.Errorf("unknown status %q (valid: PendingApproval, Enqueued, InProgress, Done)", args[0])
		}
		filter.Status = &status
	}
	requests, err := a.requests.List(ctx, filter)
	if err != nil {
		return err
	}
	renderRequests(a.out, requests)
	return nil
}

func (a *App) cmdMine(ctx context.Context) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	requests, err := a.requests.Mine(ctx)
	if err != nil {
		return err
	}
	renderRequests(a.out, requests)
	return nil
}

func (a *App) cmdCreate(ctx context.Context) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	fileLink, err := a.promptLine("File link")
	if err != nil {
		return err
	}
	notes, err := a.promptLine("Notes (optional)")
	if err != nil {
		return err
	}

	input := ports.CreatePrintRequestInput{FileLink: fileLink, Notes: notes}

	// Spool selection is best-effort: a Spoolman outage never blocks a
	// submission, the spool field just stays empty.
	if spools, err := a.spools.Spools(ctx); err != nil {
		a.log.Debug().Err(err).Msg("spool listing unavailable")
	} else if len(spools) > 0 {
		renderSpools(a.out, spools)
		choice, err := a.promptLine("Spool ID (empty to skip)")
		if err != nil {
			return err
		}
		if choice != "" {
			id, err := strconv.Atoi(choice)
			if err != nil {
				return fmt.Errorf("spool id must be a number, got %q", choice)
			}
			input.SpoolID = &id
		}
	}

	if input.SpoolID == nil {
		material, err := a.promptLine("Material (optional)")
		if err != nil {
			return err
		}
		color, err := a.promptLine("Color (optional)")
		if err != nil {
			return err
		}
		if material != "" {
			input.Material = &material
		}
		if color != "" {
			input.Color = &color
		}
	}

	created, err := a.requests.Create(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Submitted %s — status %s.\n", created.ID, statusBadge(created.Status))
	return nil
}

func (a *App) cmdShow(ctx context.Context, args []string) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	id, err := a.argOrPrompt(args, "Request ID")
	if err != nil {
		return err
	}
	request, err := a.requests.Get(ctx, id)
	if err != nil {
		return err
	}
	renderRequestDetail(a.out, request)
	return nil
}

// cmdEdit rewrites the editable fields of a request. Empty answers keep the
// current value; the server decides whether the caller may edit at all.
func (a *App) cmdEdit(ctx context.Context, args []string) error {
	if !a.guard.RequireAuth() {
		return nil
	}
	id, err := a.argOrPrompt(args, "Request ID")
	if err != nil {
		return err
	}
	request, err := a.requests.Get(ctx, id)
	if err != nil {
		return err
	}
	renderRequestDetail(a.out, request)

	fileLink, err := a.promptLine("File link (empty to keep)")
	if err != nil {
		return err
	}
	if fileLink == "" {
		fileLink = request.FileLink
	}
	notes, err := a.promptLine("Notes (empty to keep, '-' to clear)")
	if err != nil {
		return err
	}
	switch notes {
	case "":
		notes = request.Notes
	case "-":
		notes = ""
	}

	input := ports.UpdatePrintRequestInput{
		FileLink: fileLink,
		Notes:    notes,
		SpoolID:  request.SpoolID,
		Color:    request.Color,
		Material: request.Material,
	}
	updated, err := a.requests.Update(ctx, request.ID, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s.\n", updated.ID)
	return nil
}

// cmdStatus moves a request through its lifecycle. Only transitions legal
// from the current status are offered; a request in an unrecognised status
// offers none.
func (a *App) cmdStatus(ctx context.Context, args []string) error {
	if !a.guard.RequireRole(domain.RoleModerator) {
		return nil
	}
	id, err := a.argOrPrompt(args, "Request ID")
	if err != nil {
		return err
	}
	request, err := a.requests.Get(ctx, id)
	if err != nil {
		return err
	}
	renderRequestDetail(a.out, request)

	offered := a.requests.OfferedStatuses(request.Status)
	if len(offered) == 0 {
		fmt.Fprintln(a.out, "No transitions available from this status.")
		return nil
	}
	fmt.Fprintln(a.out, "Available transitions:")
	for i, status := range offered {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, statusBadge(status))
	}
	choice, err := a.promptLine("New status (number or name, empty to cancel)")
	if err != nil {
		return err
	}
	if choice == "" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	next, err := pickStatus(offered, choice)
	if err != nil {
		return err
	}
	updated, err := a.requests.UpdateStatus(ctx, request, next)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request %s is now %s.\n", updated.ID, statusBadge(updated.Status))
	return nil
}

// pickStatus resolves a menu answer against the offered set, by position or
// by name.
func pickStatus(offered []domain.PrintRequestStatus, choice string) (domain.PrintRequestStatus, error) {
	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(offered) {
			return domain.StatusUnknown, fmt.Errorf("choice %d is out of range", n)
		}
		return offered[n-1], nil
	}
	status, ok := domain.ParseStatus(choice)
	if !ok {
		return domain.StatusUnknown, fmt.Errorf("unknown status %q", choice)
	}
	for _, candidate := range offered {
		if candidate == status {
			return status, nil
		}
	}
	labels := make([]string, 0, len(offered))
	for _, candidate := range offered {
		labels = append(labels, candidate.Label())
	}
	return domain.StatusUnknown, fmt.Errorf("%s is not offered here (available: %s)",
		status.Label(), strings.Join(labels, ", "))
}

func (a *App) cmdDelete(ctx context.Context, args []string) error {
	if !a.guard.RequireRole(domain.RoleModerator) {
		return nil
	}
	id, err := a.argOrPrompt(args, "Request ID")
	if err != nil {
		return err
	}
	ok, err := a.confirm(fmt.Sprintf("Delete request %s?", id))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.requests.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", id)
	return nil
}
