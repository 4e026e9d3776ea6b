package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	queuedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// statusBadge renders the human label in the status colour. Statuses this
// client does not recognise still render, dimmed.
func statusBadge(s domain.PrintRequestStatus) string {
	switch s {
	case domain.StatusPendingApproval:
		return pendingStyle.Render(s.Label())
	case domain.StatusEnqueued:
		return queuedStyle.Render(s.Label())
	case domain.StatusInProgress:
		return activeStyle.Render(s.Label())
	case domain.StatusDone:
		return doneStyle.Render(s.Label())
	default:
		return unknownStyle.Render(s.Label())
	}
}

// fileName shortens a file link to its last path segment for table display.
func fileName(link string) string {
	link = strings.TrimRight(link, "/")
	if i := strings.LastIndex(link, "/"); i >= 0 && i < len(link)-1 {
		return link[i+1:]
	}
	return link
}

const timeLayout = "2006-01-02 15:04"

// Status goes in the last column: the colour escape codes would otherwise
// throw off tabwriter's width accounting.
func renderRequests(w io.Writer, requests []domain.PrintRequest) {
	if len(requests) == 0 {
		fmt.Fprintln(w, "No print requests.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILE\tCREATED\tSTATUS")
	for _, r := range requests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.ID, fileName(r.FileLink), r.CreatedAt.Format(timeLayout), statusBadge(r.Status))
	}
	tw.Flush()
}

func renderRequestDetail(w io.Writer, r *domain.PrintRequest) {
	fmt.Fprintln(w, headerStyle.Render("Print request "+r.ID))
	fmt.Fprintf(w, "  Status:   %s\n", statusBadge(r.Status))
	fmt.Fprintf(w, "  File:     %s\n", r.FileLink)
	if r.Notes != "" {
		fmt.Fprintf(w, "  Notes:    %s\n", r.Notes)
	}
	if r.SpoolID != nil {
		fmt.Fprintf(w, "  Spool:    #%d\n", *r.SpoolID)
	}
	if r.Material != nil {
		fmt.Fprintf(w, "  Material: %s\n", *r.Material)
	}
	if r.Color != nil {
		fmt.Fprintf(w, "  Color:    %s\n", *r.Color)
	}
	fmt.Fprintf(w, "  Owner:    %s\n", r.UserID)
	fmt.Fprintf(w, "  Created:  %s\n", r.CreatedAt.Format(timeLayout))
	fmt.Fprintf(w, "  Updated:  %s\n", r.UpdatedAt.Format(timeLayout))
}

func renderUsers(w io.Writer, users []domain.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tROLE\tENABLED\tCREATED")
	for _, u := range users {
		enabled := "yes"
		if !u.Enabled {
			enabled = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.Role, enabled, u.CreatedAt.Format(timeLayout))
	}
	tw.Flush()
}

func renderUserDetail(w io.Writer, u *domain.User) {
	fmt.Fprintln(w, headerStyle.Render(u.Name()))
	fmt.Fprintf(w, "  ID:       %s\n", u.ID)
	fmt.Fprintf(w, "  Username: %s\n", u.Username)
	if u.Email != "" {
		fmt.Fprintf(w, "  Email:    %s\n", u.Email)
	}
	fmt.Fprintf(w, "  Role:     %s\n", u.Role)
	if !u.Enabled {
		fmt.Fprintln(w, "  "+errorStyle.Render("Account disabled"))
	}
}

func renderSpools(w io.Writer, spools []domain.Spool) {
	if len(spools) == 0 {
		fmt.Fprintln(w, "No spools available.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILAMENT\tREMAINING\tLOCATION")
	for _, s := range spools {
		fmt.Fprintf(tw, "%d\t%s\t%.0fg\t%s\n", s.ID, s.Display(), s.RemainingWeight, s.Location)
	}
	tw.Flush()
}

func renderStats(w io.Writer, stats *ports.SystemStats) {
	fmt.Fprintln(w, headerStyle.Render("System stats"))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  Users:\t%d (%d enabled)\n", stats.TotalUsers, stats.EnabledUsers)
	fmt.Fprintf(tw, "  Requests:\t%d (%d pending)\n", stats.TotalRequests, stats.PendingRequests)
	tw.Flush()
}
