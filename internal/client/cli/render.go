package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/services"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

func formatExpiry(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func (a *App) renderPackages(pkgs []models.Package) {
	if len(pkgs) == 0 {
		a.println("No packages available.")
		return
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tPACKAGE\tPRICE\tDURATION\tDESCRIPTION")
	for _, p := range pkgs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.PriceLabel(), p.DaysLabel(), p.Description)
	}
	_ = tw.Flush()
}

func (a *App) renderSignupSuccess(res *models.SignupResult) {
	a.println("Account created successfully!")
	a.printf("Your VPN username: %s\n", res.Username)
	a.printf("Package: %s (%s, %s)\n", res.Package.Name, res.Package.DaysLabel(), res.Package.PriceLabel())
	if res.Message != "" {
		a.println(res.Message)
	}
	a.println("Use this username and your password to connect to the VPN.")
}

func (a *App) renderTab(tab services.Tab) {
	switch tab {
	case services.TabProfile:
		a.renderProfile()
	case services.TabAdmin:
		a.renderAdminUsers()
	case services.TabReseller:
		a.renderReseller()
	}
}

func (a *App) renderProfile() {
	u, ok := a.dash.ProfileView()
	if !ok {
		return
	}
	tw := a.table()
	fmt.Fprintf(tw, "Username:\t%s\n", u.Username)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", strings.ToUpper(string(u.EffectiveRole())))
	fmt.Fprintf(tw, "Status:\t%s\n", u.Status.Badge())
	fmt.Fprintf(tw, "Created:\t%s\n", formatDate(u.CreatedAt))
	fmt.Fprintf(tw, "Expires:\t%s\n", formatExpiry(u.ExpiresAt))
	_ = tw.Flush()
}

// renderAdminUsers prints the admin table. The action column offers
// Suspend for active accounts and Activate otherwise.
func (a *App) renderAdminUsers() {
	users := a.dash.AdminUsers()
	if len(users) == 0 {
		a.println("No users.")
		return
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS\tEXPIRES\tACTIONS")
	for _, u := range users {
		action := "activate"
		if u.Status.IsActive() {
			action = "suspend"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s, delete\n",
			u.ID, u.Username, u.Email, u.Role, u.Status.Badge(), formatExpiry(u.ExpiresAt), action)
	}
	_ = tw.Flush()
}

func (a *App) renderReseller() {
	q, users, ok := a.dash.ResellerView()
	if !ok {
		return
	}
	a.printf("Total quota: %d  Users created: %d  Remaining: %d\n", q.TotalQuota, q.Used, q.Remaining)
	if len(users) == 0 {
		a.println("No users created yet.")
		return
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tSTATUS\tEXPIRES")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Status.Badge(), formatExpiry(u.ExpiresAt))
	}
	_ = tw.Flush()
}
