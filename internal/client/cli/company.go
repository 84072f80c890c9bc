package cli

import (
	"context"
	"fmt"

	"github.com/sportradar/sportradar-cli/internal/client/api"
	"github.com/sportradar/sportradar-cli/internal/client/guard"
)

// Plans prints the available subscription plans. Public.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.api.Plans(ctx)
	if err != nil {
		printlnFn("Could not load plans:", err)
		return err
	}

	for _, p := range plans {
		fmt.Fprintf(a.out, "- %s: %s / %s\n", p.Name, p.Price, p.BillingPeriod)
	}
	return nil
}

// Subscribe sends a corporate subscription enquiry.
func (a *App) Subscribe(ctx context.Context) error {
	req := api.SubscriptionRequest{}
	var err error
	if req.Plan, err = GetOptionalText(a.reader, "Plan (default basic)", "basic", a.out); err != nil {
		return err
	}
	if req.CompanyName, err = GetSimpleText(a.reader, "Company name", a.out); err != nil {
		return err
	}
	if req.AdminName, err = GetSimpleText(a.reader, "Contact name", a.out); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Contact email", a.out); err != nil {
		return err
	}
	if req.Phone, err = GetOptionalText(a.reader, "Phone", "", a.out); err != nil {
		return err
	}
	if req.Message, err = GetOptionalText(a.reader, "Message", "", a.out); err != nil {
		return err
	}

	if err := a.api.Subscribe(ctx, req); err != nil {
		printlnFn("Could not send the request:", err)
		return err
	}

	printlnFn("Your request has been sent!")
	return nil
}

// CompanySignup registers a company on the Professional plan.
func (a *App) CompanySignup(ctx context.Context) error {
	form := api.CompanySignupForm{Plan: "Professional"}
	var err error
	if form.CompanyName, err = GetSimpleText(a.reader, "Company name", a.out); err != nil {
		return err
	}
	if form.AdminName, err = GetSimpleText(a.reader, "Administrator name", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Contact email", a.out); err != nil {
		return err
	}
	if form.Phone, err = GetOptionalText(a.reader, "Phone", "", a.out); err != nil {
		return err
	}
	if form.EmployeesCount, err = GetInt(a.reader, "Employees (default 10)", 10, a.out); err != nil {
		return err
	}

	if err := a.api.CompanySignup(ctx, form); err != nil {
		printlnFn("Could not sign the company up:", err)
		return err
	}

	printlnFn("Company signup request sent!")
	return nil
}

// Invite sends an invitation email to a future employee. Business accounts
// only.
func (a *App) Invite(ctx context.Context) error {
	if !a.guarded(guard.Business) {
		return nil
	}

	email, err := GetSimpleText(a.reader, "Employee email", a.out)
	if err != nil {
		return err
	}

	if err := a.api.InviteEmployee(ctx, email); err != nil {
		printlnFn("Could not send the invitation:", err)
		return err
	}

	printlnFn("Invitation sent.")
	return nil
}
