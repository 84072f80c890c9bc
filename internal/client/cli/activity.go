package cli

import (
	"context"
	"fmt"

	"github.com/sportradar/sportradar-cli/internal/client/activities"
	"github.com/sportradar/sportradar-cli/internal/client/api"
	"github.com/sportradar/sportradar-cli/internal/client/guard"
)

// Activities lists the public catalog with optional filters and simple
// pagination. Browsing is open to unauthenticated users as well.
func (a *App) Activities(ctx context.Context) error {
	list, err := a.api.Activities(ctx)
	if err != nil {
		printlnFn("Could not load activities:", err)
		return err
	}

	q := activities.Query{}
	if q.Search, err = GetOptionalText(a.reader, "Search (empty for all)", "", a.out); err != nil {
		return err
	}
	if q.Category, err = GetOptionalText(a.reader, fmt.Sprintf("Category %v (empty for all)", activities.Categories(list)), "", a.out); err != nil {
		return err
	}
	if q.Location, err = GetOptionalText(a.reader, fmt.Sprintf("Location %v (empty for all)", activities.Locations(list)), "", a.out); err != nil {
		return err
	}
	if q.Date, err = GetOptionalText(a.reader, "Date YYYY-MM-DD (empty for all)", "", a.out); err != nil {
		return err
	}

	filtered := activities.Filter(list, q)
	pages := activities.PageCount(len(filtered), activities.DefaultPageSize)

	page := 1
	if pages > 1 {
		if page, err = GetInt(a.reader, fmt.Sprintf("Page 1..%d", pages), 1, a.out); err != nil {
			return err
		}
	}

	shown := activities.Paginate(filtered, page, activities.DefaultPageSize)
	fmt.Fprintf(a.out, "%d activities (%d shown, page %d/%d)\n", len(filtered), len(shown), page, pages)
	for _, act := range shown {
		a.printActivity(act)
	}
	return nil
}

// Mine lists the activities the user registered for.
func (a *App) Mine(ctx context.Context) error {
	if !a.guarded(guard.Auth) {
		return nil
	}

	list, err := a.api.MyActivities(ctx)
	if err != nil {
		printlnFn("Could not load your activities:", err)
		return err
	}

	if len(list) == 0 {
		printlnFn("You are not registered for any activity yet.")
		return nil
	}

	activities.SortChronological(list)
	for _, act := range list {
		a.printActivity(act)
	}
	return nil
}

// Stats prints the per-month activity counts and a per-level podium.
func (a *App) Stats(ctx context.Context) error {
	list, err := a.api.Activities(ctx)
	if err != nil {
		printlnFn("Could not load activities:", err)
		return err
	}

	fmt.Fprintf(a.out, "Total activities: %d\n", len(list))
	for _, mc := range activities.MonthlyCounts(list) {
		fmt.Fprintf(a.out, "  %s  %d\n", mc.Month, mc.Count)
	}

	levels := activities.Levels(list)
	if len(levels) == 0 {
		return nil
	}
	level, err := GetOptionalText(a.reader, fmt.Sprintf("Podium for level %v", levels), levels[0], a.out)
	if err != nil {
		return err
	}
	for i, nc := range activities.Podium(list, level) {
		fmt.Fprintf(a.out, "  #%d %s (%d)\n", i+1, nc.Name, nc.Count)
	}
	return nil
}

// AddActivity creates a new listing. Staff only.
func (a *App) AddActivity(ctx context.Context) error {
	if !a.guarded(guard.Staff) {
		return nil
	}

	form := api.ActivityForm{}
	var err error
	if form.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if form.Description, err = GetOptionalText(a.reader, "Description", "", a.out); err != nil {
		return err
	}
	if form.Category, err = GetOptionalText(a.reader, "Category (default yoga)", "yoga", a.out); err != nil {
		return err
	}
	if form.Location, err = GetSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	if form.Date, err = GetSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if form.Time, err = GetSimpleText(a.reader, "Time (HH:MM)", a.out); err != nil {
		return err
	}
	if form.Duration, err = GetOptionalText(a.reader, "Duration (default 1h)", "1h", a.out); err != nil {
		return err
	}
	if form.MaxParticipants, err = GetInt(a.reader, "Max participants (default 20)", 20, a.out); err != nil {
		return err
	}
	if form.Price, err = GetOptionalText(a.reader, "Price (default Gratuit)", "Gratuit", a.out); err != nil {
		return err
	}
	if form.Level, err = GetOptionalText(a.reader, "Level (default Tous niveaux)", "Tous niveaux", a.out); err != nil {
		return err
	}
	if form.Instructor, err = GetOptionalText(a.reader, "Instructor", "", a.out); err != nil {
		return err
	}

	if err := a.api.CreateActivity(ctx, form); err != nil {
		printlnFn("Could not create the activity:", err)
		return err
	}

	printlnFn("Activity created.")
	return nil
}

func (a *App) printActivity(act api.Activity) {
	fmt.Fprintf(a.out, "- [%d] %s  %s %s  %s/%s  %s (%d/%d)\n",
		act.ID, act.Name, act.Date, act.Time, act.Category, act.Level,
		act.Location, act.Participants, act.MaxParticipants)
}
