package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sportradar/sportradar-cli/internal/client/guard"
)

// Me prints the current profile.
func (a *App) Me(ctx context.Context) error {
	if !a.guarded(guard.Auth) {
		return nil
	}

	u := a.session.CurrentUser()
	fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)
	fmt.Fprintf(a.out, "  account: %s", u.Type)
	if u.IsStaff {
		fmt.Fprint(a.out, " (staff)")
	}
	fmt.Fprintln(a.out)
	if u.Company != nil {
		fmt.Fprintf(a.out, "  company: %s\n", u.Company.Name)
	}
	if u.Avatar != "" {
		fmt.Fprintf(a.out, "  avatar:  %s\n", u.Avatar)
	}
	if p := u.Preferences; p != nil {
		fmt.Fprintf(a.out, "  location: %s  level: %s\n", p.Location, p.Level)
		if len(p.Activities) > 0 {
			fmt.Fprintf(a.out, "  interests: %s\n", strings.Join(p.Activities, ", "))
		}
		if len(p.Objectives) > 0 {
			fmt.Fprintf(a.out, "  objectives: %s\n", strings.Join(p.Objectives, ", "))
		}
	}
	return nil
}

// Update edits profile preferences. Empty answers keep the current values;
// only the changed fields are sent.
func (a *App) Update(ctx context.Context) error {
	if !a.guarded(guard.Auth) {
		return nil
	}

	u := a.session.CurrentUser()
	current := map[string]string{"location": "", "level": ""}
	if u.Preferences != nil {
		current["location"] = u.Preferences.Location
		current["level"] = u.Preferences.Level
	}

	location, err := GetOptionalText(a.reader, fmt.Sprintf("Location [%s]", current["location"]), current["location"], a.out)
	if err != nil {
		return err
	}
	level, err := GetOptionalText(a.reader, fmt.Sprintf("Level [%s]", current["level"]), current["level"], a.out)
	if err != nil {
		return err
	}

	prefs := map[string]any{"location": location, "level": level}
	if u.Preferences != nil {
		prefs["activities"] = u.Preferences.Activities
		prefs["objectives"] = u.Preferences.Objectives
	}

	if _, err := a.session.UpdateUser(ctx, map[string]any{"preferences": prefs}); err != nil {
		printlnFn("Update failed:", err)
		return err
	}

	printlnFn("Preferences updated.")
	return nil
}

// Avatar uploads an image file as the user's avatar.
func (a *App) Avatar(ctx context.Context) error {
	if !a.guarded(guard.Auth) {
		return nil
	}

	path, err := GetSimpleText(a.reader, "Path to avatar image", a.out)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	defer f.Close()

	if _, err := a.session.UploadAvatar(ctx, filepath.Base(path), f); err != nil {
		printlnFn("Avatar upload failed:", err)
		return err
	}

	printlnFn("Avatar updated.")
	return nil
}
