package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/client/generator"
	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/client/publish"
	"github.com/dmitrijs2005/deckkeeper/internal/deck"
	"github.com/dmitrijs2005/deckkeeper/internal/editor"
	"github.com/dmitrijs2005/deckkeeper/internal/export"
	"github.com/dmitrijs2005/deckkeeper/internal/filex"
)

// parsePosition turns a 1-based position typed by the user into an index.
// Range checks are left to the editor.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, usageError(fmt.Sprintf("invalid position %q: use a number starting at 1", s))
	}
	return n - 1, nil
}

func need(args []string, n int, usage string) error {
	if len(args) < n {
		return usageError("usage: " + usage)
	}
	return nil
}

func rest(args []string, from int) string {
	if len(args) <= from {
		return ""
	}
	return strings.Join(args[from:], " ")
}

func (a *App) Editing() bool { return a.session.Editing() }

// changed reports a no-op edit and keeps playback inside the deck.
func (a *App) changed(ok bool) error {
	if !ok {
		return errNoChange
	}
	a.player.Clamp()
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	f, ok := a.player.CurrentFrame()
	if !ok {
		return nil
	}
	RenderFrame(a.out, *a.session.Document(), f, terminalWidth())
	fmt.Fprintf(a.out, "%d/%d\n", a.player.Current()+1, a.player.Total())
	return nil
}

func (a *App) page(ctx context.Context, delta int) error {
	if a.session.Editing() {
		return usageError("navigation is disabled while editing; type 'admin' to leave the editor")
	}
	if !a.player.Paginate(delta) {
		if delta > 0 {
			return usageError("already at the last slide")
		}
		return usageError("already at the first slide")
	}
	return a.Show(ctx, nil)
}

func (a *App) Next(ctx context.Context, args []string) error { return a.page(ctx, 1) }
func (a *App) Prev(ctx context.Context, args []string) error { return a.page(ctx, -1) }

func (a *App) Admin(ctx context.Context, args []string) error {
	if a.session.ToggleEditing() == editor.ModeEditing {
		fmt.Fprintln(a.out, "Editor opened")
		return a.Outline(ctx, nil)
	}
	a.player.Clamp()
	fmt.Fprintln(a.out, "Editor closed")
	return a.Show(ctx, nil)
}

func (a *App) Status(ctx context.Context, args []string) error {
	bound := a.sync.ActiveID()
	if bound == "" {
		bound = "(unsaved)"
	}
	fmt.Fprintf(a.out, "store: %s (%s)\n", a.config.StoreURL, a.Mode())
	fmt.Fprintf(a.out, "editor: %s\n", a.session.Mode())
	fmt.Fprintf(a.out, "presentation: %s, %d slides\n", bound, a.session.SlideCount())
	fmt.Fprintf(a.out, "frame: %d/%d\n", a.player.Current()+1, a.player.Total())
	if a.repos == nil {
		return nil
	}
	if at, err := a.repos.Summaries.RefreshedAt(ctx); err == nil && !at.IsZero() {
		fmt.Fprintf(a.out, "listing cached at: %s\n", at.Local().Format("02/01/2006 15:04"))
	}
	return nil
}

func (a *App) renderExport() (string, []byte, error) {
	doc := a.session.Snapshot()
	body, err := export.Render(doc, export.Info{
		Title:  doc.Meta.Title,
		Author: doc.Meta.Author,
		Date:   a.now().Format(models.DateLayout),
	})
	if err != nil {
		return "", nil, err
	}
	return export.FileName(doc.Meta.Title), body, nil
}

func (a *App) Export(ctx context.Context, args []string) error {
	name, body, err := a.renderExport()
	if err != nil {
		return err
	}
	path, err := filex.WriteFile(a.config.ExportDir, name, body)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exported to", path)
	return nil
}

func (a *App) Publish(ctx context.Context, args []string) error {
	if a.publisher == nil || !a.publisher.Enabled() {
		return usageError(publish.ErrDisabled.Error() + ": set s3_bucket in the config file")
	}
	name, body, err := a.renderExport()
	if err != nil {
		return err
	}
	link, err := a.publisher.Publish(ctx, name, "text/html; charset=utf-8", body)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Published:", link)
	return nil
}

func (a *App) List(ctx context.Context, args []string) error {
	rows, err := a.sync.RefreshList(ctx)
	if err == nil || rows != nil {
		RenderListing(a.out, rows, a.sync.FromCache())
	}
	return err
}

func (a *App) Load(ctx context.Context, args []string) error {
	if err := need(args, 1, "load <id>"); err != nil {
		return err
	}
	if err := a.sync.Load(ctx, args[0]); err != nil {
		return err
	}
	a.player.Clamp()
	fmt.Fprintln(a.out, "Loaded", args[0])
	return a.Outline(ctx, nil)
}

func (a *App) Save(ctx context.Context, args []string) error {
	id, err := a.sync.Save(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved as", id)
	return nil
}

func (a *App) Duplicate(ctx context.Context, args []string) error {
	if err := need(args, 1, "dup <id>"); err != nil {
		return err
	}
	id, err := a.sync.Duplicate(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Duplicated as", id)
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if err := need(args, 1, "rm <id>"); err != nil {
		return err
	}
	if !Confirm(a.reader, "Delete presentation "+args[0]+"?", a.out) {
		return usageError("cancelled")
	}
	if err := a.sync.Remove(ctx, args[0]); err != nil {
		return err
	}
	a.player.Clamp()
	fmt.Fprintln(a.out, "Removed", args[0])
	return nil
}

func (a *App) Outline(ctx context.Context, args []string) error {
	RenderOutline(a.out, *a.session.Document())
	return nil
}

func (a *App) NewSlide(ctx context.Context, args []string) error {
	i := a.session.AddSlide()
	if err := a.changed(i >= 0); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added slide %d\n", i+1)
	return nil
}

func (a *App) DeleteSlide(ctx context.Context, args []string) error {
	if err := need(args, 1, "del <n>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	return a.changed(a.session.RemoveSlide(i))
}

func (a *App) MoveSlide(ctx context.Context, args []string) error {
	if err := need(args, 2, "mv <n> up|down"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	var dir int
	switch args[1] {
	case "up", "-1":
		dir = -1
	case "down", "+1", "1":
		dir = 1
	default:
		return usageError("usage: mv <n> up|down")
	}
	return a.changed(a.session.MoveSlide(i, dir))
}

func (a *App) SetLayout(ctx context.Context, args []string) error {
	if err := need(args, 2, "layout <n> <layout>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	l, err := deck.ParseLayout(args[1])
	if err != nil {
		return usageError(err.Error())
	}
	return a.changed(a.session.SetLayout(i, l))
}

func (a *App) SetField(ctx context.Context, args []string) error {
	if err := need(args, 2, "set <n> <chapter|title|highlight> <text>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	f, err := editor.ParseField(args[1])
	if err != nil {
		return usageError(err.Error())
	}
	return a.changed(a.session.SetField(i, f, rest(args, 2)))
}

func (a *App) SetParagraph(ctx context.Context, args []string) error {
	if err := need(args, 2, "para <n> <p> <text>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	p, err := parsePosition(args[1])
	if err != nil {
		return err
	}
	return a.changed(a.session.SetParagraph(i, p, rest(args, 2)))
}

func (a *App) AddParagraph(ctx context.Context, args []string) error {
	if err := need(args, 1, "addpara <n>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	return a.changed(a.session.AppendParagraph(i))
}

func (a *App) RemoveParagraph(ctx context.Context, args []string) error {
	if err := need(args, 2, "rmpara <n> <p>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	p, err := parsePosition(args[1])
	if err != nil {
		return err
	}
	return a.changed(a.session.RemoveParagraph(i, p))
}

func (a *App) Event(ctx context.Context, args []string) error {
	const usage = "event add <n> | event rm <n> <e> | event set <n> <e> <year|label|desc> <text>"
	if err := need(args, 2, usage); err != nil {
		return err
	}
	i, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return a.changed(a.session.AddTimelineEvent(i))
	case "rm":
		if err := need(args, 3, usage); err != nil {
			return err
		}
		e, err := parsePosition(args[2])
		if err != nil {
			return err
		}
		return a.changed(a.session.RemoveTimelineEvent(i, e))
	case "set":
		if err := need(args, 4, usage); err != nil {
			return err
		}
		e, err := parsePosition(args[2])
		if err != nil {
			return err
		}
		f, err := editor.ParseEventField(args[3])
		if err != nil {
			return usageError(err.Error())
		}
		return a.changed(a.session.UpdateTimelineEvent(i, e, f, rest(args, 4)))
	default:
		return usageError("usage: " + usage)
	}
}

func (a *App) Orbit(ctx context.Context, args []string) error {
	if err := need(args, 2, "orbit <n> <field> <text>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	f, err := editor.ParseOrbitField(args[1])
	if err != nil {
		return usageError(err.Error())
	}
	return a.changed(a.session.UpdateOrbitField(i, f, rest(args, 2)))
}

func (a *App) Chart(ctx context.Context, args []string) error {
	if err := need(args, 2, "chart <n> <field> <text>"); err != nil {
		return err
	}
	i, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	f, err := editor.ParseChartField(args[1])
	if err != nil {
		return usageError(err.Error())
	}
	return a.changed(a.session.UpdateChartField(i, f, rest(args, 2)))
}

func (a *App) Meta(ctx context.Context, args []string) error {
	if err := need(args, 1, "meta <title|subtitle|author> <text>"); err != nil {
		return err
	}
	f, err := editor.ParseMetaField(args[0])
	if err != nil {
		return usageError(err.Error())
	}
	return a.changed(a.session.SetMetadata(f, rest(args, 1)))
}

// Generate asks for a topic, drafts slides and appends them all, or none
// when the reply is invalid.
func (a *App) Generate(ctx context.Context, args []string) error {
	if a.generator == nil {
		key, err := GetSecret("Gemini API key", a.out)
		if err != nil {
			return err
		}
		if key == "" {
			return usageError(generator.ErrNoAPIKey.Error())
		}
		a.generator = generator.NewGeminiGenerator(key, a.config.GeneratorModel, a.config.GeneratorURL, a.config.RequestTimeout)
	}

	prompt := rest(args, 0)
	if prompt == "" {
		var err error
		prompt, err = GetMultiline(a.reader, "Describe the topic of the slides to generate", a.out)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, "Generating...")
	slides, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	if err := a.changed(a.session.AppendSlides(slides)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d slides generated\n", len(slides))
	return nil
}
