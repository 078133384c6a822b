package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/client/services"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// usageError is printed verbatim instead of being turned into a notice.
type usageError string

func (e usageError) Error() string { return string(e) }

var errNoChange = usageError("nothing changed: check the slide, paragraph or event number")

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	Editing() bool

	Show(ctx context.Context, args []string) error
	Next(ctx context.Context, args []string) error
	Prev(ctx context.Context, args []string) error
	Admin(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Publish(ctx context.Context, args []string) error

	List(ctx context.Context, args []string) error
	Load(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Duplicate(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Outline(ctx context.Context, args []string) error
	NewSlide(ctx context.Context, args []string) error
	DeleteSlide(ctx context.Context, args []string) error
	MoveSlide(ctx context.Context, args []string) error
	SetLayout(ctx context.Context, args []string) error
	SetField(ctx context.Context, args []string) error
	SetParagraph(ctx context.Context, args []string) error
	AddParagraph(ctx context.Context, args []string) error
	RemoveParagraph(ctx context.Context, args []string) error
	Event(ctx context.Context, args []string) error
	Orbit(ctx context.Context, args []string) error
	Chart(ctx context.Context, args []string) error
	Meta(ctx context.Context, args []string) error
	Generate(ctx context.Context, args []string) error
}

const helpViewer = "Commands: (n)ext, (p)rev, show, admin, export, publish, status, help, exit"

const helpAdmin = `Admin commands:
  list | load <id> | save | dup <id> | rm <id> | outline
  new | del <n> | mv <n> up|down | layout <n> <standard|timeline|dark-orbit|chart|quote>
  set <n> <chapter|title|highlight> <text> | meta <title|subtitle|author> <text>
  para <n> <p> <text> | addpara <n> | rmpara <n> <p>
  event add <n> | event rm <n> <e> | event set <n> <e> <year|label|desc> <text>
  orbit <n> <center|orbit1|orbit2|label1|label2> <text>
  chart <n> <title|leftlabel|rightlabel|option1|option2> <text>
  gen | admin (leave editor)`

func report(cmd string, err error) {
	if err == nil {
		return
	}
	var ue usageError
	if errors.As(err, &ue) {
		printlnFn(ue.Error())
		return
	}
	n := services.NoticeFor(cmd, err)
	printlnFn(n.String())
	if n.Remediation != "" {
		printlnFn(n.Remediation)
	}
}

// runREPL reads one command per line from reader and dispatches it to a.
// Errors never end the loop; they are printed as notices. The loop exits
// on EOF, on "exit"/"quit" or when ctx is cancelled.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	admin := map[string]func(context.Context, []string) error{
		"list":    a.List,
		"ls":      a.List,
		"load":    a.Load,
		"save":    a.Save,
		"dup":     a.Duplicate,
		"rm":      a.Remove,
		"outline": a.Outline,
		"new":     a.NewSlide,
		"del":     a.DeleteSlide,
		"mv":      a.MoveSlide,
		"layout":  a.SetLayout,
		"set":     a.SetField,
		"para":    a.SetParagraph,
		"addpara": a.AddParagraph,
		"rmpara":  a.RemoveParagraph,
		"event":   a.Event,
		"orbit":   a.Orbit,
		"chart":   a.Chart,
		"meta":    a.Meta,
		"gen":     a.Generate,
	}

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("deck %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpViewer)
			if a.Editing() {
				printlnFn(helpAdmin)
			}

		case "n", "next":
			report(cmd, a.Next(ctx, args))

		case "p", "prev":
			report(cmd, a.Prev(ctx, args))

		case "show":
			report(cmd, a.Show(ctx, args))

		case "admin":
			report(cmd, a.Admin(ctx, args))

		case "status":
			report(cmd, a.Status(ctx, args))

		case "export":
			report(cmd, a.Export(ctx, args))

		case "publish":
			report(cmd, a.Publish(ctx, args))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			fn, ok := admin[cmd]
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if !a.Editing() {
				printlnFn("Admin mode is off; type 'admin' first")
				continue
			}
			report(cmd, fn(ctx, args))
		}
	}
}
