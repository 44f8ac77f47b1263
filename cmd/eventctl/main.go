// Package main provides a command-line tool for the club event store.
//
// Usage:
//
//	eventctl [-config file] [-store file] list
//	eventctl add -name "Tree Drive" -date 2026-07-01 [-time "09:00 AM"] [-venue ...] [-desc ...] [-type upcoming|past]
//	eventctl delete <id>
//	eventctl export [-o events.csv]
//	eventctl import [-replace] <events.csv>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/pthm-cable/aurora/config"
	"github.com/pthm-cable/aurora/events"
)

var errUsage = errors.New("usage: eventctl [-config file] [-store file] list|add|delete|export|import")

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("eventctl failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("eventctl", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	storePath := fs.String("store", "", "Event store file (empty = use config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	path := *storePath
	if path == "" {
		path = cfg.Derived.StoreFile
	}

	board, err := events.NewBoard(events.NewFileStore(path))
	if err != nil {
		return err
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "list":
		return list(board, stdout)
	case "add":
		return add(board, rest, stdout)
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("delete: expected one event id")
		}
		if err := board.Delete(rest[0]); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "deleted %s\n", rest[0])
		return nil
	case "export":
		return export(board, rest, stdout)
	case "import":
		return importCSV(board, rest, stdin, stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

// list prints upcoming events soonest first, then past events most recent first.
func list(board *events.Board, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tDATE\tTIME\tNAME\tVENUE")
	for _, group := range [][]events.Record{board.Upcoming(), board.Past()} {
		for _, r := range group {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.Kind, events.ShortDate(r.Date), r.Time, r.Name, r.Venue)
		}
	}
	return tw.Flush()
}

func add(board *events.Board, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "Event name")
	date := fs.String("date", "", "Event date (YYYY-MM-DD)")
	tm := fs.String("time", "", "Event time, free text")
	venue := fs.String("venue", "", "Venue")
	desc := fs.String("desc", "", "Description")
	kind := fs.String("type", string(events.KindUpcoming), "upcoming or past")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *date == "" {
		return fmt.Errorf("add: -name and -date are required")
	}
	if _, ok := (events.Record{Date: *date}).When(); !ok {
		return fmt.Errorf("add: date %q must be YYYY-MM-DD", *date)
	}
	k, err := events.ParseKind(*kind)
	if err != nil {
		return err
	}

	rec, err := board.Add(events.Record{
		Name:        *name,
		Date:        *date,
		Time:        *tm,
		Venue:       *venue,
		Description: *desc,
		Kind:        k,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "added %s\n", rec.ID)
	return nil
}

func export(board *events.Board, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "Output file (empty = stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		return events.ExportCSV(stdout, board.All())
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *out, err)
	}
	if err := events.ExportCSV(f, board.All()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// importCSV adds the events in a CSV file, or replaces the whole list with
// -replace. Events whose ID already exists are skipped when adding.
func importCSV(board *events.Board, args []string, stdin io.Reader, w io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	replace := fs.Bool("replace", false, "Replace all stored events")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("opening %s: %w", fs.Arg(0), err)
		}
		defer f.Close()
		in = f
	}

	records, err := events.ImportCSV(in)
	if err != nil {
		return err
	}

	if *replace {
		if err := board.Replace(records); err != nil {
			return err
		}
		fmt.Fprintf(w, "replaced with %d events\n", len(records))
		return nil
	}

	added := 0
	for _, r := range records {
		if r.ID != "" {
			if _, err := board.Find(r.ID); err == nil {
				slog.Warn("skipping existing event", "id", r.ID)
				continue
			}
		}
		if _, err := board.Add(r); err != nil {
			return err
		}
		added++
	}
	fmt.Fprintf(w, "imported %d of %d events\n", added, len(records))
	return nil
}
