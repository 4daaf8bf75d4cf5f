// Command seedoracle is the CLI front end for the farming-sim seed
// oracle: predict a single seed's daily mechanics, search a seed range
// against a JSON filter, or serve the HTTP API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/MJE43/stardew-seed-oracle/internal/httpapi"
	"github.com/MJE43/stardew-seed-oracle/internal/jobstore"
	"github.com/MJE43/stardew-seed-oracle/internal/predictor"
	"github.com/MJE43/stardew-seed-oracle/internal/search"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "predict":
		err = runPredict(os.Args[2:])
	case "search":
		err = runSearch(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "seedoracle:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: seedoracle <predict|search|serve> [flags]")
}

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "game seed")
	day := fs.Int("day", 1, "day number")
	ver := fs.String("version", "1.6", "game version")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v, err := version.Parse(*ver)
	if err != nil {
		return fmt.Errorf("invalid version: %w", err)
	}

	result := predictor.PredictDay(int32(*seed), *day, v)
	return printJSON(result)
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	filterPath := fs.String("filter", "", "path to a JSON filter document")
	seedLo := fs.Int64("seed-lo", 0, "lower bound of the seed range, inclusive")
	seedHi := fs.Int64("seed-hi", 0, "upper bound of the seed range, inclusive")
	maxResults := fs.Int("max-results", 0, "stop after this many matches (0 = unbounded)")
	ver := fs.String("version", "1.6", "game version")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *filterPath == "" {
		return fmt.Errorf("-filter is required")
	}

	filterJSON, err := os.ReadFile(*filterPath)
	if err != nil {
		return fmt.Errorf("read filter: %w", err)
	}
	filter, err := search.ParseFilter(filterJSON)
	if err != nil {
		return fmt.Errorf("parse filter: %w", err)
	}
	v, err := version.Parse(*ver)
	if err != nil {
		return fmt.Errorf("invalid version: %w", err)
	}

	var matches []int32
	result := search.SearchRange(search.Request{
		Filter:     filter,
		SeedLo:     int32(*seedLo),
		SeedHi:     int32(*seedHi),
		MaxResults: *maxResults,
		Version:    v,
		OnProgress: func(checked, found uint64) bool {
			fmt.Fprintf(os.Stderr, "checked=%d found=%d\n", checked, found)
			return true
		},
		OnMatch: func(seed int32) bool {
			matches = append(matches, seed)
			return true
		},
	})

	return printJSON(struct {
		State   string  `json:"state"`
		Checked uint64  `json:"checked"`
		Found   uint64  `json:"found"`
		Matches []int32 `json:"matches"`
	}{State: result.State.String(), Checked: result.Checked, Found: result.Found, Matches: matches})
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8787", "listen address")
	dbPath := fs.String("jobs-db", "seedoracle_jobs.db", "sqlite path for the search job store")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := jobstore.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("open job store: %w", err)
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate job store: %w", err)
	}

	srv := httpapi.NewServer(store)
	fmt.Fprintf(os.Stderr, "seedoracle: listening on %s\n", *addr)
	return http.ListenAndServe(*addr, srv.Routes())
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
