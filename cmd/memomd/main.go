package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/crestwood/memomd/internal"
	client "github.com/crestwood/memomd/internal/client/memos"
	"github.com/crestwood/memomd/internal/config"
	"github.com/crestwood/memomd/internal/export"
	"github.com/crestwood/memomd/internal/memos"
)

var (
	Version    = "0.1.0-dev"
	Commit     = "unknown"
	CommitDate = "unknown"
)

func showVersion() {
	fmt.Printf("memomd %s\n", Version)
}

func showUsage() {
	fmt.Printf("Usage: %s [OPTIONS]\n\n", os.Args[0])
	fmt.Println("Export memos from a Memos instance to Markdown or HTML files")
	fmt.Println("\nOptions:")
	flag.PrintDefaults()
	fmt.Println("\nConfiguration:")
	fmt.Println("  Flags fall back to the URL, TOKEN, OUT_DIR and MEMO_QUERY environment")
	fmt.Println("  variables, then to <user config dir>/memomd/config.json:")
	fmt.Println(`  {"memos": {"url": "https://memos.example.com", "token": "your_token"}}`)
	fmt.Println("\nExamples:")
	fmt.Println("  memomd -out-dir notes")
	fmt.Println("  memomd -memo-query \"/api/v1/memo?creatorId=2\" -t html")
	fmt.Println("\nA single request is made per run; on paginating instances only the")
	fmt.Println("first page is exported.")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	format := internal.Markdown

	flagURL := flag.String("url", "", "Memos instance base URL")
	flagToken := flag.String("token", "", "Memos access token")
	flagOutDir := flag.String("out-dir", "", "Output directory (default \"out\")")
	flagQuery := flag.String("memo-query", "", "Memo API path and query string (default \""+config.DefaultMemoQuery+"\")")
	flag.Var(&format, "t", "Output format (markdown, html)")
	flag.Var(&format, "to", "Output format (markdown, html)")
	flagMappings := flag.String("mappings", "", "Read tag mappings from FILE")
	flagCheck := flag.Bool("check", false, "Verify instance version compatibility before exporting")

	var showVersionFlag bool
	flag.BoolVar(&showVersionFlag, "version", false, "Show version")
	flag.BoolVar(&showVersionFlag, "V", false, "Show version")

	flag.Usage = showUsage
	flag.Parse()

	if showVersionFlag {
		showVersion()
		return
	}

	cfg, err := config.Load(config.Overrides{
		URL:       *flagURL,
		Token:     *flagToken,
		OutDir:    *flagOutDir,
		MemoQuery: *flagQuery,
	})
	if err != nil {
		fatal(err)
	}

	var mappings internal.Mappings
	if *flagMappings != "" {
		mappings, err = internal.LoadMappings(*flagMappings)
		if err != nil {
			fatal(err)
		}
	}

	ctx := context.Background()
	c := client.NewClient(cfg.BaseURL, client.TokenAuth{Token: cfg.Token})

	if *flagCheck {
		version, err := c.GetStatus(ctx)
		if err != nil {
			fatal(fmt.Errorf("version check failed: %w", err))
		}
		if !version.IsCompatible() {
			fatal(fmt.Errorf("instance version %s is not compatible with supported version %s", version, memos.SupportedVersion))
		}
		fmt.Printf("Instance version: %s\n", version)
	}

	list, err := c.ListMemos(ctx, cfg.MemoQuery)
	if err != nil {
		fatal(fmt.Errorf("failed to fetch memos: %w", err))
	}

	coll := memos.NewCollection()
	for _, memo := range list {
		coll.Add(memo)
	}

	exporter := &export.Exporter{
		OutDir:   cfg.OutDir,
		Format:   format,
		Fetcher:  c,
		Mappings: mappings,
	}
	if err := exporter.Export(ctx, coll); err != nil {
		fatal(err)
	}

	fmt.Printf("Exported %d memos to %s\n", coll.Len(), cfg.OutDir)
}
