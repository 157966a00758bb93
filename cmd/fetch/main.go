// Command fetch runs one aggregate catalog fetch from the command line and
// prints the merged, deduplicated product list as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"storefront/internal/config"
	"storefront/internal/logx"
	catalogsvc "storefront/internal/service/catalog"
)

func main() {
	categories := flag.String("categories", "", "comma-separated category slugs, e.g. mens-shirts,mens-shoes")
	flag.Parse()

	slugs := splitSlugs(*categories)
	if len(slugs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: fetch -categories slug[,slug...]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(cfg.Environment.IsProduction())

	svc := catalogsvc.New(cfg.API.New())
	items, err := svc.Load(context.Background(), slugs)
	if err != nil {
		logx.Fatal().Err(err).Strs("slugs", slugs).Msg("aggregate fetch failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		logx.Fatal().Err(err).Msg("encode result")
	}
}

func splitSlugs(raw string) []string {
	var slugs []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			slugs = append(slugs, p)
		}
	}
	return slugs
}
