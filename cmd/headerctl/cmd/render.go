package cmd

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcrobe/siteheader/config"
	"github.com/vcrobe/siteheader/console"
	"github.com/vcrobe/siteheader/dom/htmldom"
	"github.com/vcrobe/siteheader/header"
)

type renderOptions struct {
	header      string
	path        string
	out         string
	width       int
	placeholder string
	breakpoint  int
	fallback    bool
	timeout     time.Duration
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render PAGE",
		Short: "Write PAGE with the header injected and the active link set",
		Long: `Reads PAGE, fetches the header markup and injects it into the
placeholder element, then marks the nav link for --path as active.

--header may be a file path or an http(s) URL. When omitted, the configured
source (SITEHEADER_SOURCE, default header.html) is read from PAGE's directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("placeholder") {
				cfg.PlaceholderID = opts.placeholder
			}
			if flags.Changed("breakpoint") {
				cfg.Breakpoint = opts.breakpoint
			}
			if flags.Changed("fallback") {
				cfg.Fallback = opts.fallback
			}
			if flags.Changed("timeout") {
				cfg.FetchTimeout = opts.timeout
			}
			return runRender(cmd, cfg, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.header, "header", "", "header markup file or URL")
	f.StringVar(&opts.path, "path", "", "URL path of the page (default /PAGE-basename)")
	f.StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	f.IntVar(&opts.width, "width", 1024, "viewport width")
	f.StringVar(&opts.placeholder, "placeholder", header.PlaceholderID, "placeholder element id")
	f.IntVar(&opts.breakpoint, "breakpoint", header.DefaultBreakpoint, "mobile menu breakpoint")
	f.BoolVar(&opts.fallback, "fallback", false, "inject the built-in header when the fetch fails")
	f.DurationVar(&opts.timeout, "timeout", 0, "fetch timeout (0 for none)")

	return cmd
}

func runRender(cmd *cobra.Command, cfg config.Config, page string, opts renderOptions) error {
	data, err := os.ReadFile(page)
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}
	doc, err := htmldom.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	path := opts.path
	if path == "" {
		path = "/" + filepath.Base(page)
	}
	win := htmldom.NewWindow(doc, path, opts.width)

	fetcher, source, err := resolveSource(opts.header, cfg.Source, page)
	if err != nil {
		return err
	}
	loader := cfg.Loader(fetcher)
	loader.Source = source

	h, err := loader.LoadErr(cmd.Context(), win)
	if err != nil {
		return fmt.Errorf("load header: %w", err)
	}
	defer h.Destroy()
	console.Log("rendered", page, "as", path, "active page:", h.ActivePage())

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// resolveSource picks the fetcher for the header markup. URLs are fetched
// over HTTP; file paths are read from their directory. With no explicit
// header the configured source is looked up next to the page, mirroring
// how the browser resolves it against the page URL.
func resolveSource(explicit, configured, page string) (header.Fetcher, string, error) {
	if strings.HasPrefix(explicit, "http://") || strings.HasPrefix(explicit, "https://") {
		u, err := url.Parse(explicit)
		if err != nil {
			return nil, "", fmt.Errorf("parse header URL: %w", err)
		}
		return header.NewHTTPFetcher(nil, nil), u.String(), nil
	}

	full := explicit
	if full == "" {
		full = filepath.Join(filepath.Dir(page), filepath.FromSlash(configured))
	}
	return header.FSFetcher{FS: os.DirFS(filepath.Dir(full))}, filepath.Base(full), nil
}
