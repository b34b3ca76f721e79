package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/esimov/lowpoly"
	"github.com/esimov/lowpoly/utils"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

const helperBanner = `
┬  ┌─┐┬ ┬┌─┐┌─┐┬ ┬ ┬
│  │ ││││├─┘│ ││ └┬┘
┴─┘└─┘└┴┘┴  └─┘┴─┘┴
Low-poly background generator.
    Version: %s

`

// Version indicates the current build version.
var Version = "dev"

var (
	// Flags
	confPath     = flag.String("conf", "config.json", "Configuration file (JSON or YAML), local path or URL")
	destination  = flag.String("out", "", "Destination file; the extension selects the format (svg, png, jpg, bmp). Defaults to SVG on stdout")
	save         = flag.Bool("save", false, "Save the effective configuration into the -conf file")
	width        = flag.Int("width", 0, "Canvas width")
	height       = flag.Int("height", 0, "Canvas height")
	edgeLength   = flag.Float64("edge", 0, "Triangle edge length")
	vertexJitter = flag.Float64("vertex", 0, "Vertex jitter, percent of the edge length")
	colorJitter  = flag.Int("offset", 0, "Maximum color offset")
	colors       = flag.String("colors", "", "Comma separated list of gradient colors (#rrggbb or color names)")
	randomColors = flag.Bool("random", false, "Use two random gradient colors")
	uniform      = flag.Bool("uniform", true, "Shade with a light source (true) or with per channel noise (false)")
	vertical     = flag.String("vertical", "", "Orientation: true, false or random")
	steepness    = flag.Float64("steepness", 0, "Maximum ridge height used by the light shading")
	seed         = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	grain        = flag.Int("grain", 0, "Film grain applied on raster output")
	quality      = flag.Int("quality", 0, "JPEG quality")
	title        = flag.String("title", "", "SVG document title")
	verbose      = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helperBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	lowpoly.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := loadConfig(*confPath, isTerminal)
	if err := applyFlags(&cfg); err != nil {
		log.Fatalf("Invalid option: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *save {
		if utils.IsURL(*confPath) {
			log.Fatalf("Cannot save the configuration into a remote location: %s", *confPath)
		}
		if err := lowpoly.SaveConfig(*confPath, cfg); err != nil {
			log.Fatalf("Unable to save configuration: %v", err)
		}
	}

	format, err := lowpoly.FormatFromPath(*destination)
	if err != nil {
		log.Fatalf("Unable to detect the output format: %v", err)
	}

	var (
		out io.Writer = os.Stdout
		fq  *os.File
	)
	if *destination != "" {
		fq, err = os.Create(*destination)
		if err != nil {
			log.Fatalf("Unable to create the output file: %v", err)
		}
		out = fq
	} else if format.IsRaster() && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("Refusing to write a raster image to the terminal, use -out or a redirection")
	}

	renderer := lowpoly.NewRenderer(format, out)
	switch r := renderer.(type) {
	case *lowpoly.SVG:
		r.Title = *title
		r.Description = "Low-poly mesh generated by lowpoly " + Version
	case *lowpoly.Image:
		r.Grain = *grain
		r.Quality = *quality
	}

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if !isTerminal {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Shading triangles..."),
				progressbar.OptionShowCount(),
				progressbar.OptionThrottle(65*time.Millisecond),
				progressbar.OptionClearOnFinish(),
			)
		}
		bar.Add(1)
	}

	start := time.Now()
	p := lowpoly.NewProcessor(cfg)
	stats, err := p.Process(renderer, progress)
	if bar != nil {
		bar.Finish()
	}
	if fq != nil {
		err = closeOutput(fq, err)
	}
	if err != nil {
		log.Fatalf("Error generating the mesh: %v", err)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated in: %s\n",
		utils.Decorate(utils.FormatTime(time.Since(start)), utils.SuccessColor, isTerminal))
	fmt.Fprintf(os.Stderr, "Total number of %s triangles on a %dx%d grid, seed %d\n",
		utils.Decorate(fmt.Sprint(stats.Triangles), utils.SuccessColor, isTerminal),
		stats.Rows, stats.Cols, stats.Seed)
	if *destination != "" {
		fmt.Fprintf(os.Stderr, "Saved as: %s %s\n\n", path.Base(*destination),
			utils.Decorate("✓", utils.SuccessColor, isTerminal))
	}
}

// loadConfig reads the configuration from a local file or an URL,
// falling back to the defaults on failure.
func loadConfig(src string, isTerminal bool) lowpoly.Config {
	if !utils.IsURL(src) {
		return lowpoly.LoadConfigOrDefault(src)
	}

	var s *utils.Spinner
	if isTerminal {
		s = utils.NewSpinner(os.Stderr)
		s.Start("Fetching configuration...")
	}
	file, err := utils.DownloadFile(src)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		lowpoly.Logger().Warn("falling back to default configuration", "url", src, "error", err)
		return lowpoly.DefaultConfig()
	}
	defer os.Remove(file)

	return lowpoly.LoadConfigOrDefault(file)
}

// applyFlags overrides the configuration with the flags given on the command line.
func applyFlags(cfg *lowpoly.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "edge":
			cfg.EdgeLength = *edgeLength
		case "vertex":
			cfg.VertexJitter = *vertexJitter
		case "offset":
			cfg.ColorJitter = *colorJitter
		case "colors":
			cfg.Colors = splitColors(*colors)
			cfg.RandomColors = false
		case "random":
			cfg.RandomColors = *randomColors
		case "uniform":
			cfg.Uniform = *uniform
		case "vertical":
			cfg.Orientation, err = lowpoly.ParseOrientation(*vertical)
		case "steepness":
			cfg.Steepness = *steepness
		case "seed":
			cfg.Seed = *seed
		}
	})
	return err
}

func splitColors(list string) []string {
	var colors []string
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			colors = append(colors, c)
		}
	}
	return colors
}

// closeOutput closes the output file and reports the close error,
// unless the generation already failed.
func closeOutput(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("unable to close the output file: %w", cerr)
	}
	return err
}
