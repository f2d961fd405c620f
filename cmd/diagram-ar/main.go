package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/anibitri/diagram-ar/internal/imaging"
	"github.com/anibitri/diagram-ar/internal/label"
	"github.com/anibitri/diagram-ar/internal/overlay"
	"github.com/anibitri/diagram-ar/internal/pipeline"
	"github.com/anibitri/diagram-ar/internal/proposer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// result is the CLI's JSON output: the component list plus overlay
// support data the frontend draws from.
type result struct {
	Components  []pipeline.Component `json:"components"`
	Connections []overlay.Connection `json:"connections"`
	Colors      []string             `json:"colors"`
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("diagram-ar %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	imagePath := flag.String("image", "", "Path to the diagram image (required)")
	detectionsPath := flag.String("detections", "", "Path to a precomputed detections JSON file")
	proposerURL := flag.String("proposer-url", os.Getenv("DIAGRAM_AR_PROPOSER_URL"), "Segmentation service base URL")
	localProposer := flag.Bool("local-proposer", false, "Detect regions locally instead of calling a segmentation service")
	labelerKind := flag.String("labeler", "ocr", "Labeler backend: ocr, http, or none")
	labelerURL := flag.String("labeler-url", os.Getenv("DIAGRAM_AR_LABELER_URL"), "Vision service base URL (for -labeler=http)")
	language := flag.String("lang", "eng", "OCR language (for -labeler=ocr)")
	debug := flag.Bool("debug", false, "Log per-stage diagnostics to stderr")
	flag.Parse()

	// Configure logging to stderr (stdout is for the JSON result)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Optional .env for service URLs and credentials; absence is fine.
	_ = godotenv.Load()

	if os.Getenv("DIAGRAM_AR_LOG_LEVEL") == "debug" {
		*debug = true
	}
	if *debug {
		log.Printf("diagram-ar v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	var regionProposer proposer.RegionProposer
	var err error
	switch {
	case *localProposer:
		regionProposer = proposer.NewLocal()
	case *proposerURL != "":
		regionProposer = proposer.NewHTTPProposer(*proposerURL)
	case *detectionsPath != "":
		regionProposer, err = proposer.LoadDetections(*detectionsPath)
		if err != nil {
			log.Fatalf("Failed to load detections: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "diagram-ar: either -proposer-url, -detections, or -local-proposer is required")
		os.Exit(2)
	}

	var labeler label.Labeler
	switch *labelerKind {
	case "ocr":
		labeler = label.NewOCRLabeler(*language)
	case "http":
		if *labelerURL == "" {
			fmt.Fprintln(os.Stderr, "diagram-ar: -labeler=http requires -labeler-url")
			os.Exit(2)
		}
		labeler = label.NewHTTPLabeler(*labelerURL)
	case "none":
		labeler = nil
	default:
		fmt.Fprintf(os.Stderr, "diagram-ar: unknown labeler %q\n", *labelerKind)
		os.Exit(2)
	}

	cfg := pipeline.DefaultConfig()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "diagram-ar: -image is required")
		flag.Usage()
		os.Exit(2)
	}

	img, err := imaging.Load(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	var opts []pipeline.Option
	trace := &pipeline.CollectingTrace{}
	if *debug {
		opts = append(opts, pipeline.WithTrace(trace))
	}

	extractor, err := pipeline.New(regionProposer, labeler, cfg, opts...)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	components, err := extractor.Extract(context.Background(), img)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	if *debug {
		for _, ev := range trace.Stages {
			log.Printf("stage %-18s %3d -> %3d", ev.Stage, ev.In, ev.Out)
		}
		for _, ev := range trace.Complexity {
			log.Printf("complexity box=%v variance=%.1f edges=%.4f passed=%v",
				ev.Box, ev.Variance, ev.EdgeDensity, ev.Passed)
		}
	}

	out := result{
		Components:  components,
		Connections: overlay.Relationships(components, cfg.ProximityThreshold),
		Colors:      overlay.Colors(len(components)),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}
