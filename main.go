package main

import (
	"flag"
	"log"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/joho/godotenv"

	"github.com/emon51/oneflare-scraper/config"
	"github.com/emon51/oneflare-scraper/services"
	"github.com/emon51/oneflare-scraper/utils"
)

func main() {
	var (
		categoryURL   = flag.String("category-url", config.DefaultCategoryURL, "OneFlare category URL to crawl")
		output        = flag.String("output", config.DefaultOutputFile, "Destination spreadsheet (.xlsx, or .csv)")
		logFile       = flag.String("log-file", config.DefaultLogFile, "Log file path")
		preloadDelay  = flag.Float64("preload-delay", config.DefaultPreloadDelay, "Seconds to wait after loading the category page")
		pageDelay     = flag.Float64("page-delay", config.DefaultPageDelay, "Seconds to wait after loading each business page")
		waitTimeout   = flag.Float64("wait-timeout", config.DefaultWaitTimeout, "Maximum seconds to wait for key elements")
		headless      = flag.Bool("headless", false, "Run the browser in headless mode")
		verbose       = flag.Bool("verbose", false, "Enable debug logging")
		selectorsPath = flag.String("selectors", "", "Optional YAML file overriding the default selectors")
		envFile       = flag.String("env-file", "", "Optional .env file with ONEFLARE_* overrides")
	)
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("loading env file %s: %v", *envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := config.NewConfig()
	cfg.ApplyEnv()

	// Only explicitly set flags override the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "category-url":
			cfg.CategoryURL = *categoryURL
		case "output":
			cfg.OutputFile = *output
		case "log-file":
			cfg.LogFile = *logFile
		case "preload-delay":
			cfg.PreloadDelay = *preloadDelay
		case "page-delay":
			cfg.PageDelay = *pageDelay
		case "wait-timeout":
			cfg.WaitTimeout = *waitTimeout
		case "headless":
			cfg.Headless = *headless
		case "verbose":
			cfg.Verbose = *verbose
		}
	})

	if *selectorsPath != "" {
		sel, err := config.LoadSelectors(*selectorsPath, cfg.Selectors)
		if err != nil {
			log.Fatalf("loading selectors: %v", err)
		}
		cfg.Selectors = sel
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		log.Fatalf("opening log file: %v", err)
	}
	defer logger.Close()

	logger.Info("OneFlare business scraper starting")

	ctx, cancel := utils.CreateBrowserContext(cfg)
	defer cancel()

	// A first Run launches the browser; failing here means the driver binary
	// is missing or incompatible, which terminates the run.
	if err := chromedp.Run(ctx, chromedp.Navigate("about:blank")); err != nil {
		logger.Error("Could not start the browser", err)
		log.Fatalf("starting browser: %v", err)
	}

	start := time.Now()

	pipeline := services.NewPipeline(cfg, logger)
	records, err := pipeline.Execute(ctx)
	if err != nil {
		logger.Error("Scrape failed", err)
		log.Fatalf("scrape failed: %v", err)
	}

	if len(records) == 0 {
		logger.Warn("No business records collected; inspect selectors or delays")
	}
	logger.LogSession(len(records), time.Since(start))
}
