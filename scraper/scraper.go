package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/emon51/oneflare-scraper/config"
	"github.com/emon51/oneflare-scraper/utils"
)

// phoneRevealSettle gives the page a moment to swap the masked number for
// the real one after the reveal anchor is clicked.
const phoneRevealSettle = 500 * time.Millisecond

type Scraper struct {
	selectors    config.Selectors
	preloadDelay time.Duration
	pageDelay    time.Duration
	waitTimeout  time.Duration
	log          *utils.Logger
}

func NewScraper(cfg *config.Config, log *utils.Logger) *Scraper {
	return &Scraper{
		selectors:    cfg.Selectors,
		preloadDelay: cfg.PreloadWait(),
		pageDelay:    cfg.PageWait(),
		waitTimeout:  cfg.ElementWait(),
		log:          log,
	}
}

// LoadCategory navigates to the category listing and sits out the preload
// delay so the listing's deferred content can render. A navigation failure
// here aborts the whole run.
func (s *Scraper) LoadCategory(ctx context.Context, url string) error {
	s.log.Info(fmt.Sprintf("Loading category page %s", url))

	if err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady(`body`, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("navigating to category page: %w", err)
	}

	if s.preloadDelay > 0 {
		s.log.Debug(fmt.Sprintf("Waiting %v for category page assets", s.preloadDelay))
		if err := chromedp.Run(ctx, chromedp.Sleep(s.preloadDelay)); err != nil {
			return fmt.Errorf("waiting on category page: %w", err)
		}
	}
	return nil
}

// CollectLinks harvests profile URLs from the loaded category page in
// document order, skipping anchors without an href.
func (s *Scraper) CollectLinks(ctx context.Context) ([]string, error) {
	var hrefs []string
	script := fmt.Sprintf(linkHarvestScript, s.selectors.BusinessLinks)

	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &hrefs)); err != nil {
		return nil, fmt.Errorf("collecting business links: %w", err)
	}
	return hrefs, nil
}

// FetchProfile navigates to a business profile, waits for the page to settle,
// clicks the phone-reveal anchor when present, and returns the rendered HTML.
func (s *Scraper) FetchProfile(ctx context.Context, url string) (string, error) {
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}

	// The heading is the page's readiness signal. Not finding it within the
	// wait ceiling is not fatal; whatever rendered still gets extracted.
	waitCtx, cancel := context.WithTimeout(ctx, s.waitTimeout)
	err := chromedp.Run(waitCtx,
		chromedp.WaitVisible(s.selectors.BusinessName, chromedp.ByQuery),
	)
	cancel()
	if err != nil {
		s.log.Warn(fmt.Sprintf("Business name did not load for %s within %v", url, s.waitTimeout))
	}

	if s.pageDelay > 0 {
		s.log.Debug(fmt.Sprintf("Waiting %v for profile page details", s.pageDelay))
		if err := chromedp.Run(ctx, chromedp.Sleep(s.pageDelay)); err != nil {
			return "", fmt.Errorf("waiting on %s: %w", url, err)
		}
	}

	s.revealPhone(ctx)

	var html string
	if err := chromedp.Run(ctx,
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("capturing page HTML for %s: %w", url, err)
	}
	return html, nil
}

// revealPhone clicks the masked phone anchor so the full number lands in the
// captured HTML. Profiles without a phone, or a click that fails, just leave
// whatever text the anchor already shows.
func (s *Scraper) revealPhone(ctx context.Context) {
	var present bool
	err := chromedp.Run(ctx, chromedp.Evaluate(
		fmt.Sprintf(`document.querySelector(%q) !== null`, s.selectors.PhoneReveal),
		&present,
	))
	if err != nil || !present {
		return
	}

	clickCtx, cancel := context.WithTimeout(ctx, s.waitTimeout)
	defer cancel()

	err = chromedp.Run(clickCtx,
		chromedp.Click(s.selectors.PhoneReveal, chromedp.ByQuery),
		chromedp.Sleep(phoneRevealSettle),
	)
	if err != nil {
		s.log.Debug("Phone reveal click failed; keeping visible text")
	}
}
