package linkedin

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchHeadless renders the profile in headless Chrome and pulls the
// certification headings out of the live DOM. Used only when the static
// pass returns nothing and headless mode is enabled.
func (s *scraper) fetchHeadless(ctx context.Context, profileURL string) []string {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var names []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(profileURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('section[data-section="certifications"] li h3, li.certification__item h3'))
			.map(el => el.textContent.trim())
			.filter(t => t.length > 0)`, &names),
	)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("LinkedIn headless fetch failed | url=%s err=%v", profileURL, err)
		}
		return nil
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
