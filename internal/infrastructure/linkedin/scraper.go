package linkedin

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// Fetcher pulls certification names from a public LinkedIn profile. Public
// profiles are best-effort territory: logged-out pages are heavily gated and
// often rendered client-side, so a static colly pass is tried first and a
// headless pass second. An empty result is a valid outcome, not an error.
type Fetcher interface {
	FetchCertifications(ctx context.Context, profileURL string) []string
}

type scraper struct {
	logger   *log.Logger
	headless bool
}

func NewFetcher(logger *log.Logger, headless bool) Fetcher {
	return &scraper{logger: logger, headless: headless}
}

func (s *scraper) FetchCertifications(ctx context.Context, profileURL string) []string {
	profileURL = normalizeProfileURL(profileURL)
	if profileURL == "" {
		return nil
	}

	certs := s.fetchStatic(ctx, profileURL)
	if len(certs) == 0 && s.headless {
		certs = s.fetchHeadless(ctx, profileURL)
	}
	return certs
}

func (s *scraper) fetchStatic(ctx context.Context, profileURL string) []string {
	c := colly.NewCollector(
		colly.AllowedDomains("www.linkedin.com", "linkedin.com"),
		colly.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
	)
	c.SetRequestTimeout(15 * time.Second)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*linkedin.com", Delay: 500 * time.Millisecond})

	certs := make([]string, 0)
	seen := map[string]struct{}{}

	// Logged-out public profile markup; the certifications block uses the
	// "certifications" section anchor with list items per credential.
	c.OnHTML(`section[data-section="certifications"] li h3, li.certification__item h3`, func(e *colly.HTMLElement) {
		name := strings.TrimSpace(e.Text)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		certs = append(certs, name)
	})

	c.OnError(func(r *colly.Response, err error) {
		if s.logger != nil {
			s.logger.Printf("LinkedIn static fetch failed | url=%s status=%d err=%v", profileURL, r.StatusCode, err)
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Visit(profileURL)
		c.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return nil
	}

	return certs
}

func normalizeProfileURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	// Bare usernames are accepted the way profile forms hand them over.
	return "https://www.linkedin.com/in/" + strings.Trim(raw, "/")
}
