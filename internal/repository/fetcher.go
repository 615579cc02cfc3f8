package repository

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/andrewcovenant/n8n-youtube-transcript-service/internal/config"
)

var video_base_url = "https://www.youtube.com/watch?v=%s"

var (
	consentFormRegex  = regexp.MustCompile(`action="https://consent\.youtube\.com/s`)
	consentValueRegex = regexp.MustCompile(`name="v" value="(.*?)"`)
)

// HTMLFetcher performs the watch-page and caption-track requests on behalf of
// the transcript client. When a Webshare specification is present every
// request goes through the rotating-proxy endpoint; otherwise the connection
// is direct. It satisfies the client's HTMLFetcherType, which is how the
// proxy policy reaches the wire.
type HTMLFetcher struct {
	client *http.Client
}

func NewHTMLFetcher(proxy *config.WebshareProxy) *HTMLFetcher {
	transport := &http.Transport{}
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy.URL())
	}

	return &HTMLFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

// Fetch issues a single GET. Acquisition is exactly one upstream call per
// request, so there is no retry loop here.
func (f *HTMLFetcher) Fetch(url string, cookie *http.Cookie) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept-Language", "en-US")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received status code %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

func (f *HTMLFetcher) FetchVideo(videoID string) ([]byte, error) {
	video_url := fmt.Sprintf(video_base_url, videoID)

	body, err := f.Fetch(video_url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video page: %w", err)
	}

	if consentFormRegex.Match(body) {
		cookie, err := consentCookie(body)
		if err != nil {
			return nil, fmt.Errorf("failed to create consent cookie: %w", err)
		}

		body, err = f.Fetch(video_url, cookie)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch video page after setting consent: %w", err)
		}
	}

	return body, nil
}

// consentCookie extracts the consent token from the interstitial page.
func consentCookie(body []byte) (*http.Cookie, error) {
	match := consentValueRegex.FindSubmatch(body)
	if len(match) < 2 {
		return nil, fmt.Errorf("failed to find consent value in page")
	}

	return &http.Cookie{
		Name:   "CONSENT",
		Value:  "YES+" + string(match[1]),
		Domain: ".youtube.com",
	}, nil
}
