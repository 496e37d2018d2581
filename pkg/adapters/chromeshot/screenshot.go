// Package chromeshot provides viewport screenshot capture using chromedp.
package chromeshot

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/user/uibench/pkg/ports"
)

// Screenshotter implements ports.Screenshotter using chromedp.
type Screenshotter struct{}

// New creates a new Screenshotter.
func New() *Screenshotter {
	return &Screenshotter{}
}

// Ensure Screenshotter implements ports.Screenshotter
var _ ports.Screenshotter = (*Screenshotter)(nil)

// CaptureURL loads the URL at the exact viewport, waits for the load event
// plus the settle delay, and returns the rendered viewport as PNG bytes.
// Each capture uses its own browser context so a crashed render cannot
// poison the next one.
func (s *Screenshotter) CaptureURL(ctx context.Context, url string, viewport ports.Viewport, opts ports.CaptureOptions) ([]byte, error) {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", viewport.Width, viewport.Height)
	}

	chromedpOpts := chromedp.DefaultExecAllocatorOptions[:]
	chromedpOpts = append(chromedpOpts,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if path := ResolveChromePath(opts.ChromePath); path != "" {
		chromedpOpts = append(chromedpOpts, chromedp.ExecPath(path))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedpOpts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	if opts.TimeoutMs > 0 {
		var cancel context.CancelFunc
		browserCtx, cancel = context.WithTimeout(browserCtx, time.Duration(opts.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	settle := time.Duration(opts.SettleDelayMs) * time.Millisecond

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(viewport.Width), int64(viewport.Height), chromedp.EmulateScale(1.0)),
		chromedp.Navigate(url),
		chromedp.Sleep(settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	// The screenshot must match the reference framing exactly.
	cfg, err := png.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	if cfg.Width != viewport.Width || cfg.Height != viewport.Height {
		return nil, fmt.Errorf("rendered %dx%d, want %dx%d",
			cfg.Width, cfg.Height, viewport.Width, viewport.Height)
	}

	return buf, nil
}
