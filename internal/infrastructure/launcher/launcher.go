package launcher

import (
	"log"

	"loja_xpto/internal/usecase/interfaces"

	"github.com/pkg/browser"
)

// BrowserLauncher opens the payment link in the system browser, the
// kiosk/local-mode equivalent of pre-opening a tab. A failed open reports
// false and the caller falls back to in-place delivery of the URL; the
// checkout flow itself never depends on the outcome.

type BrowserLauncher struct{}

var _ interfaces.ILinkLauncher = (*BrowserLauncher)(nil)

func NewBrowserLauncher() *BrowserLauncher {
	return &BrowserLauncher{}
}

func (l *BrowserLauncher) Open(url string) bool {
	if err := browser.OpenURL(url); err != nil {
		log.Printf("[launcher] browser open failed url=%s err=%v", url, err)
		return false
	}
	log.Printf("[launcher] browser opened url=%s", url)
	return true
}

// DeferredLauncher is the web-mode launcher: the service cannot open a tab
// on the user's machine, so the init point travels back in the response
// and the frontend navigates. Open always reports the in-place fallback.

type DeferredLauncher struct{}

var _ interfaces.ILinkLauncher = (*DeferredLauncher)(nil)

func NewDeferredLauncher() *DeferredLauncher {
	return &DeferredLauncher{}
}

func (l *DeferredLauncher) Open(url string) bool {
	log.Printf("[launcher] deferring link delivery to the frontend url=%s", url)
	return false
}
