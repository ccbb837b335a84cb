package source

import (
	"math/rand"
	"net/http"
)

// acceptLanguages holds Accept-Language values typical for readers of
// Chinese travel blogs, picked at random per request
var acceptLanguages = []string{
	"zh-CN,zh;q=0.9,en;q=0.8",
	"zh-CN,zh;q=0.9",
	"en-US,en;q=0.9,zh-CN;q=0.8",
	"en-US,en;q=0.9",
	"zh-TW,zh;q=0.9,en;q=0.8",
}

// addBrowserHeaders makes a feed request look like it comes from an ordinary
// browser. Some travel blogs serve bots a stripped or blocked response.
func addBrowserHeaders(req *http.Request) {
	// accept both feed formats and plain HTML, some blogs serve feeds as text/html
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5")
	// no compression negotiation, feed bodies are small
	req.Header.Set("Cache-Control", "no-cache")

	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation

	req.Header.Set("Connection", "keep-alive")

	// a minority of real browsers send DNT, mirror that ratio
	if rand.Float32() < 0.3 { //nolint:gosec // non-cryptographic randomness is fine
		req.Header.Set("DNT", "1")
	}
}
