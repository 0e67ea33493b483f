package util

import (
	"net/url"
)

// blinkitSearchBase is the assumed search URL structure for the Blinkit
// external marketplace.
const blinkitSearchBase = "https://www.blinkit.com/search?query="

// BlinkitSearchURL builds a deterministic external-marketplace search link
// for a product name, used as a fallback suggestion when no in-range seller
// offers the product. Spaces are encoded as '+'.
func BlinkitSearchURL(productName string) string {
	return blinkitSearchBase + url.QueryEscape(productName)
}
