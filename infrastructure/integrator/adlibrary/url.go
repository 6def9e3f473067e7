package adlibrary

import (
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://www.facebook.com/ads/library/"
	pageIDParam    = "view_all_page_id"
)

// PageURL monta a URL da biblioteca de anúncios restrita a uma página
func PageURL(baseURL, pageID string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	params := url.Values{}
	params.Set("active_status", "all")
	params.Set("ad_type", "all")
	params.Set("country", "ALL")
	params.Set(pageIDParam, pageID)
	params.Set("sort_data[direction]", "desc")
	params.Set("sort_data[mode]", "relevancy_monthly_grouped")

	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}

	return baseURL + sep + params.Encode()
}

// PageIDFromURL extrai o view_all_page_id da URL, se existir
func PageIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(pageIDParam)
}
