// Package mal looks up anime cover art through the MyAnimeList REST API.
package mal

// Anime represents an anime entry from the MyAnimeList REST API.
type Anime struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	MainPicture struct {
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"main_picture"`
}

// SearchResult encapsulates a paginated response from the MyAnimeList search endpoint.
type SearchResult struct {
	Data []struct {
		Node Anime `json:"node"`
	} `json:"data"`
}
