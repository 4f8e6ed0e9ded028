package tmdb

// Movie holds the subset of TMDB movie details the application uses
type Movie struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
}

// watchProvidersResponse mirrors the /movie/{id}/watch/providers payload,
// keyed by region code under "results"
type watchProvidersResponse struct {
	Results map[string]regionOffers `json:"results"`
}

// regionOffers lists the offers for one region. Only flatrate
// (subscription) offers matter here; rent and buy are ignored.
type regionOffers struct {
	Flatrate []providerEntry `json:"flatrate"`
}

// providerEntry is a single provider in an offer list
type providerEntry struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
}
