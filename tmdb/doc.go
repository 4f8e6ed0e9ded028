// Package tmdb provides a client for The Movie Database API.
//
// The application uses TMDB for two things: resolving a TMDB ID to a movie
// title, and listing which streaming services currently offer a movie under
// a subscription (flatrate) model in a given region. The watch-provider
// lookup is the input to the availability verdict, so its error contract is
// strict: a successful lookup that finds nothing returns an empty list,
// while transport failures, non-200 responses, and malformed bodies all
// return errors. Callers can rely on that distinction.
//
// Create a client with your API key:
//
//	client, err := tmdb.NewClient("https://api.themoviedb.org/3", "your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	providers, err := client.WatchProviders(ctx, "603", "US")
//
// Authentication uses the api_key query parameter (TMDB API v3).
package tmdb
