package main

// Exit codes returned by pubsync commands.
const (
	ExitSuccess        = 0 // Success
	ExitError          = 1 // General error (transport failure, bad config, file I/O)
	ExitNoPublications = 2 // Crawl finished with zero publications; target left untouched
	ExitNoSpliceTarget = 3 // Neither the marker pair nor the fallback anchor is present
)
