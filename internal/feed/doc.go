// Package feed decodes saved search result documents from an anime torrent
// index. Both the RSS feed (with the index's XML namespace extensions) and the
// HTML listing table are supported. Titles from either source can be handed
// to the classifier like filenames.
//
// The package never performs network requests; Query only renders the search
// URL an operator would fetch.
package feed
