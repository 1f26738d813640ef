// Package prismic implements [driven.ContentSource] over the Prismic
// REST API v2.
//
// # Refs
//
// Every search runs against a content release ref. The client reads the
// master ref from the API root on first use and caches it. When a search
// reports the ref as unknown (the master ref moves on every publish) the
// cached ref is dropped and the search is retried once with a fresh ref.
//
// # Queries
//
// Domain predicates and orderings are rendered to the Prismic query
// language:
//
//	[[at(document.type, "event")][date.after(my.event.event_date, "2024-05-01")]]
//	[my.event.event_date]
//	[my.blog_post.release_date desc]
//
// # Authentication
//
// Private repositories need an access token. It is sent both as the
// access_token query parameter and, through an oauth2 transport, as an
// "Authorization: Token ..." header.
//
// # Rate Limiting and Retries
//
// Requests pass through a token bucket (requests_per_second). A 429 response
// becomes a [RateLimitError] honouring Retry-After. Network errors, 429 and
// 5xx responses are retried with exponential backoff up to max_attempts.
// Other non-2xx responses become an [APIError] immediately; 404 maps to
// [domain.ErrNotFound].
package prismic
