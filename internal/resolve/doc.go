// Package resolve matches a repository query against discovered checkouts.
//
// A checkout matches when the query's path segments equal the trailing
// segments of the checkout path, so "clg", "eagletmt/clg" and
// "github.com/eagletmt/clg" all match ".../github.com/eagletmt/clg" while
// "lg" does not. [Select] classifies the matches as not found, unique or
// ambiguous; an ambiguous result is never narrowed down to a single pick.
package resolve
