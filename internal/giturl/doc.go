// Package giturl turns the repository references users type into canonical
// absolute URLs.
//
// Three input forms are accepted, checked in this order:
//
//   - absolute URLs with an explicit scheme, returned as parsed
//     ("https://github.com/eagletmt/clg", "ssh://git@host/owner/repo")
//   - scp-like shorthand "[user@]host:path", rewritten to ssh://[user@]host/path
//   - anything else, resolved as a reference relative to [DefaultBase]
//     ("eagletmt/clg" becomes "https://github.com/eagletmt/clg")
//
// The scp-like form is recognised by the position of the first ':' and the
// first '/': the colon must come before any slash, or there must be no slash
// at all. This mirrors the rule git itself applies (see git-clone(1), GIT
// URLS) and is not a full grammar, so "a/b:c" is a default-host path.
package giturl
