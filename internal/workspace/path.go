// Package workspace maps repository URLs onto the directory layout under
// the clg root: {root}/{host}/{path segments...}.
package workspace

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// VCSSuffix is stripped from the last path segment of a destination.
const VCSSuffix = ".git"

// ErrNoHost is returned for URLs that cannot be placed under a host directory.
var ErrNoHost = errors.New("repository URL has no host")

// DestinationPath computes where a checkout of u lives under root.
//
//	https://github.com/eagletmt/clg.git  -> {root}/github.com/eagletmt/clg
//	ssh://git@example.com/repo           -> {root}/example.com/repo
//
// If name is non-empty it replaces the last path segment. A trailing ".git"
// on the resulting last segment is removed. No filesystem access happens.
func DestinationPath(root string, u *url.URL, name string) (string, error) {
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: %s", ErrNoHost, u)
	}

	segments, err := pathSegments(u.EscapedPath())
	if err != nil {
		return "", fmt.Errorf("%s: %w", u, err)
	}

	if name != "" {
		if err := validateSegment(name); err != nil {
			return "", fmt.Errorf("name %q: %w", name, err)
		}
		if len(segments) == 0 {
			segments = append(segments, name)
		} else {
			segments[len(segments)-1] = name
		}
	}

	if n := len(segments); n > 0 {
		segments[n-1] = stripVCSSuffix(segments[n-1])
	}

	return filepath.Join(append([]string{root, host}, segments...)...), nil
}

// RelPath returns path relative to root using forward-slash separated
// segments, as printed by "clg list".
func RelPath(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// pathSegments splits a URL path into its non-empty segments, skipping the
// root marker and "." segments.
func pathSegments(path string) ([]string, error) {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s == "" || s == "." {
			continue
		}
		if err := validateSegment(s); err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	return segments, nil
}

func validateSegment(s string) error {
	if s == ".." {
		return errors.New("path segment \"..\" would leave the root directory")
	}
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("path segment %q contains a separator", s)
	}
	return nil
}

// stripVCSSuffix removes ".git" when it is the extension of s. A segment
// that is exactly ".git" has no extension and is kept.
func stripVCSSuffix(s string) string {
	if s != VCSSuffix && filepath.Ext(s) == VCSSuffix {
		return strings.TrimSuffix(s, VCSSuffix)
	}
	return s
}
