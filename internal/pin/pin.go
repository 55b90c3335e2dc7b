// Package pin rewrites dependency pins in a pip requirements file.
//
// Validating an examples project against a branch under test requires the
// package's requirement line to point at that branch instead of the released
// pin. Rewrite swaps exactly that one line and leaves the rest of the file
// untouched.
package pin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GitRequirement builds a pip VCS requirement for the given branch.
//
// Examples:
//
//	GitRequirement("https://github.com/org/pkg.git", "fix-123", "pkg", "")
//	  => git+https://github.com/org/pkg.git@fix-123#egg=pkg
//	GitRequirement("https://github.com/org/pkg.git", "fix-123", "pkg", "python")
//	  => git+https://github.com/org/pkg.git@fix-123#egg=pkg&subdirectory=python
func GitRequirement(repoURL, branch, pkg, subdir string) string {
	req := fmt.Sprintf("git+%s@%s#egg=%s", repoURL, branch, pkg)
	if subdir != "" {
		req += "&subdirectory=" + subdir
	}
	return req
}

// Rewrite replaces the requirement line naming pkg with replacement.
// All other lines, comments and blank lines included, are preserved
// byte-for-byte. The file is written via a temp file rename so a crash
// mid-write cannot leave a truncated requirements file.
//
// Returns an error when the file cannot be read or no line names pkg.
func Rewrite(path, pkg, replacement string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read requirements file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	found := false
	for i, line := range lines {
		if namesPackage(line, pkg) {
			lines[i] = replacement
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("package %q not found in %s", pkg, path)
	}

	out := strings.Join(lines, "\n")

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(out); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace requirements file: %w", err)
	}

	return nil
}

// namesPackage reports whether a requirements line pins the given package.
// Recognizes bare names, version specifiers (==, >=, <, !=, ~=), extras
// brackets, and VCS requirements carrying #egg=<pkg>. Comments never match.
func namesPackage(line, pkg string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return false
	}

	want := normalizeName(pkg)

	// VCS requirement: match on the egg fragment.
	if idx := strings.Index(trimmed, "#egg="); idx >= 0 {
		egg := trimmed[idx+len("#egg="):]
		if amp := strings.IndexByte(egg, '&'); amp >= 0 {
			egg = egg[:amp]
		}
		return normalizeName(egg) == want
	}

	// Plain requirement: name runs until the first specifier character.
	name := trimmed
	if idx := strings.IndexAny(trimmed, " \t=<>!~[;"); idx >= 0 {
		name = trimmed[:idx]
	}
	return normalizeName(name) == want
}

// normalizeName applies pip name normalization: lowercase with - and _
// treated as equivalent.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "_", "-")
}
