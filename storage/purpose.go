package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/stadtwache/stadtwache-api/models"
)

// Purpose names what an uploaded file is for. It decides the stored name
// prefix and which extensions are accepted.
type Purpose string

// Upload purposes
const (
	PurposeCV           Purpose = "cv"
	PurposeHeroImage    Purpose = "hero-image"
	PurposeNewsImage    Purpose = "news-image"
	PurposeServiceImage Purpose = "service-image"
	PurposeTeamImage    Purpose = "team-image"
	PurposeAboutImage   Purpose = "about-image"
)

var (
	documentExtensions = []string{"pdf", "doc", "docx"}
	imageExtensions    = []string{"jpg", "jpeg", "png", "webp"}

	prefixes = map[Purpose]string{
		PurposeCV:           "cv",
		PurposeHeroImage:    "hero",
		PurposeNewsImage:    "news",
		PurposeServiceImage: "service",
		PurposeTeamImage:    "team",
		PurposeAboutImage:   "about",
	}
)

var (
	// ErrInvalidExtension is returned for files whose extension the purpose does not allow
	ErrInvalidExtension = fmt.Errorf("%w: file type not allowed", models.ErrInvalidInput)
	// ErrUnknownPurpose is returned for an upload type outside the known purposes
	ErrUnknownPurpose = fmt.Errorf("%w: unknown upload type", models.ErrInvalidInput)
	// ErrFileNotFound is returned when no stored file has the requested name
	ErrFileNotFound = fmt.Errorf("%w: file", models.ErrNotFound)
)

// ParsePurpose maps an upload type string to its Purpose
func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(strings.TrimSpace(s))
	if _, ok := prefixes[p]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPurpose, s)
	}
	return p, nil
}

// Prefix is the leading part of names generated for this purpose
func (p Purpose) Prefix() string {
	return prefixes[p]
}

// Extensions lists the lowercase extensions accepted for this purpose
func (p Purpose) Extensions() []string {
	if p == PurposeCV {
		return documentExtensions
	}
	return imageExtensions
}

// Extension returns the lowercased extension of filename without the dot
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// CheckExtension returns the lowercased extension of filename when the
// purpose accepts it
func (p Purpose) CheckExtension(filename string) (string, error) {
	ext := Extension(filename)
	for _, allowed := range p.Extensions() {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: %q, allowed: %s", ErrInvalidExtension, filename, strings.Join(p.Extensions(), ", "))
}

// GenerateName returns a fresh stored name <prefix>_<uuid>.<ext> for filename.
// The client supplied name never reaches the filesystem.
func GenerateName(p Purpose, filename string) (string, error) {
	if _, ok := prefixes[p]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPurpose, p)
	}
	ext, err := p.CheckExtension(filename)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s.%s", p.Prefix(), uuid.New().String(), ext), nil
}

// ValidName reports whether name can be a stored file name. Anything with a
// path separator or a parent reference is rejected.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
