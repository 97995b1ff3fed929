// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article entity published on the association site, along with
// its validation rules and domain-specific errors.
package entity

// DefaultAuthor is the author attribution used when no authenticated
// identity is available at write time.
const DefaultAuthor = "Association EL BOUCHRA HAY ADIL"

// Article represents a published article on the association site.
// Content holds the rich-text HTML produced by the admin editor; Excerpt is
// the plain-text teaser shown in list views, derived from Content when the
// editor leaves it blank.
type Article struct {
	ID            string // opaque UUID, assigned by the repository on create
	Title         string
	Content       string // author-controlled HTML
	Excerpt       string // plain text
	FeaturedImage string // optional URL, uploaded or external
	CreatedAt     string // display-ready locale-formatted date, set once at creation
	CreatedBy     string // author email, or DefaultAuthor
}
