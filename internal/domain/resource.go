package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Resource is a catalog entry (audio/video/image) addressable by id.
// Disabled resources stay in the catalog but are skipped at resolution time.
type Resource struct {
	ID         uuid.UUID    `db:"id"`
	Name       string       `db:"name"`
	Kind       ResourceKind `db:"kind"`
	Category   Emotion      `db:"category"`
	ContentRef string       `db:"content_ref"`
	Disabled   bool         `db:"disabled"`
	CreatedAt  time.Time    `db:"created_at"`
}

// CreateResourceInput carries the fields for registering a new resource.
type CreateResourceInput struct {
	Name       string
	Kind       ResourceKind
	Category   Emotion
	ContentRef string
}

// Validate checks the input against the closed enum domains.
func (in CreateResourceInput) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if !in.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "must be one of: audio, video, image"})
	}
	if !in.Category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "unknown emotion category"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// UpdateResourceInput carries a partial update. Nil fields are left untouched.
type UpdateResourceInput struct {
	Name       *string
	Kind       *ResourceKind
	Category   *Emotion
	ContentRef *string
	Disabled   *bool
}

// IsEmpty reports whether the update changes nothing.
func (in UpdateResourceInput) IsEmpty() bool {
	return in.Name == nil && in.Kind == nil && in.Category == nil &&
		in.ContentRef == nil && in.Disabled == nil
}

// Validate re-checks any enum field that is being changed.
func (in UpdateResourceInput) Validate() error {
	var errs []FieldError
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if in.Kind != nil && !in.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "must be one of: audio, video, image"})
	}
	if in.Category != nil && !in.Category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "unknown emotion category"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ResourceFilter narrows a catalog listing. Zero values mean "no filter";
// disabled resources are excluded unless IncludeDisabled is set.
type ResourceFilter struct {
	Kind            *ResourceKind
	Category        *Emotion
	IncludeDisabled bool
}

// Validate checks filter enum fields.
func (f ResourceFilter) Validate() error {
	if f.Kind != nil && !f.Kind.IsValid() {
		return NewValidationError("kind", "must be one of: audio, video, image")
	}
	if f.Category != nil && !f.Category.IsValid() {
		return NewValidationError("category", "unknown emotion category")
	}
	return nil
}
