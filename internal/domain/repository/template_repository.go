package repository

// TemplateRepository renders metric-widget templates.
type TemplateRepository interface {
	// RenderWidget reads the template at path and substitutes the fixed
	// placeholder set with the given values. Unmatched placeholders are left
	// verbatim.
	RenderWidget(path, region, namespace, start, end, period string) (string, error)
}
