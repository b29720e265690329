package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/fleetwatch/cw-fleet/internal/domain/repository"
	"github.com/fleetwatch/cw-fleet/internal/shared/types"
)

// TemplateRepositoryImpl implements the TemplateRepository.
type TemplateRepositoryImpl struct{}

// NewTemplateRepository creates a new TemplateRepository implementation.
func NewTemplateRepository() repository.TemplateRepository {
	return &TemplateRepositoryImpl{}
}

// RenderWidget reads the widget template at path and substitutes the fixed
// placeholder set. Substitution is literal text replacement, so the template
// does not need to be valid JSON until the placeholders are filled in.
// Placeholders other than the known set pass through verbatim.
func (r *TemplateRepositoryImpl) RenderWidget(path, region, namespace, start, end, period string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrTemplateUnreadable, path, err)
	}

	rendered := string(data)
	rendered = strings.ReplaceAll(rendered, "{{NAMESPACE}}", namespace)
	rendered = strings.ReplaceAll(rendered, "{{REGION}}", region)
	rendered = strings.ReplaceAll(rendered, "{{PERIOD_START}}", start)
	rendered = strings.ReplaceAll(rendered, "{{PERIOD_END}}", end)
	rendered = strings.ReplaceAll(rendered, "{{PERIOD}}", period)

	return rendered, nil
}
