package template

import "errors"

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrEmptyTemplateName = errors.New("template name is empty")
)
