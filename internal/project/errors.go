package project

import "errors"

var (
	ErrNotEmpty                 = errors.New("directory not empty")
	ErrAlreadyExists            = errors.New("project already exists")
	ErrTemplateNotFound         = errors.New("template not found")
	ErrProjectNotFound          = errors.New("project not found")
	ErrCommandNotFound          = errors.New("command not found")
	ErrHomeDirectoryUnavailable = errors.New("home directory not found")
)
