package file

import "errors"

var (
	ErrInvalidPath             = errors.New("invalid path")
	ErrFileTooLarge            = errors.New("file size exceeds maximum allowed size")
	ErrFailedToCreateFile      = errors.New("failed to create file")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToReadFile        = errors.New("failed to read file")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToDeleteDirectory = errors.New("failed to delete directory")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
)
