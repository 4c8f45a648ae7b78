package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content errors

func ContentDirUnreadable(dir string, cause error) *SiteError {
	return Wrap(cause, CategoryContent, SeverityFatal, "content directory unreadable").
		WithContext("dir", dir)
}

func BlogFieldMissing(file, field string) *SiteError {
	return New(CategoryContent, SeverityWarning, "blog post missing required front matter field").
		WithContext("file", file).
		WithContext("field", field)
}

func FrontMatterInvalid(file string, cause error) *SiteError {
	return Wrap(cause, CategoryFrontMatter, SeverityWarning, "front matter could not be parsed").
		WithContext("file", file)
}

// Build pipeline errors

func BuildFailed(stage string, cause error) *SiteError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "build failed").
		WithContext("stage", stage)
}

func RenderFailed(cause error) *SiteError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page rendering failed")
}

func OutputWriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
