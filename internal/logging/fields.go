package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies a catalog run.
	FieldRunID = "run_id"
	// FieldPath is the file system path being processed.
	FieldPath = "path"
	// FieldFilename is the bare filename handed to the classifier.
	FieldFilename = "filename"
	// FieldEventType names the kind of event for filtering structured logs.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)
