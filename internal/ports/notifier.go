package ports

// NotifierPort prints the human-readable notices of a run.
type NotifierPort interface {
	Warn(message string)
	Info(message string)
}
