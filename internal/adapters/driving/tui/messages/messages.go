// Package messages defines Bubbletea message types for the progress display.
package messages

// StageChanged reports that the pipeline entered a new stage.
type StageChanged struct {
	// Percent is the completion on entering the stage, 0 to 100.
	Percent     int
	Description string
}

// PipelineFinished reports that the pipeline stopped. Err is nil on success.
type PipelineFinished struct {
	Err error
}
