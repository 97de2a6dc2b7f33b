package ports

// Progress reports long-running work to the user.
type Progress interface {
	// Start begins a new task with the given number of steps.
	Start(total int, description string)

	// Increment advances the current task by one step.
	Increment()

	// Finish completes the current task.
	Finish()
}
