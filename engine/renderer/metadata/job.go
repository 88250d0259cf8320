package metadata

/**
 * @brief Describes a job to be run by the job system.
 */
type JobTask struct {
	/** @brief Used in logs. */
	Name string
	/** @brief Invoked on a worker when the job starts. Required. */
	Run func() error
	/** @brief Invoked after Run succeeded. Optional. */
	OnComplete func()
	/** @brief Invoked with the error Run returned. Optional. */
	OnFailure func(err error)
}
