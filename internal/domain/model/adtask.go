package model

// AdTaskStatus describes ad-task verification state reported by the network.
type AdTaskStatus string

const (
	AdTaskPending   AdTaskStatus = "PENDING"
	AdTaskCompleted AdTaskStatus = "COMPLETED"
	AdTaskInvalid   AdTaskStatus = "INVALID"
)

// AdTask encapsulates an ad-network verification result for a task token.
type AdTask struct {
	Token  string
	Status AdTaskStatus
	Reward int64
}
