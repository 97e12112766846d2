package dto

// StreakResponse reports the consecutive-day run and whether today is done.
type StreakResponse struct {
	Streak         int  `json:"streak"`
	CheckedInToday bool `json:"checked_in_today"`
}

// CheckInResponse reports the reward credited for today's check-in.
type CheckInResponse struct {
	Day    string `json:"day"`
	Points int64  `json:"points"`
}
