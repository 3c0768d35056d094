package consts

const (
	// TrackingIDPrefix is the fixed literal every public tracking id starts with
	TrackingIDPrefix = "BR"

	MaxUnitsNeeded = 10

	// TrackingIDAttempts bounds regeneration when a tracking id is already taken
	TrackingIDAttempts = 5

	// VolunteerLeaderboardSize is the number of volunteers in the leaderboard
	VolunteerLeaderboardSize = 10
)
