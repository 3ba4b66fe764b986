package parameter

import "time"

// Pickups
const (
	// MaxPickups is the concurrent active pickup cap
	MaxPickups = 3

	PickupRadius = 8.0

	// PickupLifetime applies to normal pickups, HazardLifetime to hazardous ones
	PickupLifetime = 4000 * time.Millisecond
	HazardLifetime = 6000 * time.Millisecond

	// PickupBlinkThreshold is remaining lifetime at which blinking starts
	PickupBlinkThreshold = 1000 * time.Millisecond

	// PickupBlinkPeriod is the visible/hidden phase length while blinking
	PickupBlinkPeriod = 200 * time.Millisecond

	// PickupCollectMargin is added to pickup and player radii for the collect test
	PickupCollectMargin = 6.0

	// PickupRespawnDelay defers the replacement after a collection
	PickupRespawnDelay = 800 * time.Millisecond

	// PickupSpawnChance is the per-step opportunistic spawn probability
	PickupSpawnChance = 0.008

	// HazardChance is the probability a spawned pickup is hazardous
	HazardChance = 0.15

	// PickupScore and HazardScore are collection rewards
	PickupScore = 10
	HazardScore = 5
)

// Pickup Placement
const (
	// PickupMaxAttempts is the placement sampling budget per spawn
	PickupMaxAttempts = 50

	// PickupSpawnMargin insets the spawn annulus from center and wall
	PickupSpawnMargin = 30.0

	// PickupClearance is the extra distance kept from pursuer and player
	PickupClearance = 40.0
)
