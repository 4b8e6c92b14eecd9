package common

// A 32px character is about 2m tall, so 1m = 16px.
const PixelsPerMeter = 16

// JumpSpeed peaks at v*v/(2*Gravity), about 200 units, which keeps a jump
// from the floor inside the player's vertical bounds.
const (
	Gravity   = 9.8 * PixelsPerMeter
	WalkSpeed = 150.0
	JumpSpeed = 250.0
)

// GroundProbeLength is how far past the bottom of a collider the ground
// probe reaches.
const GroundProbeLength = 4.0
