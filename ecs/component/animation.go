package component

// AnimationClip is an ordered list of sprite frames shown FrameSeconds each.
type AnimationClip struct {
	Frames       []int
	FrameSeconds float64
}

// Animation drives Sprite.Index from a logical key (an enemy state name or a
// player movement mode). Key is the last key seen, used to detect changes.
type Animation struct {
	Clips  map[string]AnimationClip
	Key    string
	Frames []int
	Timer  Timer
}

var AnimationComponent = NewComponent[Animation]()
