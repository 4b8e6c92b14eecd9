package entity

import (
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/prefabs"
)

func animationFromSpec(clips map[string]prefabs.ClipSpec) *component.Animation {
	anim := &component.Animation{Clips: make(map[string]component.AnimationClip, len(clips))}
	for key, clip := range clips {
		frames := make([]int, len(clip.Frames))
		copy(frames, clip.Frames)
		anim.Clips[key] = component.AnimationClip{Frames: frames, FrameSeconds: clip.FrameSeconds}
	}
	return anim
}

func spriteFromSpec(spec prefabs.SpriteSpec) *component.Sprite {
	return &component.Sprite{
		Width:        spec.Width,
		Height:       spec.Height,
		ArtFacesLeft: spec.ArtFacesLeft,
	}
}
