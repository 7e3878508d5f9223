package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/components"
	"github.com/automoto/planar/tags"
)

// UpdateTweens advances floating platforms along their tween sequences.
func UpdateTweens(e *ecs.ECS) {
	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		seq := components.Tween.Get(entry)
		obj := components.Object.Get(entry)

		y, _, seqDone := seq.Update(1.0 / 60.0)
		obj.Y = float64(y)
		if seqDone {
			seq.Reset()
		}
	})
}
